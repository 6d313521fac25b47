package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// AppID scopes the protected machine ID to this application.
const AppID = "tracker"

// MachineID retrieves an ID identifying the machine without exposing the
// raw machine ID. It falls back to the hostname.
func MachineID() string {
	id, err := machineid.ProtectedID(AppID)
	if err == nil && len(id) > 12 {
		return id[:12]
	}
	if err != nil {
		glog.V(1).Infof("machine id unavailable: %v", err)
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "unknown"
}
