// Package source opens byte streams for the line reader by URL.
package source

import (
	"fmt"
	"io"
	"io/ioutil"
	"net"
	"net/url"
	"os"
	"strings"

	"golang.org/x/net/websocket"
)

// Open opens a byte stream:
//
//   - stdin
//     /path/to/file, file:///...  file
//     serial:///dev/ttyACM0?baud=9600&parity=N
//     tcp://host:port
//     ws://host:port/path, wss://...
func Open(rawURL string) (io.ReadCloser, error) {
	if rawURL == "-" {
		return NewCancelableReader(ioutil.NopCloser(os.Stdin)), nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL: %v", err)
	}
	var src io.ReadCloser
	switch u.Scheme {
	case "", "file":
		src, err = os.Open(filePath(u))
	case "serial":
		var opts PortOptions
		if opts, err = PortOptionsFromQuery(u.Query()); err == nil {
			src, err = OpenSerial(devicePath(u), opts)
		}
	case "tcp":
		src, err = net.Dial("tcp", u.Host)
	case "ws", "wss":
		src, err = websocket.Dial(rawURL, "", originOf(u))
	default:
		err = fmt.Errorf("unknown source URL scheme: %q", u.Scheme)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

func filePath(u *url.URL) string {
	if u.Opaque != "" {
		return u.Opaque
	}
	return u.Host + u.Path
}

// devicePath accepts serial:///dev/ttyS0 as well as serial://COM3.
func devicePath(u *url.URL) string {
	if u.Host != "" && (u.Path == "" || u.Path == "/") {
		return u.Host
	}
	return filePath(u)
}

func originOf(u *url.URL) string {
	scheme := "http"
	if strings.EqualFold(u.Scheme, "wss") {
		scheme = "https"
	}
	return scheme + "://" + u.Host + "/"
}
