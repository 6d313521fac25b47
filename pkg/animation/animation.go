package animation

import (
	"fmt"
	"sort"

	fx "github.com/robotalks/tracker.go/pkg/framework"
)

// Animation is a Controller drawing on a strip every tick.
type Animation interface {
	fx.Controller
	fx.Named
}

var factories = map[string]func(Strip) Animation{
	"spiral":  func(s Strip) Animation { return NewSpiral(s) },
	"chase":   func(s Strip) Animation { return NewChase(s) },
	"face":    func(s Strip) Animation { return NewFace(s) },
	"pointer": func(s Strip) Animation { return NewPointer(s) },
}

// New creates the animation by name.
func New(name string, strip Strip) (Animation, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown animation: %q", name)
	}
	return factory(strip), nil
}

// Names lists the available animations.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
