package core

import (
	"log"
	"sort"
)

// Mouse is the pointer state handed to App event handlers, in pixel coordinates.
type Mouse struct {
	X, Y float64
	Down bool
}

// App defines the per-tick contract a host drives. The host owns the frame
// and the event loop; an App only reacts to events and redraws the frame.
type App interface {
	Name() string
	Tick(f *Frame)
	OnMouseDown(m Mouse)
	OnMouseUp(m Mouse)
	OnMouseMove(m Mouse)
	OnScroll(dx, dy float64)
}

// Factory constructs an App using an optional configuration map.
type Factory func(cfg map[string]string) App

var apps = map[string]Factory{}

// Register adds an app factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	apps[name] = f
}

// Apps exposes the registry of available app factories.
func Apps() map[string]Factory {
	return apps
}

// Names returns the registered app names in sorted order.
func Names() []string {
	names := make([]string, 0, len(apps))
	for name := range apps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ViewResetter is implemented by apps whose camera can be returned home.
type ViewResetter interface {
	ResetView()
}

// LoggerSetter is implemented by apps that can report diagnostics.
type LoggerSetter interface {
	SetLogger(l *log.Logger)
}
