package display

import (
	"sort"

	"github.com/pkg/errors"
)

// Options are passed to every backend factory
type Options struct {
	Title string
	// MaxFrames makes the headless backend quit after that many presented frames
	MaxFrames int
}

// Factory builds an unopened surface
type Factory func(opts Options) Surface

var backends = map[string]Factory{}

// Register adds a backend under the provided name
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backends[name] = f
}

// New returns an unopened surface of the named backend
func New(name string, opts Options) (Surface, error) {
	f, ok := backends[name]
	if !ok {
		return nil, errors.Errorf("[display.New] unknown backend %q, available: %v", name, Backends())
	}
	return f(opts), nil
}

// Backends lists the registered backend names
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
