// Package urls resolves named routes into concrete paths.
package urls

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Route names used as canonical record locators.
const (
	BookDetail   = "book-detail"
	AuthorDetail = "author-detail"
)

type Reverser interface {
	Reverse(name string, args ...string) (string, error)
}

// Registry maps route names to fiber-style patterns ("/books/:id"),
// usually loaded from the app's named routes.
type Registry struct {
	mu       sync.RWMutex
	patterns map[string]string
}

func NewRegistry() *Registry {
	return &Registry{patterns: map[string]string{}}
}

func (r *Registry) Add(name, pattern string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns[name] = pattern
}

// Load copies the paths of routes named on app, so locators follow the
// mounted routes. Every name must exist.
func (r *Registry) Load(app *fiber.App, names ...string) error {
	for _, name := range names {
		route := app.GetRoute(name)
		if route.Path == "" {
			return fmt.Errorf("urls: no mounted route named %q", name)
		}
		r.Add(name, route.Path)
	}
	return nil
}

func (r *Registry) Pattern(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patterns[name]
	return p, ok
}

// Reverse fills the pattern's parameters positionally with args.
func (r *Registry) Reverse(name string, args ...string) (string, error) {
	pattern, ok := r.Pattern(name)
	if !ok {
		return "", fmt.Errorf("urls: no route named %q", name)
	}

	segments := strings.Split(pattern, "/")
	next := 0
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if next >= len(args) {
			return "", fmt.Errorf("urls: route %q expects more than %d args", name, len(args))
		}
		segments[i] = url.PathEscape(args[next])
		next++
	}
	if next != len(args) {
		return "", fmt.Errorf("urls: route %q takes %d args, got %d", name, next, len(args))
	}
	return strings.Join(segments, "/"), nil
}
