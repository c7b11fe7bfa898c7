package command

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrDuplicateCommand = errors.New("command already registered")

	errMissingSubcommand = errors.New("missing subcommand")
	errUnknownSubcommand = errors.New("unknown subcommand")
)

// Registry maps command names to their handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds h under name. Registering the same name twice fails with ErrDuplicateCommand.
func (r *Registry) Register(name string, h Handler) error {
	if name == "" || h == nil {
		return fmt.Errorf("register command: name and handler are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	r.handlers[name] = h
	r.order = append(r.order, name)

	return nil
}

func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[name]
	return h, ok
}

// All returns a copy of the name to handler mapping.
func (r *Registry) All() map[string]Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make(map[string]Handler, len(r.handlers))
	for name, h := range r.handlers {
		all[name] = h
	}
	return all
}

// Declarations returns the declarations of every handler in registration order.
func (r *Registry) Declarations() []Declaration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	decls := make([]Declaration, 0, len(r.order))
	for _, name := range r.order {
		d := r.handlers[name].Declaration()
		d.Name = name
		decls = append(decls, d)
	}
	return decls
}
