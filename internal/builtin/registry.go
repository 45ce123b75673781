// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// DefaultRegistry holds every builtin. Commands are registered during package initialization.
var DefaultRegistry = NewRegistry()

// Registry maps command names to their implementations.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Panics if a command with the same name is already registered.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cmd.Name()
	if name == "" {
		panic("builtin: cannot register command with empty name")
	}
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("builtin: command %q already registered", name))
	}
	r.commands[name] = cmd
}

// Lookup retrieves a command by name.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the names of all registered commands in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []Command {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]Command, 0, len(names))
	for _, name := range names {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// Run executes a command by name. An unknown name yields the
// "command not found" text rather than an error.
func (r *Registry) Run(ctx context.Context, name string, args []string) Outcome {
	cmd, ok := r.Lookup(name)
	if !ok {
		return NotFound(name)
	}
	return cmd.Run(ctx, args)
}

// NotFound returns the outcome reported for an unknown command.
func NotFound(name string) Outcome {
	return Textf("%s: command not found", name)
}

// RegisterDefault registers a command in the DefaultRegistry.
func RegisterDefault(cmd Command) {
	DefaultRegistry.Register(cmd)
}
