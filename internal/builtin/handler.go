// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"time"

	"github.com/devifyx/devterm/internal/clock"
	"github.com/devifyx/devterm/internal/vfs"
	"github.com/devifyx/devterm/pkg/vpath"
)

type (
	// HandlerContext provides the session state a command runs against.
	HandlerContext struct {
		// FS is the (read-only) filesystem tree.
		FS *vfs.Tree
		// Dir is the current working directory, always an existing directory.
		Dir string
		// Home is the directory cd returns to without arguments.
		Home string
		// User is the display user name.
		User string
		// Host is the display host name.
		Host string
		// Clock supplies the current time for date-stamped output.
		Clock clock.Clock
		// Chdir replaces the session's working directory.
		Chdir func(dir string)
		// History returns the submitted lines, oldest first.
		History func() []string
	}

	handlerContextKey struct{}
)

// WithHandlerContext stores hc in ctx.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext retrieves the HandlerContext from ctx.
// Without one, commands run against a fresh seeded tree rooted at the seed's home.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	if hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext); ok && hc != nil {
		return hc
	}
	return &HandlerContext{
		FS:    vfs.Seed(),
		Dir:   vfs.HomeDir,
		Home:  vfs.HomeDir,
		User:  "user",
		Host:  "devifyx",
		Clock: clock.Real{},
	}
}

// Resolve turns p into an absolute path relative to Dir.
func (hc *HandlerContext) Resolve(p string) string {
	return vpath.Resolve(p, hc.Dir)
}

// Lookup resolves p and looks it up in the tree.
func (hc *HandlerContext) Lookup(p string) (vfs.Node, bool) {
	return hc.FS.Lookup(hc.Resolve(p))
}

func (hc *HandlerContext) chdir(dir string) {
	hc.Dir = dir
	if hc.Chdir != nil {
		hc.Chdir(dir)
	}
}

func (hc *HandlerContext) now() time.Time {
	if hc.Clock == nil {
		return time.Now()
	}
	return hc.Clock.Now()
}

func (hc *HandlerContext) history() []string {
	if hc.History == nil {
		return nil
	}
	return hc.History()
}
