// SPDX-License-Identifier: MPL-2.0

// Package vpath resolves slash-separated paths inside the virtual filesystem.
//
// All functions are pure: they never consult a filesystem and never fail.
// Malformed input (repeated slashes, trailing slashes, stray "." and ".."
// segments) is normalized on a best-effort basis.
package vpath

import "strings"

const (
	// Separator is the path segment separator.
	Separator = "/"
	// Root is the absolute path of the filesystem root.
	Root = "/"

	current = "."
	parent  = ".."
)

// Resolve turns path into a normalized absolute path.
//
// An absolute path is normalized on its own and cwd is ignored. A relative
// path is applied segment by segment on top of cwd. ".." never climbs above
// the root.
func Resolve(path, cwd string) string {
	var base []string
	if !IsAbs(path) {
		base = Segments(cwd)
	}
	return Join(walk(base, path)...)
}

// Segments splits p into its normalized segments. The root yields none.
func Segments(p string) []string {
	return walk(nil, p)
}

// Join renders segments as an absolute path. No segments renders the root.
func Join(segments ...string) string {
	return Root + strings.Join(segments, Separator)
}

// IsAbs reports whether p starts at the root.
func IsAbs(p string) bool {
	return strings.HasPrefix(p, Separator)
}

// IsRoot reports whether p normalizes to the root.
func IsRoot(p string) bool {
	return len(Segments(p)) == 0
}

// walk applies every segment of p to acc and returns the result.
func walk(acc []string, p string) []string {
	out := make([]string, len(acc), len(acc)+strings.Count(p, Separator)+1)
	copy(out, acc)

	for _, seg := range strings.Split(p, Separator) {
		switch seg {
		case "", current:
		case parent:
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, seg)
		}
	}
	return out
}
