// SPDX-License-Identifier: MPL-2.0

package vfs

import "github.com/devifyx/devterm/pkg/vpath"

// Tree is a filesystem rooted at a single directory.
type Tree struct {
	root *Directory
}

// NewTree wraps root as a tree. A nil root yields an empty tree.
func NewTree(root *Directory) *Tree {
	if root == nil {
		root = NewDirectory()
	}
	return &Tree{root: root}
}

// Root returns the root directory.
func (t *Tree) Root() *Directory { return t.root }

// Lookup walks absPath from the root.
// It reports false as soon as a segment is missing or a file is reached
// while segments remain. The root path always resolves.
func (t *Tree) Lookup(absPath string) (Node, bool) {
	var cur Node = t.root
	for _, seg := range vpath.Segments(absPath) {
		dir, ok := cur.(*Directory)
		if !ok {
			return nil, false
		}
		if cur, ok = dir.Child(seg); !ok {
			return nil, false
		}
	}
	return cur, true
}

// IsDir reports whether absPath names a directory.
func (t *Tree) IsDir(absPath string) bool {
	n, ok := t.Lookup(absPath)
	return ok && n.Kind() == KindDirectory
}
