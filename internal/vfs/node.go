// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// KindDirectory identifies a *Directory node.
	KindDirectory Kind = iota + 1
	// KindFile identifies a *File node.
	KindFile

	// DirectorySize is the size reported for every directory.
	DirectorySize = 4096
)

var (
	// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
	ErrInvalidName = errors.New("invalid node name")
	// ErrDuplicateName is returned when a directory already has a child with the given name.
	ErrDuplicateName = errors.New("duplicate node name")
	// ErrAlreadyAttached is returned when a node already has a parent.
	ErrAlreadyAttached = errors.New("node already attached")
	// ErrCycle is returned when adding a directory below itself.
	ErrCycle = errors.New("directory cannot contain itself")
)

type (
	// Kind tags the variant of a Node.
	Kind int

	// Node is a filesystem tree node: either *Directory or *File.
	Node interface {
		// Kind reports which variant the node is.
		Kind() Kind
		// Size is the byte length of a file's content, or DirectorySize.
		Size() int

		attach(parent *Directory) error
	}

	// InvalidNameError is returned when a child name is empty or contains a separator.
	// It wraps ErrInvalidName for errors.Is() compatibility.
	InvalidNameError struct {
		Name string
	}

	// Directory is a node owning an ordered set of named children.
	Directory struct {
		parent   *Directory
		names    []string
		children map[string]Node
	}

	// File is a leaf node with text content.
	File struct {
		attached bool
		content  string
	}

	// Entry pairs a child name with its node.
	Entry struct {
		Name string
		Node Node
	}
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error implements the error interface for InvalidNameError.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid node name %q: must be non-empty and contain no %q", e.Name, "/")
}

// Unwrap returns ErrInvalidName for errors.Is() compatibility.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// ValidateName returns nil if name can be used as a child name.
func ValidateName(name string) error {
	if name == "" || strings.Contains(name, "/") {
		return &InvalidNameError{Name: name}
	}
	return nil
}

// NewDirectory creates an empty, detached directory.
func NewDirectory() *Directory {
	return &Directory{children: make(map[string]Node)}
}

// Kind implements Node.
func (d *Directory) Kind() Kind { return KindDirectory }

// Size implements Node.
func (d *Directory) Size() int { return DirectorySize }

// Add attaches n as a child called name.
// A node can only be attached once, and a directory cannot be added below itself.
func (d *Directory) Add(name string, n Node) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, exists := d.children[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	if err := n.attach(d); err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}
	d.names = append(d.names, name)
	d.children[name] = n
	return nil
}

// Child returns the child called name.
func (d *Directory) Child(name string) (Node, bool) {
	n, ok := d.children[name]
	return n, ok
}

// Len returns the number of children.
func (d *Directory) Len() int { return len(d.names) }

// Entries returns the children in insertion order.
func (d *Directory) Entries() []Entry {
	entries := make([]Entry, 0, len(d.names))
	for _, name := range d.names {
		entries = append(entries, Entry{Name: name, Node: d.children[name]})
	}
	return entries
}

func (d *Directory) attach(parent *Directory) error {
	if d.parent != nil {
		return ErrAlreadyAttached
	}
	for p := parent; p != nil; p = p.parent {
		if p == d {
			return ErrCycle
		}
	}
	d.parent = parent
	return nil
}

// NewFile creates a detached file with the given content.
func NewFile(content string) *File {
	return &File{content: content}
}

// Kind implements Node.
func (f *File) Kind() Kind { return KindFile }

// Size implements Node.
func (f *File) Size() int { return len(f.content) }

// Content returns the file's text.
func (f *File) Content() string { return f.content }

func (f *File) attach(*Directory) error {
	if f.attached {
		return ErrAlreadyAttached
	}
	f.attached = true
	return nil
}
