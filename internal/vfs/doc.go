// SPDX-License-Identifier: MPL-2.0

// Package vfs provides the in-memory filesystem tree the virtual shell runs on.
//
// A tree is made of two node kinds: a *Directory owning named children and a
// *File holding opaque text. Trees are built once (see Seed) and are read-only
// afterwards; there is no API to rename or remove nodes.
//
// Directory children keep their insertion order, which is the order listings
// are rendered in.
package vfs
