// SPDX-License-Identifier: MPL-2.0

package vfs

// HomeDir is the home directory of the seeded tree.
const HomeDir = "/home/user"

// Seed builds the fixed mock tree every session starts from:
//
//	/
//	├── home/user/{documents,downloads,desktop}/ readme.txt config.json
//	├── usr/{bin,lib}/
//	└── etc/hosts
func Seed() *Tree {
	return NewTree(dir(
		"home", dir(
			"user", dir(
				"documents", dir(),
				"downloads", dir(),
				"desktop", dir(),
				"readme.txt", NewFile("Welcome to DevifyX Terminal!"),
				"config.json", NewFile(`{"theme": "dark", "font": "monospace"}`),
			),
		),
		"usr", dir(
			"bin", dir(),
			"lib", dir(),
		),
		"etc", dir(
			"hosts", NewFile("127.0.0.1 localhost"),
		),
	))
}

// dir builds a directory from alternating name/node pairs.
// It panics on malformed input; it is only used with literal seeds.
func dir(pairs ...any) *Directory {
	if len(pairs)%2 != 0 {
		panic("vfs: dir requires name/node pairs")
	}
	d := NewDirectory()
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("vfs: dir name must be a string")
		}
		n, ok := pairs[i+1].(Node)
		if !ok {
			panic("vfs: dir child must be a Node")
		}
		if err := d.Add(name, n); err != nil {
			panic("vfs: " + err.Error())
		}
	}
	return d
}
