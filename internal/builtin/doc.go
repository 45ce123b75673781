// SPDX-License-Identifier: MPL-2.0

// Package builtin provides the fixed command set of the virtual shell.
//
// Every command implements Command and is registered in DefaultRegistry
// during package initialization. Commands never fail with a Go error: misuse
// (missing operand, unknown path, wrong node kind) is reported as text in the
// returned Outcome, using the same message shapes as GNU coreutils.
//
// # Supported Commands
//
//   - help: Show the usage summary
//   - ls: List directory contents
//   - cd: Change the working directory
//   - pwd: Print the working directory
//   - cat: Print file contents
//   - mkdir, touch, rm: Report a simulated mutation (the tree is left untouched)
//   - clear: Discard displayed output
//   - whoami: Print the user name
//   - date: Print the current date and time
//   - echo: Print the arguments
//   - uname: Print system information
//   - ps, top: Print a mock process listing
//   - history: Print the command history
//   - exit: Print a goodbye message (the session keeps running)
//
// # Session State
//
// Commands read and mutate session state through the HandlerContext stored
// in the context passed to Run. The filesystem itself is read-only.
package builtin
