// Package cli provides the interactive expenzo command-line client.
//
// It wires configuration, the local session store, the HTTP API client and
// the expense view into a REPL. On start the stored session is restored; a
// missing or rejected session sends the user to the login prompt.
//
// Commands:
//   - register, login, logout
//   - list, add, delete <id>, totals, products
//   - help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
