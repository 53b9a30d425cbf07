// Package cli provides the interactive TaskFlow command-line client.
//
// It wires configuration, the key/value backend, the auth and task services
// and an interactive REPL. Typical flow: open the configured store (falling
// back to no persistence when it cannot be reached), start a background
// session watcher, and execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout / WhoAmI
//   - List (optionally by status), Search, Show, Add, Edit, Delete, Stats
//   - Export / Import of the whole local store as JSON
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartSessionWatcher, and runREPL for details.
package cli
