// Package cli provides the interactive game-journal command-line client.
//
// It wires configuration, local storage, the API gateway, a connectivity
// monitor and the sync engine into an interactive REPL. Writes always land in
// the local database first and are pushed to the backend opportunistically;
// the journal stays fully usable offline.
//
// Key features:
//   - Login / Logout (logout flushes pending changes first)
//   - Add / Edit / Delete / Show / List journal entries
//   - Search with remote-first, local-fallback semantics
//   - Pull remote pages into the local store
//   - Sync on demand and a live status line
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and netx.Monitor for details.
package cli
