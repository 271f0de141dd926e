// Package cli provides the interactive Neuro-Vitals profile client.
//
// It wires configuration, the local store, the services and a line-based
// REPL. Each command maps to one screen action of the account or settings
// page: view the profile, change theme or avatar, toggle settings, clear
// or export data, log out, delete the account.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Renderer and runREPL for details.
package cli
