// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services and the session expiry janitor
// into a single process lifecycle.
package client
