// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary lifecycle (load the grid,
// evaluate it, report failures), decoupled from any specific entrypoint
// like a CLI.
package app
