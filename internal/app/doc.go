// Package app contains the core application logic of the bedc command. It
// defines the App struct, its configuration, and the compile lifecycle:
// read one source file, run the compiler, render diagnostics, and write one
// artifact. It is decoupled from the CLI so tests can drive it directly.
package app
