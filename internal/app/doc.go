// Package app wires the application together: it resolves the effective
// configuration from flags, the optional settings file, and built-in
// defaults, owns the App's isolated logger, and runs the solve-and-render
// lifecycle.
package app
