// Package app wires application dependencies for the CLI.
//
// It turns a Config (filled from flags and an optional config file) into the
// keygen and seed services and the test-vector store, exposed via App.
package app
