// Package app wires stores and services into the dependency graph the CLI
// uses.
package app
