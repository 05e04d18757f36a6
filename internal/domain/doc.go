// Package domain holds the shared types, errors and interfaces of the
// sturgeon T52a simulator.
package domain
