// Package store provides whole-file reads and atomic whole-file writes for
// key files, plaintext and tape files. Writes go to a temp file first and
// replace the target with a rename, so a failed run never leaves a
// half-written output behind.
package store
