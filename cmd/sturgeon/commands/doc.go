// Package commands defines the sturgeon CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - keygen       Write a fresh random key file
//   - encrypt      Baudot-encode and encrypt a plaintext file
//   - decrypt      Decrypt a tape file and decode to plaintext
//   - readtape     Display a Baudot tape file as ASCII
//   - fingerprint  Print a key file's fingerprint
//
// The core packages never print; commands do all output, and any core
// error surfaces through cobra as a message plus non-zero exit status.
package commands
