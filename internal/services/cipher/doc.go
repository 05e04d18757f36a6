// Package cipher orchestrates encrypt and decrypt runs: key loading, ITA2
// conversion, the wheel machine, and tape file IO.
package cipher
