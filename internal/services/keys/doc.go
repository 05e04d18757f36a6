// Package keys implements key file generation and fingerprinting.
package keys
