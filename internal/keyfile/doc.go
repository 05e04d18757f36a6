// Package keyfile reads, writes and generates T52a key settings.
//
// Key files are human-editable YAML: ten wheel records in teleprinter-bit
// order (substitution wheels 1-5 then transposition wheels 1-5), each with
// a decimal tooth count, a '0'/'1' pin string of that length, and a decimal
// start position below the tooth count. Save and Load are exact inverses,
// and Save output is canonical, so save-load-save is stable under hand
// edits that keep the record count and order.
package keyfile
