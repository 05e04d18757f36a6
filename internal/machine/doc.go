// Package machine implements the wheel-driven cipher core of the Siemens &
// Halske T52a.
//
// Ten pinned wheels advance in lockstep, one step per code unit. The first
// five contribute one bit each to a 5-bit XOR mask; the last five gate a
// composition of fixed pairwise bit swaps. Encryption XORs then transposes;
// decryption applies the inverse transposition then XORs. Because stepping
// never depends on data, both directions trace the same wheel trajectory
// from the same key, which is what makes decrypt(encrypt(x)) == x hold.
//
// Wheels and banks have value semantics: Advance returns a new value and
// the pin patterns are never written after construction. A Machine holds
// the only mutable state (the current bank) and is not safe for concurrent
// use.
package machine
