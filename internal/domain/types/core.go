package types

// Fingerprint is a short identifier for seeds presented to users and logs.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Index identifies one derivation step. Every value is treated the same;
// there is no hardened range.
type Index uint32
