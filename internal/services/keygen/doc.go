// Package keygen derives EIP-2333 keys under a caller-configured seed policy.
//
// It enforces the minimum seed length, fans out range scans across a bounded
// worker pool, and checks known-answer vectors against the core derivation.
// Log entries carry paths, indices and lengths only; nothing computed from a
// seed or key is logged.
package keygen
