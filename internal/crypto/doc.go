// Package crypto exposes the primitives the EIP-2333 derivation is built on.
//
// Contents
//
//   - Integer/octet-string conversion (I2OSP, I2OSPUint32, OS2IP)
//   - HKDF-SHA256 per RFC 5869 (Extract, Expand)
//   - Short fingerprints for identifying seeds in logs (Fingerprint)
//
// # Notes
//
// Extract and Expand are thin wrappers over golang.org/x/crypto/hkdf that
// add the explicit output bound check. Length and width violations surface
// as ErrLengthBound and ErrEncoding so callers can match them with errors.Is.
package crypto
