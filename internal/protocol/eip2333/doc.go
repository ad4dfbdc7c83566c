// Package eip2333 implements EIP-2333 hierarchical deterministic derivation
// of BLS12-381 secret keys.
//
// # Overview
//
// A master key is derived from a seed; every child key is derived from its
// parent key and a 32-bit index. A path m/a/b/c is a left fold of child
// derivation over [a, b, c] starting at the master key.
//
// # Flows
//
// Master key:
//  1. PRK = HKDF-Extract("BLS-SIG-KEYGEN-SALT-", seed).
//  2. OKM = HKDF-Expand(PRK, "", 48).
//  3. SK = OS2IP(OKM) mod r.
//
// Child key:
//  1. salt = I2OSP(index, 4), IKM = I2OSP(parent, 32).
//  2. Expand IKM and its bitwise complement into two Lamport secret keys of
//     255 blocks each.
//  3. Hash every block, hash the concatenation of the 510 digests.
//  4. Reduce that digest to a scalar the same way as the master key.
//
// # Errors
//
// None of the exported functions return errors. All codec and HKDF lengths
// used here are constants in range, so a failure there means a constant was
// miscoded and the call panics instead of returning a partial key.
//
// # Security notes
//
// Child derivation is one-way: the compressed Lamport public key cannot be
// inverted to recover the parent. Intermediate key material is wiped on a
// best-effort basis; the returned SecretKey is the caller's to protect.
package eip2333
