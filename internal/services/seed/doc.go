// Package seed converts BIP-39 mnemonics into EIP-2333 derivation seeds.
//
// It validates the mnemonic checksum and word list and runs the standard
// PBKDF2 stretch (2048 rounds of HMAC-SHA512, salt "mnemonic"+passphrase).
// Generating new mnemonics is out of scope; entropy comes from the wallet.
package seed
