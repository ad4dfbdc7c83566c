// Package commands defines the blskdf CLI and wires dependencies for subcommands.
//
// Commands
//
//   - master         Print the master key of a seed
//   - child          Print the child of a parent key at an index
//   - path           Print the key at an m/... path below a seed
//   - scan           Print keys for a contiguous range of indices
//   - mnemonic-seed  Print the BIP-39 seed of a mnemonic
//   - fingerprint    Print a short seed fingerprint
//   - verify         Check the EIP-2333 test vectors
//
// Seeds are given as hex (--seed) or as a BIP-39 mnemonic (--mnemonic with an
// optional --passphrase). Keys are printed in decimal.
//
// # Implementation
//
// The root command binds its flags into a fresh viper instance, reads an
// optional blskdf.{toml,yaml,json} from --home, and builds the app before any
// subcommand runs.
package commands
