// Package identity locates the SSH public key material to install on a
// remote host.
//
// The Resolver produces exactly one Identity per invocation, trying sources
// in a fixed priority order:
//
//  1. An explicit path (the -i flag or the config default). A leading ~ is
//     expanded, and a private-key path is swapped for its .pub sibling when
//     one exists, so private key material is never transmitted.
//  2. The IdentityFile configured for the destination host in ~/.ssh/config.
//  3. Conventional public key files in ~/.ssh, most preferred first:
//
//     id_rsa.pub
//     id_ed25519.pub
//     id_ecdsa.pub
//     id_dsa.pub
//     identity.pub
//
//  4. A running key agent (SSH_AUTH_SOCK), whose held public keys are
//     formatted as authorized_keys lines.
//
// Key content is treated as opaque line-oriented text. A resolved file that
// does not parse as a public key only produces a warning; the remote
// procedure handles content verbatim either way.
//
// The package also exposes key discovery helpers (ListLocalKeys,
// PreferredKey) used by the keys subcommand to show what would be picked.
package identity
