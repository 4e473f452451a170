// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sink opens the destination a rendered report is written to.
//
// With no path the destination is stdout. With a path, the file name
// selects processing by suffix, read right to left:
//
//	report.json          plain file
//	report.json.zst      zstd-compressed (klauspost/compress)
//	report.json.lz4      lz4 frame (pierrec/lz4)
//	report.json.zst.age  zstd-compressed, then age-encrypted
//
// Encryption is driven by recipients: age X25519 public keys
// ("age1...") or SSH public keys ("ssh-ed25519 ..."). A path ending in
// .age requires at least one recipient. Encrypted output to stdout is
// ASCII-armored so it survives a terminal or a pipe into a text tool.
//
// Compression always happens before encryption; ciphertext does not
// compress.
package sink
