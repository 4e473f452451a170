// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides hwcheck's CBOR encoding configuration.
//
// Reports are written as CBOR for machine consumers that archive or
// diff them. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. The same report always produces identical
// bytes, so two archived snapshots of an unchanged machine compare
// equal byte for byte.
//
// Report types carry only `json` tags. fxamacker/cbor v2 reads `json`
// tags when `cbor` tags are absent, so one tag controls field naming
// and omitempty for JSON, YAML-via-JSON-names, and CBOR alike.
//
//	data, err := codec.Marshal(report)
//	err = codec.Unmarshal(data, &report)
//
// Timestamps encode as RFC 3339 text with nanoseconds so they survive
// a round trip exactly and stay readable in diagnostic notation.
package codec
