// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package render writes a [report.Report] in one of several formats.
//
// Human formats (table, markdown, html) are built from [Sections]: one
// titled [Section] per populated domain, each holding one or more
// [Grid]s of [Cell]s. A cell carries the severity of the metric it
// shows, so the table renderer can color it and the markdown renderer
// can mark it. The dashboard reuses the same sections.
//
// Machine formats (json, yaml, cbor) serialize the report struct
// directly. Field order follows the struct, which lists domains in
// their fixed order, so keys never come out alphabetized. JSON and
// YAML are syntax-highlighted with chroma when color is enabled.
//
// Color is controlled by [ColorMode]. In auto mode the destination is
// inspected with termenv: a terminal gets 256 colors unless NO_COLOR
// is set, anything else gets plain text. Rendering the same report
// with the same options always produces the same bytes.
package render
