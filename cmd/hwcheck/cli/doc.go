// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for hwcheck.
//
// The central type is [Command], which represents a named command with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and
// a Run function. Commands are assembled into a tree by the commands
// package and dispatched via [Command.Execute], which handles flag
// parsing, subcommand routing, and structured help output with
// examples.
//
// Flags are usually declared as a params struct with flag, desc, and
// default tags and bound with [FlagsFromParams]. After parsing, the
// struct fields hold the user's values.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3).
//
// Errors returned by Run functions are classified with [ToolError]
// (validation vs internal) and [ExitError] (explicit exit codes).
// [NewCommandLogger] builds the slog logger commands write
// diagnostics to.
package cli
