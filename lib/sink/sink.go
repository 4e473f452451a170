// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"
	"filippo.io/age/agessh"
	"filippo.io/age/armor"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Options selects the destination.
type Options struct {
	// Path is the output file. Empty means stdout.
	Path string

	// Recipients are age or SSH public keys. Non-empty enables
	// encryption.
	Recipients []string
}

// Compression names a compression codec selected by file suffix.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// CompressionFor returns the codec implied by path's suffix, ignoring
// a trailing ".age".
func CompressionFor(path string) Compression {
	switch filepath.Ext(strings.TrimSuffix(path, ".age")) {
	case ".zst":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// ParseRecipients parses age X25519 and SSH public keys.
func ParseRecipients(keys []string) ([]age.Recipient, error) {
	recipients := make([]age.Recipient, 0, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		var (
			recipient age.Recipient
			err       error
		)
		switch {
		case strings.HasPrefix(key, "age1"):
			recipient, err = age.ParseX25519Recipient(key)
		case strings.HasPrefix(key, "ssh-"):
			recipient, err = agessh.ParseRecipient(key)
		default:
			err = errors.New("expected an age public key (age1...) or an SSH public key (ssh-...)")
		}
		if err != nil {
			return nil, fmt.Errorf("recipient %q: %w", abbreviate(key), err)
		}
		recipients = append(recipients, recipient)
	}
	return recipients, nil
}

// Validate checks options without touching the filesystem.
func (o Options) Validate() error {
	if strings.HasSuffix(o.Path, ".age") && len(o.Recipients) == 0 {
		return fmt.Errorf("output %s ends in .age but no recipient was given", o.Path)
	}
	_, err := ParseRecipients(o.Recipients)
	return err
}

// Open returns a writer for the destination. Closing it flushes the
// compressor and encryptor and closes the file; stdout itself is
// never closed.
func Open(stdout io.Writer, options Options) (io.WriteCloser, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	recipients, err := ParseRecipients(options.Recipients)
	if err != nil {
		return nil, err
	}

	chain := &chain{Writer: stdout}
	if options.Path != "" {
		mode := os.FileMode(0o644)
		if len(recipients) > 0 {
			mode = 0o600
		}
		file, err := os.OpenFile(options.Path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
		if err != nil {
			return nil, fmt.Errorf("opening output: %w", err)
		}
		chain.push(file, file)
	}

	if len(recipients) > 0 {
		if options.Path == "" {
			armored := armor.NewWriter(chain.Writer)
			chain.push(armored, armored)
		}
		encrypted, err := age.Encrypt(chain.Writer, recipients...)
		if err != nil {
			chain.Close()
			return nil, fmt.Errorf("starting encryption: %w", err)
		}
		chain.push(encrypted, encrypted)
	}

	switch CompressionFor(options.Path) {
	case CompressionZstd:
		encoder, err := zstd.NewWriter(chain.Writer)
		if err != nil {
			chain.Close()
			return nil, fmt.Errorf("starting zstd: %w", err)
		}
		chain.push(encoder, encoder)
	case CompressionLZ4:
		compressor := lz4.NewWriter(chain.Writer)
		chain.push(compressor, compressor)
	}

	return chain, nil
}

// chain is a stack of writers, each wrapping the previous one. Close
// runs innermost-last so every layer flushes into a still-open layer
// below it.
type chain struct {
	io.Writer
	closers []io.Closer
}

func (c *chain) push(writer io.Writer, closer io.Closer) {
	c.Writer = writer
	c.closers = append(c.closers, closer)
}

func (c *chain) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// abbreviate shortens a key for error messages.
func abbreviate(key string) string {
	if len(key) <= 24 {
		return key
	}
	return key[:20] + "..."
}
