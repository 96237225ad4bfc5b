// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ironveil
// Source: github.com/ironveil/ueassets

package pak

import (
	"errors"
	"fmt"
	"io"

	"github.com/ironveil/ueassets/wire"
)

// retryable reports whether a probe attempt's failure should be treated as
// "wrong version, try the next one" rather than surfaced immediately, per
// §4.3 and §7's propagation policy: BadMagic, UnsupportedVersion, Truncated
// and InvalidRecord are locally caught; anything else (Io) is surfaced.
func retryable(err error) bool {
	return errors.Is(err, wire.ErrBadMagic) ||
		errors.Is(err, wire.ErrUnsupportedVersion) ||
		errors.Is(err, wire.ErrTruncated) ||
		errors.Is(err, wire.ErrInvalidRecord)
}

// probeResult is the outcome of a successful probe attempt.
type probeResult struct {
	footer Footer
	index  decodedIndex
}

// probe tries every known PAK version newest-first (§4.3), accepting the
// first whose footer decodes consistently and whose index parses within the
// declared size. It accumulates the best-progressing failure across all
// candidates and surfaces it, rather than only the last attempt's error,
// per §9's design note on trial-and-error error reporting.
func probe(ra io.ReaderAt, size int64) (probeResult, error) {
	var bestErr error
	var bestProgress int64 = -1

	for _, v := range probeOrder {
		footer, footerConsumed, err := decodeFooter(ra, size, v)
		if err != nil {
			if !retryable(err) {
				return probeResult{}, err
			}
			if footerConsumed > bestProgress {
				bestProgress = footerConsumed
				bestErr = fmt.Errorf("probe %s: %w", v, err)
			}
			continue
		}

		if footer.Encrypted {
			return probeResult{}, &EncryptedIndexError{
				Version:           v,
				EncryptionGUID:    footer.EncryptionGUID,
				HasEncryptionGUID: footer.HasEncryptionGUID,
			}
		}

		idx, idxConsumed, err := decodeIndex(ra, size, footer)
		if err != nil {
			if !retryable(err) {
				return probeResult{}, err
			}
			progress := footerSize(v) + idxConsumed
			if progress > bestProgress {
				bestProgress = progress
				bestErr = fmt.Errorf("probe %s: %w", v, err)
			}
			continue
		}

		return probeResult{footer: footer, index: idx}, nil
	}

	if bestErr != nil {
		return probeResult{}, fmt.Errorf("%w: %w", ErrNotAPak, bestErr)
	}
	return probeResult{}, ErrNotAPak
}
