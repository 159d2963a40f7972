// SPDX-License-Identifier: MIT

package scheme

import "errors"

var (
	// ErrMissingWordSetProvider indicates Build was called without a word-set provider.
	ErrMissingWordSetProvider = errors.New("scheme: missing word-set provider")

	// ErrMissingPhraseBuilder indicates Build was called without a phrase builder.
	ErrMissingPhraseBuilder = errors.New("scheme: missing phrase builder")

	// ErrNilStage indicates a nil word or phrase styler.
	ErrNilStage = errors.New("scheme: nil stage")
)
