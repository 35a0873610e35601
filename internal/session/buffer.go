// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package session

import (
	"unicode/utf8"

	"github.com/holomush/holologin/internal/auth"
)

// InputBuffer is a bounded text field bound to a screen region.
//
// The buffer holds at most maxInputLength-1 characters and is only edited
// while active. Keeping exactly one buffer active is the caller's job; see
// Focus.
type InputBuffer struct {
	content string
	length  int
	limit   int
	active  bool
	region  Rect
}

// NewInputBuffer creates an empty, inactive buffer. Values of maxInputLength
// below 2 select auth.DefaultMaxInputLength.
func NewInputBuffer(region Rect, maxInputLength int) InputBuffer {
	if maxInputLength < 2 {
		maxInputLength = auth.DefaultMaxInputLength
	}
	return InputBuffer{limit: maxInputLength - 1, region: region}
}

// Append adds r to the end of the buffer. It does nothing when the buffer is
// inactive, full, or r is not a valid character.
func (b *InputBuffer) Append(r rune) {
	if !b.active || b.length >= b.limit || !utf8.ValidRune(r) {
		return
	}
	b.content += string(r)
	b.length++
}

// DeleteLast removes the last character. It does nothing when the buffer is
// inactive or empty.
func (b *InputBuffer) DeleteLast() {
	if !b.active || b.length == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.content)
	b.content = b.content[:len(b.content)-size]
	b.length--
}

// SetActive marks the buffer as the edit target.
func (b *InputBuffer) SetActive(active bool) {
	b.active = active
}

// Clear empties the buffer without changing whether it is active.
func (b *InputBuffer) Clear() {
	b.content = ""
	b.length = 0
}

// Content returns the buffered text.
func (b InputBuffer) Content() string { return b.content }

// Len returns the number of characters in the buffer.
func (b InputBuffer) Len() int { return b.length }

// Cap returns the maximum number of characters the buffer accepts.
func (b InputBuffer) Cap() int { return b.limit }

// Empty reports whether the buffer holds no characters.
func (b InputBuffer) Empty() bool { return b.length == 0 }

// Active reports whether the buffer accepts edits.
func (b InputBuffer) Active() bool { return b.active }

// Region returns the screen region the buffer is bound to.
func (b InputBuffer) Region() Rect { return b.region }
