// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package tui

import (
	"github.com/holomush/holologin/internal/auth"
	"github.com/holomush/holologin/internal/session"
)

// Screen rows, counted from the top of the alt screen.
const (
	rowTitle         = 0
	rowTabs          = 2
	rowUsernameLabel = 4
	rowUsernameBox   = 5
	rowPasswordLabel = 8
	rowPasswordBox   = 9
	rowAction        = 13
	rowMessage       = 17
	rowHelp          = 19
)

const (
	originX     = 2
	boxHeight   = 3
	actionWidth = 20
	tabWidth    = 15
)

// fieldWidth is the outer width of a text box holding maxInputLength-1
// characters plus the cursor.
func fieldWidth(maxInputLength int) int {
	if maxInputLength < 2 {
		maxInputLength = auth.DefaultMaxInputLength
	}
	// border + padding on both sides, plus one cell for the cursor
	return maxInputLength + 4
}

// Layout returns the cell geometry of the form for the given input length.
func Layout(maxInputLength int) session.Layout {
	w := fieldWidth(maxInputLength)
	return session.Layout{
		Username: session.Rect{X: originX, Y: rowUsernameBox, W: w, H: boxHeight},
		Password: session.Rect{X: originX, Y: rowPasswordBox, W: w, H: boxHeight},
		Action:   session.Rect{X: originX, Y: rowAction, W: actionWidth, H: boxHeight},
	}
}
