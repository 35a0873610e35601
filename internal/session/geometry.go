// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package session

// Point is a pointer position in surface units.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned region. X and Y are inclusive, X+W and Y+H are not.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Layout places the two fields and the action control.
type Layout struct {
	Username Rect
	Password Rect
	Action   Rect
}

// DefaultLayout is the reference geometry of the form: an 800x450 window
// measured in pixels. Surfaces with other units, such as the terminal's
// character cells, supply their own Layout to NewController.
func DefaultLayout() Layout {
	return Layout{
		Username: Rect{X: 250, Y: 140, W: 300, H: 40},
		Password: Rect{X: 250, Y: 200, W: 300, H: 40},
		Action:   Rect{X: 300, Y: 280, W: 200, H: 40},
	}
}
