// SPDX-License-Identifier: MIT

// Package raster: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with fmt.Errorf and
// %w) and tests match them with errors.Is. Public accessors never panic on
// user input.
package raster

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("raster: invalid shape")

	// ErrChannelCount indicates a channel count outside {1,3}, or an image whose
	// channel count differs from what an operation requires.
	ErrChannelCount = errors.New("raster: unsupported channel count")

	// ErrOutOfRange indicates that a row, column or channel index is outside bounds.
	ErrOutOfRange = errors.New("raster: index out of range")

	// ErrDimensionMismatch indicates operands whose shapes are incompatible,
	// e.g. Merge of planes with different sizes or a sample slice of wrong length.
	ErrDimensionMismatch = errors.New("raster: dimension mismatch")

	// ErrNilImage indicates that a nil *Image was passed in.
	ErrNilImage = errors.New("raster: nil image")
)
