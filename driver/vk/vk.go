// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package vk maps the portable resource description of
// package driver to Vulkan enumerations, flags and
// create-info structures.
//
// Functions in this package are pure. None of them creates
// Vulkan objects or requires a device, so they may be
// called concurrently from any goroutine. Where a mapping
// degrades instead of failing, a warning is written to the
// *slog.Logger given by the caller (nil means silent).
package vk

import (
	"errors"
)

// ErrUnsupportedFormat means that a surface/channel pair
// has no Vulkan equivalent.
var ErrUnsupportedFormat = errors.New("vk: unsupported format")

// ErrUnsupportedSamples means that a sample count is not a
// power of two in the range [1, 64].
var ErrUnsupportedSamples = errors.New("vk: unsupported sample count")

// ErrInvalidLevels means that an image was described with
// fewer than one mip level or more levels than its extent
// allows (multisample images allow only one), or that a
// view selects an invalid range of levels.
var ErrInvalidLevels = errors.New("vk: invalid mip levels")
