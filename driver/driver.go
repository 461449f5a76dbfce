// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package driver defines a portable description of GPU
// resources (image shapes, pixel formats, sampler state and
// usage intent).
// It is designed to allow platform-specific APIs to map the
// description into their own enumerations in a mostly
// straightforward manner. See package driver/vk.
package driver

import (
	"errors"
	"fmt"
)

// ErrNoKind means that a nil Kind was given where an image
// shape is required.
var ErrNoKind = errors.New("driver: no image kind")

// ErrLayerNotExpected means that a layer index was given
// for a Kind that has no array layers.
var ErrLayerNotExpected = errors.New("driver: layer not expected")

// ErrLayerOutOfBounds means that a layer index was not
// less than the layer count of an array Kind.
var ErrLayerOutOfBounds = errors.New("driver: layer out of bounds")

// LayerError describes an invalid layer request.
// Err is either ErrLayerNotExpected or ErrLayerOutOfBounds.
type LayerError struct {
	Kind  Kind
	Layer Layer
	// Layer count of Kind. Only meaningful when Err is
	// ErrLayerOutOfBounds.
	Count int
	Err   error
}

func (e *LayerError) Error() string {
	if e.Err == ErrLayerOutOfBounds {
		return fmt.Sprintf("%v: %d >= %d", e.Err, e.Layer, e.Count)
	}
	return fmt.Sprintf("%v: %v", e.Err, e.Kind)
}

// Unwrap returns e.Err.
func (e *LayerError) Unwrap() error { return e.Err }

// CheckLayer checks that l is a valid layer request for k.
// NoLayer is always valid. Any other value is valid only if
// k is an array Kind and l is less than its layer count.
// A nil k is never valid and yields ErrNoKind. Any other
// error is a *LayerError.
func CheckLayer(k Kind, l Layer) error {
	if k == nil {
		return ErrNoKind
	}
	if l == NoLayer {
		return nil
	}
	if !k.IsArray() {
		return &LayerError{Kind: k, Layer: l, Err: ErrLayerNotExpected}
	}
	if n := k.Layers(); l < 0 || int(l) >= n {
		return &LayerError{Kind: k, Layer: l, Count: n, Err: ErrLayerOutOfBounds}
	}
	return nil
}
