// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"github.com/gviegas/vkmap/driver"
)

// noMipLOD is the maximum LOD of samplers whose minification
// filter disables mipmapping.
// It keeps sampling in the base level without disabling
// magnification.
const noMipLOD = 0.25

// allMipLOD is the maximum LOD of samplers that may use the
// whole mip chain.
const allMipLOD = 1000

// Sampling converts s to a driver.Sampling.
// The filter is linear if either MinFilter or MagFilter is
// linear, and mipmaps are interpolated if MinFilter is one
// of the *_MIPMAP_LINEAR values.
// glTF has no third texture coordinate, so the W wrap
// mode repeats WrapT. Undefined filters are treated as
// NEAREST and undefined wrap modes as REPEAT.
func (s *Sampler) Sampling() driver.Sampling {
	linear := s.MagFilter == FLINEAR
	var mipLinear bool
	switch s.MinFilter {
	case FLINEAR, LINEAR_MIPMAP_NEAREST:
		linear = true
	case LINEAR_MIPMAP_LINEAR:
		linear, mipLinear = true, true
	case NEAREST_MIPMAP_LINEAR:
		mipLinear = true
	}
	var filt driver.FilterMethod
	switch {
	case linear && mipLinear:
		filt = driver.Trilinear
	case linear:
		filt = driver.Bilinear
	case mipLinear:
		filt = driver.Mipmap
	default:
		filt = driver.Scale
	}
	maxLOD := float32(allMipLOD)
	switch s.MinFilter {
	case NEAREST, FLINEAR:
		maxLOD = noMipLOD
	}
	t := wrap(s.WrapT)
	return driver.Sampling{
		Filter: filt,
		Wrap:   [3]driver.WrapMode{wrap(s.WrapS), t, t},
		MaxLOD: maxLOD,
	}
}

func wrap(mode int64) driver.WrapMode {
	switch mode {
	case MIRRORED_REPEAT:
		return driver.WMirror
	case CLAMP_TO_EDGE:
		return driver.WClamp
	}
	return driver.WTile
}

// TextureSampling returns the driver.Sampling of the
// sampler that gltf.Textures[i] references.
// Textures without a sampler use a default one that
// repeats in every direction.
func (gltf *GLTF) TextureSampling(i int) (driver.Sampling, error) {
	if i < 0 || i >= len(gltf.Textures) {
		return driver.Sampling{}, newErr("invalid texture index")
	}
	t := &gltf.Textures[i]
	if t.Sampler == nil {
		var s Sampler
		return s.Sampling(), nil
	}
	if n := *t.Sampler; n < 0 || n >= int64(len(gltf.Samplers)) {
		return driver.Sampling{}, newErr("invalid Texture.Sampler index")
	}
	return gltf.Samplers[*t.Sampler].Sampling(), nil
}
