// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package webgpu converts WebGPU texture and sampler
// descriptions into the portable types of package driver.
// The results can be handed to package driver/vk.
package webgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gviegas/vkmap/driver"
)

// ErrUnsupportedDimension means that a view dimension has
// no driver.Kind equivalent.
var ErrUnsupportedDimension = errors.New("webgpu: unsupported dimension")

// ErrUnsupportedFormat means that a texture format has no
// driver.Format equivalent.
var ErrUnsupportedFormat = errors.New("webgpu: unsupported format")

// ErrInvalidExtent means that a size does not describe a
// valid image of the requested dimension.
var ErrInvalidExtent = errors.New("webgpu: invalid extent")

var formatMap = map[gputypes.TextureFormat]driver.Format{
	gputypes.TextureFormatR8Unorm: {Surface: driver.R8, Channel: driver.Unorm},
	gputypes.TextureFormatR8Snorm: {Surface: driver.R8, Channel: driver.Inorm},
	gputypes.TextureFormatR8Uint:  {Surface: driver.R8, Channel: driver.Uint},
	gputypes.TextureFormatR8Sint:  {Surface: driver.R8, Channel: driver.Int},

	gputypes.TextureFormatR16Unorm: {Surface: driver.R16, Channel: driver.Unorm},
	gputypes.TextureFormatR16Snorm: {Surface: driver.R16, Channel: driver.Inorm},
	gputypes.TextureFormatR16Uint:  {Surface: driver.R16, Channel: driver.Uint},
	gputypes.TextureFormatR16Sint:  {Surface: driver.R16, Channel: driver.Int},
	gputypes.TextureFormatR16Float: {Surface: driver.R16, Channel: driver.Float},

	gputypes.TextureFormatRG8Unorm: {Surface: driver.R8G8, Channel: driver.Unorm},
	gputypes.TextureFormatRG8Snorm: {Surface: driver.R8G8, Channel: driver.Inorm},
	gputypes.TextureFormatRG8Uint:  {Surface: driver.R8G8, Channel: driver.Uint},
	gputypes.TextureFormatRG8Sint:  {Surface: driver.R8G8, Channel: driver.Int},

	gputypes.TextureFormatR32Float: {Surface: driver.R32, Channel: driver.Float},
	gputypes.TextureFormatR32Uint:  {Surface: driver.R32, Channel: driver.Uint},
	gputypes.TextureFormatR32Sint:  {Surface: driver.R32, Channel: driver.Int},

	gputypes.TextureFormatRG16Unorm: {Surface: driver.R16G16, Channel: driver.Unorm},
	gputypes.TextureFormatRG16Snorm: {Surface: driver.R16G16, Channel: driver.Inorm},
	gputypes.TextureFormatRG16Uint:  {Surface: driver.R16G16, Channel: driver.Uint},
	gputypes.TextureFormatRG16Sint:  {Surface: driver.R16G16, Channel: driver.Int},
	gputypes.TextureFormatRG16Float: {Surface: driver.R16G16, Channel: driver.Float},

	gputypes.TextureFormatRGBA8Unorm:     {Surface: driver.R8G8B8A8, Channel: driver.Unorm},
	gputypes.TextureFormatRGBA8UnormSrgb: {Surface: driver.R8G8B8A8, Channel: driver.Srgb},
	gputypes.TextureFormatRGBA8Snorm:     {Surface: driver.R8G8B8A8, Channel: driver.Inorm},
	gputypes.TextureFormatRGBA8Uint:      {Surface: driver.R8G8B8A8, Channel: driver.Uint},
	gputypes.TextureFormatRGBA8Sint:      {Surface: driver.R8G8B8A8, Channel: driver.Int},

	gputypes.TextureFormatRGB10A2Uint:   {Surface: driver.R10G10B10A2, Channel: driver.Uint},
	gputypes.TextureFormatRGB10A2Unorm:  {Surface: driver.R10G10B10A2, Channel: driver.Unorm},
	gputypes.TextureFormatRG11B10Ufloat: {Surface: driver.R11G11B10, Channel: driver.Float},

	gputypes.TextureFormatRG32Float: {Surface: driver.R32G32, Channel: driver.Float},
	gputypes.TextureFormatRG32Uint:  {Surface: driver.R32G32, Channel: driver.Uint},
	gputypes.TextureFormatRG32Sint:  {Surface: driver.R32G32, Channel: driver.Int},

	gputypes.TextureFormatRGBA16Unorm: {Surface: driver.R16G16B16A16, Channel: driver.Unorm},
	gputypes.TextureFormatRGBA16Snorm: {Surface: driver.R16G16B16A16, Channel: driver.Inorm},
	gputypes.TextureFormatRGBA16Uint:  {Surface: driver.R16G16B16A16, Channel: driver.Uint},
	gputypes.TextureFormatRGBA16Sint:  {Surface: driver.R16G16B16A16, Channel: driver.Int},
	gputypes.TextureFormatRGBA16Float: {Surface: driver.R16G16B16A16, Channel: driver.Float},

	gputypes.TextureFormatRGBA32Float: {Surface: driver.R32G32B32A32, Channel: driver.Float},
	gputypes.TextureFormatRGBA32Uint:  {Surface: driver.R32G32B32A32, Channel: driver.Uint},
	gputypes.TextureFormatRGBA32Sint:  {Surface: driver.R32G32B32A32, Channel: driver.Int},

	gputypes.TextureFormatDepth16Unorm:        {Surface: driver.D16, Channel: driver.Unorm},
	gputypes.TextureFormatDepth24Plus:         {Surface: driver.D24, Channel: driver.Unorm},
	gputypes.TextureFormatDepth24PlusStencil8: {Surface: driver.D24S8, Channel: driver.Unorm},
	gputypes.TextureFormatDepth32Float:        {Surface: driver.D32, Channel: driver.Float},
}

// Format converts a gputypes.TextureFormat to a
// driver.Format.
// BGRA, RGB9E5, stencil-only and compressed formats have no
// equivalent; it returns false for these.
func Format(f gputypes.TextureFormat) (driver.Format, bool) {
	x, ok := formatMap[f]
	return x, ok
}

// Kind creates a driver.Kind from a view dimension, a
// texture size and a sample count.
// For array and cube dimensions, size.DepthOrArrayLayers is
// the total number of layers, so cube dimensions require a
// multiple of 6 and a square extent. A size that does not
// fit in dim (e.g., layers for a 2D dimension) is an
// ErrInvalidExtent. Only 2D dimensions keep samples.
func Kind(dim gputypes.TextureViewDimension, size gputypes.Extent3D, samples uint32) (driver.Kind, error) {
	w, h, n := int(size.Width), int(size.Height), int(size.DepthOrArrayLayers)
	if w <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtent, size)
	}
	switch dim {
	case gputypes.TextureViewDimension1D:
		if h > 1 || n > 1 {
			return nil, fmt.Errorf("%w: %v for %v", ErrInvalidExtent, size, dim)
		}
		return driver.D1{Width: w}, nil
	case gputypes.TextureViewDimension2D:
		if n > 1 {
			return nil, fmt.Errorf("%w: %v for %v", ErrInvalidExtent, size, dim)
		}
		return driver.D2{Width: w, Height: max(h, 1), Samples: int(samples)}, nil
	case gputypes.TextureViewDimension2DArray:
		return driver.D2Array{Width: w, Height: max(h, 1), Count: max(n, 1), Samples: int(samples)}, nil
	case gputypes.TextureViewDimension3D:
		return driver.D3{Width: w, Height: max(h, 1), Depth: max(n, 1)}, nil
	case gputypes.TextureViewDimensionCube, gputypes.TextureViewDimensionCubeArray:
		if w != h || n < 6 || n%6 != 0 {
			return nil, fmt.Errorf("%w: %v for %v", ErrInvalidExtent, size, dim)
		}
		if dim == gputypes.TextureViewDimensionCube {
			if n != 6 {
				return nil, fmt.Errorf("%w: %v for %v", ErrInvalidExtent, size, dim)
			}
			return driver.Cube{Size: w}, nil
		}
		return driver.CubeArray{Size: w, Count: n / 6}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedDimension, dim)
}

// Bind converts a gputypes.TextureUsage to driver.Bind
// flags, treating render attachments as color targets.
// Copy bits have no Bind equivalent.
func Bind(u gputypes.TextureUsage) driver.Bind {
	return bind(u, driver.BRenderTarget)
}

// BindFor is like Bind, but render attachments of depth
// formats become depth/stencil targets.
func BindFor(u gputypes.TextureUsage, f gputypes.TextureFormat) driver.Bind {
	if f.HasDepth() || f.HasStencil() {
		return bind(u, driver.BDepthStencil)
	}
	return bind(u, driver.BRenderTarget)
}

func bind(u gputypes.TextureUsage, target driver.Bind) (b driver.Bind) {
	if u.Contains(gputypes.TextureUsageRenderAttachment) {
		b |= target
	}
	if u.Contains(gputypes.TextureUsageTextureBinding) {
		b |= driver.BShaderResource
	}
	if u.Contains(gputypes.TextureUsageStorageBinding) {
		b |= driver.BUnorderedAccess
	}
	return
}

// Usage derives a driver.Usage from u.
// Textures that can be copied to or from are GPUOnly;
// anything else is Const.
func Usage(u gputypes.TextureUsage) driver.Usage {
	if u&(gputypes.TextureUsageCopySrc|gputypes.TextureUsageCopyDst) != 0 {
		return driver.GPUOnly
	}
	return driver.Const
}

// CmpFunc converts a gputypes.CompareFunction to a
// driver.CmpFunc.
// It returns false for CompareFunctionUndefined, which
// means that comparison is disabled.
func CmpFunc(f gputypes.CompareFunction) (driver.CmpFunc, bool) {
	switch f {
	case gputypes.CompareFunctionNever:
		return driver.CNever, true
	case gputypes.CompareFunctionLess:
		return driver.CLess, true
	case gputypes.CompareFunctionEqual:
		return driver.CEqual, true
	case gputypes.CompareFunctionLessEqual:
		return driver.CLessEqual, true
	case gputypes.CompareFunctionGreater:
		return driver.CGreater, true
	case gputypes.CompareFunctionNotEqual:
		return driver.CNotEqual, true
	case gputypes.CompareFunctionGreaterEqual:
		return driver.CGreaterEqual, true
	case gputypes.CompareFunctionAlways:
		return driver.CAlways, true
	}
	return driver.CNever, false
}

// WrapMode converts a gputypes.AddressMode to a
// driver.WrapMode.
// AddressModeUndefined is treated as clamp to edge, which
// is the WebGPU default.
func WrapMode(m gputypes.AddressMode) driver.WrapMode {
	switch m {
	case gputypes.AddressModeRepeat:
		return driver.WTile
	case gputypes.AddressModeMirrorRepeat:
		return driver.WMirror
	}
	return driver.WClamp
}

// FilterMethod converts WebGPU filter modes and a maximum
// anisotropy to a driver.FilterMethod.
// A maxAniso greater than 1 selects anisotropic filtering
// (clamped to 16). Otherwise, the filter is linear if
// either minf or magf is linear.
func FilterMethod(minf, magf gputypes.FilterMode, mip gputypes.MipmapFilterMode, maxAniso uint16) driver.FilterMethod {
	if maxAniso > 1 {
		return driver.Anisotropic(uint8(min(maxAniso, 16)))
	}
	linear := minf == gputypes.FilterModeLinear || magf == gputypes.FilterModeLinear
	mipLinear := mip == gputypes.MipmapFilterModeLinear
	switch {
	case linear && mipLinear:
		return driver.Trilinear
	case linear:
		return driver.Bilinear
	case mipLinear:
		return driver.Mipmap
	}
	return driver.Scale
}

// Sampling converts a gputypes.SamplerDescriptor to a
// driver.Sampling.
// WebGPU has no border colors, so Border is always
// transparent black.
func Sampling(d *gputypes.SamplerDescriptor) driver.Sampling {
	s := driver.Sampling{
		Filter: FilterMethod(d.MinFilter, d.MagFilter, d.MipmapFilter, d.MaxAnisotropy),
		Wrap: [3]driver.WrapMode{
			WrapMode(d.AddressModeU),
			WrapMode(d.AddressModeV),
			WrapMode(d.AddressModeW),
		},
		MinLOD: d.LodMinClamp,
		MaxLOD: d.LodMaxClamp,
	}
	s.Cmp, s.Compare = CmpFunc(d.Compare)
	return s
}

// ViewDimension returns the view dimension that WebGPU
// uses by default for a texture described by d.
func ViewDimension(d *gputypes.TextureDescriptor) gputypes.TextureViewDimension {
	switch d.Dimension {
	case gputypes.TextureDimension1D:
		return gputypes.TextureViewDimension1D
	case gputypes.TextureDimension2D:
		if d.Size.DepthOrArrayLayers > 1 {
			return gputypes.TextureViewDimension2DArray
		}
		return gputypes.TextureViewDimension2D
	case gputypes.TextureDimension3D:
		return gputypes.TextureViewDimension3D
	}
	return gputypes.TextureViewDimensionUndefined
}

// ImageDesc converts a gputypes.TextureDescriptor to a
// driver.ImageDesc.
// dim selects the Kind (e.g., TextureViewDimensionCube for
// a 2D texture with 6 layers); TextureViewDimensionUndefined
// means ViewDimension(d). A MipLevelCount of 0 is taken
// as 1.
func ImageDesc(d *gputypes.TextureDescriptor, dim gputypes.TextureViewDimension) (driver.ImageDesc, error) {
	f, ok := Format(d.Format)
	if !ok {
		return driver.ImageDesc{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, d.Format)
	}
	if dim == gputypes.TextureViewDimensionUndefined {
		dim = ViewDimension(d)
	}
	k, err := Kind(dim, d.Size, d.SampleCount)
	if err != nil {
		return driver.ImageDesc{}, err
	}
	return driver.ImageDesc{
		Kind:   k,
		Levels: max(int(d.MipLevelCount), 1),
		Format: f,
		Bind:   BindFor(d.Usage, d.Format),
		Usage:  Usage(d.Usage),
	}, nil
}
