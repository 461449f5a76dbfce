// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"fmt"
	"log/slog"

	"github.com/gviegas/vkmap/driver"
	"github.com/vulkan-go/vulkan"
)

// ImageType converts a driver.Kind to a VkImageType.
// Cube kinds map to 2D images; their faces are array
// layers of the Vulkan image.
func ImageType(k driver.Kind) vulkan.ImageType {
	switch k.(type) {
	case driver.D1, driver.D1Array:
		return vulkan.ImageType1d
	case driver.D2, driver.D2Array:
		return vulkan.ImageType2d
	case driver.D3:
		return vulkan.ImageType3d
	case driver.Cube, driver.CubeArray:
		return vulkan.ImageType2d
	}

	// Expected to be unreachable.
	return ^vulkan.ImageType(0)
}

// ImageViewType converts a driver.Kind and an optional
// layer to a VkImageViewType.
// A layer of an array kind yields the view type of a single
// element (e.g., a layer of a driver.CubeArray is viewed as
// a cube). Layer bounds are checked first; the error, if
// any, is a *driver.LayerError, or driver.ErrNoKind if k is
// nil.
func ImageViewType(k driver.Kind, l driver.Layer) (vulkan.ImageViewType, error) {
	if err := driver.CheckLayer(k, l); err != nil {
		return ^vulkan.ImageViewType(0), err
	}
	whole := l == driver.NoLayer
	switch k.(type) {
	case driver.D1:
		return vulkan.ImageViewType1d, nil
	case driver.D1Array:
		if whole {
			return vulkan.ImageViewType1dArray, nil
		}
		return vulkan.ImageViewType1d, nil
	case driver.D2:
		return vulkan.ImageViewType2d, nil
	case driver.D2Array:
		if whole {
			return vulkan.ImageViewType2dArray, nil
		}
		return vulkan.ImageViewType2d, nil
	case driver.D3:
		return vulkan.ImageViewType3d, nil
	case driver.Cube:
		return vulkan.ImageViewTypeCube, nil
	case driver.CubeArray:
		if whole {
			return vulkan.ImageViewTypeCubeArray, nil
		}
		return vulkan.ImageViewTypeCube, nil
	}

	// Expected to be unreachable.
	return ^vulkan.ImageViewType(0), fmt.Errorf("%w: %T", driver.ErrNoKind, k)
}

// ImageAspect returns the VkImageAspectFlags of an image
// with the given surface and channel types.
// Depth surfaces used as targets always get both depth and
// stencil aspects, even if the surface has no stencil bits.
// Otherwise, Float selects depth and Uint selects stencil.
// Any other channel on a depth surface is logged to lg and
// treated as depth.
func ImageAspect(lg *slog.Logger, s driver.SurfaceType, c driver.ChannelType, target bool) vulkan.ImageAspectFlags {
	if !s.IsDepth() {
		return vulkan.ImageAspectFlags(vulkan.ImageAspectColorBit)
	}
	switch {
	case target:
		return vulkan.ImageAspectFlags(vulkan.ImageAspectDepthBit | vulkan.ImageAspectStencilBit)
	case c == driver.Float:
		return vulkan.ImageAspectFlags(vulkan.ImageAspectDepthBit)
	case c == driver.Uint:
		return vulkan.ImageAspectFlags(vulkan.ImageAspectStencilBit)
	}
	logger(lg).Warn("unexpected depth/stencil channel",
		slog.String("surface", s.String()),
		slog.String("channel", c.String()))
	return vulkan.ImageAspectFlags(vulkan.ImageAspectDepthBit)
}

// ChannelSource converts a driver.ChannelSource to a
// VkComponentSwizzle.
func ChannelSource(s driver.ChannelSource) vulkan.ComponentSwizzle {
	switch s {
	case driver.Zero:
		return vulkan.ComponentSwizzleZero
	case driver.One:
		return vulkan.ComponentSwizzleOne
	case driver.X:
		return vulkan.ComponentSwizzleR
	case driver.Y:
		return vulkan.ComponentSwizzleG
	case driver.Z:
		return vulkan.ComponentSwizzleB
	case driver.W:
		return vulkan.ComponentSwizzleA
	}

	// Expected to be unreachable.
	return ^vulkan.ComponentSwizzle(0)
}

// Swizzle converts a driver.Swizzle to a VkComponentMapping.
func Swizzle(s driver.Swizzle) vulkan.ComponentMapping {
	return vulkan.ComponentMapping{
		R: ChannelSource(s[0]),
		G: ChannelSource(s[1]),
		B: ChannelSource(s[2]),
		A: ChannelSource(s[3]),
	}
}

// UsageTiling derives the VkImageUsageFlags and the
// VkImageTiling of an image.
// Bind flags contribute attachment/sampled/storage bits.
// The residency selects the tiling and adds transfer bits
// on top of them.
func UsageTiling(u driver.Usage, b driver.Bind) (vulkan.ImageUsageFlags, vulkan.ImageTiling) {
	var usage vulkan.ImageUsageFlagBits
	if b.Has(driver.BRenderTarget) {
		usage |= vulkan.ImageUsageColorAttachmentBit
	}
	if b.Has(driver.BDepthStencil) {
		usage |= vulkan.ImageUsageDepthStencilAttachmentBit
	}
	if b.Has(driver.BShaderResource) {
		usage |= vulkan.ImageUsageSampledBit
	}
	if b.Has(driver.BUnorderedAccess) {
		usage |= vulkan.ImageUsageStorageBit
	}

	var tiling vulkan.ImageTiling
	switch u.Res {
	case driver.RConst:
		tiling = vulkan.ImageTilingOptimal
	case driver.RGPUOnly:
		// TODO: Transfer bits are not always needed; drop them
		// once staging uploads are tracked per image.
		usage |= vulkan.ImageUsageTransferSrcBit | vulkan.ImageUsageTransferDstBit
		tiling = vulkan.ImageTilingOptimal
	case driver.RDynamic:
		usage |= vulkan.ImageUsageTransferDstBit
		tiling = vulkan.ImageTilingLinear
	case driver.RCPUOnly:
		switch u.Access {
		case driver.MapRead:
			usage |= vulkan.ImageUsageTransferDstBit
		case driver.MapWrite:
			usage |= vulkan.ImageUsageTransferSrcBit
		case driver.MapRW:
			usage |= vulkan.ImageUsageTransferSrcBit | vulkan.ImageUsageTransferDstBit
		}
		tiling = vulkan.ImageTilingLinear
	}
	return vulkan.ImageUsageFlags(usage), tiling
}

// ImageLayout returns the VkImageLayout that images with
// the given bind flags are kept in.
// It is always VK_IMAGE_LAYOUT_GENERAL: descriptor tables
// do not track per-subresource layouts yet.
func ImageLayout(b driver.Bind) vulkan.ImageLayout {
	return vulkan.ImageLayoutGeneral
}

// SampleCount converts a sample count to a
// VkSampleCountFlagBits.
// Both 0 and 1 mean single-sampled.
func SampleCount(n int) (vulkan.SampleCountFlagBits, bool) {
	switch n {
	case 0, 1:
		return vulkan.SampleCount1Bit, true
	case 2:
		return vulkan.SampleCount2Bit, true
	case 4:
		return vulkan.SampleCount4Bit, true
	case 8:
		return vulkan.SampleCount8Bit, true
	case 16:
		return vulkan.SampleCount16Bit, true
	case 32:
		return vulkan.SampleCount32Bit, true
	case 64:
		return vulkan.SampleCount64Bit, true
	}
	return 0, false
}

// samplesOf returns the sample count of k.
func samplesOf(k driver.Kind) int {
	switch k := k.(type) {
	case driver.D2:
		return k.Samples
	case driver.D2Array:
		return k.Samples
	}
	return 1
}

// isCube returns whether k is a cube kind.
func isCube(k driver.Kind) bool {
	switch k.(type) {
	case driver.Cube, driver.CubeArray:
		return true
	}
	return false
}

// ImageInfo fills a VkImageCreateInfo from d.
// Cube kinds get six array layers per cube and the
// cube-compatible flag.
func ImageInfo(d *driver.ImageDesc) (vulkan.ImageCreateInfo, error) {
	if d.Kind == nil {
		return vulkan.ImageCreateInfo{}, driver.ErrNoKind
	}
	if d.Levels < 1 || d.Levels > driver.MaxLevels(d.Kind) {
		return vulkan.ImageCreateInfo{}, fmt.Errorf("%w: %d", ErrInvalidLevels, d.Levels)
	}
	format, ok := Format(d.Format.Surface, d.Format.Channel)
	if !ok {
		return vulkan.ImageCreateInfo{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, d.Format)
	}
	ns := samplesOf(d.Kind)
	samples, ok := SampleCount(ns)
	if !ok {
		return vulkan.ImageCreateInfo{}, fmt.Errorf("%w: %d", ErrUnsupportedSamples, ns)
	}
	if ns > 1 && d.Levels > 1 {
		return vulkan.ImageCreateInfo{}, fmt.Errorf("%w: multisample image with %d levels", ErrInvalidLevels, d.Levels)
	}

	var flags vulkan.ImageCreateFlags
	layers := d.Kind.Layers()
	if isCube(d.Kind) {
		flags |= vulkan.ImageCreateFlags(vulkan.ImageCreateCubeCompatibleBit)
		layers *= 6
	}
	size := d.Kind.Extent()
	usage, tiling := UsageTiling(d.Usage, d.Bind)

	return vulkan.ImageCreateInfo{
		SType:     vulkan.StructureTypeImageCreateInfo,
		Flags:     flags,
		ImageType: ImageType(d.Kind),
		Format:    format,
		Extent: vulkan.Extent3D{
			Width:  uint32(size.Width),
			Height: uint32(size.Height),
			Depth:  uint32(size.Depth),
		},
		MipLevels:     uint32(d.Levels),
		ArrayLayers:   uint32(layers),
		Samples:       samples,
		Tiling:        tiling,
		Usage:         usage,
		SharingMode:   vulkan.SharingModeExclusive,
		InitialLayout: vulkan.ImageLayoutUndefined,
	}, nil
}

// ViewInfo fills a VkImageViewCreateInfo for a view of img,
// which must have been created from d.
// The view format combines the surface of d with the
// channel of v. Errors from ImageViewType are returned
// unchanged.
func ViewInfo(lg *slog.Logger, img vulkan.Image, d *driver.ImageDesc, v *driver.ViewDesc) (vulkan.ImageViewCreateInfo, error) {
	viewType, err := ImageViewType(d.Kind, v.Layer)
	if err != nil {
		return vulkan.ImageViewCreateInfo{}, err
	}
	format, ok := Format(d.Format.Surface, v.Channel)
	if !ok {
		f := driver.Format{Surface: d.Format.Surface, Channel: v.Channel}
		return vulkan.ImageViewCreateInfo{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if v.MinLevel < 0 || v.MaxLevel < v.MinLevel || v.MaxLevel >= d.Levels {
		return vulkan.ImageViewCreateInfo{}, fmt.Errorf("%w: [%d, %d] of %d", ErrInvalidLevels, v.MinLevel, v.MaxLevel, d.Levels)
	}

	target := d.Bind&(driver.BRenderTarget|driver.BDepthStencil) != 0
	aspect := ImageAspect(lg, d.Format.Surface, v.Channel, target)

	base, count := 0, d.Kind.Layers()
	if v.Layer != driver.NoLayer {
		base, count = int(v.Layer), 1
	}
	if isCube(d.Kind) {
		base *= 6
		count *= 6
	}

	return vulkan.ImageViewCreateInfo{
		SType:      vulkan.StructureTypeImageViewCreateInfo,
		Image:      img,
		ViewType:   viewType,
		Format:     format,
		Components: Swizzle(v.Swizzle),
		SubresourceRange: vulkan.ImageSubresourceRange{
			AspectMask:     aspect,
			BaseMipLevel:   uint32(v.MinLevel),
			LevelCount:     uint32(v.MaxLevel - v.MinLevel + 1),
			BaseArrayLayer: uint32(base),
			LayerCount:     uint32(count),
		},
	}, nil
}
