// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"fmt"
	"log/slog"

	"github.com/gviegas/vkmap/driver"
	"github.com/vulkan-go/vulkan"
)

// Filter converts a driver.FilterMethod to VkFilter values
// for minification and magnification, a VkSamplerMipmapMode
// and a maximum anisotropy.
// The anisotropy is zero unless m is anisotropic.
func Filter(m driver.FilterMethod) (min, mag vulkan.Filter, mip vulkan.SamplerMipmapMode, aniso float32) {
	switch m.Filter {
	case driver.FScale:
		return vulkan.FilterNearest, vulkan.FilterNearest, vulkan.SamplerMipmapModeNearest, 0
	case driver.FMipmap:
		return vulkan.FilterNearest, vulkan.FilterNearest, vulkan.SamplerMipmapModeLinear, 0
	case driver.FBilinear:
		return vulkan.FilterLinear, vulkan.FilterLinear, vulkan.SamplerMipmapModeNearest, 0
	case driver.FTrilinear:
		return vulkan.FilterLinear, vulkan.FilterLinear, vulkan.SamplerMipmapModeLinear, 0
	case driver.FAnisotropic:
		return vulkan.FilterLinear, vulkan.FilterLinear, vulkan.SamplerMipmapModeLinear, float32(m.Aniso)
	}

	// Expected to be unreachable.
	return ^vulkan.Filter(0), ^vulkan.Filter(0), ^vulkan.SamplerMipmapMode(0), 0
}

// AddrMode converts a driver.WrapMode to a
// VkSamplerAddressMode.
func AddrMode(w driver.WrapMode) vulkan.SamplerAddressMode {
	switch w {
	case driver.WTile:
		return vulkan.SamplerAddressModeRepeat
	case driver.WMirror:
		return vulkan.SamplerAddressModeMirroredRepeat
	case driver.WClamp:
		return vulkan.SamplerAddressModeClampToEdge
	case driver.WBorder:
		return vulkan.SamplerAddressModeClampToBorder
	}

	// Expected to be unreachable.
	return ^vulkan.SamplerAddressMode(0)
}

// BorderColor converts a driver.PackedColor to a
// VkBorderColor.
// Only transparent black, opaque black and opaque white
// have an equivalent; it returns false for other colors.
func BorderColor(c driver.PackedColor) (vulkan.BorderColor, bool) {
	switch c {
	case 0x00000000:
		return vulkan.BorderColorFloatTransparentBlack, true
	case 0xFF000000:
		return vulkan.BorderColorFloatOpaqueBlack, true
	case 0xFFFFFFFF:
		return vulkan.BorderColorFloatOpaqueWhite, true
	}
	return vulkan.BorderColorFloatTransparentBlack, false
}

// CompareOp converts a driver.CmpFunc to a VkCompareOp.
func CompareOp(f driver.CmpFunc) vulkan.CompareOp {
	switch f {
	case driver.CNever:
		return vulkan.CompareOpNever
	case driver.CLess:
		return vulkan.CompareOpLess
	case driver.CEqual:
		return vulkan.CompareOpEqual
	case driver.CLessEqual:
		return vulkan.CompareOpLessOrEqual
	case driver.CGreater:
		return vulkan.CompareOpGreater
	case driver.CNotEqual:
		return vulkan.CompareOpNotEqual
	case driver.CGreaterEqual:
		return vulkan.CompareOpGreaterOrEqual
	case driver.CAlways:
		return vulkan.CompareOpAlways
	}

	// Expected to be unreachable.
	return ^vulkan.CompareOp(0)
}

// SamplerInfo fills a VkSamplerCreateInfo from s.
// A border color that BorderColor does not recognize is
// logged to lg and replaced by transparent black.
func SamplerInfo(lg *slog.Logger, s *driver.Sampling) vulkan.SamplerCreateInfo {
	min, mag, mip, aniso := Filter(s.Filter)
	border, ok := BorderColor(s.Border)
	if !ok {
		logger(lg).Warn("custom border color not supported",
			slog.String("color", fmt.Sprintf("%#08x", uint32(s.Border))))
	}
	info := vulkan.SamplerCreateInfo{
		SType:        vulkan.StructureTypeSamplerCreateInfo,
		MagFilter:    mag,
		MinFilter:    min,
		MipmapMode:   mip,
		AddressModeU: AddrMode(s.Wrap[0]),
		AddressModeV: AddrMode(s.Wrap[1]),
		AddressModeW: AddrMode(s.Wrap[2]),
		MipLodBias:   s.LODBias,
		MinLod:       s.MinLOD,
		MaxLod:       s.MaxLOD,
		BorderColor:  border,
	}
	if aniso > 0 {
		info.AnisotropyEnable = vulkan.True
		info.MaxAnisotropy = aniso
	}
	if s.Compare {
		info.CompareEnable = vulkan.True
		info.CompareOp = CompareOp(s.Cmp)
	}
	return info
}
