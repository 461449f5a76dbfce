// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"github.com/gviegas/vkmap/driver"
	"github.com/vulkan-go/vulkan"
)

// formatTab maps surface/channel pairs to VkFormat values.
// Unsupported pairs are left as VK_FORMAT_UNDEFINED.
var formatTab = [driver.NSurface][driver.NChannel]vulkan.Format{
	driver.R4G4: {
		driver.Unorm: vulkan.FormatR4g4UnormPack8,
	},
	driver.R4G4B4A4: {
		driver.Unorm: vulkan.FormatR4g4b4a4UnormPack16,
	},
	driver.R5G5B5A1: {
		driver.Unorm: vulkan.FormatR5g5b5a1UnormPack16,
	},
	driver.R5G6B5: {
		driver.Unorm: vulkan.FormatR5g6b5UnormPack16,
	},

	driver.R8: {
		driver.Int:   vulkan.FormatR8Sint,
		driver.Uint:  vulkan.FormatR8Uint,
		driver.Inorm: vulkan.FormatR8Snorm,
		driver.Unorm: vulkan.FormatR8Unorm,
		driver.Srgb:  vulkan.FormatR8Srgb,
	},
	driver.R8G8: {
		driver.Int:   vulkan.FormatR8g8Sint,
		driver.Uint:  vulkan.FormatR8g8Uint,
		driver.Inorm: vulkan.FormatR8g8Snorm,
		driver.Unorm: vulkan.FormatR8g8Unorm,
		driver.Srgb:  vulkan.FormatR8g8Srgb,
	},
	driver.R8G8B8A8: {
		driver.Int:   vulkan.FormatR8g8b8a8Sint,
		driver.Uint:  vulkan.FormatR8g8b8a8Uint,
		driver.Inorm: vulkan.FormatR8g8b8a8Snorm,
		driver.Unorm: vulkan.FormatR8g8b8a8Unorm,
		driver.Srgb:  vulkan.FormatR8g8b8a8Srgb,
	},

	// Vulkan names packed formats from the most significant
	// bits, so these are reversed.
	driver.R10G10B10A2: {
		driver.Int:   vulkan.FormatA2r10g10b10SintPack32,
		driver.Uint:  vulkan.FormatA2r10g10b10UintPack32,
		driver.Inorm: vulkan.FormatA2r10g10b10SnormPack32,
		driver.Unorm: vulkan.FormatA2r10g10b10UnormPack32,
	},
	driver.R11G11B10: {
		driver.Float: vulkan.FormatB10g11r11UfloatPack32,
	},

	driver.R16: {
		driver.Int:   vulkan.FormatR16Sint,
		driver.Uint:  vulkan.FormatR16Uint,
		driver.Inorm: vulkan.FormatR16Snorm,
		driver.Unorm: vulkan.FormatR16Unorm,
		driver.Float: vulkan.FormatR16Sfloat,
	},
	driver.R16G16: {
		driver.Int:   vulkan.FormatR16g16Sint,
		driver.Uint:  vulkan.FormatR16g16Uint,
		driver.Inorm: vulkan.FormatR16g16Snorm,
		driver.Unorm: vulkan.FormatR16g16Unorm,
		driver.Float: vulkan.FormatR16g16Sfloat,
	},
	driver.R16G16B16: {
		driver.Int:   vulkan.FormatR16g16b16Sint,
		driver.Uint:  vulkan.FormatR16g16b16Uint,
		driver.Inorm: vulkan.FormatR16g16b16Snorm,
		driver.Unorm: vulkan.FormatR16g16b16Unorm,
		driver.Float: vulkan.FormatR16g16b16Sfloat,
	},
	driver.R16G16B16A16: {
		driver.Int:   vulkan.FormatR16g16b16a16Sint,
		driver.Uint:  vulkan.FormatR16g16b16a16Uint,
		driver.Inorm: vulkan.FormatR16g16b16a16Snorm,
		driver.Unorm: vulkan.FormatR16g16b16a16Unorm,
		driver.Float: vulkan.FormatR16g16b16a16Sfloat,
	},

	driver.R32: {
		driver.Int:   vulkan.FormatR32Sint,
		driver.Uint:  vulkan.FormatR32Uint,
		driver.Float: vulkan.FormatR32Sfloat,
	},
	driver.R32G32: {
		driver.Int:   vulkan.FormatR32g32Sint,
		driver.Uint:  vulkan.FormatR32g32Uint,
		driver.Float: vulkan.FormatR32g32Sfloat,
	},
	driver.R32G32B32: {
		driver.Int:   vulkan.FormatR32g32b32Sint,
		driver.Uint:  vulkan.FormatR32g32b32Uint,
		driver.Float: vulkan.FormatR32g32b32Sfloat,
	},
	driver.R32G32B32A32: {
		driver.Int:   vulkan.FormatR32g32b32a32Sint,
		driver.Uint:  vulkan.FormatR32g32b32a32Uint,
		driver.Float: vulkan.FormatR32g32b32a32Sfloat,
	},

	driver.D16: {
		driver.Unorm: vulkan.FormatD16Unorm,
	},
	driver.D24: {
		driver.Unorm: vulkan.FormatX8D24UnormPack32,
	},
	driver.D24S8: {
		driver.Unorm: vulkan.FormatD24UnormS8Uint,
	},
	driver.D32: {
		driver.Float: vulkan.FormatD32Sfloat,
	},
}

// Format converts a surface/channel pair to a VkFormat.
// It returns false if the pair has no Vulkan equivalent,
// in which case callers are expected to pick a fallback.
func Format(s driver.SurfaceType, c driver.ChannelType) (vulkan.Format, bool) {
	if s < 0 || int(s) >= driver.NSurface || c < 0 || int(c) >= driver.NChannel {
		return vulkan.FormatUndefined, false
	}
	f := formatTab[s][c]
	return f, f != vulkan.FormatUndefined
}

// Formats returns every surface/channel pair that Format
// accepts, ordered by surface and then by channel.
func Formats() []driver.Format {
	var fs []driver.Format
	for s := range formatTab {
		for c, f := range formatTab[s] {
			if f != vulkan.FormatUndefined {
				fs = append(fs, driver.Format{Surface: driver.SurfaceType(s), Channel: driver.ChannelType(c)})
			}
		}
	}
	return fs
}
