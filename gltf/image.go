// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/gviegas/vkmap/driver"
)

// ImageData returns the encoded contents of
// gltf.Images[i].
// Images stored in a buffer view must refer to the GLB
// buffer, whose payload is bin. Images with a URI must use
// a base64 data URI.
func (gltf *GLTF) ImageData(i int, bin []byte) ([]byte, error) {
	if i < 0 || i >= len(gltf.Images) {
		return nil, newErr("invalid image index")
	}
	img := &gltf.Images[i]
	if img.BufferView == nil {
		return dataURI(img.URI)
	}
	idx := *img.BufferView
	if idx < 0 || idx >= int64(len(gltf.BufferViews)) {
		return nil, newErr("invalid Image.BufferView index")
	}
	view := &gltf.BufferViews[idx]
	if view.Buffer < 0 || view.Buffer >= int64(len(gltf.Buffers)) {
		return nil, newErr("invalid BufferView.Buffer index")
	}
	if gltf.Buffers[view.Buffer].URI != "" {
		return nil, newErr("external buffer not supported")
	}
	start, end := view.ByteOffset, view.ByteOffset+view.ByteLength
	if start < 0 || end < start || end > int64(len(bin)) {
		return nil, newErr("BufferView out of GLB bounds")
	}
	return bin[start:end], nil
}

func dataURI(uri string) ([]byte, error) {
	const prefix = "data:"
	if !strings.HasPrefix(uri, prefix) {
		return nil, newErr("external image URI not supported")
	}
	meta, data, ok := strings.Cut(uri[len(prefix):], ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, newErr("invalid data URI")
	}
	b, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, newErr("invalid data URI: " + err.Error())
	}
	return b, nil
}

// ImageDesc describes a sampled image created from the
// encoded image data (JPEG, PNG or WebP).
// The description includes a full mip chain. 8-bit color
// data is sRGB-encoded unless linear is set, which is the
// case of normal, occlusion and metallic-roughness maps.
func ImageDesc(data []byte, linear bool) (driver.ImageDesc, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return driver.ImageDesc{}, newErr("cannot decode image: " + err.Error())
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return driver.ImageDesc{}, newErr("invalid image size")
	}
	var f driver.Format
	switch cfg.ColorModel {
	case color.GrayModel:
		f.Surface = driver.R8
	case color.Gray16Model:
		f.Surface = driver.R16
	case color.RGBA64Model, color.NRGBA64Model:
		f.Surface = driver.R16G16B16A16
	default:
		f.Surface = driver.R8G8B8A8
	}
	f.Channel = driver.Unorm
	if !linear && (f.Surface == driver.R8 || f.Surface == driver.R8G8B8A8) {
		f.Channel = driver.Srgb
	}
	k := driver.D2{Width: cfg.Width, Height: cfg.Height, Samples: 1}
	return driver.ImageDesc{
		Kind:   k,
		Levels: driver.MaxLevels(k),
		Format: f,
		Bind:   driver.BShaderResource,
		Usage:  driver.GPUOnly,
	}, nil
}
