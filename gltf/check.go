// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"errors"
	"strings"
)

func newErr(reason string) error {
	return errors.New("gltf: " + reason)
}

// Check checks that f is valid glTF.
// Only the properties that GLTF decodes are checked.
func (f *GLTF) Check() error {
	if !strings.HasPrefix(f.Asset.Version, "2.") {
		return newErr("invalid GLTF.Asset.Version value")
	}
	for _, e := range f.ExtensionsRequired {
		if e != extWebP {
			return newErr("extension not supported: " + e)
		}
	}
	for i := range f.Buffers {
		if f.Buffers[i].ByteLength < 1 {
			return newErr("invalid Buffer.ByteLength value")
		}
	}
	for i := range f.BufferViews {
		if err := f.BufferViews[i].Check(f); err != nil {
			return err
		}
	}
	for i := range f.Images {
		if err := f.Images[i].Check(f); err != nil {
			return err
		}
	}
	for i := range f.Samplers {
		if err := f.Samplers[i].Check(); err != nil {
			return err
		}
	}
	for i := range f.Textures {
		if err := f.Textures[i].Check(f); err != nil {
			return err
		}
	}
	return nil
}

// Check checks that v is valid glTF.bufferViews' element.
func (v *BufferView) Check(gltf *GLTF) error {
	if v.Buffer < 0 || v.Buffer >= int64(len(gltf.Buffers)) {
		return newErr("invalid BufferView.Buffer index")
	}
	if v.ByteOffset < 0 {
		return newErr("invalid BufferView.ByteOffset value")
	}
	if v.ByteLength < 1 {
		return newErr("invalid BufferView.ByteLength value")
	}
	if v.ByteOffset+v.ByteLength > gltf.Buffers[v.Buffer].ByteLength {
		return newErr("BufferView out of Buffer bounds")
	}
	if v.ByteStride != 0 && (v.ByteStride < 4 || v.ByteStride > 252 || v.ByteStride%4 != 0) {
		return newErr("invalid BufferView.ByteStride value")
	}
	return nil
}

// Check checks that i is valid glTF.images' element.
func (i *Image) Check(gltf *GLTF) error {
	switch {
	case i.URI != "" && i.BufferView != nil:
		return newErr("Image.URI and Image.BufferView are mutually exclusive")
	case i.URI == "" && i.BufferView == nil:
		return newErr("Image.URI or Image.BufferView required")
	case i.BufferView != nil:
		if idx := *i.BufferView; idx < 0 || idx >= int64(len(gltf.BufferViews)) {
			return newErr("invalid Image.BufferView index")
		}
		if i.MimeType == "" {
			return newErr("Image.MimeType required")
		}
	}
	switch i.MimeType {
	case "", MimeJPEG, MimePNG, MimeWebP:
	default:
		return newErr("invalid Image.MimeType value")
	}
	return nil
}

// Check checks that s is valid glTF.samplers' element.
func (s *Sampler) Check() error {
	switch s.MagFilter {
	case 0, NEAREST, FLINEAR:
	default:
		return newErr("invalid Sampler.MagFilter value")
	}
	switch s.MinFilter {
	case 0, NEAREST, FLINEAR, NEAREST_MIPMAP_NEAREST, LINEAR_MIPMAP_NEAREST, NEAREST_MIPMAP_LINEAR, LINEAR_MIPMAP_LINEAR:
	default:
		return newErr("invalid Sampler.MinFilter value")
	}
	for _, w := range [2]int64{s.WrapS, s.WrapT} {
		switch w {
		case 0, CLAMP_TO_EDGE, MIRRORED_REPEAT, REPEAT:
		default:
			return newErr("invalid Sampler.Wrap* value")
		}
	}
	return nil
}

// Check checks that t is valid glTF.textures' element.
func (t *Texture) Check(gltf *GLTF) error {
	if s := t.Sampler; s != nil && (*s < 0 || *s >= int64(len(gltf.Samplers))) {
		return newErr("invalid Texture.Sampler index")
	}
	if s := t.Source; s != nil && (*s < 0 || *s >= int64(len(gltf.Images))) {
		return newErr("invalid Texture.Source index")
	}
	if src, ok := t.ImageSource(); ok && (src < 0 || src >= int64(len(gltf.Images))) {
		return newErr("invalid " + extWebP + " source index")
	}
	return nil
}
