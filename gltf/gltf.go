// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package gltf implements decoding of the texture-related
// subset of glTF 2.0 (images, samplers and textures) and
// its conversion to driver descriptions.
// Other top-level properties are ignored when decoding.
package gltf

import (
	"encoding/json"
	"io"
)

// Root glTF object.
type GLTF struct {
	ExtensionsUsed     []string     `json:"extensionsUsed,omitempty"`
	ExtensionsRequired []string     `json:"extensionsRequired,omitempty"`
	Asset              Asset        `json:"asset"`
	Buffers            []Buffer     `json:"buffers,omitempty"`
	BufferViews        []BufferView `json:"bufferViews,omitempty"`
	Images             []Image      `json:"images,omitempty"`
	Samplers           []Sampler    `json:"samplers,omitempty"`
	Textures           []Texture    `json:"textures,omitempty"`
	Extensions         any          `json:"extensions,omitempty"`
	Extras             any          `json:"extras,omitempty"`
}

// glTF.asset.
type Asset struct {
	Copyright  string `json:"copyright,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
	Extensions any    `json:"extensions,omitempty"`
	Extras     any    `json:"extras,omitempty"`
}

// glTF.buffers' element.
type Buffer struct {
	URI        string `json:"uri,omitempty"` // Empty for the GLB-stored buffer.
	ByteLength int64  `json:"byteLength"`
	Name       string `json:"name,omitempty"`
	Extensions any    `json:"extensions,omitempty"`
	Extras     any    `json:"extras,omitempty"`
}

// glTF.bufferViews' element.
type BufferView struct {
	Buffer     int64  `json:"buffer"`
	ByteOffset int64  `json:"byteOffset,omitempty"` // Default is 0.
	ByteLength int64  `json:"byteLength"`
	ByteStride int64  `json:"byteStride,omitempty"`
	Target     int64  `json:"target,omitempty"`
	Name       string `json:"name,omitempty"`
	Extensions any    `json:"extensions,omitempty"`
	Extras     any    `json:"extras,omitempty"`
}

// glTF.images' element.
// Either URI or BufferView is set. MimeType is required
// when BufferView is set.
type Image struct {
	URI        string `json:"uri,omitempty"`
	MimeType   string `json:"mimeType,omitempty"`
	BufferView *int64 `json:"bufferView,omitempty"`
	Name       string `json:"name,omitempty"`
	Extensions any    `json:"extensions,omitempty"`
	Extras     any    `json:"extras,omitempty"`
}

// image.mimeType values.
const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	// EXT_texture_webp.
	MimeWebP = "image/webp"
)

// glTF.samplers' element.
type Sampler struct {
	// Valid filter/wrap mode values differ from 0.
	MagFilter  int64  `json:"magFilter,omitempty"`
	MinFilter  int64  `json:"minFilter,omitempty"`
	WrapS      int64  `json:"wrapS,omitempty"` // Default is 10497.
	WrapT      int64  `json:"wrapT,omitempty"` // Default is 10497.
	Name       string `json:"name,omitempty"`
	Extensions any    `json:"extensions,omitempty"`
	Extras     any    `json:"extras,omitempty"`
}

// sampler.*Filter values.
const (
	NEAREST                = 9728
	FLINEAR                = 9729
	NEAREST_MIPMAP_NEAREST = 9984
	LINEAR_MIPMAP_NEAREST  = 9985
	NEAREST_MIPMAP_LINEAR  = 9986
	LINEAR_MIPMAP_LINEAR   = 9987
)

// sampler.wrap* values.
const (
	CLAMP_TO_EDGE   = 33071
	MIRRORED_REPEAT = 33648
	REPEAT          = 10497
)

// glTF.textures' element.
type Texture struct {
	Sampler    *int64 `json:"sampler,omitempty"`
	Source     *int64 `json:"source,omitempty"`
	Name       string `json:"name,omitempty"`
	Extensions any    `json:"extensions,omitempty"`
	Extras     any    `json:"extras,omitempty"`
}

// extWebP is the name of the extension that allows
// textures to reference WebP images.
const extWebP = "EXT_texture_webp"

// ImageSource returns the index of the image that t
// samples from.
// The EXT_texture_webp source takes precedence over
// t.Source. It returns false if t references no image.
func (t *Texture) ImageSource() (int64, bool) {
	if ext, ok := t.Extensions.(map[string]any); ok {
		if webp, ok := ext[extWebP].(map[string]any); ok {
			// Numbers decode as float64.
			if src, ok := webp["source"].(float64); ok {
				return int64(src), true
			}
		}
	}
	if t.Source != nil {
		return *t.Source, true
	}
	return -1, false
}

// Encode encodes gltf into w.
func Encode(w io.Writer, gltf *GLTF) error {
	enc := json.NewEncoder(w)
	err := enc.Encode(gltf)
	if err != nil {
		return err
	}
	return nil
}

// Decode decodes r into a new GLTF instance.
func Decode(r io.Reader) (*GLTF, error) {
	var gltf GLTF
	dec := json.NewDecoder(r)
	err := dec.Decode(&gltf)
	if err != nil {
		return nil, err
	}
	return &gltf, nil
}
