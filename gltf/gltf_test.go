// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"bytes"
	"strings"
	"testing"
)

const texturedJSON = `{
	"asset": {"version": "2.0", "generator": "test"},
	"extensionsUsed": ["EXT_texture_webp"],
	"buffers": [{"byteLength": 1024}],
	"bufferViews": [{"buffer": 0, "byteOffset": 256, "byteLength": 512}],
	"images": [
		{"uri": "base.png"},
		{"bufferView": 0, "mimeType": "image/png"},
		{"uri": "base.webp", "mimeType": "image/webp"}
	],
	"samplers": [
		{"magFilter": 9729, "minFilter": 9987, "wrapS": 33648, "wrapT": 33071},
		{}
	],
	"textures": [
		{"sampler": 0, "source": 0},
		{"source": 1},
		{"sampler": 1, "source": 0, "extensions": {"EXT_texture_webp": {"source": 2}}}
	],
	"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
	"nodes": [{"mesh": 0}]
}`

func TestGLTF(t *testing.T) {
	gltf, err := Decode(strings.NewReader(texturedJSON))
	if err != nil {
		t.Fatal(err)
	}
	if gltf.Asset.Version != "2.0" || gltf.Asset.Generator != "test" {
		t.Fatalf("Decode: Asset\nhave %+v\nwant version 2.0 and generator test", gltf.Asset)
	}
	if n := len(gltf.Images); n != 3 {
		t.Fatalf("Decode: len(Images)\nhave %d\nwant 3", n)
	}
	if n := len(gltf.Samplers); n != 2 {
		t.Fatalf("Decode: len(Samplers)\nhave %d\nwant 2", n)
	}
	if n := len(gltf.Textures); n != 3 {
		t.Fatalf("Decode: len(Textures)\nhave %d\nwant 3", n)
	}
	if s := gltf.Samplers[0]; s.MinFilter != LINEAR_MIPMAP_LINEAR || s.MagFilter != FLINEAR || s.WrapS != MIRRORED_REPEAT || s.WrapT != CLAMP_TO_EDGE {
		t.Fatalf("Decode: Samplers[0]\nhave %+v", s)
	}
	if v := gltf.Images[1].BufferView; v == nil || *v != 0 {
		t.Fatalf("Decode: Images[1].BufferView\nhave %v\nwant 0", v)
	}
	if err := gltf.Check(); err != nil {
		t.Fatalf("gltf.Check()\nhave %v\nwant nil", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, gltf); err != nil {
		t.Fatal(err)
	}
	if s := buf.String(); strings.Contains(s, "meshes") || strings.Contains(s, "nodes") {
		t.Fatalf("Encode: unexpected properties\n%s", s)
	}
	again, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := again.Check(); err != nil {
		t.Fatalf("Check() after Encode/Decode\nhave %v\nwant nil", err)
	}
	if src, ok := again.Textures[2].ImageSource(); !ok || src != 2 {
		t.Fatalf("Textures[2].ImageSource() after Encode/Decode\nhave %d, %t\nwant 2, true", src, ok)
	}
}

func TestImageSource(t *testing.T) {
	gltf, err := Decode(strings.NewReader(texturedJSON))
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range [...]int64{0, 1, 2} {
		if src, ok := gltf.Textures[i].ImageSource(); !ok || src != want {
			t.Fatalf("Textures[%d].ImageSource()\nhave %d, %t\nwant %d, true", i, src, ok, want)
		}
	}
	var tex Texture
	if src, ok := tex.ImageSource(); ok || src != -1 {
		t.Fatalf("Texture{}.ImageSource()\nhave %d, %t\nwant -1, false", src, ok)
	}
}

func TestCheck(t *testing.T) {
	cases := [...]struct {
		json   string
		reason string
	}{
		{`{"asset": {"version": "1.0"}}`, "Asset.Version"},
		{`{"asset": {"version": "2.0"}, "extensionsRequired": ["KHR_texture_basisu"]}`, "extension not supported"},
		{`{"asset": {"version": "2.0"}, "buffers": [{"byteLength": 0}]}`, "Buffer.ByteLength"},
		{`{"asset": {"version": "2.0"}, "bufferViews": [{"buffer": 0, "byteLength": 4}]}`, "BufferView.Buffer"},
		{`{"asset": {"version": "2.0"}, "buffers": [{"byteLength": 8}], "bufferViews": [{"buffer": 0, "byteOffset": 4, "byteLength": 8}]}`, "out of Buffer bounds"},
		{`{"asset": {"version": "2.0"}, "buffers": [{"byteLength": 8}], "bufferViews": [{"buffer": 0, "byteLength": 8, "byteStride": 3}]}`, "BufferView.ByteStride"},
		{`{"asset": {"version": "2.0"}, "images": [{}]}`, "required"},
		{`{"asset": {"version": "2.0"}, "images": [{"uri": "a.png", "bufferView": 0}]}`, "mutually exclusive"},
		{`{"asset": {"version": "2.0"}, "images": [{"bufferView": 0, "mimeType": "image/png"}]}`, "Image.BufferView"},
		{`{"asset": {"version": "2.0"}, "buffers": [{"byteLength": 8}], "bufferViews": [{"buffer": 0, "byteLength": 8}], "images": [{"bufferView": 0}]}`, "Image.MimeType required"},
		{`{"asset": {"version": "2.0"}, "images": [{"uri": "a.gif", "mimeType": "image/gif"}]}`, "Image.MimeType value"},
		{`{"asset": {"version": "2.0"}, "samplers": [{"magFilter": 9987}]}`, "Sampler.MagFilter"},
		{`{"asset": {"version": "2.0"}, "samplers": [{"minFilter": 1}]}`, "Sampler.MinFilter"},
		{`{"asset": {"version": "2.0"}, "samplers": [{"wrapT": 10496}]}`, "Sampler.Wrap"},
		{`{"asset": {"version": "2.0"}, "textures": [{"sampler": 0}]}`, "Texture.Sampler"},
		{`{"asset": {"version": "2.0"}, "textures": [{"source": 0}]}`, "Texture.Source"},
		{`{"asset": {"version": "2.0"}, "images": [{"uri": "a.png"}], "textures": [{"source": 0, "extensions": {"EXT_texture_webp": {"source": 1}}}]}`, "EXT_texture_webp"},
	}
	for _, c := range cases {
		gltf, err := Decode(strings.NewReader(c.json))
		if err != nil {
			t.Fatal(err)
		}
		err = gltf.Check()
		if err == nil || !strings.Contains(err.Error(), c.reason) {
			t.Fatalf("gltf.Check() [%s]\nhave %v\nwant error containing %q", c.json, err, c.reason)
		}
		if !strings.HasPrefix(err.Error(), "gltf: ") {
			t.Fatalf("gltf.Check(): error prefix\nhave %q\nwant \"gltf: \"", err)
		}
	}
}
