// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gviegas/vkmap/driver"
)

func TestCheckLayer(t *testing.T) {
	for _, l := range [...]driver.Layer{driver.NoLayer, 0, 3} {
		if err := driver.CheckLayer(nil, l); err != driver.ErrNoKind {
			t.Fatalf("driver.CheckLayer(nil, %d)\nhave %v\nwant %v", l, err, driver.ErrNoKind)
		}
	}

	nonArray := [...]driver.Kind{
		driver.D1{Width: 64},
		driver.D2{Width: 64, Height: 32},
		driver.D3{Width: 16, Height: 16, Depth: 4},
		driver.Cube{Size: 128},
	}
	for _, k := range nonArray {
		if err := driver.CheckLayer(k, driver.NoLayer); err != nil {
			t.Fatalf("driver.CheckLayer(%v, NoLayer)\nhave %v\nwant nil", k, err)
		}
		for _, l := range [...]driver.Layer{0, 1, 5, 255} {
			call := fmt.Sprintf("driver.CheckLayer(%v, %d)", k, l)
			err := driver.CheckLayer(k, l)
			if !errors.Is(err, driver.ErrLayerNotExpected) {
				t.Fatalf("%s\nhave %v\nwant %v", call, err, driver.ErrLayerNotExpected)
			}
			var le *driver.LayerError
			if !errors.As(err, &le) {
				t.Fatalf("%s: errors.As\nhave false\nwant true", call)
			}
			if le.Kind != k || le.Layer != l {
				t.Fatalf("%s: LayerError\nhave %v, %d\nwant %v, %d", call, le.Kind, le.Layer, k, l)
			}
		}
	}

	array := [...]driver.Kind{
		driver.D1Array{Width: 64, Count: 3},
		driver.D2Array{Width: 64, Height: 64, Count: 6},
		driver.CubeArray{Size: 32, Count: 2},
	}
	for _, k := range array {
		n := k.Layers()
		if err := driver.CheckLayer(k, driver.NoLayer); err != nil {
			t.Fatalf("driver.CheckLayer(%v, NoLayer)\nhave %v\nwant nil", k, err)
		}
		for l := 0; l < n; l++ {
			if err := driver.CheckLayer(k, driver.Layer(l)); err != nil {
				t.Fatalf("driver.CheckLayer(%v, %d)\nhave %v\nwant nil", k, l, err)
			}
		}
		for l := n; l < n+4; l++ {
			call := fmt.Sprintf("driver.CheckLayer(%v, %d)", k, l)
			err := driver.CheckLayer(k, driver.Layer(l))
			var le *driver.LayerError
			switch {
			case !errors.Is(err, driver.ErrLayerOutOfBounds):
				t.Fatalf("%s\nhave %v\nwant %v", call, err, driver.ErrLayerOutOfBounds)
			case !errors.As(err, &le):
				t.Fatalf("%s: errors.As\nhave false\nwant true", call)
			case int(le.Layer) != l || le.Count != n:
				t.Fatalf("%s: LayerError\nhave %d, %d\nwant %d, %d", call, le.Layer, le.Count, l, n)
			}
		}
	}
}

func TestKind(t *testing.T) {
	cases := [...]struct {
		k      driver.Kind
		extent driver.Dim3D
		layers int
		array  bool
		levels int
	}{
		{driver.D1{Width: 256}, driver.Dim3D{256, 1, 1}, 1, false, 9},
		{driver.D1Array{Width: 256, Count: 4}, driver.Dim3D{256, 1, 1}, 4, true, 9},
		{driver.D2{Width: 640, Height: 480}, driver.Dim3D{640, 480, 1}, 1, false, 10},
		{driver.D2Array{Width: 640, Height: 480, Count: 2, Samples: 4}, driver.Dim3D{640, 480, 1}, 2, true, 10},
		{driver.D3{Width: 32, Height: 16, Depth: 64}, driver.Dim3D{32, 16, 64}, 1, false, 7},
		{driver.Cube{Size: 512}, driver.Dim3D{512, 512, 1}, 1, false, 10},
		{driver.CubeArray{Size: 1, Count: 3}, driver.Dim3D{1, 1, 1}, 3, true, 1},
	}
	for _, c := range cases {
		if x := c.k.Extent(); x != c.extent {
			t.Fatalf("%v.Extent()\nhave %v\nwant %v", c.k, x, c.extent)
		}
		if x := c.k.Layers(); x != c.layers {
			t.Fatalf("%v.Layers()\nhave %d\nwant %d", c.k, x, c.layers)
		}
		if x := c.k.IsArray(); x != c.array {
			t.Fatalf("%v.IsArray()\nhave %t\nwant %t", c.k, x, c.array)
		}
		if x := driver.MaxLevels(c.k); x != c.levels {
			t.Fatalf("driver.MaxLevels(%v)\nhave %d\nwant %d", c.k, x, c.levels)
		}
	}
}

func TestSurfaceType(t *testing.T) {
	for s := driver.SurfaceType(0); int(s) < driver.NSurface; s++ {
		want := s == driver.D16 || s == driver.D24 || s == driver.D24S8 || s == driver.D32
		if x := s.IsDepth(); x != want {
			t.Fatalf("%v.IsDepth()\nhave %t\nwant %t", s, x, want)
		}
	}
	if s := driver.D24S8.String(); s != "D24S8" {
		t.Fatalf("D24S8.String()\nhave %s\nwant D24S8", s)
	}
	if s := driver.SurfaceType(-1).String(); s != "SurfaceType(-1)" {
		t.Fatalf("SurfaceType(-1).String()\nhave %s\nwant SurfaceType(-1)", s)
	}
	f := driver.Format{Surface: driver.R8G8B8A8, Channel: driver.Srgb}
	if s := f.String(); s != "R8G8B8A8_Srgb" {
		t.Fatalf("%#v.String()\nhave %s\nwant R8G8B8A8_Srgb", f, s)
	}
}

func TestBind(t *testing.T) {
	b := driver.BRenderTarget | driver.BShaderResource
	if !b.Has(driver.BRenderTarget) || !b.Has(driver.BShaderResource) {
		t.Fatalf("%v.Has\nhave false\nwant true", b)
	}
	if b.Has(driver.BDepthStencil) || b.Has(driver.BRenderTarget|driver.BUnorderedAccess) {
		t.Fatalf("%v.Has\nhave true\nwant false", b)
	}
	if !b.Has(driver.BNone) {
		t.Fatalf("%v.Has(BNone)\nhave false\nwant true", b)
	}
	if b|driver.BShaderResource != b {
		t.Fatal("Bind union is not idempotent")
	}

	cases := [...]struct {
		b driver.Bind
		s string
	}{
		{driver.BNone, "BNone"},
		{driver.BDepthStencil, "BDepthStencil"},
		{b, "BRenderTarget|BShaderResource"},
		{driver.BUnorderedAccess | driver.BRenderTarget, "BRenderTarget|BUnorderedAccess"},
		{driver.BShaderResource | 64, "BShaderResource|Bind(0x40)"},
	}
	for _, c := range cases {
		if s := c.b.String(); s != c.s {
			t.Fatalf("Bind(%d).String()\nhave %s\nwant %s", int(c.b), s, c.s)
		}
	}
}

func TestUsage(t *testing.T) {
	if u := driver.CPUOnly(driver.MapRW); u.Res != driver.RCPUOnly || u.Access != driver.MapRead|driver.MapWrite {
		t.Fatalf("driver.CPUOnly(MapRW)\nhave %v\nwant {%d %d}", u, driver.RCPUOnly, driver.MapRW)
	}
	for _, u := range [...]driver.Usage{driver.Const, driver.GPUOnly, driver.Dynamic} {
		if u.Access != 0 {
			t.Fatalf("%v.Access\nhave %d\nwant 0", u, u.Access)
		}
	}
}

func TestFilterMethod(t *testing.T) {
	f := driver.Anisotropic(16)
	if f.Filter != driver.FAnisotropic || f.Aniso != 16 {
		t.Fatalf("driver.Anisotropic(16)\nhave %v\nwant {%d 16}", f, driver.FAnisotropic)
	}
	if driver.Trilinear.Aniso != 0 {
		t.Fatalf("driver.Trilinear.Aniso\nhave %d\nwant 0", driver.Trilinear.Aniso)
	}
}

func TestPackedColor(t *testing.T) {
	cases := [...]struct {
		rgba [4]float32
		c    driver.PackedColor
	}{
		{[4]float32{0, 0, 0, 0}, 0x00000000},
		{[4]float32{0, 0, 0, 1}, 0xff000000},
		{[4]float32{1, 1, 1, 1}, 0xffffffff},
		{[4]float32{1, 0, 0, 1}, 0xff0000ff},
		{[4]float32{0, 0, 1, 0}, 0x00ff0000},
		{[4]float32{-1, 2, 0, 1}, 0xff00ff00},
	}
	for _, c := range cases {
		x := driver.PackColor(c.rgba[0], c.rgba[1], c.rgba[2], c.rgba[3])
		if x != c.c {
			t.Fatalf("driver.PackColor(%v)\nhave %#08x\nwant %#08x", c.rgba, uint32(x), uint32(c.c))
		}
	}
	for _, c := range [...]driver.PackedColor{0, 0xff000000, 0xffffffff, 0x80402010} {
		rgba := c.Unpack()
		if x := driver.PackColor(rgba[0], rgba[1], rgba[2], rgba[3]); x != c {
			t.Fatalf("driver.PackColor(%#08x.Unpack())\nhave %#08x\nwant %#08x", uint32(c), uint32(x), uint32(c))
		}
	}
}
