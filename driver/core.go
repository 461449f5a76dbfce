// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"fmt"
	"math"
	"strings"
)

// Dim3D is a three-dimensional size.
type Dim3D struct {
	Width, Height, Depth int
}

// Kind describes the shape of an image.
// It is one of D1, D1Array, D2, D2Array, D3, Cube or
// CubeArray. Array kinds carry a layer count; the others
// never accept a layer index.
type Kind interface {
	// Extent returns the size of a single layer.
	Extent() Dim3D

	// Layers returns the number of array layers.
	// It is 1 for kinds that are not arrays. Cube faces are
	// not counted.
	Layers() int

	// IsArray returns whether the kind is an array kind.
	IsArray() bool

	isKind()
}

// D1 is a one-dimensional image.
type D1 struct {
	Width int
}

// D1Array is an array of one-dimensional images.
type D1Array struct {
	Width int
	Count int
}

// D2 is a two-dimensional image.
// Samples values of 0 and 1 both mean single-sampled.
type D2 struct {
	Width, Height int
	Samples       int
}

// D2Array is an array of two-dimensional images.
type D2Array struct {
	Width, Height int
	Count         int
	Samples       int
}

// D3 is a three-dimensional image.
type D3 struct {
	Width, Height, Depth int
}

// Cube is a cube map. Each face is Size by Size.
type Cube struct {
	Size int
}

// CubeArray is an array of cube maps.
type CubeArray struct {
	Size  int
	Count int
}

func (k D1) Extent() Dim3D        { return Dim3D{k.Width, 1, 1} }
func (k D1Array) Extent() Dim3D   { return Dim3D{k.Width, 1, 1} }
func (k D2) Extent() Dim3D        { return Dim3D{k.Width, k.Height, 1} }
func (k D2Array) Extent() Dim3D   { return Dim3D{k.Width, k.Height, 1} }
func (k D3) Extent() Dim3D        { return Dim3D{k.Width, k.Height, k.Depth} }
func (k Cube) Extent() Dim3D      { return Dim3D{k.Size, k.Size, 1} }
func (k CubeArray) Extent() Dim3D { return Dim3D{k.Size, k.Size, 1} }

func (D1) Layers() int          { return 1 }
func (k D1Array) Layers() int   { return k.Count }
func (D2) Layers() int          { return 1 }
func (k D2Array) Layers() int   { return k.Count }
func (D3) Layers() int          { return 1 }
func (Cube) Layers() int        { return 1 }
func (k CubeArray) Layers() int { return k.Count }

func (D1) IsArray() bool        { return false }
func (D1Array) IsArray() bool   { return true }
func (D2) IsArray() bool        { return false }
func (D2Array) IsArray() bool   { return true }
func (D3) IsArray() bool        { return false }
func (Cube) IsArray() bool      { return false }
func (CubeArray) IsArray() bool { return true }

func (D1) isKind()        {}
func (D1Array) isKind()   {}
func (D2) isKind()        {}
func (D2Array) isKind()   {}
func (D3) isKind()        {}
func (Cube) isKind()      {}
func (CubeArray) isKind() {}

// MaxLevels returns the length of a full mip chain for k.
// It assumes that the extent of k is valid (i.e., neither
// negative nor zero).
func MaxLevels(k Kind) int {
	size := k.Extent()
	x := size.Width
	if x < size.Height {
		x = size.Height
	}
	if x < size.Depth {
		x = size.Depth
	}
	var l int
	for ; x > 0; l++ {
		x /= 2
	}
	return l
}

// Layer is an index into the layers of an array Kind.
type Layer int

// NoLayer means that no specific layer is requested.
const NoLayer Layer = -1

// SurfaceType describes the bit layout of a pixel.
type SurfaceType int

// Surface types.
const (
	R4G4 SurfaceType = iota
	R4G4B4A4
	R5G5B5A1
	R5G6B5
	R8
	R8G8
	R8G8B8A8
	R10G10B10A2
	R11G11B10
	R16
	R16G16
	R16G16B16
	R16G16B16A16
	R32
	R32G32
	R32G32B32
	R32G32B32A32
	// Depth/Stencil.
	D16
	D24
	D24S8
	D32
)

// NSurface is the number of surface types.
const NSurface = int(D32) + 1

var surfaceNames = [NSurface]string{
	"R4G4", "R4G4B4A4", "R5G5B5A1", "R5G6B5",
	"R8", "R8G8", "R8G8B8A8",
	"R10G10B10A2", "R11G11B10",
	"R16", "R16G16", "R16G16B16", "R16G16B16A16",
	"R32", "R32G32", "R32G32B32", "R32G32B32A32",
	"D16", "D24", "D24S8", "D32",
}

func (s SurfaceType) String() string {
	if s < 0 || int(s) >= NSurface {
		return fmt.Sprintf("SurfaceType(%d)", int(s))
	}
	return surfaceNames[s]
}

// IsDepth returns whether s has a depth component.
func (s SurfaceType) IsDepth() bool {
	switch s {
	case D16, D24, D24S8, D32:
		return true
	}
	return false
}

// ChannelType describes how the bits of a surface are
// interpreted.
type ChannelType int

// Channel types.
const (
	Int ChannelType = iota
	Uint
	// Signed normalized.
	Inorm
	// Unsigned normalized.
	Unorm
	Float
	Srgb
)

// NChannel is the number of channel types.
const NChannel = int(Srgb) + 1

var channelNames = [NChannel]string{"Int", "Uint", "Inorm", "Unorm", "Float", "Srgb"}

func (c ChannelType) String() string {
	if c < 0 || int(c) >= NChannel {
		return fmt.Sprintf("ChannelType(%d)", int(c))
	}
	return channelNames[c]
}

// Format pairs a surface layout with a channel type.
type Format struct {
	Surface SurfaceType
	Channel ChannelType
}

func (f Format) String() string { return f.Surface.String() + "_" + f.Channel.String() }

// ChannelSource selects where a view channel gets its data.
type ChannelSource int

// Channel sources.
const (
	Zero ChannelSource = iota
	One
	X
	Y
	Z
	W
)

// Swizzle maps the four channels of a view (in RGBA order)
// to channel sources.
type Swizzle [4]ChannelSource

// Identity is the swizzle that leaves channels unchanged.
var Identity = Swizzle{X, Y, Z, W}

// Residency indicates where the memory of a resource lives
// and how it is accessed.
type Residency int

// Residencies.
const (
	// The resource is immutable after creation.
	RConst Residency = iota
	// The resource is only accessed by the GPU.
	RGPUOnly
	// The resource is updated by the CPU frequently.
	RDynamic
	// The resource is mapped by the CPU.
	RCPUOnly
)

// MapAccess is a mask of CPU mapping access.
type MapAccess int

// Map access flags.
const (
	MapRead MapAccess = 1 << iota
	MapWrite
	MapRW = MapRead | MapWrite
)

// Usage is a memory residency hint.
// Access is only meaningful when Res is RCPUOnly.
type Usage struct {
	Res    Residency
	Access MapAccess
}

// Predefined usages.
var (
	Const   = Usage{Res: RConst}
	GPUOnly = Usage{Res: RGPUOnly}
	Dynamic = Usage{Res: RDynamic}
)

// CPUOnly returns a CPU-mapped usage with the given access.
func CPUOnly(a MapAccess) Usage { return Usage{Res: RCPUOnly, Access: a} }

// Bind is a mask indicating how a resource is attached to
// the pipeline.
type Bind int

// Bind flags.
const (
	// The resource can be used as color render target.
	BRenderTarget Bind = 1 << iota
	// The resource can be used as depth/stencil target.
	BDepthStencil
	// The resource can be read in shaders.
	BShaderResource
	// The resource can be read and written in shaders.
	BUnorderedAccess
	BNone Bind = 0
)

// Has returns whether all flags in x are set in b.
func (b Bind) Has(x Bind) bool { return b&x == x }

func (b Bind) String() string {
	if b == BNone {
		return "BNone"
	}
	var s []string
	for _, x := range [...]struct {
		b Bind
		s string
	}{
		{BRenderTarget, "BRenderTarget"},
		{BDepthStencil, "BDepthStencil"},
		{BShaderResource, "BShaderResource"},
		{BUnorderedAccess, "BUnorderedAccess"},
	} {
		if b.Has(x.b) {
			s = append(s, x.s)
			b &^= x.b
		}
	}
	if b != 0 {
		s = append(s, fmt.Sprintf("Bind(%#x)", int(b)))
	}
	return strings.Join(s, "|")
}

// Filter identifies a sampler filtering method.
type Filter int

// Filters.
const (
	// Nearest texel, single mip level.
	FScale Filter = iota
	// Nearest texel, linear across mip levels.
	FMipmap
	// Linear within a level, nearest mip level.
	FBilinear
	// Linear within and across mip levels.
	FTrilinear
	// Trilinear with anisotropic filtering.
	FAnisotropic
)

// FilterMethod describes sampler filtering.
// Aniso is only meaningful when Filter is FAnisotropic.
type FilterMethod struct {
	Filter Filter
	Aniso  uint8
}

// Predefined filter methods.
var (
	Scale     = FilterMethod{Filter: FScale}
	Mipmap    = FilterMethod{Filter: FMipmap}
	Bilinear  = FilterMethod{Filter: FBilinear}
	Trilinear = FilterMethod{Filter: FTrilinear}
)

// Anisotropic returns an anisotropic filter method with the
// given maximum anisotropy.
func Anisotropic(level uint8) FilterMethod {
	return FilterMethod{Filter: FAnisotropic, Aniso: level}
}

// WrapMode is the type of sampler address modes.
type WrapMode int

// Wrap modes.
const (
	WTile WrapMode = iota
	WMirror
	WClamp
	WBorder
)

// PackedColor is an RGBA color packed in 32 bits, with red
// in the least significant byte and alpha in the most
// significant byte.
type PackedColor uint32

// PackColor packs four normalized components.
// Components are clamped to [0, 1].
func PackColor(r, g, b, a float32) PackedColor {
	var c PackedColor
	for i, x := range [4]float32{r, g, b, a} {
		x = float32(math.Max(0, math.Min(1, float64(x))))
		c |= PackedColor(uint32(x*255+0.5)) << (8 * i)
	}
	return c
}

// Unpack returns the components of c in RGBA order.
func (c PackedColor) Unpack() (rgba [4]float32) {
	for i := range rgba {
		rgba[i] = float32(c>>(8*i)&0xff) / 255
	}
	return
}

// CmpFunc is the type of comparison functions.
type CmpFunc int

// Comparison functions.
const (
	CNever CmpFunc = iota
	CLess
	CEqual
	CLessEqual
	CGreater
	CNotEqual
	CGreaterEqual
	CAlways
)

// ImageDesc describes an image to be created.
type ImageDesc struct {
	Kind   Kind
	Levels int
	Format Format
	Bind   Bind
	Usage  Usage
}

// ViewDesc describes a view of an image.
// Channel reinterprets the surface of the image; Layer
// selects a single layer of an array Kind (NoLayer selects
// all of them). MinLevel and MaxLevel are inclusive.
type ViewDesc struct {
	Channel  ChannelType
	Layer    Layer
	MinLevel int
	MaxLevel int
	Swizzle  Swizzle
}

// Sampling describes image sampler state.
// Wrap holds the address modes for the U, V and W
// coordinates, in this order. Cmp is only used when Compare
// is true.
type Sampling struct {
	Filter  FilterMethod
	Wrap    [3]WrapMode
	LODBias float32
	MinLOD  float32
	MaxLOD  float32
	Compare bool
	Cmp     CmpFunc
	Border  PackedColor
}
