// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// GLB header.
type glbHeader [3]uint32

// Indices in glbHeader.
const (
	headerMagic   = 0
	headerVersion = 1
	headerLength  = 2
)

// GLB chunk.
type (
	glbChunk     [2]uint32
	glbChunkData []byte
)

// Indices in glbChunk.
const (
	chunkLength = 0
	chunkType   = 1
	// Then payload (glbChunkData).
)

const (
	// glbHeader[headerMagic].
	magic = 0x46546c67

	// glbChunk[chunkType].
	typeJSON = 0x4e4f534a
	typeBIN  = 0x004e4942
)

// IsGLB returns whether r refers to a binary glTF (version 2).
// It assumes that r was positioned accordingly.
func IsGLB(r io.Reader) bool {
	var h glbHeader
	err := binary.Read(r, binary.LittleEndian, h[:])
	switch {
	case err != nil, h[headerMagic] != magic, h[headerVersion] != 2:
		return false
	default:
		return true
	}
}

// SeekJSON seeks into r until it finds the beginning
// of the JSON string.
// If successful, it returns the length of the chunk.
// r must refer to an unread GLB blob.
func SeekJSON(r io.Reader) (n int, err error) {
	if !IsGLB(r) {
		err = errors.New("gltf: not a GLB blob")
		return
	}
	var c glbChunk
	err = binary.Read(r, binary.LittleEndian, c[:])
	switch {
	case err != nil:
	case c[chunkLength] == 0 || c[chunkType] != typeJSON:
		err = errors.New("gltf: invalid GLB chunk")
	default:
		n = int(c[chunkLength])
	}
	return
}

// DecodeGLB decodes the JSON chunk of a GLB blob into a new
// GLTF instance and returns the payload of the BIN chunk
// alongside it.
// The BIN chunk is optional; bin is nil if it is absent.
// Chunks must fit in the length declared by the GLB header.
// r must refer to an unread GLB blob.
func DecodeGLB(r io.Reader) (gltf *GLTF, bin []byte, err error) {
	var h glbHeader
	err = binary.Read(r, binary.LittleEndian, h[:])
	switch {
	case err != nil, h[headerMagic] != magic, h[headerVersion] != 2:
		return nil, nil, newErr("not a GLB blob")
	}
	rem := int64(h[headerLength]) - int64(len(h)*4)
	c, js, err := readChunk(r, &rem)
	switch {
	case err != nil:
		return nil, nil, err
	case c[chunkType] != typeJSON || len(js) == 0:
		return nil, nil, newErr("invalid GLB chunk")
	}
	if gltf, err = Decode(bytes.NewReader(js)); err != nil {
		return nil, nil, err
	}
	if rem == 0 {
		return
	}
	c, bin, err = readChunk(r, &rem)
	switch {
	case err != nil:
		return nil, nil, err
	case c[chunkType] != typeBIN:
		return nil, nil, newErr("invalid GLB chunk")
	}
	return
}

// readChunk reads the next chunk from r.
// rem is the number of bytes left in the blob and is
// updated accordingly. The payload is read incrementally.
func readChunk(r io.Reader, rem *int64) (c glbChunk, data glbChunkData, err error) {
	if *rem < int64(len(c)*4) {
		err = newErr("invalid GLB chunk")
		return
	}
	if err = binary.Read(r, binary.LittleEndian, c[:]); err != nil {
		err = newErr("invalid GLB chunk")
		return
	}
	*rem -= int64(len(c) * 4)
	n := int64(c[chunkLength])
	if n > *rem {
		err = newErr("GLB chunk out of bounds")
		return
	}
	if data, err = io.ReadAll(io.LimitReader(r, n)); err != nil || int64(len(data)) != n {
		data, err = nil, newErr("invalid GLB chunk")
		return
	}
	*rem -= n
	return
}
