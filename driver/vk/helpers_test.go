// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vk

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gviegas/vkmap/driver"
)

// Helpers for testing.

// kinds contains one driver.Kind of every variant.
var kinds = [...]driver.Kind{
	driver.D1{Width: 1024},
	driver.D1Array{Width: 1024, Count: 4},
	driver.D2{Width: 512, Height: 256},
	driver.D2Array{Width: 512, Height: 256, Count: 6},
	driver.D3{Width: 64, Height: 64, Depth: 64},
	driver.Cube{Size: 256},
	driver.CubeArray{Size: 256, Count: 3},
}

// binds contains every combination of driver.Bind flags.
var binds = func() (b [16]driver.Bind) {
	for i := range b {
		b[i] = driver.Bind(i)
	}
	return
}()

// tLogger returns a logger that writes text records to
// the returned buffer.
func tLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

// checkLogged fails t unless buf contains msg.
func checkLogged(t *testing.T, call string, buf *bytes.Buffer, msg string) {
	t.Helper()
	if !strings.Contains(buf.String(), msg) {
		t.Fatalf("%s: log\nhave %q\nwant %q", call, buf.String(), msg)
	}
}

// isError checks multiple errors for equality.
func isError(e error, targets ...error) bool {
	for _, x := range targets {
		if errors.Is(e, x) {
			return true
		}
	}
	return false
}
