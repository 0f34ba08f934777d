// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo || !linux

package headless_test

import (
	"testing"

	"github.com/crust/ogl"
	"github.com/crust/ogl/headless"
)

func newContext(t *testing.T) *ogl.Context {
	s, err := headless.New(64, 64)
	if err != nil {
		t.Skipf("no context available: %v", err)
	}
	t.Cleanup(s.Release)
	ctx, err := s.Context(ogl.WithRegistry(ogl.NewRegistry()))
	if err != nil {
		t.Skipf("no context available: %v", err)
	}
	t.Cleanup(ctx.Release)
	return ctx
}

func TestOffscreenClear(t *testing.T) {
	ctx := newContext(t)
	if !ctx.IsCurrent() {
		t.Fatal("fresh context is not current")
	}

	fb, err := ogl.NewFramebuffer(ctx, 64, 64)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	t.Cleanup(fb.Release)

	if err := ctx.ClearColor(ogl.Color{G: 1, A: 1}); err != nil {
		t.Fatalf("ClearColor: %v", err)
	}
	if err := ctx.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	ctx.Functions().Finish()

	img, err := fb.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	r, g, b, a := img.At(32, 32).RGBA()
	if r>>8 != 0 || g>>8 != 255 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("center pixel = %d %d %d %d, expected opaque green", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestDriverVersion(t *testing.T) {
	ctx := newContext(t)
	major, err := ctx.MajorVersion()
	if err != nil {
		t.Fatalf("MajorVersion: %v", err)
	}
	if major < 3 {
		t.Errorf("driver reported OpenGL %d", major)
	}
}
