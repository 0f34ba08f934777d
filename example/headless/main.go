// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo || !linux

// Command headless renders a triangle into an offscreen framebuffer
// and writes the result to a PNG file, without opening a window.
package main

import (
	"bytes"
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/crust/ogl"
	"github.com/crust/ogl/gl"
	"github.com/crust/ogl/headless"
)

const vertexShader = `#version 410 core
in vec2 position;
void main() {
	gl_Position = vec4(position, 0.0, 1.0);
}
`

const fragmentShader = `#version 410 core
out vec4 fragColor;
void main() {
	fragColor = vec4(1.0, 0.5, 0.0, 1.0);
}
`

func main() {
	out := flag.String("o", "triangle.png", "output file")
	size := flag.Int("size", 256, "image width and height in pixels")
	flag.Parse()
	ogl.SetLogger(slog.Default())

	s, err := headless.New(*size, *size)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Release()

	ctx, err := s.Context()
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Release()

	fb, err := ogl.NewFramebuffer(ctx, *size, *size)
	if err != nil {
		log.Fatal(err)
	}
	defer fb.Release()

	prog, err := ogl.NewProgram(ctx, vertexShader, fragmentShader)
	if err != nil {
		log.Fatal(err)
	}
	defer prog.Release()

	verts := []float32{
		-0.8, -0.8,
		0.8, -0.8,
		0, 0.8,
	}
	buf, err := ogl.NewBuffer(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer buf.Release()
	if err := buf.SetData(gl.ARRAY_BUFFER, gl.BytesView(verts), gl.STATIC_DRAW); err != nil {
		log.Fatal(err)
	}

	va, err := ogl.NewVertexArray(ctx, prog)
	if err != nil {
		log.Fatal(err)
	}
	defer va.Release()
	pos, err := prog.AttribLocation("position")
	if err != nil {
		log.Fatal(err)
	}
	if err := va.Enable(pos); err != nil {
		log.Fatal(err)
	}
	if err := va.Pointer(buf, pos, 2, gl.FLOAT, false, 0, 0); err != nil {
		log.Fatal(err)
	}

	ctx.Functions().Viewport(0, 0, *size, *size)
	if err := ctx.ClearColor(ogl.Color{R: 0.1, G: 0.1, B: 0.12, A: 1}); err != nil {
		log.Fatal(err)
	}
	if err := ctx.Clear(); err != nil {
		log.Fatal(err)
	}
	if err := va.DrawTo(fb, gl.TRIANGLES, 3, 0); err != nil {
		log.Fatal(err)
	}
	ctx.Functions().Finish()

	img, err := fb.Image()
	if err != nil {
		log.Fatal(err)
	}
	if err := saveImage(*out, img); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}

func saveImage(file string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0666)
}
