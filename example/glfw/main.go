// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo

// Command glfw renders a colored triangle in a GLFW window.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/crust/ogl"
	"github.com/crust/ogl/gl"
	"github.com/crust/ogl/glfwcontext"
)

const vertexShader = `#version 410 core
in vec2 position;
in vec3 color;
out vec3 vColor;
void main() {
	vColor = color;
	gl_Position = vec4(position, 0.0, 1.0);
}
`

const fragmentShader = `#version 410 core
in vec3 vColor;
out vec4 fragColor;
void main() {
	fragColor = vec4(vColor, 1.0);
}
`

func main() {
	ogl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	if err := glfwcontext.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfwcontext.Terminate()
	glfwcontext.WindowHints()

	window, err := glfw.CreateWindow(800, 600, "ogl triangle", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()

	c, err := glfwcontext.New(window)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Release()
	ctx := c.Context()

	major, err := ctx.MajorVersion()
	if err != nil {
		log.Fatal(err)
	}
	minor, err := ctx.MinorVersion()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("OpenGL %d.%d", major, minor)

	prog, err := ogl.NewProgram(ctx, vertexShader, fragmentShader)
	if err != nil {
		log.Fatal(err)
	}
	defer prog.Release()

	verts := []float32{
		// x, y, r, g, b
		-0.6, -0.5, 1, 0, 0,
		0.6, -0.5, 0, 1, 0,
		0, 0.6, 0, 0, 1,
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
	col, err := prog.AttribLocation("color")
	if err != nil {
		log.Fatal(err)
	}
	const stride = 5 * 4
	if err := va.Enable(pos); err != nil {
		log.Fatal(err)
	}
	if err := va.Pointer(buf, pos, 2, gl.FLOAT, false, stride, 0); err != nil {
		log.Fatal(err)
	}
	if err := va.Enable(col); err != nil {
		log.Fatal(err)
	}
	if err := va.Pointer(buf, col, 3, gl.FLOAT, false, stride, 2*4); err != nil {
		log.Fatal(err)
	}

	if err := ctx.ClearColor(ogl.Color{R: 0.1, G: 0.1, B: 0.12, A: 1}); err != nil {
		log.Fatal(err)
	}

	for !window.ShouldClose() {
		glfw.PollEvents()
		width, height := window.GetFramebufferSize()
		ctx.Functions().Viewport(0, 0, width, height)
		if err := ctx.Clear(); err != nil {
			log.Fatal(err)
		}
		if err := va.Draw(gl.TRIANGLES, 3, 0); err != nil {
			log.Fatal(err)
		}
		c.SwapBuffers()
	}
}
