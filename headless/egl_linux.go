// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux

package headless

/*
#cgo LDFLAGS: -lEGL
#include <EGL/egl.h>
#include <EGL/eglext.h>

// The extension entry points are reached through function pointers;
// fetch them once and wrap them for Go.
static PFNEGLQUERYDEVICESEXTPROC eglQueryDevicesEXT_ptr = NULL;
static PFNEGLGETPLATFORMDISPLAYEXTPROC eglGetPlatformDisplayEXT_ptr = NULL;

static void init_egl_extensions() {
	eglQueryDevicesEXT_ptr = (PFNEGLQUERYDEVICESEXTPROC) eglGetProcAddress("eglQueryDevicesEXT");
	eglGetPlatformDisplayEXT_ptr = (PFNEGLGETPLATFORMDISPLAYEXTPROC) eglGetProcAddress("eglGetPlatformDisplayEXT");
}

static EGLDisplay get_platform_display(EGLenum platform, void *native_display, const EGLint *attrib_list) {
	if (eglGetPlatformDisplayEXT_ptr) {
		return eglGetPlatformDisplayEXT_ptr(platform, native_display, attrib_list);
	}
	return EGL_NO_DISPLAY;
}

static EGLBoolean query_devices(EGLint max_devices, EGLDeviceEXT *devices, EGLint *num_devices) {
	if (eglQueryDevicesEXT_ptr) {
		return eglQueryDevicesEXT_ptr(max_devices, devices, num_devices);
	}
	return EGL_FALSE;
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/crust/ogl"
	"github.com/crust/ogl/glimpl"
)

// Surface is a pbuffer-backed EGL context with no window attached.
type Surface struct {
	display C.EGLDisplay
	context C.EGLContext
	surface C.EGLSurface
	width   int
	height  int
}

// New creates a width by height pbuffer surface with an OpenGL context
// on the best available EGL display. The context is not current until
// MakeCurrent or Context is called.
func New(width, height int) (*Surface, error) {
	display, err := getDisplay()
	if err != nil {
		return nil, err
	}
	var major, minor C.EGLint
	if C.eglInitialize(display, &major, &minor) == C.EGL_FALSE {
		return nil, fmt.Errorf("headless: eglInitialize failed: 0x%x", C.eglGetError())
	}
	ogl.Logger().Info("headless: EGL initialized", "major", int(major), "minor", int(minor))
	if C.eglBindAPI(C.EGL_OPENGL_API) == C.EGL_FALSE {
		return nil, fmt.Errorf("headless: eglBindAPI(EGL_OPENGL_API) failed: 0x%x", C.eglGetError())
	}
	configAttribs := []C.EGLint{
		C.EGL_SURFACE_TYPE, C.EGL_PBUFFER_BIT,
		C.EGL_RED_SIZE, 8,
		C.EGL_GREEN_SIZE, 8,
		C.EGL_BLUE_SIZE, 8,
		C.EGL_ALPHA_SIZE, 8,
		C.EGL_DEPTH_SIZE, 24,
		C.EGL_RENDERABLE_TYPE, C.EGL_OPENGL_BIT,
		C.EGL_NONE,
	}
	var config C.EGLConfig
	var numConfig C.EGLint
	if C.eglChooseConfig(display, &configAttribs[0], &config, 1, &numConfig) == C.EGL_FALSE || numConfig == 0 {
		return nil, fmt.Errorf("headless: eglChooseConfig failed: 0x%x", C.eglGetError())
	}
	pbufferAttribs := []C.EGLint{
		C.EGL_WIDTH, C.EGLint(width),
		C.EGL_HEIGHT, C.EGLint(height),
		C.EGL_NONE,
	}
	surf := C.eglCreatePbufferSurface(display, config, &pbufferAttribs[0])
	if surf == C.EGLSurface(C.EGL_NO_SURFACE) {
		return nil, fmt.Errorf("headless: eglCreatePbufferSurface failed: 0x%x", C.eglGetError())
	}
	ctx := createContext(display, config)
	if ctx == C.EGLContext(C.EGL_NO_CONTEXT) {
		C.eglDestroySurface(display, surf)
		return nil, fmt.Errorf("headless: eglCreateContext failed: 0x%x", C.eglGetError())
	}
	return &Surface{
		display: display,
		context: ctx,
		surface: surf,
		width:   width,
		height:  height,
	}, nil
}

// getDisplay prefers enumerated EGL devices over the default display;
// in a GPU container the default display often does not exist.
func getDisplay() (C.EGLDisplay, error) {
	C.init_egl_extensions()
	var numDevices C.EGLint
	if C.query_devices(0, nil, &numDevices) == C.EGL_FALSE || numDevices == 0 {
		ogl.Logger().Debug("headless: EGL device enumeration unavailable, using the default display")
		display := C.eglGetDisplay(C.EGLNativeDisplayType(C.EGL_DEFAULT_DISPLAY))
		if display == C.EGLDisplay(C.EGL_NO_DISPLAY) {
			return C.EGLDisplay(C.EGL_NO_DISPLAY), fmt.Errorf("headless: eglGetDisplay(EGL_DEFAULT_DISPLAY) failed: 0x%x", C.eglGetError())
		}
		return display, nil
	}
	devices := make([]C.EGLDeviceEXT, numDevices)
	if C.query_devices(numDevices, &devices[0], &numDevices) == C.EGL_FALSE {
		return C.EGLDisplay(C.EGL_NO_DISPLAY), fmt.Errorf("headless: eglQueryDevicesEXT failed: 0x%x", C.eglGetError())
	}
	for i := 0; i < int(numDevices); i++ {
		display := C.get_platform_display(C.EGL_PLATFORM_DEVICE_EXT, unsafe.Pointer(devices[i]), nil)
		if display != C.EGLDisplay(C.EGL_NO_DISPLAY) {
			ogl.Logger().Debug("headless: using enumerated EGL device", "device", i, "devices", int(numDevices))
			return display, nil
		}
	}
	return C.EGLDisplay(C.EGL_NO_DISPLAY), fmt.Errorf("headless: no usable EGL display on %d devices", int(numDevices))
}

func createContext(display C.EGLDisplay, config C.EGLConfig) C.EGLContext {
	attribs := []C.EGLint{
		C.EGL_CONTEXT_MAJOR_VERSION, 4,
		C.EGL_CONTEXT_MINOR_VERSION, 1,
		C.EGL_CONTEXT_OPENGL_PROFILE_MASK, C.EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT,
		C.EGL_NONE,
	}
	ctx := C.eglCreateContext(display, config, C.EGLContext(C.EGL_NO_CONTEXT), &attribs[0])
	if ctx != C.EGLContext(C.EGL_NO_CONTEXT) {
		return ctx
	}
	// Fall back to whatever version the driver offers.
	fallback := []C.EGLint{C.EGL_NONE}
	return C.eglCreateContext(display, config, C.EGLContext(C.EGL_NO_CONTEXT), &fallback[0])
}

// MakeCurrent binds the surface's context to the calling thread at the
// driver level. Callers pair it with the currency bookkeeping of an
// ogl.Context; the Context method sets up both.
func (s *Surface) MakeCurrent() error {
	if C.eglMakeCurrent(s.display, s.surface, s.surface, s.context) == C.EGL_FALSE {
		return fmt.Errorf("headless: eglMakeCurrent failed: 0x%x", C.eglGetError())
	}
	return nil
}

// ReleaseCurrent unbinds any context from the calling thread.
func (s *Surface) ReleaseCurrent() {
	C.eglMakeCurrent(s.display, C.EGLSurface(C.EGL_NO_SURFACE), C.EGLSurface(C.EGL_NO_SURFACE), C.EGLContext(C.EGL_NO_CONTEXT))
}

// Context makes the surface's context current on the calling thread,
// loads the driver bindings and wraps the pair as a thread-bound
// ogl.Context. The calling goroutine stays locked to its thread until
// the returned context is released.
func (s *Surface) Context(opts ...ogl.Option) (*ogl.Context, error) {
	// Hold the goroutine on one thread across the driver switch and the
	// wrapper's own thread binding.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if err := s.MakeCurrent(); err != nil {
		return nil, err
	}
	f, err := glimpl.New()
	if err != nil {
		return nil, err
	}
	return ogl.NewMultiContext(f, s.NativeContext(), opts...), nil
}

// NativeContext returns the EGLContext handle.
func (s *Surface) NativeContext() uintptr {
	return uintptr(unsafe.Pointer(s.context))
}

// Size returns the pbuffer dimensions in pixels.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Release unbinds and destroys the context and surface and terminates
// the display connection. The surface must not be used afterwards.
func (s *Surface) Release() {
	if s.display == C.EGLDisplay(C.EGL_NO_DISPLAY) {
		return
	}
	C.eglMakeCurrent(s.display, C.EGLSurface(C.EGL_NO_SURFACE), C.EGLSurface(C.EGL_NO_SURFACE), C.EGLContext(C.EGL_NO_CONTEXT))
	if s.context != C.EGLContext(C.EGL_NO_CONTEXT) {
		C.eglDestroyContext(s.display, s.context)
		s.context = C.EGLContext(C.EGL_NO_CONTEXT)
	}
	if s.surface != C.EGLSurface(C.EGL_NO_SURFACE) {
		C.eglDestroySurface(s.display, s.surface)
		s.surface = C.EGLSurface(C.EGL_NO_SURFACE)
	}
	C.eglTerminate(s.display)
	C.eglReleaseThread()
	s.display = C.EGLDisplay(C.EGL_NO_DISPLAY)
	ogl.Logger().Info("headless: surface released")
}
