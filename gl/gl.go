// SPDX-License-Identifier: Unlicense OR MIT

// Package gl defines the boundary between the ogl wrappers and a native
// OpenGL driver: shared enum values, typed object handles and the Functions
// call interface implemented by real bindings (package glimpl) or test
// doubles.
//
// The enum table is deliberately partial; it covers the wrapper surface and
// the capability and parameter names the wrappers expose, not all of OpenGL.
package gl

type (
	// Enum is a GLenum value: a capability, parameter name, target or
	// any other symbolic driver constant.
	Enum uint
	// Attrib is a vertex attribute location.
	Attrib uint
)

const (
	ARRAY_BUFFER                  = 0x8892
	BLEND                         = 0xbe2
	BYTE                          = 0x1400
	COLOR_ATTACHMENT0             = 0x8ce0
	COLOR_BUFFER_BIT              = 0x4000
	COLOR_CLEAR_VALUE             = 0xc22
	COLOR_LOGIC_OP                = 0xbf2
	COMPILE_STATUS                = 0x8b81
	COPY_READ_BUFFER              = 0x8f36
	COPY_WRITE_BUFFER             = 0x8f37
	CULL_FACE                     = 0xb44
	CURRENT_PROGRAM               = 0x8b8d
	DEPTH_ATTACHMENT              = 0x8d00
	DEPTH_BUFFER_BIT              = 0x100
	DEPTH_CLAMP                   = 0x864f
	DEPTH_CLEAR_VALUE             = 0xb73
	DEPTH_COMPONENT16             = 0x81a5
	DEPTH_COMPONENT24             = 0x81a6
	DEPTH_TEST                    = 0xb71
	DEPTH_WRITEMASK               = 0xb72
	DITHER                        = 0xbd0
	DOUBLE                        = 0x140a
	DRAW_FRAMEBUFFER              = 0x8ca9
	DRAW_INDIRECT_BUFFER          = 0x8f3f
	DYNAMIC_DRAW                  = 0x88e8
	ELEMENT_ARRAY_BUFFER          = 0x8893
	EXTENSIONS                    = 0x1f03
	FALSE                         = 0
	FLOAT                         = 0x1406
	FRAGMENT_SHADER               = 0x8b30
	FRAMEBUFFER                   = 0x8d40
	FRAMEBUFFER_BINDING           = 0x8ca6
	FRAMEBUFFER_COMPLETE          = 0x8cd5
	FRAMEBUFFER_SRGB              = 0x8db9
	HALF_FLOAT                    = 0x140b
	INFO_LOG_LENGTH               = 0x8b84
	INT                           = 0x1404
	INVALID_ENUM                  = 0x500
	INVALID_FRAMEBUFFER_OPERATION = 0x506
	INVALID_OPERATION             = 0x502
	INVALID_VALUE                 = 0x501
	LINES                         = 0x1
	LINE_LOOP                     = 0x2
	LINE_SMOOTH                   = 0xb20
	LINE_STRIP                    = 0x3
	LINK_STATUS                   = 0x8b82
	MAJOR_VERSION                 = 0x821b
	MAX_TEXTURE_SIZE              = 0xd33
	MAX_VERTEX_ATTRIBS            = 0x8869
	MINOR_VERSION                 = 0x821c
	MULTISAMPLE                   = 0x809d
	NO_ERROR                      = 0x0
	NUM_EXTENSIONS                = 0x821d
	OUT_OF_MEMORY                 = 0x505
	PIXEL_PACK_BUFFER             = 0x88eb
	PIXEL_UNPACK_BUFFER           = 0x88ec
	POINTS                        = 0x0
	POLYGON_OFFSET_FILL           = 0x8037
	POLYGON_OFFSET_LINE           = 0x2a02
	POLYGON_OFFSET_POINT          = 0x2a01
	POLYGON_SMOOTH                = 0xb41
	PRIMITIVE_RESTART             = 0x8f9d
	PROGRAM_POINT_SIZE            = 0x8642
	RASTERIZER_DISCARD            = 0x8c89
	READ_FRAMEBUFFER              = 0x8ca8
	READ_FRAMEBUFFER_BINDING      = 0x8caa
	RED                           = 0x1903
	RENDERBUFFER                  = 0x8d41
	RENDERER                      = 0x1f01
	RGB                           = 0x1907
	RGBA                          = 0x1908
	RGBA8                         = 0x8058
	SAMPLE_ALPHA_TO_COVERAGE      = 0x809e
	SAMPLE_ALPHA_TO_ONE           = 0x809f
	SAMPLE_COVERAGE               = 0x80a0
	SAMPLE_MASK                   = 0x8e51
	SAMPLE_SHADING                = 0x8c36
	SCISSOR_TEST                  = 0xc11
	SHADING_LANGUAGE_VERSION      = 0x8b8c
	SHORT                         = 0x1402
	STACK_OVERFLOW                = 0x503
	STACK_UNDERFLOW               = 0x504
	STATIC_DRAW                   = 0x88e4
	STENCIL_BUFFER_BIT            = 0x400
	STENCIL_TEST                  = 0xb90
	STREAM_DRAW                   = 0x88e0
	TEXTURE_BUFFER                = 0x8c2a
	TEXTURE_CUBE_MAP_SEAMLESS     = 0x884f
	TIMESTAMP                     = 0x8e28
	TRANSFORM_FEEDBACK_BUFFER     = 0x8c8e
	TRIANGLES                     = 0x4
	TRIANGLE_FAN                  = 0x6
	TRIANGLE_STRIP                = 0x5
	TRUE                          = 1
	UNIFORM_BUFFER                = 0x8a11
	UNSIGNED_BYTE                 = 0x1401
	UNSIGNED_INT                  = 0x1405
	UNSIGNED_SHORT                = 0x1403
	VENDOR                        = 0x1f00
	VERSION                       = 0x1f02
	VERTEX_ARRAY_BINDING          = 0x85b5
	VERTEX_SHADER                 = 0x8b31
	VIEWPORT                      = 0xba2
)
