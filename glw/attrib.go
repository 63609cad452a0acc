package glw

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/math/f32"
)

// A2fv is a vec2 attribute location.
type A2fv uint32

func (a A2fv) Enable()  { gl.EnableVertexAttribArray(uint32(a)) }
func (a A2fv) Disable() { gl.DisableVertexAttribArray(uint32(a)) }

// Pointer enables a and reads it from the bound buffer at byte offset of each stride.
func (a A2fv) Pointer(stride, offset int) {
	a.Enable()
	gl.VertexAttribPointer(uint32(a), 2, gl.FLOAT, false, int32(stride), gl.PtrOffset(offset))
}

// A3fv is a vec3 attribute location.
type A3fv uint32

func (a A3fv) Enable()  { gl.EnableVertexAttribArray(uint32(a)) }
func (a A3fv) Disable() { gl.DisableVertexAttribArray(uint32(a)) }

// Pointer enables a and reads it from the bound buffer at byte offset of each stride.
func (a A3fv) Pointer(stride, offset int) {
	a.Enable()
	gl.VertexAttribPointer(uint32(a), 3, gl.FLOAT, false, int32(stride), gl.PtrOffset(offset))
}

// U16fv is a mat4 uniform location and the last matrix set.
type U16fv struct {
	Location int32
	m        f32.Mat4
}

// Set stores m and uploads it to the current program.
func (u *U16fv) Set(m f32.Mat4) {
	u.m = m
	u.Update()
}

func (u *U16fv) Update() { gl.UniformMatrix4fv(u.Location, 1, false, &u.m[0]) }

// Ortho sets an orthographic projection; see Ortho.
func (u *U16fv) Ortho(l, r, b, t, n, f float32) { u.Set(Ortho(l, r, b, t, n, f)) }

func (u U16fv) String() string { return string16fv(u.m) }
