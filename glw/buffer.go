package glw

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// FloatBuffer is an array buffer of float32 vertex data.
type FloatBuffer struct {
	Buffer uint32
	count  int
	size   int // bytes allocated on the gpu
	usage  uint32
}

func (buf *FloatBuffer) Create(usage uint32, data []float32) {
	buf.usage = usage
	gl.GenBuffers(1, &buf.Buffer)
	buf.Bind()
	buf.Update(data)
}

func (buf *FloatBuffer) Delete() { gl.DeleteBuffers(1, &buf.Buffer) }
func (buf FloatBuffer) Bind()    { gl.BindBuffer(gl.ARRAY_BUFFER, buf.Buffer) }
func (buf FloatBuffer) Unbind()  { gl.BindBuffer(gl.ARRAY_BUFFER, 0) }

// Len returns number of floats last uploaded.
func (buf FloatBuffer) Len() int { return buf.count }

// Draw issues mode over the uploaded data where each vertex is n floats wide.
func (buf FloatBuffer) Draw(mode uint32, n int) { gl.DrawArrays(mode, 0, int32(buf.count/n)) }

// Update uploads data to the bound buffer, reusing gpu storage when it fits.
func (buf *FloatBuffer) Update(data []float32) {
	buf.count = len(data)
	if len(data) == 0 {
		return
	}
	n := len(data) * 4
	if n <= buf.size {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, n, gl.Ptr(data))
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, n, gl.Ptr(data), buf.usage)
	buf.size = n
}
