// Package glw draws scene frames with OpenGL 4.1 core.
//
// A GL context must be current on the calling thread and gl.Init called before
// any function here that touches GL.
package glw

import (
	"io"
	"log"
	"os"

	"dasa.cc/interact/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var logger = log.New(os.Stderr, "glw: ", 0)

// SetLogOutput redirects package logging; io.Discard silences it.
func SetLogOutput(w io.Writer) { logger.SetOutput(w) }

const vsrc = `#version 410 core
uniform mat4 proj;
in vec2 vert;
in vec3 color;
out vec3 fcolor;

void main() {
	fcolor = color;
	gl_Position = proj * vec4(vert, 0.0, 1.0);
}`

const fsrc = `#version 410 core
in vec3 fcolor;
out vec4 outColor;

void main() {
	outColor = vec4(fcolor, 1.0);
}`

// stride is floats per vertex: x, y, r, g, b.
const stride = 5

// Renderer presents scene frames. Zero value is ready for Create.
type Renderer struct {
	prg   Program
	Proj  U16fv
	Vert  A2fv
	Color A3fv

	vao   uint32
	buf   FloatBuffer
	verts []float32
}

// Create builds the shader program and vertex storage.
func (r *Renderer) Create() error {
	logger.Printf("%s, glsl %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	if err := r.prg.Install(vsrc, fsrc); err != nil {
		return err
	}
	r.prg.Unmarshal(r)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	r.buf.Create(gl.DYNAMIC_DRAW, nil)
	r.Vert.Pointer(stride*4, 0)
	r.Color.Pointer(stride*4, 2*4)
	return nil
}

// Resize sets the GL viewport to the framebuffer size in pixels and projects
// world coordinates of vp onto it.
func (r *Renderer) Resize(fbw, fbh int, vp scene.Viewport) {
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	r.Proj.Ortho(0, float32(vp.Width), 0, float32(vp.Height), -1, 1)
	logger.Printf("resize framebuffer %vx%v viewport %vx%v proj\n%v", fbw, fbh, vp.Width, vp.Height, r.Proj)
}

// Draw clears to frame background and draws every quad in order. The caller
// presents by swapping buffers.
func (r *Renderer) Draw(frame scene.Frame) {
	bg := frame.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.verts = Triangles(r.verts[:0], frame.Quads)
	gl.BindVertexArray(r.vao)
	r.buf.Bind()
	r.buf.Update(r.verts)
	r.buf.Draw(gl.TRIANGLES, stride)
}

// Delete releases GL objects.
func (r *Renderer) Delete() {
	gl.BindVertexArray(r.vao)
	r.Vert.Disable()
	r.Color.Disable()
	gl.BindVertexArray(0)
	r.buf.Delete()
	gl.DeleteVertexArrays(1, &r.vao)
	r.prg.Delete()
}

// Triangles appends two triangles per quad to dst as interleaved x, y, r, g, b.
func Triangles(dst []float32, quads []scene.Quad) []float32 {
	for _, q := range quads {
		c := q.Color
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			v := q.Verts[i]
			dst = append(dst, v[0], v[1], c[0], c[1], c[2])
		}
	}
	return dst
}
