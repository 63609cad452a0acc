package glw

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Matrices here are column-major as uploaded to GL; m[12], m[13], m[14] is translation.

// Ortho returns projection of box [l,r]×[b,t]×[-n,-f] onto normalized device coordinates.
func Ortho(l, r, b, t, n, f float32) f32.Mat4 {
	return f32.Mat4{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -2 / (f - n), 0,
		-(r + l) / (r - l), -(t + b) / (t - b), -(f + n) / (f - n), 1,
	}
}

func string16fv(a f32.Mat4) string {
	return fmt.Sprintf("%+.2f %+.2f %+.2f %+.2f\n%+.2f %+.2f %+.2f %+.2f\n%+.2f %+.2f %+.2f %+.2f\n%+.2f %+.2f %+.2f %+.2f",
		a[0], a[4], a[8], a[12], a[1], a[5], a[9], a[13], a[2], a[6], a[10], a[14], a[3], a[7], a[11], a[15])
}
