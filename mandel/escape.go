// Package mandel classifies points of the complex plane by escape time and
// renders a viewport into a packed pixel buffer in parallel.
package mandel

// escapeRadius2 is the squared escape radius.
const escapeRadius2 = 4.0

// EscapeTime iterates z = z*z + c from z = 0 at most n times. It returns the
// iteration after which |z| first reached 2, or n with escaped=false when the
// orbit stayed bounded for the whole budget.
func EscapeTime(cr, ci float64, n uint) (iter uint, escaped bool) {
	var zr, zi float64
	for iter < n {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		iter++
		if zr*zr+zi*zi >= escapeRadius2 {
			return iter, true
		}
	}
	return iter, false
}

// Member reports whether c stays bounded for n iterations. A zero budget
// classifies every point as a member.
func Member(cr, ci float64, n uint) bool {
	_, escaped := EscapeTime(cr, ci, n)
	return !escaped
}
