package mandel

// DefaultIterationLimit is the iteration cap used when none is configured.
const DefaultIterationLimit uint8 = 50

// EscapeRadiusSquared is the |z|² threshold past which a point has escaped.
const EscapeRadiusSquared = 4.0

// EscapeTime returns the escape time of c under z ← z² + c, starting at z = 0.
//
// The magnitude is tested before each update, so the result is the number of
// updates applied before |z|² was first seen above [EscapeRadiusSquared].
// A point that has not escaped after limit tests yields 0, the same value a
// point escaping on the first test would give. Both render black.
func EscapeTime(c complex128, limit uint8) uint8 {
	var z complex128
	for i := uint8(0); i < limit; i++ {
		if re, im := real(z), imag(z); re*re+im*im > EscapeRadiusSquared {
			return i
		}
		z = z*z + c
	}
	return 0
}
