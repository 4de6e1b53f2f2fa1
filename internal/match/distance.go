package match

import "math"

// EuclideanDistance computes the Euclidean distance between two
// descriptors. The recognizer guarantees fixed-length output, so a
// length mismatch is an internal invariant violation; it returns +Inf,
// which can never satisfy any threshold.
func EuclideanDistance(a, b Descriptor) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.Inf(1)
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
