// Package match implements the face comparison pipeline: descriptor
// extraction memoized per image reference, and the distance-threshold
// decision whether two faces belong to the same person.
package match

// DescriptorLength is the dimensionality of the dlib face descriptor.
const DescriptorLength = 128

// Descriptor is a fixed-length numeric vector summarizing a detected
// face's identity-relevant features.
type Descriptor []float32

// Detection is the outcome of running the recognizer on one image:
// either a descriptor, or no face found. "No face" is a valid result,
// not an error.
type Detection struct {
	Found      bool
	Descriptor Descriptor
}

// Detected builds a positive detection.
func Detected(desc Descriptor) Detection {
	return Detection{Found: true, Descriptor: desc}
}

// NotDetected is the result for an image without a recognizable face.
var NotDetected = Detection{}

// Recognizer produces a single-face detection from normalized JPEG
// bytes. Implementations run detection, landmarking and descriptor
// extraction in one pass.
type Recognizer interface {
	ExtractDescriptor(jpegData []byte) (Detection, error)
}
