package match

// Verdict strings reported to clients.
const (
	VerdictMatch   = "Match"
	VerdictNoMatch = "No match"
)

// DefaultThreshold is the default maximum descriptor distance for two
// faces to count as the same person. Tunable via MATCH_THRESHOLD.
const DefaultThreshold = 0.6

// Result is the outcome of comparing two detections. Match is null
// exactly when at least one side had no recognizable face.
type Result struct {
	Match      *string `json:"match"`
	SamePerson bool    `json:"samePerson"`
}

// Compare decides whether two detections depict the same person.
// If either side has no face, the verdict is null and SamePerson is
// false regardless of the other side.
func Compare(a, b Detection, threshold float64) Result {
	if !a.Found || !b.Found {
		return Result{Match: nil, SamePerson: false}
	}

	samePerson := EuclideanDistance(a.Descriptor, b.Descriptor) < threshold

	verdict := VerdictNoMatch
	if samePerson {
		verdict = VerdictMatch
	}
	return Result{Match: &verdict, SamePerson: samePerson}
}
