package rating

// Band is the qualitative bucket for a 0-100 skin or product score.
type Band string

const (
	BandGreat Band = "Great"
	BandGood  Band = "Good"
	BandOK    Band = "OK"
	BandFair  Band = "Fair"
	BandPoor  Band = "Poor"
)

// thresholds are evaluated top-down, first match wins. Scores below zero
// fall through to Poor and scores above 100 resolve to Great; Classify
// never clamps so that callers see exactly what they stored.
var thresholds = []struct {
	min  float64
	band Band
}{
	{80, BandGreat},
	{60, BandGood},
	{40, BandOK},
	{20, BandFair},
}

// Classify maps a numeric score to its band. Total and side-effect free.
func Classify(score float64) Band {
	for _, t := range thresholds {
		if score >= t.min {
			return t.band
		}
	}
	return BandPoor
}

// Clamp bounds a score to [0,100] for persistence paths that must not
// store out-of-range values. Classify itself intentionally does not clamp.
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Delta returns the signed change between the current and previous score.
func Delta(current, previous float64) float64 {
	return current - previous
}
