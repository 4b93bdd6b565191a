// Package interval provides half-open time span arithmetic for aligning
// independently produced diarization and transcription timelines.
//
// All values are seconds from the start of the audio. Intervals are
// half-open: [Start, End). Comparisons tolerate up to Epsilon of
// timestamp jitter, since the upstream models do not agree on boundaries
// to the millisecond.
package interval

// Epsilon is the timestamp jitter tolerance in seconds. Two intervals
// separated by a gap smaller than Epsilon are treated as abutting for
// assignment and merging purposes.
const Epsilon = 1e-3

// Interval is a half-open time span [Start, End) in seconds.
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// New creates an Interval. It does not validate; call Valid to check the
// End > Start invariant.
func New(start, end float64) Interval {
	return Interval{Start: start, End: end}
}

// Valid reports whether the interval satisfies Start >= 0 and End > Start.
func (iv Interval) Valid() bool {
	return iv.Start >= 0 && iv.End > iv.Start
}

// Duration returns End - Start.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// Overlaps reports whether the two intervals share a span of positive
// duration. Touching endpoints do not count as overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Intersect returns the intersection of the two intervals and whether a
// positive-duration intersection exists. Zero-length results count as no
// overlap.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
	start := iv.Start
	if other.Start > start {
		start = other.Start
	}
	end := iv.End
	if other.End < end {
		end = other.End
	}
	if end <= start {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// OverlapDuration returns the duration of the intersection, or 0 when the
// intervals do not overlap.
func (iv Interval) OverlapDuration(other Interval) float64 {
	inter, ok := iv.Intersect(other)
	if !ok {
		return 0
	}
	return inter.Duration()
}

// Near reports whether the two intervals overlap or their gap is smaller
// than Epsilon. This is the relation used when deciding which speaker
// turns are candidates for a transcript segment.
func (iv Interval) Near(other Interval) bool {
	return iv.Start < other.End+Epsilon && other.Start < iv.End+Epsilon
}

// AbutsWithin reports whether other starts within eps seconds of this
// interval's end (including small overlaps). Used by the merge step.
func (iv Interval) AbutsWithin(other Interval, eps float64) bool {
	return other.Start-iv.End < eps
}

// Union returns the smallest interval covering both inputs.
func (iv Interval) Union(other Interval) Interval {
	out := iv
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}
