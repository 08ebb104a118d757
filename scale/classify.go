package scale

// Direction is the scaling direction for a resize, resolved per axis and
// then combined. Axes disagreeing (one up, one down) is a situation of its
// own, not an error.
type Direction int

const (
	DirNone Direction = iota // identical spans
	DirUp
	DirDown
	DirMixed

	numDirections
)

// NumDirections is the direction cardinality used as an encoding radix.
func NumDirections() int { return int(numDirections) }

func (d Direction) Valid() bool { return d >= 0 && d < numDirections }

func (d Direction) String() string {
	switch d {
	case DirNone:
		return `none`
	case DirUp:
		return `up`
	case DirDown:
		return `down`
	case DirMixed:
		return `mixed`
	}
	return `invalid`
}

// Reference thresholds separating the magnitude buckets. Bucket i covers
// ratios in [thresholds[i-1], thresholds[i]); the last bucket is the
// open-ended catch-all. Strict < comparison keeps boundary ratios on a
// deterministic side.
var magnitudeThresholds = [...]float64{1.05, 1.25, 1.5, 2, 3, 4, 6, 8}

// Magnitude is the discrete bucket for the worst-case axis ratio
// max(src/dst, dst/src). Larger true ratios never map to a smaller bucket.
type Magnitude int

// NumMagnitudes is the bucket cardinality used as an encoding radix.
func NumMagnitudes() int { return len(magnitudeThresholds) + 1 }

func (m Magnitude) Valid() bool { return m >= 0 && int(m) < NumMagnitudes() }

// MinRatio returns the inclusive lower bound of the bucket. The zeroth
// bucket starts at 1 (a ratio is never below 1 by construction).
func (m Magnitude) MinRatio() float64 {
	if m <= 0 {
		return 1
	}
	if int(m) > len(magnitudeThresholds) {
		m = Magnitude(len(magnitudeThresholds))
	}
	return magnitudeThresholds[m-1]
}

// AxisRatio returns the true magnitude ratio of one axis, always >= 1.
func AxisRatio(srcSpan, dstSpan int) float64 {
	r := float64(srcSpan) / float64(dstSpan)
	if r < 1 {
		r = 1 / r
	}
	return r
}

// ClassifyMagnitude buckets a true ratio.
func ClassifyMagnitude(ratio float64) Magnitude {
	for i, th := range magnitudeThresholds {
		if ratio < th {
			return Magnitude(i)
		}
	}
	return Magnitude(len(magnitudeThresholds))
}

func classifyAxis(srcSpan, dstSpan int) Direction {
	switch {
	case dstSpan > srcSpan:
		return DirUp
	case dstSpan < srcSpan:
		return DirDown
	}
	return DirNone
}

func combineDirections(w, h Direction) Direction {
	switch {
	case w == h:
		return w
	case w == DirNone:
		return h
	case h == DirNone:
		return w
	}
	return DirMixed
}

// Classify resolves the 2-D scaling situation: per-axis directions
// combined into one, and the magnitude bucket of the worst-case axis.
func Classify(srcW, srcH, dstW, dstH int) (Direction, Magnitude) {
	dir := combineDirections(classifyAxis(srcW, dstW), classifyAxis(srcH, dstH))
	r := AxisRatio(srcW, dstW)
	if rh := AxisRatio(srcH, dstH); rh > r {
		r = rh
	}
	return dir, ClassifyMagnitude(r)
}
