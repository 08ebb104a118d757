// Package scale defines the capability contract shared by every resize
// component and the dispatch machinery that picks an execution plan for a
// concrete resize: the scaling classifier, the use-case indexer and the
// best-algorithm selector.
package scale

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/parallel"
)

// Scaler is the one capability everything composes over: leaf resamplers,
// decomposition scalers and the smart dispatcher all implement it.
//
// Scale reads src pixels only, writes every dst pixel exactly once and
// never reallocates either surface. With a non-nil pool it may subdivide
// the destination into disjoint regions and fan them out; it returns only
// after every destination pixel has been written. No cancellation, no
// retries, no partial success.
type Scaler interface {
	Scale(dst draw.Image, src image.Image, p *parallel.Pool) error
}

// Family selects the resampling kernel family. It is orthogonal to Brand:
// the same family may be executed by either implementation.
type Family int

const (
	Nearest Family = iota
	Box
	Bilinear
	Mitchell
	Bicubic // Catmull-Rom
	Lanczos

	numFamilies
)

// NumFamilies is the family cardinality used as an encoding radix.
func NumFamilies() int { return int(numFamilies) }

func (f Family) Valid() bool { return f >= 0 && f < numFamilies }

func (f Family) String() string {
	switch f {
	case Nearest:
		return `nearest`
	case Box:
		return `box`
	case Bilinear:
		return `bilinear`
	case Mitchell:
		return `mitchell`
	case Bicubic:
		return `bicubic`
	case Lanczos:
		return `lanczos`
	}
	return `invalid`
}

// ParseFamily maps a family name as printed by String back to its value.
func ParseFamily(s string) (Family, error) {
	for f := Family(0); f < numFamilies; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, errors.Errorf(`unknown algorithm family %q`, s)
}

// Brand names the underlying resampling engine that performs the pixel
// math for a plan.
type Brand int

const (
	// Native is golang.org/x/image/draw.
	Native Brand = iota
	// Custom covers the third-party engines (rez, imaging, gift, nfnt,
	// bild), picked per family by the resample package.
	Custom

	numBrands
)

func (b Brand) Valid() bool { return b >= 0 && b < numBrands }

func (b Brand) String() string {
	switch b {
	case Native:
		return `native`
	case Custom:
		return `custom`
	}
	return `invalid`
}

// CheckPair rejects nil or empty surfaces before any allocation.
func CheckPair(dst draw.Image, src image.Image) error {
	if dst == nil || src == nil {
		return errors.New(consts.ErrNilImage)
	}
	if w, h := dst.Bounds().Dx(), dst.Bounds().Dy(); w <= 0 || h <= 0 {
		return errors.Errorf(`%w: destination %dx%d`, consts.ErrBadSpan, w, h)
	}
	if w, h := src.Bounds().Dx(), src.Bounds().Dy(); w <= 0 || h <= 0 {
		return errors.Errorf(`%w: source %dx%d`, consts.ErrBadSpan, w, h)
	}
	return nil
}
