// Package surface classifies pixel buffers into the extended-type catalog
// used by the dispatch tables and constructs intermediate buffers.
//
// An extended type is a pixel format together with its alpha
// premultiplication state. The stdlib image package already encodes both
// in the concrete type, so the catalog is an enum over those types plus a
// Generic catch-all for everything else.
package surface

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
)

// Type identifies one (pixel format, premultiplication) pair from the
// catalog. Valid catalog values are the constants below; None is the
// out-of-catalog sentinel used for "no conversion required".
type Type int

const (
	NRGBA   Type = iota // 8-bit RGBA, straight alpha
	RGBA                // 8-bit RGBA, premultiplied
	NRGBA64             // 16-bit RGBA, straight alpha
	RGBA64              // 16-bit RGBA, premultiplied
	Gray
	Gray16
	YCbCr   // source only, subsampled planes have no Set
	Generic // any other image.Image

	numTypes
)

// None marks the absence of an intermediate-conversion requirement.
const None Type = -1

// NumTypes is the catalog cardinality. Radices of the use-case encoding
// are derived from it, never hard-coded.
func NumTypes() int { return int(numTypes) }

func (t Type) String() string {
	switch t {
	case NRGBA:
		return `nrgba`
	case RGBA:
		return `rgba`
	case NRGBA64:
		return `nrgba64`
	case RGBA64:
		return `rgba64`
	case Gray:
		return `gray`
	case Gray16:
		return `gray16`
	case YCbCr:
		return `ycbcr`
	case Generic:
		return `generic`
	case None:
		return `none`
	}
	return `invalid`
}

// Valid reports whether t is a catalog member.
func (t Type) Valid() bool { return t >= 0 && t < numTypes }

// Premultiplied reports the alpha representation of the catalog entry.
// Opaque formats count as premultiplied.
func (t Type) Premultiplied() bool {
	switch t {
	case RGBA, RGBA64, Gray, Gray16, YCbCr:
		return true
	}
	return false
}

// Constructible reports whether New can allocate a destination of type t.
func (t Type) Constructible() bool {
	switch t {
	case NRGBA, RGBA, NRGBA64, RGBA64, Gray, Gray16:
		return true
	}
	return false
}

// TypeOf classifies an image into the catalog. Unknown concrete types,
// including arbitrary caller-provided draw.Image implementations, map to
// Generic.
func TypeOf(img image.Image) Type {
	switch img.(type) {
	case *image.NRGBA:
		return NRGBA
	case *image.RGBA:
		return RGBA
	case *image.NRGBA64:
		return NRGBA64
	case *image.RGBA64:
		return RGBA64
	case *image.Gray:
		return Gray
	case *image.Gray16:
		return Gray16
	case *image.YCbCr:
		return YCbCr
	}
	return Generic
}

// New allocates a w×h surface of extended type t with its origin at
// (0, 0). Only constructible catalog entries are supported.
func New(t Type, w, h int) (draw.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf(`%w: %dx%d`, consts.ErrBadSpan, w, h)
	}
	r := image.Rect(0, 0, w, h)
	switch t {
	case NRGBA:
		return image.NewNRGBA(r), nil
	case RGBA:
		return image.NewRGBA(r), nil
	case NRGBA64:
		return image.NewNRGBA64(r), nil
	case RGBA64:
		return image.NewRGBA64(r), nil
	case Gray:
		return image.NewGray(r), nil
	case Gray16:
		return image.NewGray16(r), nil
	}
	return nil, errors.Errorf(`%w: %s`, consts.ErrUnsupportedType, t)
}

// NewLike allocates a w×h surface of the same extended type as img.
// Types that cannot back a destination fall back to 32-bit premultiplied
// RGBA.
func NewLike(img image.Image, w, h int) (draw.Image, error) {
	t := TypeOf(img)
	if !t.Constructible() {
		t = RGBA
	}
	return New(t, w, h)
}

// Spans returns the pixel extents of img.
func Spans(img image.Image) (w, h int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// CheckSpans rejects empty surfaces before any allocation happens.
func CheckSpans(imgs ...image.Image) error {
	for _, img := range imgs {
		if img == nil {
			return errors.New(consts.ErrNilImage)
		}
		if w, h := Spans(img); w <= 0 || h <= 0 {
			return errors.Errorf(`%w: %dx%d`, consts.ErrBadSpan, w, h)
		}
	}
	return nil
}
