// Package resample maps (brand, family) pairs to leaf resamplers. The
// native brand is golang.org/x/image/draw; the custom brand fans out to
// the third-party engine best suited to each kernel family.
package resample

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/resample/bild"
	"github.com/srlehn/rescale/resample/gift"
	"github.com/srlehn/rescale/resample/imaging"
	"github.com/srlehn/rescale/resample/nfnt"
	"github.com/srlehn/rescale/resample/rez"
	"github.com/srlehn/rescale/resample/xdraw"
	"github.com/srlehn/rescale/scale"
)

// For returns a fresh leaf scaler executing family under brand. Callers
// composing two operands must call For twice; operands are always
// distinct instances.
func For(b scale.Brand, f scale.Family) (scale.Scaler, error) {
	switch b {
	case scale.Native:
		return xdraw.New(f)
	case scale.Custom:
		return Custom(f)
	}
	return nil, errors.Errorf(`%w: %d`, consts.ErrUnknownBrand, int(b))
}

// Custom picks the third-party engine per family: bild's integer loop for
// nearest, rez's SIMD kernels for bilinear/bicubic, nfnt for Mitchell,
// imaging for Lanczos, and for box either imaging (sequential) or gift
// (internally parallel) depending on the pool handed in at scale time.
func Custom(f scale.Family) (scale.Scaler, error) {
	switch f {
	case scale.Nearest:
		return bild.New(f)
	case scale.Box:
		seq, err := imaging.New(f)
		if err != nil {
			return nil, err
		}
		par, err := gift.New(f)
		if err != nil {
			return nil, err
		}
		return &poolSwitch{seq: seq, par: par}, nil
	case scale.Bilinear, scale.Bicubic:
		return rez.New(f)
	case scale.Mitchell:
		return nfnt.New(f)
	case scale.Lanczos:
		return imaging.New(f)
	}
	return nil, errors.Errorf(`%w: no custom engine for family %s`, consts.ErrConfiguration, f)
}

// Fast returns the cheap native pre-reduction scaler used by the
// decomposition wrappers.
func Fast() scale.Scaler { return xdraw.Fast() }

// poolSwitch picks its operand at scale time depending on whether a pool
// is present.
type poolSwitch struct {
	seq, par scale.Scaler
}

var _ scale.Scaler = (*poolSwitch)(nil)

func (ps *poolSwitch) Scale(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if ps == nil || ps.seq == nil || ps.par == nil {
		return errors.NilReceiver()
	}
	if p.Workers() > 1 {
		return ps.par.Scale(dst, src, p)
	}
	return ps.seq.Scale(dst, src, p)
}
