// Package smart provides the dispatching scaler: it classifies a resize,
// asks the selector for an execution plan, inserts the format conversions
// the plan demands, and runs the brand-selected leaf, wrapped in a
// decomposition scaler where the scaling situation calls for one.
package smart

import (
	"image"
	"log/slog"

	"golang.org/x/image/draw"

	"github.com/srlehn/rescale/compose"
	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/internal/logx"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/resample"
	"github.com/srlehn/rescale/scale"
	"github.com/srlehn/rescale/surface"
)

// Scaler dispatches resizes for one algorithm family. It is itself a
// scale.Scaler, so it can be wrapped by the compose package like any leaf.
type Scaler struct {
	family    scale.Family
	sel       *scale.Selector
	logger    *slog.Logger
	stepRatio float64 // iterative per-step bound
	preRatio  float64 // largest downscale left to the finishing leaf
}

var _ scale.Scaler = (*Scaler)(nil)

// Option configures a Scaler.
type Option func(*Scaler)

// WithLogger attaches a logger; chosen plans are reported at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scaler) { s.logger = logger }
}

// WithSelector shares a prebuilt selector instead of building one.
func WithSelector(sel *scale.Selector) Option {
	return func(s *Scaler) { s.sel = sel }
}

// WithIterativeStepRatio bounds the per-step shrink of iterative
// decomposition. Must be greater than 1.
func WithIterativeStepRatio(r float64) Option {
	return func(s *Scaler) { s.stepRatio = r }
}

// WithPreDownscaleRatio sets the largest downscale ratio handed to the
// finishing pass of pre-downscale decomposition. Must be at least 1.
func WithPreDownscaleRatio(r float64) Option {
	return func(s *Scaler) { s.preRatio = r }
}

// New returns a dispatching scaler for family.
func New(family scale.Family, opts ...Option) (*Scaler, error) {
	if !family.Valid() {
		return nil, errors.Errorf(`%w: family %d`, consts.ErrConfiguration, int(family))
	}
	s := &Scaler{
		family:    family,
		stepRatio: compose.DefaultMaxStepRatio,
		preRatio:  compose.DefaultMaxFinishRatio,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.stepRatio <= 1 {
		return nil, errors.Errorf(`%w: step ratio %v`, consts.ErrBadThreshold, s.stepRatio)
	}
	if s.preRatio < 1 {
		return nil, errors.Errorf(`%w: pre-downscale ratio %v`, consts.ErrBadThreshold, s.preRatio)
	}
	if s.sel == nil {
		sel, err := scale.NewSelector()
		if err != nil {
			return nil, err
		}
		s.sel = sel
	}
	return s, nil
}

func (s *Scaler) Scale(dst draw.Image, src image.Image, p *parallel.Pool) error {
	if s == nil || s.sel == nil {
		return errors.NilReceiver()
	}
	if err := scale.CheckPair(dst, src); err != nil {
		return err
	}
	sw, sh := surface.Spans(src)
	dw, dh := surface.Spans(dst)
	if sw == dw && sh == dh {
		// identity spans: a format-converting copy, byte-exact for
		// matching types
		return surface.Convert(dst, src, p)
	}
	srcType, dstType := surface.TypeOf(src), surface.TypeOf(dst)
	dir, mag := scale.Classify(sw, sh, dw, dh)
	u := scale.UseCase{Src: srcType, Dst: dstType, Family: s.family, Dir: dir, Mag: mag}
	plan, err := s.sel.Plan(u, p.Workers() > 1)
	if err != nil {
		return err
	}
	logx.Debug(`resize plan`, s.logger,
		`src`, srcType.String(), `dst`, dstType.String(),
		`family`, s.family.String(), `dir`, dir.String(), `mag`, int(mag),
		`brand`, plan.Brand.String(),
		`srcConvert`, plan.SrcConvert.String(), `dstConvert`, plan.DstConvert.String())

	effSrc := src
	if plan.SrcConvert != surface.None && plan.SrcConvert != srcType {
		tmp, err := surface.New(plan.SrcConvert, sw, sh)
		if err != nil {
			return err
		}
		if err := surface.Convert(tmp, src, p); err != nil {
			return err
		}
		effSrc = tmp
	}
	effDst := dst
	if plan.DstConvert != surface.None && plan.DstConvert != dstType {
		tmp, err := surface.New(plan.DstConvert, dw, dh)
		if err != nil {
			return err
		}
		effDst = tmp
	}

	impl, err := s.implFor(plan.Brand, dir, mag)
	if err != nil {
		return err
	}
	if err := impl.Scale(effDst, effSrc, p); err != nil {
		return err
	}
	if effDst != dst {
		return surface.Convert(dst, effDst, p)
	}
	return nil
}

// implFor builds the execution chain for one plan: the brand leaf, inside
// a decomposition wrapper when the classification asks for one.
func (s *Scaler) implFor(b scale.Brand, dir scale.Direction, mag scale.Magnitude) (scale.Scaler, error) {
	if !b.Valid() {
		return nil, errors.Errorf(`%w: %d`, consts.ErrUnknownBrand, int(b))
	}
	leaf, err := resample.For(b, s.family)
	if err != nil {
		return nil, err
	}
	switch dir {
	case scale.DirMixed:
		up, err := resample.For(b, s.family)
		if err != nil {
			return nil, err
		}
		return compose.NewSplitDownUp(leaf, up)
	case scale.DirDown:
		if !decomposable(s.family) {
			return leaf, nil
		}
		switch {
		case mag.MinRatio() >= 8:
			return compose.NewIterative(leaf, s.stepRatio)
		case mag.MinRatio() >= s.preRatio:
			return compose.NewPreDownscale(resample.Fast(), leaf, s.preRatio)
		}
	}
	return leaf, nil
}

// decomposable excludes the families whose kernels do not degrade at
// large downscale ratios: nearest has no kernel to alias and box already
// averages the full source area.
func decomposable(f scale.Family) bool {
	switch f {
	case scale.Nearest, scale.Box:
		return false
	}
	return true
}
