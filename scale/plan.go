package scale

import (
	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/surface"
)

// Plan is the execution plan for one resize: which brand performs the
// pixel math and which intermediate extended types, if any, the source and
// destination sides must be converted through first. surface.None means
// the surface is used as-is.
type Plan struct {
	SrcConvert surface.Type
	Brand      Brand
	DstConvert surface.Type
}

// Policy maps a use case and the parallel flag to the brand empirically
// fastest or most accurate for it. A policy must return a valid brand for
// every member of the cross-product; coverage is verified when the
// selector is built.
type Policy func(u UseCase, parallel bool) Brand

// Selector holds the brand tables, built once and immutable afterwards.
// Identical inputs always yield an identical plan.
type Selector struct {
	seq []Brand // indexed by UseCase.Index, sequential execution
	par []Brand // same, parallel execution
}

// SelectorOption configures NewSelector.
type SelectorOption func(*selectorConfig)

type selectorConfig struct {
	policy Policy
}

// WithPolicy replaces the default brand policy, e.g. after re-tuning on
// different hardware.
func WithPolicy(p Policy) SelectorOption {
	return func(cfg *selectorConfig) { cfg.policy = p }
}

// NewSelector builds the dense brand tables over the full use-case
// cross-product and verifies coverage. An entry the policy leaves invalid
// fails construction immediately rather than on first lookup.
func NewSelector(opts ...SelectorOption) (*Selector, error) {
	cfg := selectorConfig{policy: DefaultPolicy}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.policy == nil {
		return nil, errors.Errorf(`%w: nil brand policy`, consts.ErrConfiguration)
	}
	s := &Selector{
		seq: make([]Brand, NumUseCases()),
		par: make([]Brand, NumUseCases()),
	}
	var buildErr error
	UseCases(func(u UseCase) {
		if buildErr != nil {
			return
		}
		idx, err := u.Index()
		if err != nil {
			buildErr = err
			return
		}
		for _, parallel := range []bool{false, true} {
			b := cfg.policy(u, parallel)
			if !b.Valid() {
				buildErr = errors.Errorf(`%w: policy returned %d for %v (parallel=%v)`,
					consts.ErrUnmappedUseCase, int(b), u, parallel)
				return
			}
			if parallel {
				s.par[idx] = b
			} else {
				s.seq[idx] = b
			}
		}
	})
	if buildErr != nil {
		return nil, buildErr
	}
	return s, nil
}

// Plan returns the execution plan for the given use case. A use case
// outside the tables is a fatal configuration error, never a silent
// default.
func (s *Selector) Plan(u UseCase, parallel bool) (Plan, error) {
	if s == nil {
		return Plan{}, errors.New(consts.ErrNilReceiver)
	}
	idx, err := u.Index()
	if err != nil {
		return Plan{}, err
	}
	table := s.seq
	if parallel {
		table = s.par
	}
	if idx < 0 || idx >= len(table) {
		return Plan{}, errors.Errorf(`%w: index %d of %d`, consts.ErrUnmappedUseCase, idx, len(table))
	}
	plan := Plan{SrcConvert: surface.None, Brand: table[idx], DstConvert: surface.None}
	if plan.Brand == Custom && usesRez(u.Family) {
		plan.SrcConvert, plan.DstConvert = rezConversions(u.Src, u.Dst)
	}
	return plan, nil
}

// usesRez reports the families the resample package hands to the rez
// engine, the only custom engine with format restrictions.
func usesRez(f Family) bool { return f == Bilinear || f == Bicubic }

// rezDirect reports the extended types rez resamples in place, without an
// intermediate. Source and destination must also agree.
func rezDirect(t surface.Type) bool {
	switch t {
	case surface.NRGBA, surface.RGBA, surface.Gray:
		return true
	}
	return false
}

// rezConversions picks the smallest-cost intermediate representation for
// a rez resize: none when both sides are directly supported and agree,
// otherwise 32-bit premultiplied RGBA on the sides that need it.
func rezConversions(src, dst surface.Type) (srcConv, dstConv surface.Type) {
	srcConv, dstConv = surface.None, surface.None
	if src == dst && rezDirect(src) {
		return srcConv, dstConv
	}
	if src != surface.RGBA {
		srcConv = surface.RGBA
	}
	if dst != surface.RGBA {
		dstConv = surface.RGBA
	}
	return srcConv, dstConv
}

// DefaultPolicy is the tuned brand table. The reasoning, in short:
//   - Box, Mitchell and Lanczos kernels do not exist in x/image/draw.
//   - rez's SIMD bilinear/bicubic wins sequentially at modest ratios on
//     the 8-bit formats it reads directly; at wilder ratios the resize is
//     decomposed and the conversion overhead eats the gain, and under a
//     pool the native path wins because it bands across the workers.
//   - Nearest downscaling at large ratios goes to bild's integer loop;
//     everything else nearest stays native.
func DefaultPolicy(u UseCase, parallel bool) Brand {
	switch u.Family {
	case Box, Mitchell, Lanczos:
		return Custom
	case Nearest:
		if !parallel && u.Dir == DirDown && u.Mag.MinRatio() >= 3 {
			return Custom
		}
		return Native
	case Bilinear, Bicubic:
		if parallel {
			return Native
		}
		if u.Mag.MinRatio() >= 3 {
			return Native
		}
		if eightBit(u.Src) && eightBit(u.Dst) {
			return Custom
		}
		return Native
	}
	return Native
}

func eightBit(t surface.Type) bool {
	switch t {
	case surface.NRGBA, surface.RGBA, surface.Gray, surface.YCbCr:
		return true
	}
	return false
}
