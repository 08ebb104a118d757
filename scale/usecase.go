package scale

import (
	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/internal/errors"
	"github.com/srlehn/rescale/surface"
)

// UseCase is one reachable combination of source/destination extended
// type, algorithm family and scaling direction/magnitude. It is a value
// computed fresh per call and used only as a lookup key.
type UseCase struct {
	Src, Dst surface.Type
	Family   Family
	Dir      Direction
	Mag      Magnitude
}

func (u UseCase) valid() bool {
	return u.Src.Valid() && u.Dst.Valid() && u.Family.Valid() && u.Dir.Valid() && u.Mag.Valid()
}

// Index encodes the use case as a dense non-negative integer, bijective
// over the full cross-product. The radices come from the live catalog
// cardinalities so growing a catalog can never silently introduce
// collisions.
func (u UseCase) Index() (int, error) {
	if !u.valid() {
		return 0, errors.Errorf(`%w: use case %v`, consts.ErrUnmappedUseCase, u)
	}
	idx := int(u.Src)
	idx = idx*surface.NumTypes() + int(u.Dst)
	idx = idx*NumFamilies() + int(u.Family)
	idx = idx*NumDirections() + int(u.Dir)
	idx = idx*NumMagnitudes() + int(u.Mag)
	return idx, nil
}

// NumUseCases is the size of the full cross-product, the exclusive upper
// bound of Index.
func NumUseCases() int {
	return surface.NumTypes() * surface.NumTypes() * NumFamilies() * NumDirections() * NumMagnitudes()
}

// UseCases calls fn for every member of the full cross-product in index
// order.
func UseCases(fn func(u UseCase)) {
	for src := surface.Type(0); int(src) < surface.NumTypes(); src++ {
		for dst := surface.Type(0); int(dst) < surface.NumTypes(); dst++ {
			for f := Family(0); int(f) < NumFamilies(); f++ {
				for d := Direction(0); int(d) < NumDirections(); d++ {
					for m := Magnitude(0); int(m) < NumMagnitudes(); m++ {
						fn(UseCase{Src: src, Dst: dst, Family: f, Dir: d, Mag: m})
					}
				}
			}
		}
	}
}
