package smart_test

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/scale"
	"github.com/srlehn/rescale/smart"
	"github.com/srlehn/rescale/surface"
)

func randNRGBA(w, h int, seed int64) *image.NRGBA {
	rnd := rand.New(rand.NewSource(seed))
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = uint8(rnd.Intn(256))
	}
	return m
}

func uniformGray(w, h int, v uint8) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = v
	}
	return m
}

func TestNewRejectsInvalidFamily(t *testing.T) {
	_, err := smart.New(scale.Family(-1))
	assert.ErrorIs(t, err, consts.ErrConfiguration)
	_, err = smart.New(scale.Family(scale.NumFamilies()))
	assert.ErrorIs(t, err, consts.ErrConfiguration)
}

func TestNilReceiverScaleFails(t *testing.T) {
	var s *smart.Scaler
	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	err := s.Scale(dst, uniformGray(20, 20, 0), nil)
	assert.ErrorIs(t, err, consts.ErrNilReceiver)
}

func TestNewRejectsBadThresholds(t *testing.T) {
	_, err := smart.New(scale.Bilinear, smart.WithIterativeStepRatio(1))
	assert.ErrorIs(t, err, consts.ErrBadThreshold)
	_, err = smart.New(scale.Bilinear, smart.WithPreDownscaleRatio(0.5))
	assert.ErrorIs(t, err, consts.ErrBadThreshold)
	_, err = smart.New(scale.Bilinear,
		smart.WithIterativeStepRatio(1.5), smart.WithPreDownscaleRatio(3))
	assert.NoError(t, err)
}

func TestIdentityIsByteExact(t *testing.T) {
	for f := scale.Family(0); f.Valid(); f++ {
		s, err := smart.New(f)
		require.NoError(t, err)
		src := randNRGBA(40, 30, int64(f))
		dst := image.NewNRGBA(image.Rect(0, 0, 40, 30))
		require.NoError(t, s.Scale(dst, src, nil))
		assert.Equal(t, src.Pix, dst.Pix, `family %s`, f)
	}
}

func TestCrossTypeResizeThroughIntermediates(t *testing.T) {
	// gray into NRGBA forces the rez path through premultiplied RGBA on
	// both sides
	s, err := smart.New(scale.Bicubic)
	require.NoError(t, err)
	src := uniformGray(64, 64, 128)
	dst := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	require.NoError(t, s.Scale(dst, src, nil))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			px := dst.NRGBAAt(x, y)
			require.InDelta(t, 128, px.R, 1, `pixel %d,%d`, x, y)
			require.InDelta(t, 128, px.G, 1, `pixel %d,%d`, x, y)
			require.InDelta(t, 128, px.B, 1, `pixel %d,%d`, x, y)
			require.EqualValues(t, 255, px.A, `pixel %d,%d`, x, y)
		}
	}
}

func TestParallelMatchesSequentialNativePath(t *testing.T) {
	// 16-bit surfaces run native under either mode, so banding must not
	// change a single byte
	s, err := smart.New(scale.Bilinear)
	require.NoError(t, err)
	rnd := rand.New(rand.NewSource(7))
	src := image.NewNRGBA64(image.Rect(0, 0, 100, 80))
	for i := range src.Pix {
		src.Pix[i] = uint8(rnd.Intn(256))
	}
	seq := image.NewNRGBA64(image.Rect(0, 0, 50, 40))
	par := image.NewNRGBA64(image.Rect(0, 0, 50, 40))
	require.NoError(t, s.Scale(seq, src, nil))
	require.NoError(t, s.Scale(par, src, parallel.NewPool(5)))
	assert.Equal(t, seq.Pix, par.Pix)
}

func TestMixedDirectionResize(t *testing.T) {
	s, err := smart.New(scale.Nearest)
	require.NoError(t, err)
	src := randNRGBA(100, 200, 11)
	dst := image.NewNRGBA(image.Rect(0, 0, 50, 400))
	require.NoError(t, s.Scale(dst, src, nil))
	// upscaled rows duplicate, never blend, under nearest
	assert.Equal(t, dst.NRGBAAt(10, 100), dst.NRGBAAt(10, 101))
}

func TestExtremeDownscale(t *testing.T) {
	for _, f := range []scale.Family{scale.Bilinear, scale.Lanczos} {
		s, err := smart.New(f)
		require.NoError(t, err)
		src := uniformGray(900, 900, 200)
		dst := image.NewGray(image.Rect(0, 0, 50, 50))
		require.NoError(t, s.Scale(dst, src, nil))
		for i, v := range dst.Pix {
			require.InDelta(t, 200, v, 2, `family %s byte %d`, f, i)
		}
	}
}

func TestAllFamiliesAllDirectionsSmoke(t *testing.T) {
	sel, err := scale.NewSelector()
	require.NoError(t, err)
	src := randNRGBA(64, 48, 21)
	for f := scale.Family(0); f.Valid(); f++ {
		s, err := smart.New(f, smart.WithSelector(sel))
		require.NoError(t, err)
		for _, spans := range [][2]int{{32, 24}, {128, 96}, {32, 96}, {640, 480}, {5, 3}} {
			dst := image.NewNRGBA(image.Rect(0, 0, spans[0], spans[1]))
			require.NoError(t, s.Scale(dst, src, nil), `family %s dst %v`, f, spans)
			require.NoError(t, s.Scale(dst, src, parallel.NewPool(3)), `family %s dst %v parallel`, f, spans)
		}
	}
}

func TestRejectsEmptySurfaces(t *testing.T) {
	s, err := smart.New(scale.Bilinear)
	require.NoError(t, err)
	err = s.Scale(image.NewNRGBA(image.Rectangle{}), randNRGBA(4, 4, 1), nil)
	assert.ErrorIs(t, err, consts.ErrBadSpan)
}

func TestGenericSourceStaysNative(t *testing.T) {
	// CMYK is outside the catalog; the plan must come back without custom
	// conversions and still produce output
	s, err := smart.New(scale.Bilinear)
	require.NoError(t, err)
	src := image.NewCMYK(image.Rect(0, 0, 64, 64))
	require.Equal(t, surface.Generic, surface.TypeOf(src))
	dst := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	assert.NoError(t, s.Scale(dst, src, nil))
}
