package surface_test

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/rescale/internal/consts"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/surface"
)

func TestTypeOfCatalog(t *testing.T) {
	r := image.Rect(0, 0, 4, 4)
	for _, tc := range []struct {
		img image.Image
		t   surface.Type
	}{
		{image.NewNRGBA(r), surface.NRGBA},
		{image.NewRGBA(r), surface.RGBA},
		{image.NewNRGBA64(r), surface.NRGBA64},
		{image.NewRGBA64(r), surface.RGBA64},
		{image.NewGray(r), surface.Gray},
		{image.NewGray16(r), surface.Gray16},
		{image.NewYCbCr(r, image.YCbCrSubsampleRatio420), surface.YCbCr},
		{image.NewCMYK(r), surface.Generic},
		{image.NewAlpha(r), surface.Generic},
	} {
		assert.Equal(t, tc.t, surface.TypeOf(tc.img), `%T`, tc.img)
	}
}

func TestTypePremultiplied(t *testing.T) {
	assert.True(t, surface.RGBA.Premultiplied())
	assert.True(t, surface.RGBA64.Premultiplied())
	assert.False(t, surface.NRGBA.Premultiplied())
	assert.False(t, surface.NRGBA64.Premultiplied())
}

func TestNewConstructsCatalogTypes(t *testing.T) {
	for tt := surface.Type(0); tt.Valid(); tt++ {
		img, err := surface.New(tt, 8, 6)
		if !tt.Constructible() {
			require.Error(t, err, `%s`, tt)
			assert.ErrorIs(t, err, consts.ErrUnsupportedType)
			continue
		}
		require.NoError(t, err, `%s`, tt)
		assert.Equal(t, tt, surface.TypeOf(img))
		w, h := surface.Spans(img)
		assert.Equal(t, 8, w)
		assert.Equal(t, 6, h)
	}
}

func TestNewRejectsEmptySpans(t *testing.T) {
	_, err := surface.New(surface.NRGBA, 0, 10)
	assert.ErrorIs(t, err, consts.ErrBadSpan)
	_, err = surface.New(surface.NRGBA, 10, -1)
	assert.ErrorIs(t, err, consts.ErrBadSpan)
}

func TestNewLikeFallsBackToRGBA(t *testing.T) {
	src := image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio444)
	img, err := surface.NewLike(src, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, surface.RGBA, surface.TypeOf(img))
}

func TestConvertRejectsSpanMismatch(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src := image.NewNRGBA(image.Rect(0, 0, 5, 4))
	err := surface.Convert(dst, src, nil)
	assert.ErrorIs(t, err, consts.ErrSpanMismatch)
}

func randNRGBA(w, h int, seed int64) *image.NRGBA {
	rnd := rand.New(rand.NewSource(seed))
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = uint8(rnd.Intn(256))
	}
	return m
}

func TestConvertSameTypeIsByteExact(t *testing.T) {
	src := randNRGBA(33, 17, 1)
	dst := image.NewNRGBA(image.Rect(0, 0, 33, 17))
	require.NoError(t, surface.Convert(dst, src, nil))
	assert.Equal(t, src.Pix, dst.Pix)
}

func TestConvertParallelMatchesSequential(t *testing.T) {
	src := randNRGBA(64, 48, 2)
	seq := image.NewRGBA(image.Rect(0, 0, 64, 48))
	par := image.NewRGBA(image.Rect(0, 0, 64, 48))
	require.NoError(t, surface.Convert(seq, src, nil))
	require.NoError(t, surface.Convert(par, src, parallel.NewPool(4)))
	assert.Equal(t, seq.Pix, par.Pix)
}

func TestConvertGrayRoundTrip(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 3)
	}
	mid := image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, surface.Convert(mid, src, nil))
	back := image.NewGray(image.Rect(0, 0, 8, 8))
	require.NoError(t, surface.Convert(back, mid, nil))
	assert.Equal(t, src.Pix, back.Pix)
}

func TestConvertOffsetBounds(t *testing.T) {
	// sub-images put surface origins away from (0,0)
	base := randNRGBA(20, 20, 3)
	src := base.SubImage(image.Rect(5, 5, 15, 15)).(*image.NRGBA)
	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	require.NoError(t, surface.Convert(dst, src, nil))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := base.NRGBAAt(x+5, y+5)
			got := dst.NRGBAAt(x, y)
			require.Equal(t, want, got, `pixel %d,%d`, x, y)
		}
	}
}
