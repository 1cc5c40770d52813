package analysis

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 64 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 80, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestPrepareImagePassThrough(t *testing.T) {
	original := encodeJPEG(t, 1024, 768)
	out, mime, err := PrepareImage(original, "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", mime)
	require.Equal(t, original, out, "images within the cap must not be re-encoded")
}

func TestPrepareImageDownscalesLandscape(t *testing.T) {
	out, mime, err := PrepareImage(encodeJPEG(t, 4096, 2048), "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", mime)

	w, h := decodeSize(t, out)
	require.Equal(t, 2048, w)
	require.Equal(t, 1024, h)
}

func TestPrepareImageDownscalesPortraitPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1500, 3000))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out, mime, err := PrepareImage(buf.Bytes(), "image/png")
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", mime, "downscaled output is always JPEG")

	w, h := decodeSize(t, out)
	require.Equal(t, 1024, w)
	require.Equal(t, 2048, h)
}

func TestPrepareImageRejectsGarbage(t *testing.T) {
	_, _, err := PrepareImage([]byte("not an image"), "image/jpeg")
	require.ErrorIs(t, err, ErrImageLoad)
}

func TestTargetSizeRounding(t *testing.T) {
	w, h := TargetSize(3000, 2000)
	require.Equal(t, 2048, w)
	require.Equal(t, 1365, h)

	w, h = TargetSize(2000, 3000)
	require.Equal(t, 1365, w)
	require.Equal(t, 2048, h)
}

func TestDataURLRoundTrip(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0x00}
	url := EncodeDataURL("image/jpeg", payload)

	mime, data, err := ParseDataURL(url)
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", mime)
	require.Equal(t, payload, data)
}

func TestParseDataURLRejectsPlainText(t *testing.T) {
	_, _, err := ParseDataURL("hello")
	require.Error(t, err)

	_, _, err = ParseDataURL("data:image/jpeg,rawbytes")
	require.Error(t, err)
}
