package services_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/skins-api/internal/crypt"
)

func newCodec(t *testing.T) *crypt.Codec {
	t.Helper()
	codec, err := crypt.New("test-secret", "test-salt")
	require.NoError(t, err)
	return codec
}

func testImage(w, h int, seed uint8) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: seed, G: 10, B: 20, A: 255})
	return img
}

func pngBytes(t *testing.T, w, h int, seed uint8) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(w, h, seed)))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(w, h, 1), &jpeg.Options{Quality: 50}))
	return buf.Bytes()
}

// padTo appends zero bytes to data until it is size bytes long.
func padTo(t *testing.T, data []byte, size int) []byte {
	t.Helper()
	require.LessOrEqual(t, len(data), size)
	return append(data, make([]byte, size-len(data))...)
}
