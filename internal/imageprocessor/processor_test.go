package imageprocessor

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return &buf
}

func TestProcessKeepsSmallImagesUntouchedInSize(t *testing.T) {
	p := NewProcessor(85, 800)

	out, err := p.Process(encodePNG(t, 200, 100))
	require.NoError(t, err)

	img, format, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestProcessDownscalesOversizedImages(t *testing.T) {
	p := NewProcessor(85, 800)

	out, err := p.Process(encodePNG(t, 1600, 1200))
	require.NoError(t, err)

	img, _, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestProcessDownscalesPortraitImages(t *testing.T) {
	p := NewProcessor(85, 800)

	out, err := p.Process(encodePNG(t, 1000, 2000))
	require.NoError(t, err)

	img, _, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestProcessPreservesJPEGFormat(t *testing.T) {
	p := NewProcessor(85, 800)

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 50, 50)), nil))

	out, err := p.Process(&buf)
	require.NoError(t, err)

	_, format, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestProcessRejectsNonImageBytes(t *testing.T) {
	p := NewProcessor(85, 800)

	_, err := p.Process(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}

func TestNewProcessorClampsBadSettings(t *testing.T) {
	p := NewProcessor(0, -1)
	assert.Equal(t, defaultQuality, p.quality)
	assert.Equal(t, defaultMaxDim, p.maxDim)
}
