package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

const (
	defaultQuality = 85
	defaultMaxDim  = 800
)

// Processor validates and normalizes uploaded profile photos. Anything
// that does not decode as an image is rejected; oversized images are
// downscaled to fit maxDim on the longer edge, keeping aspect ratio.
type Processor struct {
	quality int // JPEG quality (1-100)
	maxDim  int // longest allowed edge in pixels
}

func NewProcessor(quality, maxDim int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = defaultQuality
	}
	if maxDim <= 0 {
		maxDim = defaultMaxDim
	}
	return &Processor{
		quality: quality,
		maxDim:  maxDim,
	}
}

// Process decodes, downscales and re-encodes a photo in its original
// format. The returned reader holds the normalized bytes.
func (p *Processor) Process(reader io.Reader) (io.Reader, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img = p.downscale(img)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality})
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		// Animated uploads are flattened to their first frame.
		err = gif.Encode(&buf, img, nil)
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}

	return &buf, nil
}

// downscale shrinks the image so the longer edge fits maxDim. Smaller
// images pass through untouched.
func (p *Processor) downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= p.maxDim && height <= p.maxDim {
		return img
	}

	newWidth := p.maxDim
	newHeight := p.maxDim
	if width > height {
		newHeight = height * p.maxDim / width
	} else {
		newWidth = width * p.maxDim / height
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
