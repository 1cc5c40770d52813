package analysis

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"math"
	"strings"

	// register the formats a browser upload can arrive in
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// maxDimension is the longest side an uploaded image may keep.
	maxDimension = 2048
	// jpegQuality matches the 0.85 lossy re-encode of the uploader.
	jpegQuality = 85
)

var (
	// ErrImageLoad indicates an unreadable image source.
	ErrImageLoad = errors.New("image could not be decoded")
	// ErrImageEncode indicates the downscaled image could not be re-encoded.
	ErrImageEncode = errors.New("image could not be re-encoded")
)

// ParseDataURL splits a base64 data URL into its mime type and bytes.
func ParseDataURL(value string) (string, []byte, error) {
	if !strings.HasPrefix(value, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}
	rest := strings.TrimPrefix(value, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("data URL is not base64 encoded")
	}
	mime := rest[:sep]
	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("decode data URL: %w", err)
	}
	return mime, data, nil
}

// EncodeDataURL renders bytes back into a base64 data URL.
func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// TargetSize scales (width, height) so the longer side becomes exactly
// maxDimension, preserving aspect ratio with rounding.
func TargetSize(width, height int) (int, int) {
	if width >= height {
		scale := float64(maxDimension) / float64(width)
		return maxDimension, int(math.Round(float64(height) * scale))
	}
	scale := float64(maxDimension) / float64(height)
	return int(math.Round(float64(width) * scale)), maxDimension
}

// PrepareImage enforces the upload contract: images already within the
// dimension cap pass through byte-identical; larger ones are downscaled
// proportionally and re-encoded as JPEG. The returned mime reflects the
// output encoding.
func PrepareImage(data []byte, mime string) ([]byte, string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrImageLoad, err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxDimension && height <= maxDimension {
		return data, mime, nil
	}

	dstW, dstH := TargetSize(width, height)
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrImageEncode, err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
