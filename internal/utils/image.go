package utils

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ProcessedImage is an upload ready to hand to a storage provider.
type ProcessedImage struct {
	Data        []byte
	ContentType string
	Extension   string
	Dimensions  ImageDimensions
}

func IsValidImageFormat(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

// FitDimensions scales width x height down to fit inside maxWidth x maxHeight
// keeping the aspect ratio. Images already inside the box are unchanged.
func FitDimensions(width, height, maxWidth, maxHeight uint) (uint, uint) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	widthRatio := float64(maxWidth) / float64(width)
	heightRatio := float64(maxHeight) / float64(height)

	if widthRatio < heightRatio {
		return maxWidth, uint(float64(height) * widthRatio)
	}
	return uint(float64(width) * heightRatio), maxHeight
}

// PrepareCarImage decodes an uploaded picture, downsizes it to the bounding
// box and re-encodes it. PNG stays PNG, everything else becomes JPEG.
func PrepareCarImage(r io.Reader, filename string, maxWidth, maxHeight uint, quality int) (*ProcessedImage, error) {
	if !IsValidImageFormat(filename) {
		return nil, ErrUnsupportedImage
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, ErrUnsupportedImage
	}

	bounds := img.Bounds()
	newWidth, newHeight := FitDimensions(uint(bounds.Dx()), uint(bounds.Dy()), maxWidth, maxHeight)
	if newWidth != uint(bounds.Dx()) || newHeight != uint(bounds.Dy()) {
		img = resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	out := &ProcessedImage{
		Dimensions: ImageDimensions{Width: int(newWidth), Height: int(newHeight)},
	}

	if format == "png" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
		out.ContentType = "image/png"
		out.Extension = ".png"
	} else {
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
		out.ContentType = "image/jpeg"
		out.Extension = ".jpg"
	}

	out.Data = buf.Bytes()
	return out, nil
}
