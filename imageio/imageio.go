// Package imageio reads and writes bitmap files and applies the small
// set of image adjustments exposed by the drawing surface.
package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	_ "image/gif" // register the decoders for Load
)

// Load reads an image file, sniffing the format from its content.
func Load(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decoding %s: %w", name, err)
	}
	return img, nil
}

// Save writes the image to a file, picking the encoder from the file
// extension. Supported: .png, .jpg, .jpeg, .bmp, .tiff, .tif.
func Save(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tiff", ".tif":
		err = tiff.Encode(f, img, nil)
	default:
		err = fmt.Errorf("imageio: unsupported image extension %q", filepath.Ext(name))
	}
	if err != nil {
		return err
	}
	return f.Close()
}

// Crop returns the part of img inside rect.
func Crop(img image.Image, rect image.Rectangle) *image.RGBA {
	return transform.Crop(img, rect)
}

// Resize scales img to width-by-height pixels.
func Resize(img image.Image, width, height int) *image.RGBA {
	return transform.Resize(img, width, height, transform.Linear)
}

// Grayscale returns the luminance version of img.
func Grayscale(img image.Image) *image.RGBA {
	return effect.Grayscale(img)
}

// FlipH mirrors img around its vertical axis.
func FlipH(img image.Image) *image.RGBA {
	return transform.FlipH(img)
}

// FlipV mirrors img around its horizontal axis.
func FlipV(img image.Image) *image.RGBA {
	return transform.FlipV(img)
}
