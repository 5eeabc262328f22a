// Package rom handles reading and writing the binary image file.
//
// The image is treated as a flat addressable byte buffer; no attempt is made
// to validate that it is a legitimate or complete game image. Whether the
// declared offset groups fit the buffer is checked by the patch pipeline.
package rom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Image is a binary image loaded into memory.
type Image struct {
	data []byte
	path string
}

// Load reads the file at path into memory.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return &Image{data: data, path: path}, nil
}

// New wraps an in-memory buffer as an Image. The buffer is not copied.
func New(data []byte) *Image {
	return &Image{data: data}
}

// Bytes returns the underlying buffer. Mutations are visible to the Image.
func (img *Image) Bytes() []byte {
	return img.data
}

// Len returns the buffer size in bytes.
func (img *Image) Len() int {
	return len(img.data)
}

// Path returns the file the image was loaded from, if any.
func (img *Image) Path() string {
	return img.path
}

// Save writes the buffer to path, creating or truncating the file.
func (img *Image) Save(path string) error {
	if err := os.WriteFile(path, img.data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// OutputPath derives an output file name by appending suffix before the
// input's extension: "zelda.sfc" with suffix "-rand-pal" becomes
// "zelda-rand-pal.sfc".
func OutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}
