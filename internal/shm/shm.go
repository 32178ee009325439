// Package shm describes the pixel formats that can be shared with a
// compositor through wl_shm.
package shm

import "fmt"

// Format is a wl_shm format code.
type Format uint32

// ARGB8888 and XRGB8888 have dedicated wl_shm codes and are the only
// formats every compositor must support. Any other format is a DRM
// fourcc code.
const (
	FormatARGB8888 Format = 0
	FormatXRGB8888 Format = 1
)

// BytesPerPixel returns the size of a single pixel in f.
func (f Format) BytesPerPixel() int {
	return 4
}

// Stride returns the length in bytes of a row of width pixels.
func (f Format) Stride(width int) int {
	return width * f.BytesPerPixel()
}

func (f Format) String() string {
	switch f {
	case FormatARGB8888:
		return "argb8888"
	case FormatXRGB8888:
		return "xrgb8888"
	default:
		return fmt.Sprintf("fourcc(%c%c%c%c)", byte(f), byte(f>>8), byte(f>>16), byte(f>>24))
	}
}
