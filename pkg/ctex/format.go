// Package ctex reads Godot 4.x compressed-texture (.ctex) container files
// and extracts the embedded image payload.
package ctex

import "fmt"

// Core format constants that never change
const (
	// Fixed header layout - part of the format specification.
	// The first 36 bytes and bytes 40..55 are opaque to this package.
	HeaderSize      = 56 // Full header, payload starts here
	FormatTagOffset = 36 // Little-endian uint32 format tag
	FormatTagSize   = 4

	// Canonical container extension
	ContainerExt = ".ctex"
)

// Format identifies the encoding of the embedded payload.
type Format uint32

// Known format tag values
const (
	FormatImage Format = 0 // IMAGE - generic/unknown image data
	FormatPNG   Format = 1 // PNG
	FormatWEBP  Format = 2 // WEBP
	FormatBasis Format = 3 // BASIS_UNIVERSAL compressed texture
)

// Ext returns the output file extension for the format, including the
// leading dot. Unrecognized tags keep their raw value in the extension
// rather than defaulting to a known format.
func (f Format) Ext() string {
	switch f {
	case FormatImage:
		return ".unknown"
	case FormatPNG:
		return ".png"
	case FormatWEBP:
		return ".webp"
	case FormatBasis:
		return ".basis"
	default:
		return fmt.Sprintf(".format%d", uint32(f))
	}
}

// Name returns the human-readable format name.
func (f Format) Name() string {
	switch f {
	case FormatImage:
		return "IMAGE"
	case FormatPNG:
		return "PNG"
	case FormatWEBP:
		return "WEBP"
	case FormatBasis:
		return "BASIS_UNIVERSAL"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint32(f))
	}
}

func (f Format) String() string {
	return f.Name()
}
