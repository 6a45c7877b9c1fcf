// Package format holds the enumerated configuration values shared across
// vectree packages: how the tree reader materializes vector arrays and how
// the codec compresses packed vectors.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/vectree/errs"
)

type (
	VectorMode      uint8
	CompressionType uint8
)

// Vector output modes. The zero value disables vector detection entirely.
const (
	VectorGeneric       VectorMode = 0x0 // VectorGeneric reads vector arrays like any other array.
	VectorNativeFloats  VectorMode = 0x1 // VectorNativeFloats packs elements into a flat float32 sequence.
	VectorListOfNumbers VectorMode = 0x2 // VectorListOfNumbers builds an array of numeric nodes.
	VectorListOfStrings VectorMode = 0x3 // VectorListOfStrings keeps each element's source text as a string node.
	VectorSkip          VectorMode = 0x4 // VectorSkip consumes the array and yields a missing marker.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m VectorMode) String() string {
	switch m {
	case VectorGeneric:
		return "Generic"
	case VectorNativeFloats:
		return "NativeFloats"
	case VectorListOfNumbers:
		return "ListOfNumbers"
	case VectorListOfStrings:
		return "ListOfStrings"
	case VectorSkip:
		return "Skip"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the defined modes.
func (m VectorMode) Valid() bool {
	return m <= VectorSkip
}

// ParseVectorMode parses a mode name case-insensitively. Both the String()
// form ("NativeFloats") and the snake-case form ("native_floats") are accepted.
func ParseVectorMode(s string) (VectorMode, error) {
	switch strings.ReplaceAll(strings.ToLower(s), "_", "") {
	case "generic":
		return VectorGeneric, nil
	case "nativefloats", "arrayoffloats":
		return VectorNativeFloats, nil
	case "listofnumbers":
		return VectorListOfNumbers, nil
	case "listofstrings":
		return VectorListOfStrings, nil
	case "skip":
		return VectorSkip, nil
	default:
		return VectorGeneric, fmt.Errorf("%w: unknown vector mode %q", errs.ErrInvalidOption, s)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
