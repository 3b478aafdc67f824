package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		name     string
		cType    CompressionType
		expected string
	}{
		{name: "none compression", cType: CompressionNone, expected: "None"},
		{name: "zlib compression", cType: CompressionZlib, expected: "Zlib"},
		{name: "zstd compression", cType: CompressionZstd, expected: "Zstd"},
		{name: "lz4 compression", cType: CompressionLZ4, expected: "LZ4"},
		{name: "unknown compression", cType: CompressionType(0xFF), expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected CompressionType
	}{
		{
			name:     "zstd frame",
			data:     []byte{0x28, 0xb5, 0x2f, 0xfd, 0x00, 0x00},
			expected: CompressionZstd,
		},
		{
			name:     "lz4 frame",
			data:     []byte{0x04, 0x22, 0x4d, 0x18, 0x64, 0x40},
			expected: CompressionLZ4,
		},
		{
			name:     "zlib default level",
			data:     []byte{0x78, 0x9c, 0x01},
			expected: CompressionZlib,
		},
		{
			name:     "zlib fast level",
			data:     []byte{0x78, 0x5e, 0x01},
			expected: CompressionZlib,
		},
		{
			name:     "raw data",
			data:     []byte("hello world"),
			expected: CompressionNone,
		},
		{
			name:     "empty",
			data:     nil,
			expected: CompressionNone,
		},
		{
			name:     "bare zstd magic without frame body",
			data:     []byte{0x28, 0xb5, 0x2f, 0xfd},
			expected: CompressionNone,
		},
		{
			name:     "single signature byte",
			data:     []byte{0x78},
			expected: CompressionNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Detect(tt.data))
		})
	}
}
