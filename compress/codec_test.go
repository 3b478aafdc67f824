package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sqlar/format"
)

// generateTestData creates deterministic test data for the given
// compressibility class.
func generateTestData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "constant":
		// All zeros - maximum compression
		// data already initialized to zeros
	case "compressible":
		// Repeated pattern - good compression
		pattern := []byte("archive entry content with path /usr/share/doc and mode 0644")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	default:
		// High-entropy data - incompressible
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

func compressedCodecs() []Codec {
	return []Codec{NewZlibCodec(), NewZstdCodec(), NewLZ4Codec()}
}

func TestCodec_RoundTrip(t *testing.T) {
	classes := []string{"constant", "compressible", "random"}
	sizes := []int{1, 64, 1024, 64 * 1024}

	for _, codec := range compressedCodecs() {
		for _, class := range classes {
			for _, size := range sizes {
				t.Run(codec.Type().String()+"/"+class, func(t *testing.T) {
					data := generateTestData(size, class)

					compressed, err := codec.Compress(nil, data, codec.DefaultLevel())
					require.NoError(t, err)
					require.NotEmpty(t, compressed)

					decompressed, err := codec.Decompress(make([]byte, 0, len(data)), compressed)
					require.NoError(t, err)
					require.Equal(t, data, decompressed)
				})
			}
		}
	}
}

func TestCodec_MagicPrefix(t *testing.T) {
	data := generateTestData(4096, "compressible")

	for _, codec := range compressedCodecs() {
		t.Run(codec.Type().String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil, data, codec.DefaultLevel())
			require.NoError(t, err)

			require.True(t, bytes.HasPrefix(compressed, codec.Magic()),
				"compressed output must start with the codec's magic bytes")
			require.Equal(t, codec.Type(), format.Detect(compressed))
		})
	}
}

func TestCodec_BoundHoldsForIncompressibleData(t *testing.T) {
	data := generateTestData(32*1024, "random")

	for _, codec := range compressedCodecs() {
		t.Run(codec.Type().String(), func(t *testing.T) {
			bound := codec.Bound(len(data))
			require.GreaterOrEqual(t, bound, len(data))

			// Compressing into a bound-sized buffer must not reallocate.
			dst := make([]byte, 0, bound)
			compressed, err := codec.Compress(dst, data, codec.MaxLevel())
			require.NoError(t, err)
			require.LessOrEqual(t, len(compressed), bound)
		})
	}
}

func TestCodec_AllLevels(t *testing.T) {
	data := generateTestData(8192, "compressible")

	for _, codec := range compressedCodecs() {
		t.Run(codec.Type().String(), func(t *testing.T) {
			for level := 1; level <= codec.MaxLevel(); level++ {
				compressed, err := codec.Compress(nil, data, level)
				require.NoError(t, err, "level %d", level)

				decompressed, err := codec.Decompress(make([]byte, 0, len(data)), compressed)
				require.NoError(t, err, "level %d", level)
				require.Equal(t, data, decompressed, "level %d", level)
			}
		})
	}
}

func TestCodec_DecompressRespectsCapacityBound(t *testing.T) {
	data := generateTestData(4096, "compressible")

	for _, codec := range compressedCodecs() {
		t.Run(codec.Type().String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil, data, codec.DefaultLevel())
			require.NoError(t, err)

			_, err = codec.Decompress(make([]byte, 0, 16), compressed)
			require.Error(t, err, "a stream larger than the buffer bound must fail")
		})
	}
}

func TestCodec_DecompressTruncatedStream(t *testing.T) {
	data := generateTestData(8192, "compressible")

	for _, codec := range compressedCodecs() {
		t.Run(codec.Type().String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil, data, codec.DefaultLevel())
			require.NoError(t, err)

			truncated := compressed[:len(compressed)/2]
			_, err = codec.Decompress(make([]byte, 0, len(data)), truncated)
			require.Error(t, err)
		})
	}
}

func TestCodec_DecompressAppendsToDst(t *testing.T) {
	data := generateTestData(1024, "compressible")
	prefix := []byte("existing")

	for _, codec := range compressedCodecs() {
		t.Run(codec.Type().String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil, data, codec.DefaultLevel())
			require.NoError(t, err)

			dst := make([]byte, 0, len(prefix)+len(data))
			dst = append(dst, prefix...)

			out, err := codec.Decompress(dst, compressed)
			require.NoError(t, err)
			require.Equal(t, prefix, out[:len(prefix)])
			require.Equal(t, data, out[len(prefix):])
		})
	}
}

func TestNoOpCodec(t *testing.T) {
	codec := NewNoOpCodec()
	data := generateTestData(256, "random")

	require.Equal(t, format.CompressionNone, codec.Type())
	require.Nil(t, codec.Magic())
	require.Equal(t, len(data), codec.Bound(len(data)))

	compressed, err := codec.Compress(nil, data, codec.DefaultLevel())
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decompressed, err := codec.Decompress(nil, compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestZlibCodec_InvalidLevel(t *testing.T) {
	codec := NewZlibCodec()
	_, err := codec.Compress(nil, []byte("payload"), -7)
	require.Error(t, err)
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		name            string
		compressionType format.CompressionType
		wantErr         bool
	}{
		{name: "none codec", compressionType: format.CompressionNone},
		{name: "zlib codec", compressionType: format.CompressionZlib},
		{name: "zstd codec", compressionType: format.CompressionZstd},
		{name: "lz4 codec", compressionType: format.CompressionLZ4},
		{name: "invalid codec", compressionType: format.CompressionType(0xFF), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := CreateCodec(tt.compressionType)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, codec)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.compressionType, codec.Type())
		})
	}
}

func TestGetCodec_SharedInstance(t *testing.T) {
	first, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)

	second, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, err = GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCodec_DefaultLevelIsNotStoreSentinel(t *testing.T) {
	for _, codec := range compressedCodecs() {
		require.NotZero(t, codec.DefaultLevel(), "%s default level must not collide with the store sentinel", codec.Type())
	}
}
