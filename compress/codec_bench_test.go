package compress

import (
	"fmt"
	"testing"
)

func benchCodecs() []Codec {
	return []Codec{NewNoOpCodec(), NewZlibCodec(), NewZstdCodec(), NewLZ4Codec()}
}

func BenchmarkCodec_Compress(b *testing.B) {
	benchSizes := []int{1024, 4096, 16384, 65536} // 1KB, 4KB, 16KB, 64KB

	for _, codec := range benchCodecs() {
		for _, size := range benchSizes {
			data := generateTestData(size, "compressible")

			b.Run(fmt.Sprintf("%s/%dKB", codec.Type(), size/1024), func(b *testing.B) {
				dst := make([]byte, 0, codec.Bound(size))

				b.SetBytes(int64(size))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := codec.Compress(dst, data, codec.DefaultLevel())
					if err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkCodec_Decompress(b *testing.B) {
	benchSizes := []int{1024, 4096, 16384, 65536}

	for _, codec := range benchCodecs() {
		for _, size := range benchSizes {
			data := generateTestData(size, "compressible")
			compressed, err := codec.Compress(nil, data, codec.DefaultLevel())
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/%dKB", codec.Type(), size/1024), func(b *testing.B) {
				dst := make([]byte, 0, size)

				b.SetBytes(int64(size))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := codec.Decompress(dst, compressed)
					if err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkCodec_CompressionRatio(b *testing.B) {
	classes := []string{"constant", "compressible", "random"}
	const size = 16384

	for _, codec := range benchCodecs() {
		for _, class := range classes {
			data := generateTestData(size, class)

			b.Run(fmt.Sprintf("%s/%s", codec.Type(), class), func(b *testing.B) {
				var compressedSize int
				for i := 0; i < b.N; i++ {
					compressed, err := codec.Compress(nil, data, codec.DefaultLevel())
					if err != nil {
						b.Fatal(err)
					}
					compressedSize = len(compressed)
				}

				b.ReportMetric(float64(size)/float64(compressedSize), "ratio")
			})
		}
	}
}
