package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompressionPercentage(t *testing.T) {
	v := &Video{OriginalSize: 10_000_000, CompressedSize: 3_000_000}
	assert.Equal(t, 70, v.CompressionPercentage())
}

func TestCompressionPercentageZeroOriginal(t *testing.T) {
	v := &Video{OriginalSize: 0, CompressedSize: 3_000_000}
	assert.Equal(t, 0, v.CompressionPercentage())
}

func TestCompressionPercentageGrewAfterProcessing(t *testing.T) {
	// compressedSize >= originalSize reddedilmez, yüzde negatif olur
	v := &Video{OriginalSize: 1_000_000, CompressedSize: 1_500_000}
	assert.Equal(t, -50, v.CompressionPercentage())
}
