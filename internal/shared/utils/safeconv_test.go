package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeInt64ToInt(t *testing.T) {
	assert.Equal(t, 0, SafeInt64ToInt(0))
	assert.Equal(t, 42, SafeInt64ToInt(42))
	assert.Equal(t, -7, SafeInt64ToInt(-7))
	assert.Equal(t, math.MaxInt, SafeInt64ToInt(math.MaxInt64))
	assert.Equal(t, math.MinInt, SafeInt64ToInt(math.MinInt64))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"empty result set", 0, 20, 1},
		{"exact multiple", 40, 20, 2},
		{"partial last page", 41, 20, 3},
		{"zero page size", 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}
