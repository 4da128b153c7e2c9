package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLayout(t *testing.T) {
	assert.Equal(t, "left=25% center=50.5% right=24.5%",
		FormatLayout([]string{"left", "center", "right"}, []float64{25, 50.5, 24.5}))
	assert.Equal(t, "a=33.33% b=66.67%",
		FormatLayout([]string{"a", "b"}, []float64{100.0 / 3, 200.0 / 3}))
	assert.Equal(t, "a=0%", FormatLayout([]string{"a", "b"}, []float64{0}))
	assert.Equal(t, "", FormatLayout(nil, nil))
}
