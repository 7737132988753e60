package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContrastRatioExtremes(t *testing.T) {
	t.Parallel()

	white := MustParseHex("#ffffff")
	black := MustParseHex("#000000")

	assert.InDelta(t, 1.0, Luminance(white), 1e-9)
	assert.InDelta(t, 0.0, Luminance(black), 1e-9)
	assert.InDelta(t, 21.0, ContrastRatio(white, black), 1e-9)
	assert.InDelta(t, 21.0, ContrastRatio(black, white), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio(white, white), 1e-9)
}

func TestContrastRatioMidGray(t *testing.T) {
	t.Parallel()

	gray := MustParseHex("#777777")
	ratio := ContrastRatio(gray, MustParseHex("#ffffff"))
	assert.InDelta(t, 4.48, ratio, 0.01)
}
