package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name       string
		pct        float64
		width      int
		wantFilled int
		wantPct    string
	}{
		{"empty", 0, 10, 0, "  0%"},
		{"half", 0.5, 4, 2, " 50%"},
		{"full", 1, 4, 4, "100%"},
		{"over 100% clamps", 1.5, 4, 4, "100%"},
		{"negative clamps", -0.5, 4, 0, "  0%"},
		{"tiny width clamps to 2", 0.5, 1, 1, " 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderProgress(tt.pct, tt.width))
			assert.Equal(t, tt.wantFilled, strings.Count(got, filledBlock))
			assert.True(t, strings.HasSuffix(got, tt.wantPct), got)
		})
	}
}
