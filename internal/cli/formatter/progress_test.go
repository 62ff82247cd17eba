package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_ClampsRange(t *testing.T) {
	assert.Contains(t, RenderProgress(-0.5, 8), "  0%")
	assert.Contains(t, RenderProgress(1.5, 8), "100%")
}

func TestRenderProgress_FillProportional(t *testing.T) {
	out := RenderProgress(0.5, 8)
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "████░░░░")
}

func TestRenderCount(t *testing.T) {
	assert.Contains(t, RenderCount(0, 3), "0/3")
	assert.Contains(t, RenderCount(2, 3), "2/3")
	assert.Contains(t, RenderCount(3, 3), "3/3")
}
