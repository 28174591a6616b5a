package ui

import (
	"strings"
	"testing"

	"github.com/gravitrone/nebula-notes/internal/ui/components"
	"github.com/stretchr/testify/assert"
)

func TestSplitLinesSplitsOnNewlines(t *testing.T) {
	lines := splitLines("a\nb\nc")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestSplitLinesKeepsLeadingEmptyLine(t *testing.T) {
	assert.Equal(t, []string{"", "x"}, splitLines("\nx"))
}

func TestRenderBannerIncludesSubtitleAndNoOSC(t *testing.T) {
	out := RenderBanner()
	assert.NotContains(t, out, "\x1b]")

	clean := components.SanitizeText(out)
	assert.Contains(t, clean, "Fixed-Width Notes")
	assert.True(t, strings.Contains(clean, "─"))
}

func TestBannerHeightMatchesRender(t *testing.T) {
	assert.Equal(t, strings.Count(RenderBanner(), "\n"), bannerHeight())
	assert.Greater(t, bannerHeight(), 6)
}
