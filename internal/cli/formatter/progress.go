package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders how far through the wizard the user is, e.g.
// "[████░░░░] 4/12". Position is 1-based and clamped to [0, total].
func RenderProgress(position, total, width int) string {
	if total <= 0 {
		return ""
	}
	position = min(max(position, 0), total)
	width = max(width, 2)

	filled := position * width / total
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleBlue
	if position == total {
		style = StyleGreen
	}
	return fmt.Sprintf("[%s] %s", style.Render(bar), Dim(fmt.Sprintf("%d/%d", position, total)))
}
