package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// GlamourPreviewer는 스크립트를 sh 코드 블록으로 감싸 glamour로 렌더링한다.
type GlamourPreviewer struct {
	Theme Theme
}

var _ Previewer = GlamourPreviewer{}

// Preview는 터미널 표시용으로 강조된 스크립트를 반환한다.
func (p GlamourPreviewer) Preview(script string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(string(ParseTheme(string(p.Theme)))),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return "", fmt.Errorf("ui.Preview: %w", err)
	}
	out, err := r.Render(codeBlock(script))
	if err != nil {
		return "", fmt.Errorf("ui.Preview: %w", err)
	}
	return out, nil
}

func codeBlock(script string) string {
	if !strings.HasSuffix(script, "\n") {
		script += "\n"
	}
	return "```sh\n" + script + "```\n"
}
