package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar는 상태 메시지를 레벨별 색상으로 w에 한 줄씩 출력하는 Notifier다.
type StatusBar struct {
	w      io.Writer
	styles map[Level]lipgloss.Style
	last   string
}

var _ Notifier = (*StatusBar)(nil)

// NewStatusBar는 theme 색상을 사용하는 StatusBar를 만든다.
// 색상 출력 여부는 w가 터미널인지에 따라 결정된다.
func NewStatusBar(w io.Writer, theme Theme) *StatusBar {
	r := lipgloss.NewRenderer(w)
	p := palettes[ParseTheme(string(theme))]
	return &StatusBar{
		w: w,
		styles: map[Level]lipgloss.Style{
			LevelSuccess: r.NewStyle().Foreground(p.success),
			LevelWarning: r.NewStyle().Foreground(p.warning).Bold(true),
			LevelError:   r.NewStyle().Foreground(p.err).Bold(true),
			LevelInfo:    r.NewStyle().Foreground(p.secondary),
		},
	}
}

// Notify는 메시지를 출력한다.
func (s *StatusBar) Notify(level Level, msg string) {
	style, ok := s.styles[level]
	if !ok {
		style = s.styles[LevelInfo]
	}
	s.last = msg
	fmt.Fprintln(s.w, style.Render(msg))
}

// Last는 마지막으로 표시한 메시지다.
func (s *StatusBar) Last() string {
	return s.last
}
