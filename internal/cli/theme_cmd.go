package cli

import (
	"fmt"

	"github.com/hbjs97/hbgen/internal/ui"
	"github.com/spf13/cobra"
)

func (a *App) newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "테마를 바꾼다 (인자 생략 시 전환)",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(ui.ThemeDark), string(ui.ThemeLight)},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open(cmd)
			if err != nil {
				return err
			}
			next := e.theme.Toggle()
			if len(args) == 1 {
				next = ui.ParseTheme(args[0])
			}
			if err := ui.SaveTheme(e.kv, next); err != nil {
				return fmt.Errorf("cli.theme: %w", err)
			}
			// 새 테마 색상으로 알린다.
			notifier := e.notifier
			if a.Notifier == nil {
				notifier = ui.NewStatusBar(cmd.ErrOrStderr(), next)
			}
			notifier.Notify(ui.LevelSuccess, fmt.Sprintf("Switched to %s theme", next.Label()))
			return nil
		},
	}
}
