package cli

import (
	"fmt"

	"github.com/hbjs97/hbgen/internal/ui"
	"github.com/spf13/cobra"
)

func (a *App) newFormCmd() *cobra.Command {
	var copyOut, pretty, noGenerate bool

	cmd := &cobra.Command{
		Use:   "form",
		Short: "대화형 폼으로 빌드 설정을 편집한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runForm(cmd, copyOut, pretty, noGenerate)
		},
	}
	cmd.Flags().BoolVar(&copyOut, "copy", false, "생성된 스크립트를 클립보드에 복사")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "구문 강조된 미리보기로 출력")
	cmd.Flags().BoolVar(&noGenerate, "no-generate", false, "설정만 저장하고 스크립트는 출력하지 않음")
	return cmd
}

func (a *App) runForm(cmd *cobra.Command, copyOut, pretty, noGenerate bool) error {
	e, err := a.open(cmd)
	if err != nil {
		return err
	}

	prev := e.sess.State()
	next, err := a.formRunner(e.theme).RunBuildForm(prev)
	if err != nil {
		return fmt.Errorf("cli.form: %w", err)
	}

	e.sess.Apply(next)
	if next.WorkspacePath != "" && next.WorkspacePath != prev.WorkspacePath {
		e.sess.ConfirmWorkspace(next.WorkspacePath)
	}
	if next.OS != prev.OS {
		e.notifier.Notify(ui.LevelInfo, fmt.Sprintf("Configuration updated for %s", next.OS))
	}

	if noGenerate {
		return nil
	}
	script := e.sess.Generate(a.now())
	return a.emitScript(e, script, copyOut, pretty)
}
