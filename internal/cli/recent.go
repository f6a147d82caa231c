package cli

import (
	"fmt"
	"strconv"

	"github.com/hbjs97/hbgen/internal/settings"
	"github.com/hbjs97/hbgen/internal/ui"
	"github.com/spf13/cobra"
)

func (a *App) newRecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "최근 workspace 경로를 관리한다",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "최근 workspace 경로를 최신순으로 출력한다",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := a.open(cmd)
				if err != nil {
					return err
				}
				paths := e.sess.RecentPaths()
				if len(paths) == 0 {
					fmt.Fprintln(e.out, "최근 경로가 없습니다.")
					return nil
				}
				for i, p := range paths {
					fmt.Fprintf(e.out, "%2d  %s\n", i+1, settings.DisplayPath(p))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <path>",
			Short: "경로를 workspace로 확정하고 최근 목록 맨 앞에 기록한다",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := a.open(cmd)
				if err != nil {
					return err
				}
				e.sess.ConfirmWorkspace(args[0])
				e.notifier.Notify(ui.LevelSuccess, fmt.Sprintf("Workspace configured: %s", args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "use [number]",
			Short: "최근 경로를 workspace로 선택한다 (번호 생략 시 대화형 선택)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runRecentUse(cmd, args)
			},
		},
	)
	return cmd
}

func (a *App) runRecentUse(cmd *cobra.Command, args []string) error {
	e, err := a.open(cmd)
	if err != nil {
		return err
	}

	var index int
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("cli.recent: 번호가 아닙니다: %q", args[0])
		}
		// 목록은 1부터 번호를 매긴다.
		index = n - 1
	} else {
		paths := e.sess.RecentPaths()
		if len(paths) == 0 {
			e.notifier.Notify(ui.LevelInfo, "No recent paths")
			return nil
		}
		index, err = a.formRunner(e.theme).RunRecentSelect(paths)
		if err != nil {
			return fmt.Errorf("cli.recent: %w", err)
		}
	}

	path, err := e.sess.UseRecent(index)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, path)
	return nil
}
