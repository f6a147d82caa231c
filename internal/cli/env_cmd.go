package cli

import (
	"encoding/json"
	"fmt"

	"github.com/hbjs97/hbgen/internal/envsnap"
	"github.com/hbjs97/hbgen/internal/shell"
	"github.com/hbjs97/hbgen/internal/ui"
	"github.com/spf13/cobra"
)

func (a *App) newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "저장된 환경변수 스냅샷을 관리한다 (실제 환경은 바꾸지 않음)",
	}
	cmd.AddCommand(
		a.newEnvListCmd(),
		a.newEnvSetCmd(),
		a.newEnvExportCmd(),
		a.newEnvClearCmd(),
	)
	return cmd
}

func (a *App) newEnvListCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "스냅샷 변수 목록을 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				data, err := json.MarshalIndent(e.env.SetValues(), "", "  ")
				if err != nil {
					return fmt.Errorf("cli.env: %w", err)
				}
				fmt.Fprintln(e.out, string(data))
				return nil
			}
			for _, entry := range e.sess.EnvEntries() {
				fmt.Fprintln(e.out, entry.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "값이 있는 변수만 JSON으로 출력")
	return cmd
}

func (a *App) newEnvSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [NAME VALUE]",
		Short: "폼 값을 스냅샷에 반영하거나 변수 하나를 저장한다",
		Args:  cobra.MatchAll(cobra.RangeArgs(0, 2), exactOrNone(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return e.sess.SetEnv()
			}
			if args[1] == "" {
				return fmt.Errorf("cli.env: %s 값이 비어 있습니다 (삭제는 hbgen env clear)", args[0])
			}
			if err := e.env.Set(args[0], args[1]); err != nil {
				return fmt.Errorf("cli.env: %w", err)
			}
			e.notifier.Notify(ui.LevelSuccess, fmt.Sprintf("%s set to: %s", args[0], args[1]))
			return nil
		},
	}
}

// exactOrNone은 인자가 없거나 정확히 n개인지 확인한다.
func exactOrNone(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != n {
			return fmt.Errorf("accepts 0 or %d arg(s), received %d", n, len(args))
		}
		return nil
	}
}

func (a *App) newEnvExportCmd() *cobra.Command {
	var shellType string
	var unset bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "스냅샷 값을 셸 export 명령으로 출력한다",
		Long: `값이 있는 스냅샷 변수를 셸 명령으로 출력한다. 직접 실행하지 않는다.
사용 예: eval "$(hbgen env export --shell bash)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open(cmd)
			if err != nil {
				return err
			}
			if shellType == "" {
				shellType = e.cfg.DefaultShell
			}
			if !shell.IsSupported(shellType) {
				return fmt.Errorf("cli.env: export를 지원하지 않는 셸: %s (지원: %v)", shellType, shell.Supported)
			}
			if unset {
				fmt.Fprint(e.out, shell.Unset(shellType))
				return nil
			}
			fmt.Fprint(e.out, shell.Export(e.env.List(), shellType))
			return nil
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (bash, zsh, sh, fish; 기본: 설정의 default_shell)")
	cmd.Flags().BoolVar(&unset, "unset", false, "변수를 해제하는 명령을 출력")
	return cmd
}

func (a *App) newEnvClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: fmt.Sprintf("스냅샷 변수 %d개를 모두 삭제한다", len(envsnap.Names)),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open(cmd)
			if err != nil {
				return err
			}
			if !yes {
				ok, err := a.formRunner(e.theme).RunConfirm("환경변수 스냅샷을 모두 삭제할까요?")
				if err != nil {
					return fmt.Errorf("cli.env: %w", err)
				}
				if !ok {
					return nil
				}
			}
			if err := e.env.Clear(); err != nil {
				return fmt.Errorf("cli.env: %w", err)
			}
			e.notifier.Notify(ui.LevelSuccess, "Environment variables cleared")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "확인 없이 삭제")
	return cmd
}
