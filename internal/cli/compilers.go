package cli

import (
	"fmt"

	"github.com/hbjs97/hbgen/internal/platform"
	"github.com/spf13/cobra"
)

func (a *App) newCompilersCmd() *cobra.Command {
	var osName string
	cmd := &cobra.Command{
		Use:   "compilers",
		Short: "대상 OS에서 선택 가능한 컴파일러를 출력한다 (첫 번째가 기본값)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open(cmd)
			if err != nil {
				return err
			}
			target := e.sess.State().OS
			if osName != "" {
				target, err = platform.ParseOS(osName)
				if err != nil {
					return fmt.Errorf("cli.compilers: %w", err)
				}
			}
			for _, c := range platform.Compilers(target) {
				fmt.Fprintln(e.out, c)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&osName, "os", "", "대상 OS (기본: 저장된 OS)")
	return cmd
}
