package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newWorkspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "workspace 경로를 확정하거나 XBASE_WORKSPACE에 반영한다",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "workspace 경로를 확정한다 (비어 있으면 ~/xbase_workspace, 디렉토리는 만들지 않음)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := a.open(cmd)
				if err != nil {
					return err
				}
				fmt.Fprintln(e.out, e.sess.CreateWorkspace(a.homeDir()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "env",
			Short: "XBASE_WORKSPACE 스냅샷 값을 workspace 경로로 설정한다",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := a.open(cmd)
				if err != nil {
					return err
				}
				return e.sess.SetWorkspaceEnv()
			},
		},
	)
	return cmd
}
