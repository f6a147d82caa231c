package cli

import (
	"fmt"

	"github.com/hbjs97/hbgen/internal/form"
	"github.com/spf13/cobra"
)

func (a *App) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "browse <ndk|qt|workspace>",
		Short:     "폴더 선택 대화상자로 경로를 고른다",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(form.PathNDK), string(form.PathQt), string(form.PathWorkspace)},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.open(cmd)
			if err != nil {
				return err
			}
			kind := form.PathKind(args[0])
			ok, err := e.sess.Browse(cmd.Context(), kind)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(e.out, e.sess.State().Path(kind))
			}
			return nil
		},
	}
}
