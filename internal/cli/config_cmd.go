package cli

import (
	"fmt"
	"os"

	"github.com/hbjs97/hbgen/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "hbgen 설정 파일(config.toml)을 관리한다",
	}
	cmd.AddCommand(
		a.newConfigInitCmd(),
		&cobra.Command{
			Use:   "path",
			Short: "사용 중인 설정 파일 경로를 출력한다",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), a.CfgPath)
				return nil
			},
		},
	)
	return cmd
}

func (a *App) newConfigInitCmd() *cobra.Command {
	var force bool
	defaults := config.Default()
	cfg := *defaults

	cmd := &cobra.Command{
		Use:   "init",
		Short: "기본값으로 설정 파일을 생성한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigInit(cmd, &cfg, force)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&force, "force", false, "이미 있으면 덮어쓰기")
	f.StringVar(&cfg.BuildTool, "build-tool", defaults.BuildTool, "빌드 도구")
	f.StringVar(&cfg.ProjectFile, "project", defaults.ProjectFile, "프로젝트 파일")
	f.StringVar(&cfg.DefaultShell, "shell", defaults.DefaultShell, "기본 셸")
	f.StringVar(&cfg.Theme, "theme", defaults.Theme, "테마 (dark, light)")
	f.StringVar(&cfg.StoragePath, "storage-path", defaults.StoragePath, "저장소 파일 경로")
	return cmd
}

// runConfigInit은 설정 파일을 생성한다.
func (a *App) runConfigInit(cmd *cobra.Command, cfg *config.Config, force bool) error {
	if _, err := os.Stat(a.CfgPath); err == nil && !force {
		return fmt.Errorf("cli.config: 설정 파일이 이미 존재합니다: %s (--force로 덮어쓰기)", a.CfgPath)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(a.CfgPath, cfg); err != nil {
		return fmt.Errorf("cli.config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	return nil
}
