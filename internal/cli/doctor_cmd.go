package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/hbjs97/hbgen/internal/config"
	"github.com/hbjs97/hbgen/internal/doctor"
	"github.com/hbjs97/hbgen/internal/settings"
	"github.com/hbjs97/hbgen/internal/storage"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "빌드 환경과 저장된 설정을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (a *App) runDoctor(ctx context.Context, w io.Writer) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		fmt.Fprintf(w, "[FAIL] config: %v\n", err)
		fmt.Fprintln(w, "      Fix: 설정 파일을 수정하거나 삭제하여 기본값을 사용하세요")
		cfg = config.Default()
	}

	storagePath := a.StoragePath
	if storagePath == "" {
		storagePath = cfg.StoragePath
	}
	logger := a.logger()
	kv := storage.Open(storagePath, logger)
	rec := settings.NewStore(kv, logger).Load()

	results := doctor.RunAll(ctx, a.Commander, cfg.BuildTool, kv.Path(), rec)
	printDiagResults(w, results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Fprintf(w, "  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
