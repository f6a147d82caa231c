package cli

import (
	"fmt"

	"github.com/hbjs97/hbgen/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *App) newGenerateCmd() *cobra.Command {
	var copyOut, pretty bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "현재 설정으로 빌드 스크립트를 출력한다",
		Long: `저장된 설정에 플래그로 준 값을 반영(저장)한 뒤 빌드 스크립트를 출력한다.
스크립트는 실행되지 않는다.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, copyOut, pretty)
		},
	}

	f := cmd.Flags()
	f.String("os", "", "대상 OS (Windows, Android, Linux, macOS)")
	f.String("compiler", "", "컴파일러 (OS별 선택지는 hbgen compilers 참조)")
	f.String("cpu", "", "대상 CPU (x86_64, x86, arm64, armv7)")
	f.String("shell", "", "셸 (설정 주석에만 표시)")
	f.Bool("dynamic", false, "동적 라이브러리 빌드 (-shared)")
	f.Bool("3rdparty", false, "3rd-party contrib 빌드 (-hbcontrib)")
	f.Bool("debug", false, "디버그 빌드 (-debug)")
	f.Bool("persist-env", false, "환경변수 스냅샷 저장")
	f.String("ndk", "", "Android NDK 경로")
	f.String("qt", "", "Qt 경로")
	f.String("workspace", "", "workspace 경로")
	f.BoolVar(&copyOut, "copy", false, "스크립트를 클립보드에 복사")
	f.BoolVar(&pretty, "pretty", false, "구문 강조된 미리보기로 출력")
	return cmd
}

func (a *App) runGenerate(cmd *cobra.Command, copyOut, pretty bool) error {
	e, err := a.open(cmd)
	if err != nil {
		return err
	}

	for _, key := range settingKeys {
		flag := cmd.Flags().Lookup(key)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := applySetting(e.sess, key, flag.Value.String()); err != nil {
			return err
		}
	}

	script := e.sess.Generate(a.now())
	return a.emitScript(e, script, copyOut, pretty)
}

// emitScript는 스크립트를 출력하고 필요하면 클립보드에 복사한다.
func (a *App) emitScript(e *cmdEnv, script string, copyOut, pretty bool) error {
	out := script
	if pretty {
		rendered, err := a.previewer(e.theme).Preview(script)
		if err != nil {
			return fmt.Errorf("cli.generate: %w", err)
		}
		out = rendered
	}
	fmt.Fprint(e.out, out)

	if !copyOut {
		return nil
	}
	if a.Clipboard == nil {
		e.notifier.Notify(ui.LevelWarning, "Clipboard is not available")
		return nil
	}
	if err := a.Clipboard.Copy(script); err != nil {
		a.logger().Debug("clipboard copy failed", zap.Error(err))
		e.notifier.Notify(ui.LevelWarning, "Clipboard is not available")
		return nil
	}
	e.notifier.Notify(ui.LevelSuccess, "Build script copied to clipboard")
	return nil
}
