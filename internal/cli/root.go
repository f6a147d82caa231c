package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hbjs97/hbgen/internal/cmdexec"
	"github.com/hbjs97/hbgen/internal/config"
	"github.com/hbjs97/hbgen/internal/envsnap"
	"github.com/hbjs97/hbgen/internal/session"
	"github.com/hbjs97/hbgen/internal/settings"
	"github.com/hbjs97/hbgen/internal/storage"
	"github.com/hbjs97/hbgen/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App은 CLI 명령이 공유하는 의존성이다. nil 필드는 실제 구현으로 채워진다.
type App struct {
	CfgPath     string
	StoragePath string
	Verbose     bool

	Commander  cmdexec.Commander
	Picker     ui.Picker
	Clipboard  ui.Clipboard
	Previewer  ui.Previewer
	FormRunner ui.FormRunner
	// Notifier가 nil이면 stderr에 상태 표시줄을 출력한다.
	Notifier ui.Notifier
	Logger   *zap.Logger

	// Now와 Home은 테스트에서 시계와 홈 디렉토리를 고정하기 위해 쓴다.
	Now  func() time.Time
	Home string
}

// NewApp은 실제 구현을 사용하는 App을 만든다.
func NewApp() *App {
	return &App{
		Commander: &cmdexec.RealCommander{},
		Picker:    ui.ZenityPicker{},
		Clipboard: ui.SystemClipboard{},
	}
}

// NewRootCmd는 hbgen CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hbgen",
		Short:        "Harbour 빌드 스크립트 생성기",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
	}

	defaultCfg := a.CfgPath
	if defaultCfg == "" {
		defaultCfg = config.DefaultPath()
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", defaultCfg, "설정 파일 경로")
	cmd.PersistentFlags().StringVar(&a.StoragePath, "storage", a.StoragePath, "저장소 파일 경로 (기본: 설정의 storage_path)")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", false, "상세 로그를 stderr에 출력")

	cmd.AddCommand(
		a.newGenerateCmd(),
		a.newFormCmd(),
		a.newSettingsCmd(),
		a.newRecentCmd(),
		a.newBrowseCmd(),
		a.newWorkspaceCmd(),
		a.newEnvCmd(),
		a.newCompilersCmd(),
		a.newThemeCmd(),
		a.newDoctorCmd(),
		a.newConfigCmd(),
	)
	return cmd
}

func (a *App) initLogger() error {
	if a.Logger != nil {
		return nil
	}
	if !a.Verbose {
		a.Logger = zap.NewNop()
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("cli.initLogger: %w", err)
	}
	a.Logger = logger
	return nil
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) homeDir() string {
	if a.Home != "" {
		return a.Home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		a.logger().Warn("home directory lookup failed", zap.Error(err))
		return "."
	}
	return home
}

// cmdEnv는 명령 하나가 실행되는 동안 쓰는 설정, 저장소, 세션이다.
type cmdEnv struct {
	cfg      *config.Config
	kv       *storage.FileStore
	store    *settings.Store
	env      *envsnap.Snapshot
	theme    ui.Theme
	notifier ui.Notifier
	sess     *session.Session
	out      io.Writer
}

// open은 설정 파일과 저장소를 읽어 세션을 준비한다.
func (a *App) open(cmd *cobra.Command) (*cmdEnv, error) {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return nil, err
	}

	storagePath := a.StoragePath
	if storagePath == "" {
		storagePath = cfg.StoragePath
	}
	logger := a.logger()
	kv := storage.Open(storagePath, logger)
	store := settings.NewStore(kv, logger)
	env := envsnap.New(kv)
	theme := ui.LoadTheme(kv, ui.ParseTheme(cfg.Theme))

	notifier := a.Notifier
	if notifier == nil {
		notifier = ui.NewStatusBar(cmd.ErrOrStderr(), theme)
	}

	sess := session.New(session.Deps{
		Store:    store,
		Env:      env,
		Picker:   a.Picker,
		Notifier: notifier,
		Render:   cfg.RenderOptions(),
		Shell:    cfg.DefaultShell,
		Logger:   logger,
	})

	return &cmdEnv{
		cfg:      cfg,
		kv:       kv,
		store:    store,
		env:      env,
		theme:    theme,
		notifier: notifier,
		sess:     sess,
		out:      cmd.OutOrStdout(),
	}, nil
}

func (a *App) formRunner(theme ui.Theme) ui.FormRunner {
	if a.FormRunner != nil {
		return a.FormRunner
	}
	return &ui.HuhFormRunner{Theme: theme}
}

func (a *App) previewer(theme ui.Theme) ui.Previewer {
	if a.Previewer != nil {
		return a.Previewer
	}
	return ui.GlamourPreviewer{Theme: theme}
}
