// Package session은 폼 상태에 대한 유일한 가변 참조를 가진 얇은 어댑터다.
// 각 사용자 동작은 상태를 바꾸고, 설정을 즉시 저장하고, 상태 메시지를 남긴다.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hbjs97/hbgen/internal/envsnap"
	"github.com/hbjs97/hbgen/internal/form"
	"github.com/hbjs97/hbgen/internal/platform"
	"github.com/hbjs97/hbgen/internal/render"
	"github.com/hbjs97/hbgen/internal/settings"
	"github.com/hbjs97/hbgen/internal/ui"
	"go.uber.org/zap"
)

// DefaultWorkspaceDir는 workspace 경로가 비었을 때 홈 아래에 쓰는 디렉토리 이름이다.
const DefaultWorkspaceDir = "xbase_workspace"

// Session은 폼 상태와 그 상태를 저장/표시하는 협력자를 묶는다.
type Session struct {
	state    form.State
	store    *settings.Store
	env      *envsnap.Snapshot
	picker   ui.Picker
	notifier ui.Notifier
	render   render.Options
	logger   *zap.Logger
}

// Deps는 Session 생성에 필요한 의존성이다.
type Deps struct {
	Store    *settings.Store
	Env      *envsnap.Snapshot
	Picker   ui.Picker
	Notifier ui.Notifier
	// Render의 Now는 무시되고 Generate 인자로 대체된다.
	Render render.Options
	Shell  string
	Logger *zap.Logger
}

// New는 저장된 설정을 읽어 Session을 만든다.
func New(d Deps) *Session {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		state:    form.FromRecord(d.Store.Load(), d.Shell),
		store:    d.Store,
		env:      d.Env,
		picker:   d.Picker,
		notifier: d.Notifier,
		render:   d.Render,
		logger:   logger,
	}
}

// State는 현재 폼 상태 사본이다.
func (s *Session) State() form.State {
	return s.state
}

// RecentPaths는 최근 workspace 경로 목록이다.
func (s *Session) RecentPaths() []string {
	return s.store.ListRecentPaths()
}

// EnvEntries는 환경변수 스냅샷 목록이다.
func (s *Session) EnvEntries() []envsnap.Entry {
	return s.env.List()
}

func (s *Session) notify(level ui.Level, format string, args ...any) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(level, fmt.Sprintf(format, args...))
}

// persist는 현재 상태를 저장한다. 실패는 로그로만 남긴다.
func (s *Session) persist() {
	if err := s.store.Save(s.state.Record()); err != nil {
		s.logger.Warn("settings not persisted", zap.Error(err))
	}
}

// Apply는 폼에서 한 번에 받은 상태를 반영하고 저장한다.
// OS가 바뀌었는데 컴파일러가 새 OS의 선택지에 없으면 첫 번째 선택지로 되돌린다.
func (s *Session) Apply(next form.State) {
	if !next.OS.Supports(next.Compiler) {
		next.Compiler = platform.DefaultCompiler(next.OS)
	}
	s.state = next
	s.persist()
}

// SetOS는 대상 OS를 바꾸고 컴파일러 선택을 초기화한다.
func (s *Session) SetOS(os platform.OS) {
	s.state = s.state.WithOS(os)
	s.persist()
	s.notify(ui.LevelInfo, "Configuration updated for %s", os)
}

// SetCompiler는 컴파일러를 바꾼다. 현재 OS의 선택지가 아니면 에러다.
func (s *Session) SetCompiler(name string) error {
	c, err := platform.ParseCompiler(s.state.OS, name)
	if err != nil {
		return err
	}
	s.state.Compiler = c
	return nil
}

// SetCPU는 대상 CPU를 바꾼다.
func (s *Session) SetCPU(cpu string) {
	s.state.CPU = cpu
	s.persist()
}

// SetShell은 셸을 바꾼다. 셸은 설정 레코드에 포함되지 않는다.
func (s *Session) SetShell(sh string) {
	s.state.Shell = sh
}

// SetDynamic은 동적 라이브러리 빌드 여부를 바꾼다.
func (s *Session) SetDynamic(v bool) {
	s.state.Dynamic = v
	s.persist()
}

// SetThirdParty는 3rd-party contrib 빌드 여부를 바꾼다.
func (s *Session) SetThirdParty(v bool) {
	s.state.ThirdParty = v
	s.persist()
}

// SetDebug는 디버그 빌드 여부를 바꾼다.
func (s *Session) SetDebug(v bool) {
	s.state.Debug = v
	s.persist()
}

// SetPersistEnv는 환경변수 스냅샷 저장 여부를 바꾼다.
func (s *Session) SetPersistEnv(v bool) {
	s.state.PersistEnv = v
	s.persist()
}

// SetPath는 경로 입력값을 바꾼다. 최근 경로 목록은 건드리지 않는다.
func (s *Session) SetPath(kind form.PathKind, path string) {
	s.state = s.state.WithPath(kind, path)
	s.persist()
}

// Browse는 디렉토리 선택 대화상자로 kind 경로를 고른다.
// 취소나 미지원은 실패가 아니며 상태를 바꾸지 않는다.
func (s *Session) Browse(ctx context.Context, kind form.PathKind) (bool, error) {
	title := fmt.Sprintf("Select %s folder", kind.Label())
	dir, ok, err := s.picker.PickDirectory(ctx, title, s.state.Path(kind))
	if errors.Is(err, ui.ErrPickerUnsupported) {
		s.notify(ui.LevelWarning, "Your system does not support directory selection. Please type the path manually.")
		return false, nil
	}
	if err != nil {
		s.notify(ui.LevelError, "%s folder selection failed", kind.Label())
		return false, fmt.Errorf("session.Browse: %w", err)
	}
	if !ok {
		s.notify(ui.LevelInfo, "%s folder selection cancelled", kind.Label())
		return false, nil
	}

	s.state = s.state.WithPath(kind, dir)
	if kind == form.PathWorkspace {
		s.recordRecent(dir)
	}
	s.persist()
	s.notify(ui.LevelSuccess, "%s path selected: %s", kind.Label(), dir)
	return true, nil
}

// ConfirmWorkspace는 workspace 경로를 확정하고 최근 경로에 기록한다.
func (s *Session) ConfirmWorkspace(path string) {
	s.state.WorkspacePath = path
	s.recordRecent(path)
	s.persist()
}

// CreateWorkspace는 workspace 경로를 확정한다. 비어 있으면 home/xbase_workspace를 쓴다.
// 실제 디렉토리는 만들지 않는다.
func (s *Session) CreateWorkspace(home string) string {
	path := s.state.WorkspacePath
	if path == "" {
		path = filepath.Join(home, DefaultWorkspaceDir)
	}
	s.ConfirmWorkspace(path)
	s.notify(ui.LevelSuccess, "Workspace configured: %s", path)
	return path
}

// UseRecent는 최근 경로 목록의 index번째를 workspace로 선택한다.
func (s *Session) UseRecent(index int) (string, error) {
	paths := s.store.ListRecentPaths()
	if index < 0 || index >= len(paths) {
		return "", fmt.Errorf("session.UseRecent: 범위를 벗어난 인덱스 %d (최근 경로 %d개)", index, len(paths))
	}
	path := paths[index]
	s.state.WorkspacePath = path
	s.persist()
	s.notify(ui.LevelSuccess, "Selected recent path: %s", path)
	return path, nil
}

// SetWorkspaceEnv는 XBASE_WORKSPACE 스냅샷 값을 workspace 경로로 설정한다.
func (s *Session) SetWorkspaceEnv() error {
	if err := s.env.SetWorkspace(s.state.WorkspacePath); err != nil {
		return fmt.Errorf("session.SetWorkspaceEnv: %w", err)
	}
	s.notify(ui.LevelSuccess, "XBASE_WORKSPACE set to: %s", s.state.WorkspacePath)
	return nil
}

// SetEnv는 폼 값을 환경변수 스냅샷에 반영한다.
// persist-environment가 꺼져 있으면 스냅샷을 쓰지 않고 경고만 남긴다.
func (s *Session) SetEnv() error {
	s.persist()
	if !s.state.PersistEnv {
		s.notify(ui.LevelWarning, "Environment variables not persisted (persist-environment is off)")
		return nil
	}
	if err := s.env.ApplyForm(s.state); err != nil {
		return fmt.Errorf("session.SetEnv: %w", err)
	}
	s.notify(ui.LevelSuccess, "Environment variables updated")
	return nil
}

// Generate는 현재 상태로 빌드 스크립트를 만든다.
func (s *Session) Generate(now time.Time) string {
	opts := s.render
	opts.Now = now
	script := render.Render(s.state, opts)
	s.notify(ui.LevelSuccess, "Build script generated")
	return script
}

func (s *Session) recordRecent(path string) {
	if err := s.store.RecordRecentPath(path); err != nil {
		s.logger.Warn("recent path not persisted", zap.Error(err))
	}
}
