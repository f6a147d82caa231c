package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hbjs97/hbgen/internal/form"
	"github.com/hbjs97/hbgen/internal/platform"
	"github.com/hbjs97/hbgen/internal/settings"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct {
	Theme Theme
}

var _ FormRunner = (*HuhFormRunner)(nil)

func (h *HuhFormRunner) huhTheme() *huh.Theme {
	if h.Theme == ThemeLight {
		return huh.ThemeBase()
	}
	return huh.ThemeCharm()
}

func (h *HuhFormRunner) run(op string, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithTheme(h.huhTheme()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCanceled
	}
	if err != nil {
		return fmt.Errorf("ui.%s: %w", op, err)
	}
	return nil
}

// RunBuildForm은 빌드 설정 폼을 실행한다.
// OS를 먼저 고른 뒤 그 OS의 컴파일러 목록으로 두 번째 단계를 띄운다.
func (h *HuhFormRunner) RunBuildForm(defaults form.State) (form.State, error) {
	st := defaults

	os := st.OS
	if !os.Valid() {
		os = platform.Windows
	}
	osOptions := make([]huh.Option[platform.OS], len(platform.All))
	for i, o := range platform.All {
		osOptions[i] = huh.NewOption(string(o), o)
	}
	if err := h.run("RunBuildForm", huh.NewGroup(
		huh.NewSelect[platform.OS]().Title("Target OS").Options(osOptions...).Value(&os),
	)); err != nil {
		return defaults, err
	}
	if os != st.OS || !os.Supports(st.Compiler) {
		st = st.WithOS(os)
	}

	fields := []huh.Field{
		huh.NewSelect[string]().Title("Compiler").
			Options(huh.NewOptions(st.CompilerOptions()...)...).
			Value(&st.Compiler),
		huh.NewSelect[string]().Title("CPU").
			Options(huh.NewOptions(withCurrent(platform.CPUs, st.CPU)...)...).
			Value(&st.CPU),
		huh.NewSelect[string]().Title("Shell").
			Options(huh.NewOptions(withCurrent(platform.Shells, st.Shell)...)...).
			Value(&st.Shell),
	}
	toggles := []huh.Field{
		huh.NewConfirm().Title("Build dynamic libraries").Value(&st.Dynamic),
		huh.NewConfirm().Title("Build 3rd-party contribs").Value(&st.ThirdParty),
		huh.NewConfirm().Title("Debug build").Value(&st.Debug),
		huh.NewConfirm().Title("Persist environment").Value(&st.PersistEnv),
	}
	paths := []huh.Field{
		huh.NewInput().Title("Android NDK path").Description("비워두면 스크립트에서 생략").Value(&st.NDKPath),
		huh.NewInput().Title("Qt path").Description("비워두면 스크립트에서 생략").Value(&st.QtPath),
		huh.NewInput().Title("Workspace path").Value(&st.WorkspacePath),
	}
	if err := h.run("RunBuildForm",
		huh.NewGroup(fields...),
		huh.NewGroup(toggles...),
		huh.NewGroup(paths...),
	); err != nil {
		return defaults, err
	}
	return st, nil
}

// RunRecentSelect는 최근 경로 선택 UI를 표시한다.
func (h *HuhFormRunner) RunRecentSelect(paths []string) (int, error) {
	if len(paths) == 0 {
		return -1, fmt.Errorf("ui.RunRecentSelect: 최근 경로가 없습니다")
	}
	options := make([]huh.Option[int], len(paths))
	for i, p := range paths {
		options[i] = huh.NewOption(settings.DisplayPath(p), i)
	}

	var selected int
	if err := h.run("RunRecentSelect", huh.NewGroup(
		huh.NewSelect[int]().Title("최근 workspace 경로를 선택하세요").Options(options...).Value(&selected),
	)); err != nil {
		return -1, err
	}
	return selected, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	if err := h.run("RunConfirm", huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	)); err != nil {
		return false, err
	}
	return confirm, nil
}

// withCurrent는 current가 options에 없으면 맨 앞에 추가한 목록을 반환한다.
func withCurrent(options []string, current string) []string {
	if current == "" {
		return options
	}
	for _, o := range options {
		if o == current {
			return options
		}
	}
	return append([]string{current}, options...)
}
