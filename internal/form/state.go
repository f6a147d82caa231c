// Package form은 빌드 설정 폼의 현재 상태를 직렬화 가능한 값으로 표현한다.
package form

import (
	"github.com/hbjs97/hbgen/internal/platform"
	"github.com/hbjs97/hbgen/internal/settings"
)

// PathKind는 폼의 경로 입력 종류다.
type PathKind string

const (
	PathNDK       PathKind = "ndk"
	PathQt        PathKind = "qt"
	PathWorkspace PathKind = "workspace"
)

// Label은 상태 메시지에 쓰이는 표시 이름이다.
func (k PathKind) Label() string {
	switch k {
	case PathNDK:
		return "NDK"
	case PathQt:
		return "Qt"
	case PathWorkspace:
		return "Workspace"
	default:
		return string(k)
	}
}

// State는 폼의 현재 선택값이다.
type State struct {
	OS            platform.OS `json:"os"`
	Compiler      string      `json:"compiler"`
	CPU           string      `json:"cpu"`
	Shell         string      `json:"shell"`
	Dynamic       bool        `json:"dynamic"`
	ThirdParty    bool        `json:"third_party"`
	Debug         bool        `json:"debug"`
	PersistEnv    bool        `json:"persist_env"`
	NDKPath       string      `json:"ndk_path"`
	QtPath        string      `json:"qt_path"`
	WorkspacePath string      `json:"workspace_path"`
}

// FromRecord는 저장된 설정 레코드로 초기 폼 상태를 만든다.
// 컴파일러는 레코드에 없으므로 OS의 첫 번째 선택지가 된다.
func FromRecord(rec settings.Record, shell string) State {
	return State{
		OS:            rec.OS,
		Compiler:      platform.DefaultCompiler(rec.OS),
		CPU:           rec.CPU,
		Shell:         shell,
		Dynamic:       rec.BuildDynamicLibs,
		ThirdParty:    rec.Build3rdParty,
		Debug:         rec.DebugBuild,
		PersistEnv:    rec.PersistEnv,
		NDKPath:       rec.NDKPath,
		QtPath:        rec.QtPath,
		WorkspacePath: rec.WorkspacePath,
	}
}

// Record는 폼 상태에서 저장할 설정 레코드를 만든다.
func (s State) Record() settings.Record {
	return settings.Record{
		OS:               s.OS,
		CPU:              s.CPU,
		NDKPath:          s.NDKPath,
		QtPath:           s.QtPath,
		WorkspacePath:    s.WorkspacePath,
		BuildDynamicLibs: s.Dynamic,
		Build3rdParty:    s.ThirdParty,
		DebugBuild:       s.Debug,
		PersistEnv:       s.PersistEnv,
	}
}

// WithOS는 OS를 바꾸고 컴파일러를 그 OS의 첫 번째 선택지로 되돌린 사본을 반환한다.
func (s State) WithOS(os platform.OS) State {
	s.OS = os
	s.Compiler = platform.DefaultCompiler(os)
	return s
}

// CompilerOptions는 현재 OS에서 선택 가능한 컴파일러 목록이다.
func (s State) CompilerOptions() []string {
	return platform.Compilers(s.OS)
}

// Path는 kind에 해당하는 경로 값을 반환한다.
func (s State) Path(kind PathKind) string {
	switch kind {
	case PathNDK:
		return s.NDKPath
	case PathQt:
		return s.QtPath
	case PathWorkspace:
		return s.WorkspacePath
	default:
		return ""
	}
}

// WithPath는 kind에 해당하는 경로를 바꾼 사본을 반환한다.
func (s State) WithPath(kind PathKind, path string) State {
	switch kind {
	case PathNDK:
		s.NDKPath = path
	case PathQt:
		s.QtPath = path
	case PathWorkspace:
		s.WorkspacePath = path
	}
	return s
}
