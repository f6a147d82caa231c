// Package ui는 폼 세션이 사용하는 사용자 상호작용 기능(디렉토리 선택, 상태 표시,
// 클립보드, 미리보기, 대화형 폼)을 인터페이스로 추상화하고 실제 구현을 제공한다.
// 테스트에서는 ui/uitest의 fake 구현을 사용한다.
package ui

import (
	"context"
	"errors"

	"github.com/hbjs97/hbgen/internal/form"
)

var (
	// ErrPickerUnsupported는 현재 환경에서 디렉토리 선택 대화상자를 띄울 수 없을 때의 sentinel error다.
	ErrPickerUnsupported = errors.New("ui: 디렉토리 선택을 지원하지 않는 환경")
	// ErrClipboardUnsupported는 클립보드를 사용할 수 없을 때의 sentinel error다.
	ErrClipboardUnsupported = errors.New("ui: 클립보드를 지원하지 않는 환경")
	// ErrCanceled는 사용자가 대화형 폼을 취소했을 때의 sentinel error다.
	ErrCanceled = errors.New("ui: 사용자가 취소함")
)

// Level은 상태 메시지 종류다.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Picker는 사용자에게 디렉토리를 요청한다.
type Picker interface {
	// PickDirectory는 선택된 경로를 반환한다. 사용자가 취소하면 ok=false, err=nil이다.
	// 환경이 지원하지 않으면 ErrPickerUnsupported를 반환한다.
	PickDirectory(ctx context.Context, title, start string) (path string, ok bool, err error)
}

// Notifier는 상태 표시줄에 메시지를 보인다.
type Notifier interface {
	Notify(level Level, msg string)
}

// Clipboard는 텍스트를 시스템 클립보드에 복사한다.
type Clipboard interface {
	Copy(text string) error
}

// Previewer는 생성된 스크립트를 터미널 표시용으로 꾸민다.
type Previewer interface {
	Preview(script string) (string, error)
}

// FormRunner는 대화형 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 fake를 사용한다.
type FormRunner interface {
	// RunBuildForm은 빌드 설정 폼을 실행한다. defaults는 현재 폼 상태다.
	RunBuildForm(defaults form.State) (form.State, error)

	// RunRecentSelect는 최근 경로 목록에서 하나를 고르게 하고 그 인덱스를 반환한다.
	RunRecentSelect(paths []string) (int, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
