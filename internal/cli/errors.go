package cli

import (
	"github.com/hbjs97/hbgen/internal/config"
	"github.com/hbjs97/hbgen/internal/platform"
	"github.com/hbjs97/hbgen/internal/ui"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrCanceled는 사용자가 대화형 폼을 취소했을 때의 sentinel error다.
	ErrCanceled = ui.ErrCanceled
	// ErrUnknownOS는 지원하지 않는 대상 OS 이름일 때의 sentinel error다.
	ErrUnknownOS = platform.ErrUnknownOS
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
