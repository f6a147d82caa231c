package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/hbjs97/hbgen/internal/form"
	"github.com/hbjs97/hbgen/internal/platform"
	"github.com/hbjs97/hbgen/internal/session"
)

// settingKeys는 `settings set`과 generate 플래그가 다루는 키다 (적용 순서).
// compiler는 os 다음에 적용해야 OS 변경의 초기화를 덮어쓸 수 있다.
var settingKeys = []string{
	"os", "compiler", "cpu", "shell",
	"dynamic", "3rdparty", "debug", "persist-env",
	"ndk", "qt", "workspace",
}

// transientKeys는 설정 레코드에 저장되지 않는 키다.
var transientKeys = []string{"compiler", "shell"}

// applySetting은 key=value 하나를 세션에 반영한다.
func applySetting(sess *session.Session, key, value string) error {
	switch key {
	case "os":
		os, err := platform.ParseOS(value)
		if err != nil {
			return fmt.Errorf("cli.applySetting: %w", err)
		}
		sess.SetOS(os)
	case "compiler":
		if err := sess.SetCompiler(value); err != nil {
			return fmt.Errorf("cli.applySetting: %w", err)
		}
	case "cpu":
		if !slices.Contains(platform.CPUs, value) {
			return fmt.Errorf("cli.applySetting: 알 수 없는 CPU %q (선택지: %v)", value, platform.CPUs)
		}
		sess.SetCPU(value)
	case "shell":
		if !slices.Contains(platform.Shells, value) {
			return fmt.Errorf("cli.applySetting: 알 수 없는 셸 %q (선택지: %v)", value, platform.Shells)
		}
		sess.SetShell(value)
	case "dynamic", "3rdparty", "debug", "persist-env":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cli.applySetting: %s 값은 true/false여야 합니다: %w", key, err)
		}
		switch key {
		case "dynamic":
			sess.SetDynamic(v)
		case "3rdparty":
			sess.SetThirdParty(v)
		case "debug":
			sess.SetDebug(v)
		default:
			sess.SetPersistEnv(v)
		}
	case "ndk", "qt", "workspace":
		sess.SetPath(form.PathKind(key), value)
	default:
		return fmt.Errorf("cli.applySetting: 알 수 없는 설정 키 %q", key)
	}
	return nil
}
