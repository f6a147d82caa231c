package platform

import (
	"errors"
	"fmt"
	"strings"
)

// OS는 빌드 대상 운영체제다.
type OS string

const (
	Windows OS = "Windows"
	Android OS = "Android"
	Linux   OS = "Linux"
	MacOS   OS = "macOS"
)

// ErrUnknownOS는 지원하지 않는 대상 OS 이름이다.
var ErrUnknownOS = errors.New("platform: 알 수 없는 대상 OS")

// All은 지원하는 대상 OS 목록이다 (선택지 표시 순서).
var All = []OS{Windows, Android, Linux, MacOS}

// CPUs는 폼이 제시하는 CPU 선택지다. 다른 값도 그대로 허용된다.
var CPUs = []string{"x86_64", "x86", "arm64", "armv7"}

// Shells는 폼이 제시하는 셸 선택지다.
var Shells = []string{"bash", "zsh", "sh", "fish", "cmd", "powershell"}

var compilers = map[OS][]string{
	Windows: {"MSVC", "Clang", "MinGW"},
	Android: {"Clang", "GCC"},
	Linux:   {"GCC", "Clang"},
	MacOS:   {"Clang", "GCC"},
}

// Compilers는 대상 OS에서 선택 가능한 컴파일러 목록을 반환한다.
// 알 수 없는 OS면 빈 목록이다. 반환값은 복사본이다.
func Compilers(os OS) []string {
	list := compilers[os]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// DefaultCompiler는 OS 변경 시 선택되는 첫 번째 컴파일러를 반환한다.
func DefaultCompiler(os OS) string {
	list := compilers[os]
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// Valid는 지원하는 OS인지 확인한다.
func (o OS) Valid() bool {
	_, ok := compilers[o]
	return ok
}

// Supports는 compiler가 이 OS의 선택지에 포함되는지 확인한다.
func (o OS) Supports(compiler string) bool {
	for _, c := range compilers[o] {
		if c == compiler {
			return true
		}
	}
	return false
}

// ParseOS는 대소문자를 구분하지 않고 OS 이름을 해석한다.
func ParseOS(s string) (OS, error) {
	for _, o := range All {
		if strings.EqualFold(string(o), strings.TrimSpace(s)) {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOS, s)
}

// ParseCompiler는 대소문자를 구분하지 않고 os의 컴파일러 이름을 해석한다.
func ParseCompiler(os OS, s string) (string, error) {
	for _, c := range compilers[os] {
		if strings.EqualFold(c, strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("platform.ParseCompiler: %s에서 사용할 수 없는 컴파일러: %q (선택지: %s)",
		os, s, strings.Join(compilers[os], ", "))
}
