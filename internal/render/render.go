// Package render는 폼 상태를 Harbour 빌드 셸 스크립트 텍스트로 변환한다.
// 모든 함수는 부수효과가 없고, 생성 시각은 호출 측이 넘긴다.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hbjs97/hbgen/internal/form"
	"mvdan.cc/sh/v3/syntax"
)

const (
	// DefaultBuildTool은 스크립트 마지막 줄에서 호출하는 빌드 도구다.
	DefaultBuildTool = "hbmk2"
	// DefaultProject는 빌드 도구에 넘기는 프로젝트 파일이다.
	DefaultProject = "project.hbp"
)

// Options는 상태 외에 스크립트에 들어가는 값이다.
type Options struct {
	Now       time.Time
	BuildTool string
	Project   string
}

// Render는 폼 상태를 스크립트 텍스트로 변환한다.
// 같은 상태와 같은 Now에 대해 항상 같은 텍스트를 반환한다.
func Render(s form.State, opts Options) string {
	tool := opts.BuildTool
	if tool == "" {
		tool = DefaultBuildTool
	}
	project := opts.Project
	if project == "" {
		project = DefaultProject
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("# Harbour build script generated %s", opts.Now.Format(time.RFC3339))
	line("# Settings:")
	line("#   Platform : %s", s.OS)
	line("#   Compiler : %s", s.Compiler)
	line("#   CPU      : %s", s.CPU)
	line("#   Shell    : %s", s.Shell)
	line("#   Dynamic  : %t", s.Dynamic)
	line("#   3rdParty : %t", s.ThirdParty)
	line("#   Debug    : %t", s.Debug)
	line("export HB_PLATFORM=%s", Quote(strings.ToLower(string(s.OS))))
	line("export HB_COMPILER=%s", Quote(strings.ToLower(s.Compiler)))
	line("export HB_CPU=%s", Quote(s.CPU))
	line("export XBASE_WORKSPACE=%s", Quote(s.WorkspacePath))
	if s.QtPath != "" {
		line("export HB_WITH_QT=%s", Quote(s.QtPath))
	}
	if s.NDKPath != "" {
		line("export ANDROID_NDK_HOME=%s", Quote(s.NDKPath))
	}
	line("")
	line("%s", Command(s, tool, project))
	return b.String()
}

// Command는 빌드 도구 호출 줄이다. 플래그는 -debug, -shared, -hbcontrib 순서로 붙는다.
func Command(s form.State, tool, project string) string {
	parts := []string{tool, project}
	if s.Debug {
		parts = append(parts, "-debug")
	}
	if s.Dynamic {
		parts = append(parts, "-shared")
	}
	if s.ThirdParty {
		parts = append(parts, "-hbcontrib")
	}
	return strings.Join(parts, " ")
}

// Quote는 값을 셸 단어로 안전하게 인용한다. 인용이 필요 없으면 그대로 반환한다.
func Quote(v string) string {
	q, err := syntax.Quote(v, syntax.LangBash)
	if err != nil {
		// NUL 등 bash로 표현할 수 없는 문자
		return strconv.Quote(v)
	}
	return q
}
