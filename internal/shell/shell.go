package shell

import (
	"fmt"
	"strings"

	"github.com/hbjs97/hbgen/internal/envsnap"
	"mvdan.cc/sh/v3/syntax"
)

// Supported는 export 출력을 지원하는 셸 유형이다.
var Supported = []string{"bash", "zsh", "sh", "fish"}

// Export는 값이 있는 스냅샷 변수를 셸 export 명령으로 출력한다.
// 값은 eval해도 확장되지 않도록 셸 문법에 맞게 인용된다.
func Export(entries []envsnap.Entry, shellType string) string {
	var b strings.Builder
	for _, e := range entries {
		if !e.IsSet() {
			continue
		}
		switch shellType {
		case "fish":
			fmt.Fprintf(&b, "set -gx %s %s\n", e.Name, fishQuote(e.Value))
		default: // bash, zsh, sh
			fmt.Fprintf(&b, "export %s=%s\n", e.Name, posixQuote(e.Value, shellType))
		}
	}
	return b.String()
}

// posixQuote는 syntax.Quote로 인용한다. sh는 POSIX 문법, 그 외는 bash 문법이다.
func posixQuote(v, shellType string) string {
	lang := syntax.LangBash
	if shellType == "sh" {
		lang = syntax.LangPOSIX
	}
	q, err := syntax.Quote(v, lang)
	if err != nil {
		// NUL 등. 작은따옴표 안에서는 '만 이스케이프하면 된다.
		return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
	}
	return q
}

// fishQuote는 fish의 작은따옴표 문자열로 인용한다. 안에서는 \와 '만 특수 문자다.
func fishQuote(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}

// Unset은 스냅샷 변수 전체를 해제하는 명령을 출력한다.
func Unset(shellType string) string {
	var b strings.Builder
	for _, n := range envsnap.Names {
		switch shellType {
		case "fish":
			fmt.Fprintf(&b, "set -e %s\n", n)
		default:
			fmt.Fprintf(&b, "unset %s\n", n)
		}
	}
	return b.String()
}

// IsSupported는 shellType이 Supported에 포함되는지 확인한다.
func IsSupported(shellType string) bool {
	for _, s := range Supported {
		if s == shellType {
			return true
		}
	}
	return false
}
