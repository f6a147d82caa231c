package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/hbgen/internal/cmdexec"
	"github.com/hbjs97/hbgen/internal/platform"
	"github.com/hbjs97/hbgen/internal/settings"
	"github.com/shirou/gopsutil/v3/host"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// hostInfo는 테스트에서 교체한다.
var hostInfo = host.InfoWithContext

// CheckBuildTool은 빌드 도구 바이너리 존재 여부를 확인한다.
func CheckBuildTool(ctx context.Context, cmd cmdexec.Commander, tool string) DiagResult {
	out, err := cmd.Run(ctx, tool, "--version")
	if err != nil {
		return DiagResult{
			Name:    "build_tool",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 없음", tool),
			Fix:     "Harbour를 설치하고 bin 디렉토리를 PATH에 추가하거나 config.toml의 build_tool을 지정하세요",
		}
	}
	first, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return DiagResult{
		Name:    "build_tool",
		Status:  StatusOK,
		Message: first,
	}
}

// CheckPaths는 저장된 툴체인/workspace 경로를 확인한다.
// 폴더 선택기가 이름만 돌려주는 경우가 있으므로 존재하지 않는 경로는 경고로 처리한다.
func CheckPaths(rec settings.Record) []DiagResult {
	paths := []struct {
		name, label, path string
		required         bool
	}{
		{"ndk_path", "Android NDK", rec.NDKPath, rec.OS == platform.Android},
		{"qt_path", "Qt", rec.QtPath, false},
		{"workspace_path", "Workspace", rec.WorkspacePath, false},
	}

	var results []DiagResult
	for _, p := range paths {
		if p.path == "" {
			if p.required {
				results = append(results, DiagResult{
					Name:    p.name,
					Status:  StatusWarn,
					Message: fmt.Sprintf("%s 빌드에는 %s 경로가 필요합니다", rec.OS, p.label),
					Fix:     "hbgen browse ndk 또는 hbgen settings set ndk <path>",
				})
			}
			continue
		}
		info, err := os.Stat(p.path)
		switch {
		case err != nil:
			results = append(results, DiagResult{
				Name:    p.name,
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s 경로를 찾을 수 없음: %s", p.label, p.path),
				Fix:     "전체 경로를 직접 입력하세요",
			})
		case !info.IsDir():
			results = append(results, DiagResult{
				Name:    p.name,
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s 경로가 디렉토리가 아님: %s", p.label, p.path),
			})
		default:
			results = append(results, DiagResult{
				Name:    p.name,
				Status:  StatusOK,
				Message: p.path,
			})
		}
	}
	return results
}

// CheckStorage는 저장소 파일 권한이 0600보다 넓은지 확인한다.
func CheckStorage(path string) DiagResult {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return DiagResult{Name: "storage", Status: StatusOK, Message: fmt.Sprintf("%s (아직 없음)", path)}
	}
	if err != nil {
		return DiagResult{Name: "storage", Status: StatusFail, Message: err.Error()}
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		return DiagResult{
			Name:    "storage",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 권한이 %o", path, perm),
			Fix:     fmt.Sprintf("chmod 600 %s", path),
		}
	}
	return DiagResult{Name: "storage", Status: StatusOK, Message: path}
}

// CheckHost는 호스트 플랫폼을 보고하고 대상 OS와 비교한다.
func CheckHost(ctx context.Context, target platform.OS) DiagResult {
	info, err := hostInfo(ctx)
	if err != nil {
		return DiagResult{Name: "host", Status: StatusWarn, Message: fmt.Sprintf("호스트 정보 조회 실패: %v", err)}
	}
	desc := fmt.Sprintf("%s/%s", info.OS, info.KernelArch)
	if info.Platform != "" {
		desc += fmt.Sprintf(" (%s %s)", info.Platform, info.PlatformVersion)
	}
	if HostOS(info.OS) == target {
		return DiagResult{Name: "host", Status: StatusOK, Message: desc + ", 네이티브 빌드"}
	}
	return DiagResult{Name: "host", Status: StatusOK, Message: fmt.Sprintf("%s, %s 대상 크로스 빌드", desc, target)}
}

// HostOS는 GOOS 형식의 이름을 대상 OS로 변환한다. 대응이 없으면 빈 값이다.
func HostOS(goos string) platform.OS {
	switch goos {
	case "windows":
		return platform.Windows
	case "linux":
		return platform.Linux
	case "darwin":
		return platform.MacOS
	case "android":
		return platform.Android
	default:
		return ""
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, tool, storagePath string, rec settings.Record) []DiagResult {
	var results []DiagResult
	results = append(results, CheckBuildTool(ctx, cmd, tool))
	results = append(results, CheckStorage(storagePath))
	results = append(results, CheckPaths(rec)...)
	results = append(results, CheckHost(ctx, rec.OS))
	return results
}
