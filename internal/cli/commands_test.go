package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hbjs97/hbgen/internal/cli"
	"github.com/hbjs97/hbgen/internal/config"
	"github.com/hbjs97/hbgen/internal/form"
	"github.com/hbjs97/hbgen/internal/platform"
	"github.com/hbjs97/hbgen/internal/settings"
	"github.com/hbjs97/hbgen/internal/storage"
	"github.com/hbjs97/hbgen/internal/testutil"
	"github.com/hbjs97/hbgen/internal/ui"
	"github.com/hbjs97/hbgen/internal/ui/uitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type testEnv struct {
	app         *cli.App
	storagePath string
	notifier    *uitest.Notifier
	picker      *uitest.Picker
	clipboard   *uitest.Clipboard
	forms       *uitest.FormRunner
	commander   *testutil.FakeCommander
	home        string
}

// newTestApp creates an App wired to fakes, with config and storage in a temp dir.
func newTestApp(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		storagePath: filepath.Join(dir, "data", "storage.json"),
		notifier:    &uitest.Notifier{},
		picker:      &uitest.Picker{},
		clipboard:   &uitest.Clipboard{},
		forms:       &uitest.FormRunner{},
		commander:   testutil.NewFakeCommander(),
		home:        filepath.Join(dir, "home"),
	}
	env.app = &cli.App{
		CfgPath:     filepath.Join(dir, "config.toml"),
		StoragePath: env.storagePath,
		Commander:   env.commander,
		Picker:      env.picker,
		Clipboard:   env.clipboard,
		Previewer:   uitest.Previewer{},
		FormRunner:  env.forms,
		Notifier:    env.notifier,
		Now:         func() time.Time { return fixedNow },
		Home:        env.home,
	}
	return env
}

// run executes one hbgen invocation and returns stdout.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := e.app.NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err)
	return out
}

func (e *testEnv) record(t *testing.T) settings.Record {
	t.Helper()
	return settings.NewStore(storage.Open(e.storagePath, nil), nil).Load()
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return lines[len(lines)-1]
}

// --- generate ---

func TestGenerate_Defaults(t *testing.T) {
	env := newTestApp(t)

	out := env.mustRun(t, "generate")

	assert.True(t, strings.HasPrefix(out, "# Harbour build script generated 2026-01-02T03:04:05Z\n"))
	assert.Contains(t, out, "#   Platform : Windows\n")
	assert.Contains(t, out, "#   Compiler : MSVC\n")
	assert.Contains(t, out, "#   Shell    : bash\n")
	assert.NotContains(t, out, "HB_WITH_QT")
	assert.NotContains(t, out, "ANDROID_NDK_HOME")
	assert.Equal(t, "hbmk2 project.hbp -shared", lastLine(out))
	assert.Equal(t, "Build script generated", env.notifier.Last().Text)
}

func TestGenerate_FlagsArePersisted(t *testing.T) {
	env := newTestApp(t)

	out := env.mustRun(t, "generate", "--os", "android", "--debug", "--3rdparty", "--ndk", "/opt/ndk")
	assert.Contains(t, out, "#   Compiler : Clang\n")
	assert.Equal(t, "hbmk2 project.hbp -debug -shared -hbcontrib", lastLine(out))

	rec := env.record(t)
	assert.Equal(t, platform.Android, rec.OS)
	assert.True(t, rec.DebugBuild)
	assert.True(t, rec.Build3rdParty)
	assert.Equal(t, "/opt/ndk", rec.NDKPath)

	// A second run with no flags reproduces the stored configuration.
	again := env.mustRun(t, "generate")
	assert.Equal(t, out, again)
}

func TestGenerate_CompilerAfterOS(t *testing.T) {
	env := newTestApp(t)

	out := env.mustRun(t, "generate", "--os", "linux", "--compiler", "clang", "--dynamic=false")
	assert.Contains(t, out, "#   Compiler : Clang\n")
	assert.Contains(t, out, "export HB_COMPILER=clang\n")
	assert.Equal(t, "hbmk2 project.hbp", lastLine(out))
}

func TestGenerate_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown os", []string{"generate", "--os", "beos"}},
		{"compiler not offered", []string{"generate", "--os", "android", "--compiler", "msvc"}},
		{"unknown cpu", []string{"generate", "--cpu", "sparc"}},
		{"unknown shell", []string{"generate", "--shell", "csh"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestApp(t)
			_, err := env.run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(err))
		})
	}
}

func TestGenerate_UnknownOSIsSentinel(t *testing.T) {
	env := newTestApp(t)
	_, err := env.run(t, "generate", "--os", "beos")
	assert.ErrorIs(t, err, cli.ErrUnknownOS)
}

func TestGenerate_CopyAndPretty(t *testing.T) {
	env := newTestApp(t)

	out := env.mustRun(t, "generate", "--copy", "--pretty")
	assert.True(t, strings.HasPrefix(out, "<<PREVIEW>>\n"))
	assert.True(t, strings.HasPrefix(env.clipboard.Text, "# Harbour build script generated"))
	assert.NotContains(t, env.clipboard.Text, "PREVIEW")
	assert.Equal(t, uitest.Message{Level: ui.LevelSuccess, Text: "Build script copied to clipboard"}, env.notifier.Last())
}

func TestGenerate_ClipboardUnavailable(t *testing.T) {
	env := newTestApp(t)
	env.clipboard.Err = ui.ErrClipboardUnsupported

	_, err := env.run(t, "generate", "--copy")
	require.NoError(t, err)
	assert.Equal(t, ui.LevelWarning, env.notifier.Last().Level)
}

func TestGenerate_StatusBarOnStderr(t *testing.T) {
	env := newTestApp(t)
	env.app.Notifier = nil

	cmd := env.app.NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"generate"})
	require.NoError(t, cmd.Execute())

	assert.NotContains(t, out.String(), "Build script generated\n")
	assert.Contains(t, errOut.String(), "Build script generated")
}

// --- form ---

func TestForm_AppliesAndRecordsWorkspace(t *testing.T) {
	env := newTestApp(t)
	env.forms.Build = func(s form.State) form.State {
		s = s.WithOS(platform.Linux)
		s.CPU = "arm64"
		s.WorkspacePath = "/srv/ws"
		return s
	}

	out := env.mustRun(t, "form")
	assert.Contains(t, out, "#   Platform : Linux\n")
	assert.Contains(t, out, "#   Compiler : GCC\n")
	require.Len(t, env.forms.Defaults, 1)
	assert.Equal(t, platform.Windows, env.forms.Defaults[0].OS)

	rec := env.record(t)
	assert.Equal(t, platform.Linux, rec.OS)
	assert.Equal(t, "arm64", rec.CPU)
	assert.Equal(t, "/srv/ws", rec.WorkspacePath)

	list := env.mustRun(t, "recent", "list")
	assert.Equal(t, " 1  /srv/ws\n", list)
}

func TestForm_Canceled(t *testing.T) {
	env := newTestApp(t)
	env.forms.BuildErr = ui.ErrCanceled

	_, err := env.run(t, "form")
	require.Error(t, err)
	assert.Equal(t, cli.ExitCanceled, cli.MapExitCode(err))

	_, statErr := os.Stat(env.storagePath)
	assert.True(t, os.IsNotExist(statErr), "canceled form must not write storage")
}

func TestForm_NoGenerate(t *testing.T) {
	env := newTestApp(t)
	out := env.mustRun(t, "form", "--no-generate")
	assert.Empty(t, out)
}

// --- settings ---

func TestSettingsShow_Formats(t *testing.T) {
	env := newTestApp(t)
	env.mustRun(t, "settings", "set", "qt", "/opt/qt")

	text := env.mustRun(t, "settings", "show")
	assert.Contains(t, text, "os           Windows\n")
	assert.Contains(t, text, "qt           /opt/qt\n")

	raw := env.mustRun(t, "settings", "show", "-o", "json")
	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &fields))
	assert.Equal(t, "Windows", fields["lastOS"])
	assert.Equal(t, "/opt/qt", fields["lastQt"])
	assert.Equal(t, true, fields["buildDynamicLibs"])

	y := env.mustRun(t, "settings", "show", "-o", "yaml")
	assert.Contains(t, y, "os: Windows\n")
	assert.Contains(t, y, "qt_path: /opt/qt\n")

	_, err := env.run(t, "settings", "show", "-o", "xml")
	assert.Error(t, err)
}

func TestSettingsSet(t *testing.T) {
	env := newTestApp(t)

	env.mustRun(t, "settings", "set", "os", "macos")
	env.mustRun(t, "settings", "set", "debug", "true")
	env.mustRun(t, "settings", "set", "workspace", "/w")

	rec := env.record(t)
	assert.Equal(t, platform.MacOS, rec.OS)
	assert.True(t, rec.DebugBuild)
	assert.Equal(t, "/w", rec.WorkspacePath)
	assert.Equal(t, "Configuration updated for macOS", env.notifier.Messages[0].Text)

	// Typing a workspace path does not touch the recent list.
	assert.Equal(t, "최근 경로가 없습니다.\n", env.mustRun(t, "recent", "list"))
}

func TestSettingsSet_Rejected(t *testing.T) {
	env := newTestApp(t)

	_, err := env.run(t, "settings", "set", "compiler", "clang")
	assert.Error(t, err)
	_, err = env.run(t, "settings", "set", "debug", "maybe")
	assert.Error(t, err)
	_, err = env.run(t, "settings", "set", "color", "red")
	assert.Error(t, err)
}

func TestSettingsReset(t *testing.T) {
	env := newTestApp(t)
	env.mustRun(t, "settings", "set", "cpu", "armv7")

	// Declined confirmation keeps the record.
	env.mustRun(t, "settings", "reset")
	assert.Equal(t, "armv7", env.record(t).CPU)

	env.mustRun(t, "settings", "reset", "--yes")
	assert.Equal(t, settings.Defaults(), env.record(t))
}

// --- recent ---

func TestRecent_AddAndUse(t *testing.T) {
	env := newTestApp(t)
	env.mustRun(t, "recent", "add", "/a")
	env.mustRun(t, "recent", "add", "/b")
	env.mustRun(t, "settings", "set", "workspace", "/typed")

	assert.Equal(t, " 1  /b\n 2  /a\n", env.mustRun(t, "recent", "list"))

	out := env.mustRun(t, "recent", "use", "2")
	assert.Equal(t, "/a\n", out)
	assert.Equal(t, "/a", env.record(t).WorkspacePath)

	_, err := env.run(t, "recent", "use", "3")
	assert.Error(t, err)
	_, err = env.run(t, "recent", "use", "x")
	assert.Error(t, err)
}

func TestRecent_UseInteractive(t *testing.T) {
	env := newTestApp(t)
	env.mustRun(t, "recent", "add", "/a")
	env.mustRun(t, "recent", "add", "/b")
	env.forms.RecentIndex = 1

	assert.Equal(t, "/a\n", env.mustRun(t, "recent", "use"))
}

func TestRecent_UseEmpty(t *testing.T) {
	env := newTestApp(t)
	out := env.mustRun(t, "recent", "use")
	assert.Empty(t, out)
	assert.Equal(t, "No recent paths", env.notifier.Last().Text)
}

// --- browse ---

func TestBrowse_Workspace(t *testing.T) {
	env := newTestApp(t)
	env.picker.Path = "/picked/ws"

	out := env.mustRun(t, "browse", "workspace")
	assert.Equal(t, "/picked/ws\n", out)
	assert.Equal(t, []string{"Select Workspace folder"}, env.picker.Titles)
	assert.Equal(t, "/picked/ws", env.record(t).WorkspacePath)
	assert.Equal(t, " 1  /picked/ws\n", env.mustRun(t, "recent", "list"))
}

func TestBrowse_Cancel(t *testing.T) {
	env := newTestApp(t)
	env.picker.Cancel = true

	out := env.mustRun(t, "browse", "ndk")
	assert.Empty(t, out)
	assert.Equal(t, ui.LevelInfo, env.notifier.Last().Level)

	_, statErr := os.Stat(env.storagePath)
	assert.True(t, os.IsNotExist(statErr), "cancel must not write storage")
}

func TestBrowse_Unsupported(t *testing.T) {
	env := newTestApp(t)
	env.picker.Err = ui.ErrPickerUnsupported

	_, err := env.run(t, "browse", "qt")
	require.NoError(t, err)
	assert.Equal(t, ui.LevelWarning, env.notifier.Last().Level)
}

func TestBrowse_InvalidKind(t *testing.T) {
	env := newTestApp(t)
	_, err := env.run(t, "browse", "sdk")
	assert.Error(t, err)
}

// --- workspace ---

func TestWorkspaceCreate_DefaultUnderHome(t *testing.T) {
	env := newTestApp(t)
	env.app.Home = ""
	home := testutil.TempHome(t)

	out := env.mustRun(t, "workspace", "create")
	want := filepath.Join(home, "xbase_workspace")
	assert.Equal(t, want+"\n", out)
	assert.Equal(t, "Workspace configured: "+want, env.notifier.Last().Text)

	_, statErr := os.Stat(want)
	assert.True(t, os.IsNotExist(statErr), "no directory is created")
}

func TestWorkspaceEnv(t *testing.T) {
	env := newTestApp(t)
	env.mustRun(t, "settings", "set", "workspace", "/w")
	env.mustRun(t, "workspace", "env")

	out := env.mustRun(t, "env", "list")
	assert.Contains(t, out, "[OK] XBASE_WORKSPACE = /w\n")
	assert.Contains(t, out, "[X] HB_PLATFORM = \n")
}

// --- env ---

func TestEnv_SetFromFormAndExport(t *testing.T) {
	env := newTestApp(t)
	env.mustRun(t, "generate", "--os", "linux", "--workspace", "/w")
	env.mustRun(t, "env", "set")
	assert.Equal(t, "Environment variables updated", env.notifier.Last().Text)

	bash := env.mustRun(t, "env", "export", "--shell", "bash")
	assert.Contains(t, bash, "export HB_PLATFORM=linux\n")
	assert.Contains(t, bash, "export HB_COMPILER=gcc\n")
	assert.Contains(t, bash, "export XBASE_WORKSPACE=/w\n")
	assert.NotContains(t, bash, "JAVA_HOME")

	fish := env.mustRun(t, "env", "export", "--shell", "fish")
	assert.Contains(t, fish, "set -gx HB_CPU 'x86_64'\n")

	_, err := env.run(t, "env", "export", "--shell", "cmd")
	assert.Error(t, err)
}

func TestEnv_ExportQuotesForEval(t *testing.T) {
	env := newTestApp(t)
	env.mustRun(t, "settings", "set", "workspace", "/ws/$HOME")
	env.mustRun(t, "workspace", "env")

	bash := env.mustRun(t, "env", "export", "--shell", "bash")
	assert.Equal(t, "export XBASE_WORKSPACE='/ws/$HOME'\n", bash)

	fish := env.mustRun(t, "env", "export", "--shell", "fish")
	assert.Equal(t, "set -gx XBASE_WORKSPACE '/ws/$HOME'\n", fish)
}

func TestEnv_SetWithPersistOff(t *testing.T) {
	env := newTestApp(t)
	env.mustRun(t, "settings", "set", "persist-env", "false")
	env.mustRun(t, "env", "set")

	assert.Equal(t, ui.LevelWarning, env.notifier.Last().Level)
	assert.Equal(t, "{}\n", env.mustRun(t, "env", "list", "--json"))
}

func TestEnv_SetSingleAndClear(t *testing.T) {
	env := newTestApp(t)
	env.mustRun(t, "env", "set", "JAVA_HOME", "/usr/lib/jvm")

	out := env.mustRun(t, "env", "list")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "[OK] JAVA_HOME = /usr/lib/jvm", lines[3])

	_, err := env.run(t, "env", "set", "PATH", "/bin")
	assert.Error(t, err)
	_, err = env.run(t, "env", "set", "JAVA_HOME")
	assert.Error(t, err)
	_, err = env.run(t, "env", "set", "JAVA_HOME", "")
	assert.ErrorContains(t, err, "JAVA_HOME 값이 비어 있습니다")
	assert.NotEqual(t, "JAVA_HOME set to: ", env.notifier.Last().Text)

	env.mustRun(t, "env", "clear", "--yes")
	assert.Equal(t, "{}\n", env.mustRun(t, "env", "list", "--json"))
}

func TestEnv_ExportUnset(t *testing.T) {
	env := newTestApp(t)
	out := env.mustRun(t, "env", "export", "--unset")
	assert.Equal(t, "unset ANDROID_NDK_HOME\n", strings.SplitAfter(out, "\n")[0])
}

// --- compilers / theme / doctor ---

func TestCompilers(t *testing.T) {
	env := newTestApp(t)
	assert.Equal(t, "MSVC\nClang\nMinGW\n", env.mustRun(t, "compilers"))
	assert.Equal(t, "Clang\nGCC\n", env.mustRun(t, "compilers", "--os", "Android"))

	_, err := env.run(t, "compilers", "--os", "plan9")
	assert.ErrorIs(t, err, cli.ErrUnknownOS)
}

func TestTheme(t *testing.T) {
	env := newTestApp(t)

	env.mustRun(t, "theme")
	v, ok := storage.Open(env.storagePath, nil).Get(ui.KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "light", v)
	assert.Equal(t, "Switched to Light theme", env.notifier.Last().Text)

	env.mustRun(t, "theme")
	v, _ = storage.Open(env.storagePath, nil).Get(ui.KeyTheme)
	assert.Equal(t, "dark", v)

	env.mustRun(t, "theme", "light")
	v, _ = storage.Open(env.storagePath, nil).Get(ui.KeyTheme)
	assert.Equal(t, "light", v)

	_, err := env.run(t, "theme", "blue")
	assert.Error(t, err)
}

func TestDoctor(t *testing.T) {
	env := newTestApp(t)
	env.commander.Register("hbmk2 --version", "Harbour Make (hbmk2) 3.2.0dev\n", nil)

	out := env.mustRun(t, "doctor")
	assert.Contains(t, out, "[OK] build_tool: Harbour Make (hbmk2) 3.2.0dev")
	assert.Contains(t, out, "storage: "+env.storagePath)
	assert.True(t, env.commander.Called("hbmk2 --version"))
}

func TestDoctor_ConfigErrorStillRuns(t *testing.T) {
	env := newTestApp(t)
	env.app.CfgPath = testutil.TempConfigFile(t, "version = 9\n")
	env.commander.Register("hbmk2", "", os.ErrNotExist)

	out := env.mustRun(t, "doctor")
	assert.Contains(t, out, "[FAIL] config:")
	assert.Contains(t, out, "[FAIL] build_tool: hbmk2 없음")
}

// --- config / exit codes ---

func TestConfigInit(t *testing.T) {
	env := newTestApp(t)

	out := env.mustRun(t, "config", "init", "--theme", "light", "--shell", "fish")
	assert.Equal(t, "설정 파일이 생성되었습니다: "+env.app.CfgPath+"\n", out)

	info, err := os.Stat(env.app.CfgPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := config.Load(env.app.CfgPath)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "fish", cfg.DefaultShell)
	assert.Equal(t, "hbmk2", cfg.BuildTool)

	// The new file drives the next command.
	gen := env.mustRun(t, "generate")
	assert.Contains(t, gen, "#   Shell    : fish\n")

	_, err = env.run(t, "config", "init")
	assert.ErrorContains(t, err, "이미 존재합니다")

	env.mustRun(t, "config", "init", "--force", "--build-tool", "hbmk2.exe")
	cfg, err = config.Load(env.app.CfgPath)
	require.NoError(t, err)
	assert.Equal(t, "hbmk2.exe", cfg.BuildTool)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestConfigInit_InvalidValue(t *testing.T) {
	env := newTestApp(t)

	_, err := env.run(t, "config", "init", "--theme", "blue")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.MapExitCode(err))

	_, statErr := os.Stat(env.app.CfgPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigPath(t *testing.T) {
	env := newTestApp(t)
	assert.Equal(t, env.app.CfgPath+"\n", env.mustRun(t, "config", "path"))
}

func TestConfigFile_BuildToolAndShell(t *testing.T) {
	env := newTestApp(t)
	env.app.CfgPath = testutil.TempConfigFile(t, `version = 1
build_tool = "hbmk2-3.4"
project_file = "app.hbp"
default_shell = "zsh"
`)

	out := env.mustRun(t, "generate", "--dynamic=false")
	assert.Contains(t, out, "#   Shell    : zsh\n")
	assert.Equal(t, "hbmk2-3.4 app.hbp", lastLine(out))
}

func TestConfigError_ExitCode(t *testing.T) {
	env := newTestApp(t)
	env.app.CfgPath = testutil.TempConfigFile(t, "version = [")

	_, err := env.run(t, "generate")
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrConfig)
	assert.Equal(t, cli.ExitConfigError, cli.MapExitCode(err))
}

func TestMapExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitSuccess, cli.MapExitCode(nil))
	assert.Equal(t, cli.ExitCanceled, cli.MapExitCode(ui.ErrCanceled))
	assert.Equal(t, cli.ExitConfigError, cli.MapExitCode(cli.ErrConfig))
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(os.ErrPermission))
}
