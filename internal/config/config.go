package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/hbjs97/hbgen/internal/platform"
	"github.com/hbjs97/hbgen/internal/render"
)

// AppName은 XDG 디렉토리 아래에서 쓰는 이름이다.
const AppName = "hbgen"

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("config: 설정 파일 오류")

// Config는 hbgen 설정 파일의 최상위 구조체다.
type Config struct {
	Version      int    `toml:"version"`
	StoragePath  string `toml:"storage_path"`
	BuildTool    string `toml:"build_tool"`
	ProjectFile  string `toml:"project_file"`
	DefaultShell string `toml:"default_shell"`
	Theme        string `toml:"theme"`
}

// DefaultPath는 기본 설정 파일 경로다 ($XDG_CONFIG_HOME/hbgen/config.toml).
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// DefaultStoragePath는 기본 저장소 파일 경로다 ($XDG_DATA_HOME/hbgen/storage.json).
func DefaultStoragePath() string {
	return filepath.Join(xdg.DataHome, AppName, "storage.json")
}

// Default는 설정 파일이 없을 때 사용하는 설정이다.
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다. 파일이 없으면 기본값이다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 설정을 TOML로 저장한다 (0600 권한, 상위 디렉토리 생성).
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// RenderOptions는 스크립트 렌더링 옵션을 반환한다.
func (c *Config) RenderOptions() render.Options {
	return render.Options{BuildTool: c.BuildTool, Project: c.ProjectFile}
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.StoragePath == "" {
		c.StoragePath = DefaultStoragePath()
	}
	if c.BuildTool == "" {
		c.BuildTool = render.DefaultBuildTool
	}
	if c.ProjectFile == "" {
		c.ProjectFile = render.DefaultProject
	}
	if c.DefaultShell == "" {
		c.DefaultShell = platform.Shells[0]
	}
	if c.Theme == "" {
		c.Theme = "dark"
	}
}

// Validate는 version, theme, default_shell 값을 확인한다.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("config.Validate: %w: 지원하지 않는 version %d", ErrConfig, c.Version)
	}
	if c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("config.Validate: %w: theme은 dark 또는 light (%q)", ErrConfig, c.Theme)
	}
	for _, s := range platform.Shells {
		if s == c.DefaultShell {
			return nil
		}
	}
	return fmt.Errorf("config.Validate: %w: 알 수 없는 default_shell %q", ErrConfig, c.DefaultShell)
}
