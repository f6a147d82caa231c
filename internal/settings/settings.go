// Package settings는 마지막으로 사용한 빌드 설정 레코드와 최근 workspace 경로 목록을
// 클라이언트 저장소에 읽고 쓴다.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/hbjs97/hbgen/internal/platform"
	"github.com/hbjs97/hbgen/internal/storage"
	"go.uber.org/zap"
)

const (
	// KeySettings는 설정 레코드(JSON 객체)의 저장소 키다.
	KeySettings = "harbourSettings"
	// KeyRecentPaths는 최근 경로 목록(JSON 문자열 배열)의 저장소 키다.
	KeyRecentPaths = "harbourRecentPaths"
)

// Record는 사용자가 마지막으로 사용한 빌드 설정이다.
type Record struct {
	OS               platform.OS `json:"lastOS" yaml:"os"`
	CPU              string      `json:"lastCPU" yaml:"cpu"`
	NDKPath          string      `json:"lastNDK" yaml:"ndk_path"`
	QtPath           string      `json:"lastQt" yaml:"qt_path"`
	WorkspacePath    string      `json:"lastWorkspace" yaml:"workspace_path"`
	BuildDynamicLibs bool        `json:"buildDynamicLibs" yaml:"build_dynamic_libs"`
	Build3rdParty    bool        `json:"build3rdParty" yaml:"build_3rd_party"`
	DebugBuild       bool        `json:"debugBuild" yaml:"debug_build"`
	PersistEnv       bool        `json:"persistEnv" yaml:"persist_env"`
}

// Defaults는 저장된 값이 없을 때 사용하는 기본 레코드를 반환한다.
func Defaults() Record {
	return Record{
		OS:               platform.Windows,
		CPU:              "x86_64",
		BuildDynamicLibs: true,
		PersistEnv:       true,
	}
}

// Store는 설정 레코드와 최근 경로 목록의 저장소다.
// 최근 경로 목록은 생성 시 한 번 읽고 이후에는 메모리 사본을 갱신한다.
type Store struct {
	kv     storage.Store
	recent []string
	logger *zap.Logger
}

// NewStore는 kv 위에 Store를 만든다. logger가 nil이면 로그를 남기지 않는다.
func NewStore(kv storage.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{kv: kv, logger: logger}
	s.recent = s.loadRecent()
	return s
}

// Load는 저장된 설정 레코드를 기본값 위에 필드 단위로 병합하여 반환한다.
// 저장소가 비었거나 JSON이 깨졌거나 필드 타입이 맞지 않아도 실패하지 않는다.
func (s *Store) Load() Record {
	rec := Defaults()

	raw, ok := s.kv.Get(KeySettings)
	if !ok {
		return rec
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		s.logger.Debug("settings record unreadable, using defaults", zap.Error(err))
		return rec
	}

	if v, ok := s.stringField(fields, "lastOS"); ok {
		if os := platform.OS(v); os.Valid() {
			rec.OS = os
		} else {
			s.logger.Debug("unknown stored OS, using default", zap.String("value", v))
		}
	}
	if v, ok := s.stringField(fields, "lastCPU"); ok && v != "" {
		rec.CPU = v
	}
	if v, ok := s.stringField(fields, "lastNDK"); ok {
		rec.NDKPath = v
	}
	if v, ok := s.stringField(fields, "lastQt"); ok {
		rec.QtPath = v
	}
	if v, ok := s.stringField(fields, "lastWorkspace"); ok {
		rec.WorkspacePath = v
	}
	s.boolField(fields, "buildDynamicLibs", &rec.BuildDynamicLibs)
	s.boolField(fields, "build3rdParty", &rec.Build3rdParty)
	s.boolField(fields, "debugBuild", &rec.DebugBuild)
	s.boolField(fields, "persistEnv", &rec.PersistEnv)
	return rec
}

// Save는 레코드를 직렬화하여 저장된 레코드를 덮어쓴다.
// 에러는 호출자가 기록하며 재시도하지 않는다.
func (s *Store) Save(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("settings.Save: %w", err)
	}
	if err := s.kv.Set(KeySettings, string(data)); err != nil {
		return fmt.Errorf("settings.Save: %w", err)
	}
	return nil
}

// Reset은 저장된 레코드를 삭제한다. 이후 Load는 기본값을 반환한다.
func (s *Store) Reset() error {
	if err := s.kv.Remove(KeySettings); err != nil {
		return fmt.Errorf("settings.Reset: %w", err)
	}
	return nil
}

// stringField는 문자열 필드를 읽는다. 없거나 타입이 다르면 ok=false다.
func (s *Store) stringField(fields map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := fields[name]
	if !ok {
		return "", false
	}
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		s.logger.Debug("settings field ignored", zap.String("field", name))
		return "", false
	}
	return *v, true
}

// boolField는 불리언 필드를 dst에 읽는다. 없거나 타입이 다르면 dst를 유지한다.
func (s *Store) boolField(fields map[string]json.RawMessage, name string, dst *bool) {
	raw, ok := fields[name]
	if !ok {
		return
	}
	var v *bool
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		s.logger.Debug("settings field ignored", zap.String("field", name))
		return
	}
	*dst = *v
}
