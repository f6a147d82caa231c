// Package storage는 hbgen의 클라이언트 key-value 저장소다.
// 모든 값은 평면 문자열 키 아래에 문자열로 저장되며, 구조화된 값(설정 레코드,
// 최근 경로 목록)은 호출 측에서 JSON으로 직렬화해 넣는다.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store는 문자열 key-value 저장소다. Set/Remove는 즉시 영속화된다.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// fileFormat은 저장 파일의 디스크 표현이다.
type fileFormat struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

// FileStore는 JSON 파일 하나에 전체 항목을 보관하는 Store 구현이다.
type FileStore struct {
	path    string
	entries map[string]string
	logger  *zap.Logger
}

var _ Store = (*FileStore)(nil)

// Open은 저장 파일을 읽는다. 파일 없음/읽기 실패/파싱 실패 시 빈 저장소로 시작한다 (graceful).
func Open(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &FileStore{path: path, entries: make(map[string]string), logger: logger}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s
	}
	if err != nil {
		logger.Debug("storage read failed, starting empty", zap.String("path", path), zap.Error(err))
		return s
	}
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		logger.Debug("storage parse failed, starting empty", zap.String("path", path), zap.Error(err))
		return s
	}
	if f.Entries != nil {
		s.entries = f.Entries
	}
	return s
}

// Path는 저장 파일 경로를 반환한다.
func (s *FileStore) Path() string {
	return s.path
}

// Get은 키의 값을 조회한다.
func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Set은 값을 저장하고 파일에 즉시 기록한다.
func (s *FileStore) Set(key, value string) error {
	s.entries[key] = value
	return s.flush()
}

// Remove는 키를 삭제하고 파일에 즉시 기록한다. 없는 키는 no-op이다.
func (s *FileStore) Remove(key string) error {
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.flush()
}

// flush는 전체 항목을 JSON 파일로 저장한다 (0600 권한).
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(fileFormat{Version: 1, Entries: s.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("storage.flush: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("storage.flush: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("storage.flush: %w", err)
	}
	return nil
}
