package settings

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// MaxRecentPaths는 최근 경로 목록의 최대 길이다.
const MaxRecentPaths = 10

const displayPathTail = 57

// RecordRecentPath는 path를 목록 맨 앞으로 옮기고 중복 제거, 길이 제한 후 저장한다.
// 비어 있거나 공백뿐인 path는 무시한다.
func (s *Store) RecordRecentPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	s.recent = pushFront(s.recent, path)

	data, err := json.Marshal(s.recent)
	if err != nil {
		return fmt.Errorf("settings.RecordRecentPath: %w", err)
	}
	if err := s.kv.Set(KeyRecentPaths, string(data)); err != nil {
		return fmt.Errorf("settings.RecordRecentPath: %w", err)
	}
	return nil
}

// ListRecentPaths는 최근 사용 순서의 경로 목록 사본을 반환한다.
func (s *Store) ListRecentPaths() []string {
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}

// DisplayPath는 목록 표시용 경로다. 57자를 넘으면 "..." + 마지막 57자로 줄인다.
func DisplayPath(path string) string {
	r := []rune(path)
	if len(r) <= displayPathTail {
		return path
	}
	return "..." + string(r[len(r)-displayPathTail:])
}

func (s *Store) loadRecent() []string {
	raw, ok := s.kv.Get(KeyRecentPaths)
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Debug("recent paths unreadable, starting empty", zap.Error(err))
		return nil
	}

	// 저장 순서를 유지하면서 문자열이 아닌 항목, 빈 항목, 중복을 걸러낸다.
	var paths []string
	seen := make(map[string]bool)
	for _, item := range items {
		var p string
		if err := json.Unmarshal(item, &p); err != nil {
			continue
		}
		if strings.TrimSpace(p) == "" || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
		if len(paths) == MaxRecentPaths {
			break
		}
	}
	return paths
}

func pushFront(list []string, path string) []string {
	out := make([]string, 0, MaxRecentPaths)
	out = append(out, path)
	for _, p := range list {
		if p == path {
			continue
		}
		if len(out) == MaxRecentPaths {
			break
		}
		out = append(out, p)
	}
	return out
}
