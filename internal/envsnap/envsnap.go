// Package envsnap은 빌드에 쓰이는 환경변수 값을 클라이언트 저장소에 흉내 내어 보관한다.
// 실제 프로세스 환경은 변경하지 않는다.
package envsnap

import (
	"fmt"
	"strings"

	"github.com/hbjs97/hbgen/internal/form"
	"github.com/hbjs97/hbgen/internal/storage"
)

// Names는 스냅샷이 다루는 고정 변수 이름이다 (표시 순서).
var Names = []string{
	"ANDROID_NDK_HOME", "ANDROID_HOME", "ANDROID_SDK_ROOT", "JAVA_HOME",
	"HB_PLATFORM", "HB_COMPILER", "HB_CPU", "HB_INSTALL_PREFIX",
	"XBASE_WORKSPACE", "HB_WITH_QT",
}

const displayValueMax = 50

// Entry는 변수 하나의 스냅샷 상태다.
type Entry struct {
	Name  string
	Value string
}

// IsSet은 값이 비어 있지 않은지 반환한다.
func (e Entry) IsSet() bool {
	return e.Value != ""
}

// DisplayValue는 50자를 넘는 값을 앞 47자 + "..."로 줄인다.
func (e Entry) DisplayValue() string {
	r := []rune(e.Value)
	if len(r) <= displayValueMax {
		return e.Value
	}
	return string(r[:displayValueMax-3]) + "..."
}

// String은 "[OK] NAME = value" / "[X] NAME = " 형식이다.
func (e Entry) String() string {
	icon := "[X]"
	if e.IsSet() {
		icon = "[OK]"
	}
	return fmt.Sprintf("%s %s = %s", icon, e.Name, e.DisplayValue())
}

// Snapshot은 저장소 위의 환경변수 스냅샷이다. 각 변수는 자기 이름의 평면 키에 저장된다.
type Snapshot struct {
	kv storage.Store
}

// New는 kv 위에 Snapshot을 만든다.
func New(kv storage.Store) *Snapshot {
	return &Snapshot{kv: kv}
}

// Known은 name이 스냅샷 변수인지 확인한다.
func Known(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Get은 변수 값을 반환한다. 저장되지 않았으면 빈 문자열이다.
func (s *Snapshot) Get(name string) string {
	v, _ := s.kv.Get(name)
	return v
}

// List는 고정 순서의 전체 변수 상태를 반환한다.
func (s *Snapshot) List() []Entry {
	entries := make([]Entry, len(Names))
	for i, n := range Names {
		entries[i] = Entry{Name: n, Value: s.Get(n)}
	}
	return entries
}

// Set은 변수 하나를 저장한다. 빈 값은 저장하지 않는다.
func (s *Snapshot) Set(name, value string) error {
	if !Known(name) {
		return fmt.Errorf("envsnap.Set: 알 수 없는 변수: %s", name)
	}
	if value == "" {
		return nil
	}
	if err := s.kv.Set(name, value); err != nil {
		return fmt.Errorf("envsnap.Set: %w", err)
	}
	return nil
}

// SetWorkspace는 XBASE_WORKSPACE 값을 저장한다.
func (s *Snapshot) SetWorkspace(path string) error {
	return s.Set("XBASE_WORKSPACE", path)
}

// FormValues는 폼 상태에서 스냅샷에 반영할 값을 만든다. 빈 값은 포함하지 않는다.
func FormValues(st form.State) map[string]string {
	candidates := map[string]string{
		"HB_PLATFORM":      strings.ToLower(string(st.OS)),
		"HB_COMPILER":      strings.ToLower(st.Compiler),
		"HB_CPU":           st.CPU,
		"XBASE_WORKSPACE":  st.WorkspacePath,
		"HB_WITH_QT":       st.QtPath,
		"ANDROID_NDK_HOME": st.NDKPath,
	}
	out := make(map[string]string, len(candidates))
	for k, v := range candidates {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// ApplyForm은 폼 상태의 비어 있지 않은 값을 스냅샷에 저장한다.
// 폼에 값이 없는 변수는 기존 값을 유지한다.
func (s *Snapshot) ApplyForm(st form.State) error {
	values := FormValues(st)
	for _, n := range Names {
		v, ok := values[n]
		if !ok {
			continue
		}
		if err := s.Set(n, v); err != nil {
			return fmt.Errorf("envsnap.ApplyForm: %w", err)
		}
	}
	return nil
}

// Clear는 모든 스냅샷 변수를 삭제한다.
func (s *Snapshot) Clear() error {
	for _, n := range Names {
		if err := s.kv.Remove(n); err != nil {
			return fmt.Errorf("envsnap.Clear: %w", err)
		}
	}
	return nil
}

// SetValues는 값이 있는 변수만 name→value로 반환한다.
func (s *Snapshot) SetValues() map[string]string {
	out := make(map[string]string)
	for _, e := range s.List() {
		if e.IsSet() {
			out[e.Name] = e.Value
		}
	}
	return out
}
