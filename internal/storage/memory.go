package storage

// Memory는 프로세스 메모리에만 보관하는 Store 구현이다.
// 테스트와 저장 파일을 쓸 수 없는 환경에서 사용한다.
type Memory struct {
	Entries map[string]string
	// SetErr가 nil이 아니면 Set/Remove가 값을 반영한 뒤 이 에러를 반환한다.
	SetErr error
}

var _ Store = (*Memory)(nil)

// NewMemory는 빈 Memory 저장소를 생성한다.
func NewMemory() *Memory {
	return &Memory{Entries: make(map[string]string)}
}

// Get은 키의 값을 조회한다.
func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.Entries[key]
	return v, ok
}

// Set은 값을 저장한다.
func (m *Memory) Set(key, value string) error {
	m.Entries[key] = value
	return m.SetErr
}

// Remove는 키를 삭제한다.
func (m *Memory) Remove(key string) error {
	delete(m.Entries, key)
	return m.SetErr
}
