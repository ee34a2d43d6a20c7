// Package fixes — отметки "исправлено" по записям отчётов.
// Чисто презентационное состояние: ядро анализа его не читает и не пишет,
// адресация идёт по естественному ключу записи (номер детали, партия,
// ключ пары). Живёт столько же, сколько сеанс.
package fixes

import "sync"

type Store struct {
	mu    sync.RWMutex
	fixed map[string]map[string]bool // category → id → fixed
}

func NewStore() *Store {
	return &Store{fixed: make(map[string]map[string]bool)}
}

// Toggle — переключает отметку, возвращает новое состояние.
func (s *Store) Toggle(category, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fixed[category] == nil {
		s.fixed[category] = make(map[string]bool)
	}
	s.fixed[category][id] = !s.fixed[category][id]
	return s.fixed[category][id]
}

func (s *Store) Resolved(category, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fixed[category][id]
}

// Category — снимок отметок одной категории (только взведённые).
func (s *Store) Category(category string) map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool)
	for id, v := range s.fixed[category] {
		if v {
			out[id] = true
		}
	}
	return out
}
