package ivr

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// session один звонок
// Все поля защищены mu, кнопки одного звонка обрабатываются по очереди
type session struct {
	mu sync.Mutex

	callID      string
	callerPhone string
	catalog     []Offering
	state       state
	log         []LogEntry
	removed     bool

	createdAt time.Time
	updatedAt time.Time
}

func (s *session) record(kind LogKind, message string, now time.Time) {
	s.log = append(s.log, LogEntry{Timestamp: now, Kind: kind, Message: message})
}

func (s *session) snapshot() Snapshot {
	snap := Snapshot{
		CallID:      s.callID,
		CallerPhone: s.callerPhone,
		CreatedAt:   s.createdAt,
		UpdatedAt:   s.updatedAt,
	}
	snap.Log = make([]LogEntry, len(s.log))
	copy(snap.Log, s.log)
	fill(&snap, s.state)
	return snap
}

// Registry хранит звонки по call_id
// Разные звонки обрабатываются независимо и параллельно
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewRegistry создает пустой реестр звонков
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*session)}
}

func (r *Registry) create(callerPhone string, catalog []Offering, now time.Time) *session {
	s := &session{
		callerPhone: callerPhone,
		catalog:     catalog,
		state:       selectService{},
		createdAt:   now,
		updatedAt:   now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		id := uuid.NewString()
		if _, exists := r.sessions[id]; !exists {
			s.callID = id
			break
		}
	}
	r.sessions[s.callID] = s
	return s
}

func (r *Registry) lookup(callID string) (*session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[callID]
	return s, ok
}

// Get возвращает снимок звонка; отсутствие звонка не ошибка
func (r *Registry) Get(callID string) (Snapshot, bool) {
	s, ok := r.lookup(callID)
	if !ok {
		return Snapshot{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return Snapshot{}, false
	}
	return s.snapshot(), true
}

// Remove удаляет звонок из реестра
func (r *Registry) Remove(callID string) bool {
	r.mu.Lock()
	s, ok := r.sessions[callID]
	if ok {
		delete(r.sessions, callID)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}

	// Обработчик, успевший получить сессию до удаления, увидит флаг
	s.mu.Lock()
	s.removed = true
	s.mu.Unlock()
	return true
}

// removeLocked удаляет звонок, пока вызывающий держит s.mu
// Обработчик, ждущий s.mu, после этого увидит removed и не тронет состояние
func (r *Registry) removeLocked(s *session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.sessions[s.callID]; !ok || cur != s {
		return false
	}
	delete(r.sessions, s.callID)
	s.removed = true
	return true
}

// Len количество звонков в реестре
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// IDs список call_id
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	return ids
}
