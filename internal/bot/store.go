package bot

import "sync"

// SessionStore держит не более одной живой сессии на пользователя.
// Все операции атомарны по ключу; порядок событий одного пользователя
// обеспечивает цикл обработки обновлений.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*Session),
	}
}

// Get возвращает nil, если сессии нет - для обработчиков это равносильно
// "анкета не начата".
func (s *SessionStore) Get(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions[userID]
}

func (s *SessionStore) Put(userID int64, session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = session
}

func (s *SessionStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}
