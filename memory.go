package main

import (
	"sync"

	"github.com/google/uuid"
)

// SessionMemory is the only state carried between turns of one conversation.
// Entities written here are sticky: they persist until the domain that owns
// them reaches a terminal reply and clears its fields.
type SessionMemory struct {
	AccountNumber   string
	CardNumber      string
	CardType        string
	Mobile          string
	NationalID      string
	CurrentDomain   string
	LoanType        string
	OpenAccountType string
	TransferAmount  int
	TransferName    string
	TransferAccount string
	NeedBlockReason bool
}

func NewSessionMemory() *SessionMemory {
	return &SessionMemory{NeedBlockReason: true}
}

// ClearDomain resets only the fields owned by the completing domain. Memory
// is never wiped wholesale; unrelated sticky entities survive.
func (m *SessionMemory) ClearDomain(domain string) {
	switch domain {
	case domainBalance, domainTransaction:
		m.AccountNumber = ""
		m.CurrentDomain = domainNone
	case domainCard:
		m.CardNumber = ""
		m.CardType = ""
		m.Mobile = ""
		m.NationalID = ""
		m.CurrentDomain = domainNone
		m.NeedBlockReason = true
	case domainCardBlock, domainCardUnblock:
		m.CardNumber = ""
		m.CurrentDomain = domainNone
		m.NeedBlockReason = true
	case domainLoan:
		m.LoanType = ""
		m.CurrentDomain = domainNone
	case domainTransfer:
		m.TransferAmount = 0
		m.TransferName = ""
		m.TransferAccount = ""
		m.CurrentDomain = domainNone
	case domainOpenAccount:
		m.OpenAccountType = ""
		m.Mobile = ""
		m.NationalID = ""
		m.CurrentDomain = domainNone
	}
}

// Session binds one conversation's memory to an optional logged-in account.
// The mutex serializes turns so a conversation's slot updates stay atomic.
type Session struct {
	mu      sync.Mutex
	Memory  *SessionMemory
	Account string
}

// Converse runs one turn through the engine while holding the session lock.
func (s *Session) Converse(e *Engine, message string) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	return e.Process(s.Memory, message, s.Account)
}

// SessionStore hands out one SessionMemory per conversation, keyed by a
// generated session id, so concurrent conversations never share slots.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

func (s *SessionStore) Create(account string) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &Session{Memory: NewSessionMemory(), Account: account}
	s.mu.Unlock()
	return id
}

func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// GetOrCreate returns the session for id, or a fresh anonymous session when
// id is empty or unknown.
func (s *SessionStore) GetOrCreate(id string) (string, *Session) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return id, sess
		}
	}
	fresh := s.Create("")
	sess, _ := s.Get(fresh)
	return fresh, sess
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
