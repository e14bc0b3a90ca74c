package state

import "sync"

// HistoryEntry is one remembered message of a chat's rolling history.
type HistoryEntry struct {
	MessageID int
	Text      string
}

// Store holds every process-lifetime registry the policies share:
// warning counters, approval sets, admin caches, copyright toggles,
// rolling message history, pending approval markers and deletion
// reasons. All methods take the store lock, so each call is an atomic
// read-modify-write even when update handlers interleave.
type Store struct {
	mu sync.Mutex

	warnings        map[int64]int
	bioApproved     map[int64]struct{}
	stickerApproved map[int64]struct{}
	adminsByChat    map[int64]map[int64]struct{}
	copyrightByChat map[int64]bool
	historyByChat   map[int64][]HistoryEntry
	historyLimit    int
	pendingApproval map[int64]int
	deleteReasons   map[int]string
}

func NewStore(historyLimit int) *Store {
	if historyLimit <= 0 {
		historyLimit = 100
	}
	return &Store{
		warnings:        make(map[int64]int),
		bioApproved:     make(map[int64]struct{}),
		stickerApproved: make(map[int64]struct{}),
		adminsByChat:    make(map[int64]map[int64]struct{}),
		copyrightByChat: make(map[int64]bool),
		historyByChat:   make(map[int64][]HistoryEntry),
		historyLimit:    historyLimit,
		pendingApproval: make(map[int64]int),
		deleteReasons:   make(map[int]string),
	}
}

// AddWarning increments the user's warning counter and returns the new count.
func (s *Store) AddWarning(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings[userID]++
	return s.warnings[userID]
}

func (s *Store) Warnings(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warnings[userID]
}

func (s *Store) ResetWarnings(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings[userID] = 0
}

func (s *Store) ApproveBio(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bioApproved[userID] = struct{}{}
}

func (s *Store) IsBioApproved(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.bioApproved[userID]
	return ok
}

func (s *Store) ApproveSticker(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stickerApproved[userID] = struct{}{}
}

func (s *Store) IsStickerApproved(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.stickerApproved[userID]
	return ok
}

// ReplaceAdmins overwrites the chat's cached admin set wholesale.
func (s *Store) ReplaceAdmins(chatID int64, ids []int64) {
	admins := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		admins[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminsByChat[chatID] = admins
}

func (s *Store) IsAdmin(chatID, userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.adminsByChat[chatID][userID]
	return ok
}

func (s *Store) Admins(chatID int64) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.adminsByChat[chatID]))
	for id := range s.adminsByChat[chatID] {
		ids = append(ids, id)
	}
	return ids
}

// CopyrightEnabled reports the chat's duplicate-detection toggle,
// defaulting to enabled when the chat was never toggled.
func (s *Store) CopyrightEnabled(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	enabled, ok := s.copyrightByChat[chatID]
	if !ok {
		return true
	}
	return enabled
}

// ToggleCopyright flips the chat's toggle and returns the new state.
func (s *Store) ToggleCopyright(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.copyrightByChat[chatID]
	if !ok {
		current = true
	}
	s.copyrightByChat[chatID] = !current
	return !current
}

// History returns a copy of the chat's remembered messages in insertion order.
func (s *Store) History(chatID int64) []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.historyByChat[chatID]
	out := make([]HistoryEntry, len(entries))
	copy(out, entries)
	return out
}

// RememberMessage appends a message to the chat's history and enforces
// the cap by evicting the entry with the smallest message id.
func (s *Store) RememberMessage(chatID int64, messageID int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.historyByChat[chatID], HistoryEntry{MessageID: messageID, Text: text})
	if len(entries) > s.historyLimit {
		oldest := 0
		for i := 1; i < len(entries); i++ {
			if entries[i].MessageID < entries[oldest].MessageID {
				oldest = i
			}
		}
		entries = append(entries[:oldest], entries[oldest+1:]...)
	}
	s.historyByChat[chatID] = entries
}

// SetPendingApproval records the warning message sent for a user; the
// newest marker replaces any previous one.
func (s *Store) SetPendingApproval(userID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingApproval[userID] = messageID
}

func (s *Store) PendingApproval(userID int64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	messageID, ok := s.pendingApproval[userID]
	return messageID, ok
}

func (s *Store) RecordDeletionReason(messageID int, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteReasons[messageID] = reason
}

func (s *Store) DeletionReason(messageID int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reason, ok := s.deleteReasons[messageID]
	return reason, ok
}
