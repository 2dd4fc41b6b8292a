package search

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"thirdcoast.systems/reelscout/internal/table"
)

var ErrNoWorkspace = errors.New("no results loaded")

// Workspace is one client's current video table. Raw is what the last
// search or import produced; View is Raw re-ranked by Options.
type Workspace struct {
	ID        uuid.UUID   `json:"id"`
	Source    string      `json:"source"`
	Raw       table.Table `json:"-"`
	View      table.Table `json:"view"`
	Options   RankOptions `json:"options"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// WorkspaceStore keeps workspaces in memory. Entries idle longer than the
// TTL are dropped on the next write.
type WorkspaceStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[uuid.UUID]Workspace
	now   func() time.Time
}

func NewWorkspaceStore(ttl time.Duration) *WorkspaceStore {
	return &WorkspaceStore{
		ttl:   ttl,
		items: make(map[uuid.UUID]Workspace),
		now:   time.Now,
	}
}

// Get returns the workspace for id unless it is missing or expired.
func (s *WorkspaceStore) Get(id uuid.UUID) (Workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ws, ok := s.items[id]
	if !ok || s.expired(ws) {
		return Workspace{}, false
	}
	return ws, true
}

// Load replaces the workspace for id with a fresh raw table. The view is
// an unsorted copy until the next Rerank.
func (s *WorkspaceStore) Load(id uuid.UUID, source string, raw table.Table) Workspace {
	ws := Workspace{
		ID:        id,
		Source:    source,
		Raw:       raw,
		View:      raw.Clone(),
		UpdatedAt: s.now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	s.items[id] = ws
	return ws
}

// Rerank rebuilds the view of id from its raw table.
func (s *WorkspaceStore) Rerank(id uuid.UUID, opts RankOptions) (Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.items[id]
	if !ok || s.expired(ws) || ws.Raw.Empty() {
		return Workspace{}, ErrNoWorkspace
	}
	ws.View = BuildView(ws.Raw, opts)
	ws.Options = opts
	ws.UpdatedAt = s.now()
	s.items[id] = ws
	return ws, nil
}

func (s *WorkspaceStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}

func (s *WorkspaceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *WorkspaceStore) expired(ws Workspace) bool {
	return s.ttl > 0 && s.now().Sub(ws.UpdatedAt) > s.ttl
}

func (s *WorkspaceStore) evictLocked() {
	for id, ws := range s.items {
		if s.expired(ws) {
			delete(s.items, id)
		}
	}
}
