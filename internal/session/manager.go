// Package session keeps the games of a long-running process. Each game gets
// a uuid and its own mutex, so callers on different goroutines can share a
// game while every engine call stays serialised.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Manager indexes live games by id.
type Manager struct {
	mu    sync.RWMutex
	cfg   *config.Config
	games map[string]*Session
}

// Session is one game plus the lock that serialises access to it.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	updatedAt time.Time
	game      *engine.Game
}

// NewManager creates an empty manager. Every game it creates shares cfg.
func NewManager(cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Manager{cfg: cfg, games: make(map[string]*Session)}
}

// NewGame starts a game in the standard starting position.
func (m *Manager) NewGame() *Session {
	return m.add(engine.NewGame(m.cfg))
}

// NewGameFromPlacement starts a game from a FEN piece-placement field.
func (m *Manager) NewGameFromPlacement(placement string, toMove chess.Side) (*Session, error) {
	g, err := engine.NewGameFromPlacement(m.cfg, placement, toMove)
	if err != nil {
		return nil, err
	}
	return m.add(g), nil
}

func (m *Manager) add(g *engine.Game) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		updatedAt: now,
		game:      g,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[s.ID] = s
	return s
}

// Get returns the game with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	return s, nil
}

// Remove forgets the game with the given id.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	delete(m.games, id)
	return nil
}

// IDs returns the ids of all live games, sorted.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := maps.Keys(m.games)
	slices.Sort(ids)
	return ids
}

// Len returns the number of live games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// SelectPieceAt selects a piece of the player to move.
func (s *Session) SelectPieceAt(square string) (chess.MoveMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.SelectPieceAt(square)
}

// MovePieceTo moves the selected piece.
func (s *Session) MovePieceTo(square string) (engine.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.game.MovePieceTo(square)
	if err == nil {
		s.updatedAt = time.Now()
	}
	return res, err
}

// Cancel drops the current selection.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Cancel()
}

// PieceAt reports the owner and kind of the piece on a square.
func (s *Session) PieceAt(square string) (chess.SquareInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.PieceAt(square)
}

// BoardState returns a snapshot of the board.
func (s *Session) BoardState() chess.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.BoardState()
}

// Messages drains the game's queued messages.
func (s *Session) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Messages()
}

// UpdatedAt returns the time of the last accepted move.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// Do runs fn with exclusive access to the game. fn must not keep the
// game after it returns.
func (s *Session) Do(fn func(g *engine.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}
