package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

// memoryGame keeps games in process memory. Games are stored as JSON so callers never
// share a pointer with the store, the same as with redis.
type memoryGame struct {
	mu    sync.Mutex
	games map[string][]byte
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string][]byte),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = gameJSON

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	gameJSON, ok := that.games[id]
	that.mu.Unlock()

	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	var existingGame entity.Game
	if err := json.Unmarshal(gameJSON, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

type memoryScore struct {
	mu    sync.Mutex
	score entity.Score
}

func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{}
}

func (that *memoryScore) Record(_ context.Context, game *entity.Game) error {
	field, ok := scoreField(game)
	if !ok {
		return nil
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	switch field {
	case fieldHumanWins:
		that.score.HumanWins++
	case fieldAgentWins:
		that.score.AgentWins++
	case fieldDraws:
		that.score.Draws++
	}

	return nil
}

func (that *memoryScore) Get(_ context.Context) (entity.Score, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.score, nil
}
