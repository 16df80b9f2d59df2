package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

const scoreKey = "score"

const (
	fieldHumanWins = "human"
	fieldAgentWins = "agent"
	fieldDraws     = "draw"
)

type ScoreRepository interface {
	Record(ctx context.Context, game *entity.Game) error
	Get(ctx context.Context) (entity.Score, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

// Record - counts a finished game in the tally. Unfinished games are ignored.
func (that *dbScore) Record(ctx context.Context, game *entity.Game) error {
	field, ok := scoreField(game)
	if !ok {
		return nil
	}

	if err := that.client.HIncrBy(ctx, scoreKey, field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context) (entity.Score, error) {
	fields, err := that.client.HGetAll(ctx, scoreKey).Result()
	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to get score: %w", err)
	}

	var score entity.Score
	for field, raw := range fields {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return entity.Score{}, fmt.Errorf("failed to parse score field %s: %w", field, err)
		}

		switch field {
		case fieldHumanWins:
			score.HumanWins = value
		case fieldAgentWins:
			score.AgentWins = value
		case fieldDraws:
			score.Draws = value
		}
	}

	return score, nil
}

func scoreField(game *entity.Game) (string, bool) {
	switch {
	case game.HumanWon():
		return fieldHumanWins, true
	case game.AgentWon():
		return fieldAgentWins, true
	case game.IsTie():
		return fieldDraws, true
	default:
		return "", false
	}
}
