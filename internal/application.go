package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-agent/internal/agent"
	"github.com/rocketscienceinc/tictactoe-agent/internal/config"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/repository"
	"github.com/rocketscienceinc/tictactoe-agent/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-agent/internal/service"
	"github.com/rocketscienceinc/tictactoe-agent/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-agent/transport/console"
)

// RunApp - trains the agent and plays against the user on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	agentMark, err := entity.ParseMark(conf.Session.AgentMark)
	if err != nil {
		return fmt.Errorf("invalid agent mark: %w", err)
	}

	gameRepo, scoreRepo, closeStorage, err := initStorage(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	opponent := agent.New(logger, agent.Params{
		Alpha:          conf.Agent.Alpha,
		Gamma:          conf.Agent.Gamma,
		TrainEpsilon:   conf.Agent.TrainEpsilon,
		ReportInterval: conf.Agent.ReportInterval,
		Seed:           conf.Agent.Seed,
	})

	if _, err = opponent.Initialize(ctx, conf.Agent.Episodes); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Training interrupted, shutting down")
			return nil
		}
		return fmt.Errorf("could not initialize agent: %w", err)
	}

	bot := service.NewBotService(opponent, conf.Agent.PlayEpsilon)
	gameManager := usecase.NewGameManager(logger, gameRepo, scoreRepo, bot, agentMark)

	session := console.New(logger, gameManager, os.Stdin, os.Stdout, termenv.WithColorCache(true))
	if err = session.Run(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	log.Info("Session finished, shutting down")

	return nil
}

// initStorage - picks the game and score repositories configured in storage.type.
func initStorage(ctx context.Context, conf *config.Config) (repository.GameRepository, repository.ScoreRepository, func() error, error) {
	switch conf.Storage.Type {
	case config.StorageMemory:
		return repository.NewMemoryGameRepository(), repository.NewMemoryScoreRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage), repository.NewScoreRepository(redisStorage), redisStorage.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage type %q", conf.Storage.Type)
	}
}
