package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/marcus8448/hammer/internal/entity"
	"github.com/redis/go-redis/v9"
)

var ErrGameNotFound = errors.New("game not found")

const waitingPublicGamesKey = "games:public:waiting"

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	GetWaitingPublicGame(ctx context.Context) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	gameKey := "game:" + game.ID
	err = that.client.Set(ctx, gameKey, gameJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	if err = that.trackWaitingPublicGame(ctx, game); err != nil {
		return err
	}

	return nil
}

// trackWaitingPublicGame - keeps the matchmaking set in step with the game:
// a public game waits in the set until it starts or is deleted.
func (that *dbGame) trackWaitingPublicGame(ctx context.Context, game *entity.Game) error {
	if game.IsPublic() && game.IsWaiting() {
		if err := that.client.SAdd(ctx, waitingPublicGamesKey, game.ID).Err(); err != nil {
			return fmt.Errorf("failed to track waiting game: %w", err)
		}

		return nil
	}

	if err := that.client.SRem(ctx, waitingPublicGamesKey, game.ID).Err(); err != nil {
		return fmt.Errorf("failed to untrack waiting game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	gameKey := "game:" + id

	response, err := that.client.Get(ctx, gameKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Game{}, ErrGameNotFound
	}

	if err != nil {
		return &entity.Game{}, fmt.Errorf("failed to get game by ID: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return &entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) GetWaitingPublicGame(ctx context.Context) (*entity.Game, error) {
	id, err := that.client.SRandMember(ctx, waitingPublicGamesKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Game{}, ErrGameNotFound
	}

	if err != nil {
		return &entity.Game{}, fmt.Errorf("failed to pick waiting game: %w", err)
	}

	return that.GetByID(ctx, id)
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	gameKey := "game:" + id

	err := that.client.Del(ctx, gameKey).Err()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if err = that.client.SRem(ctx, waitingPublicGamesKey, id).Err(); err != nil {
		return fmt.Errorf("failed to untrack waiting game: %w", err)
	}

	return nil
}
