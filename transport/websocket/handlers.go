package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/marcus8448/hammer/internal/apperror"
	"github.com/marcus8448/hammer/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	var playerID string
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.uGame.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.sendErrorResponse(cl, msg.Action, "failed to create a new player")
	}

	that.registerConnection(player.ID, cl)

	if player.GameID != "" {
		game, err := that.uGame.GetGameState(ctx, player.ID)
		if err != nil {
			log.Error("failed to get game", "gameID", player.GameID, "error", err)
			return that.sendErrorResponse(cl, msg.Action, "failed to get the game")
		}

		return that.sendMessage(cl, msg.Action, Payload{Player: player, Game: newGameView(game)})
	}

	log.Info("player connected", "playerID", player.ID)

	return that.sendMessage(cl, msg.Action, Payload{Player: player})
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleNewGame")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "player is required")
	}

	gameType := entity.PrivateType
	if payloadReq.Game != nil && payloadReq.Game.Type != "" {
		gameType = payloadReq.Game.Type
	}

	that.registerConnection(payloadReq.Player.ID, cl)

	var game *entity.Game
	var err error

	if gameType == entity.PublicType {
		// prefer seating the player in a game already waiting for an opponent
		game, err = that.uGame.JoinWaitingPublicGame(ctx, payloadReq.Player.ID)
		if err != nil {
			game, err = that.uGame.GetOrCreateGame(ctx, payloadReq.Player.ID, gameType)
		}
	} else {
		game, err = that.uGame.GetOrCreateGame(ctx, payloadReq.Player.ID, gameType)
	}

	if err != nil {
		log.Error("failed to create or get game", "error", err)
		return that.sendErrorResponse(cl, msg.Action, "failed to create a new game")
	}

	log.Info("game ready", "gameID", game.ID, "type", game.Type)

	that.broadcastGame(msg.Action, game)

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleJoinGame")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "player is required")
	}

	if payloadReq.Game == nil || payloadReq.Game.ID == "" {
		log.Error("game is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "game is required")
	}

	that.registerConnection(payloadReq.Player.ID, cl)

	game, err := that.uGame.JoinGameByID(ctx, payloadReq.Game.ID, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to join game", "error", err)
		return that.sendErrorResponse(cl, msg.Action, fmt.Sprintf("game %s: %v", payloadReq.Game.ID, err))
	}

	log.Info("player joined game", "playerID", payloadReq.Player.ID, "gameID", game.ID)

	that.broadcastGame(msg.Action, game)

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleGameTurn")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "player is required")
	}

	if payloadReq.Move == nil {
		log.Error("move is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "move is required")
	}

	that.registerConnection(payloadReq.Player.ID, cl)

	game, err := that.uGame.MakeTurn(ctx, payloadReq.Player.ID, payloadReq.Move.X, payloadReq.Move.Y)

	switch {
	case errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrGameFinished):
		// expected rejections go back to the mover only
		return that.sendErrorResponse(cl, msg.Action, err.Error())
	case err != nil:
		log.Error("failed to make turn", "error", err)
		return that.sendErrorResponse(cl, msg.Action, "failed to make turn")
	}

	log.Info("player made a turn", "playerID", payloadReq.Player.ID, "gameID", game.ID)

	that.broadcastGame(msg.Action, game)

	return nil
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleGameState")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "player is required")
	}

	that.registerConnection(payloadReq.Player.ID, cl)

	game, err := that.uGame.GetGameState(ctx, payloadReq.Player.ID)
	if errors.Is(err, apperror.ErrNoActiveGames) {
		return that.sendErrorResponse(cl, msg.Action, err.Error())
	}

	if err != nil {
		log.Error("failed to get game state", "error", err)
		return that.sendErrorResponse(cl, msg.Action, "failed to get game state")
	}

	return that.sendMessage(cl, msg.Action, Payload{Player: payloadReq.Player, Game: newGameView(game)})
}

func (that *Server) handleGameLeave(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleGameLeave")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("player is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "player is required")
	}

	game, err := that.uGame.LeaveGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to leave game", "error", err)
		return that.sendErrorResponse(cl, msg.Action, "failed to leave game")
	}

	log.Info("player left game", "playerID", payloadReq.Player.ID, "gameID", game.ID)

	that.broadcastGame(msg.Action, game)

	return nil
}
