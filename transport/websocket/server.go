package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/marcus8448/hammer/internal/entity"
)

type uGame interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID, gameType string) (*entity.Game, error)
	JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	JoinWaitingPublicGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, x, y int) (*entity.Game, error)
	GetGameState(ctx context.Context, playerID string) (*entity.Game, error)
	LeaveGame(ctx context.Context, playerID string) (*entity.Game, error)
}

// client - one upgraded connection. Writes are serialized because game
// updates are broadcast from other players' read loops.
type client struct {
	conn *websocket.Conn

	writeMutex sync.Mutex
}

func (that *client) writeJSON(v any) error {
	that.writeMutex.Lock()
	defer that.writeMutex.Unlock()

	if err := that.conn.WriteJSON(v); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	upgrader websocket.Upgrader

	connectionsMutex sync.RWMutex
	connections      map[string]*client

	handlers map[string]func(ctx context.Context, message *Message, conn *client) error
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger,
		uGame:  uGame,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		connections: make(map[string]*client),
		handlers:    make(map[string]func(context.Context, *Message, *client) error),
	}

	server.handlers["connect"] = server.handleConnect
	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:join"] = server.handleJoinGame
	server.handlers["game:turn"] = server.handleGameTurn
	server.handlers["game:state"] = server.handleGameState
	server.handlers["game:leave"] = server.handleGameLeave

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveConnection - upgrades the connection and runs its read loop.
func (that *Server) serveConnection(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	cl := &client{conn: conn}
	defer func() {
		that.handleDisconnect(cl)
		_ = conn.Close()
	}()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(ctx, cl); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, cl *client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, reqBody, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("error reading message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			continue
		}

		if err = handler(ctx, &message, cl); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// registerConnection - binds a player ID to a connection for broadcasts.
func (that *Server) registerConnection(playerID string, cl *client) {
	that.connectionsMutex.Lock()
	that.connections[playerID] = cl
	that.connectionsMutex.Unlock()
}

func (that *Server) handleDisconnect(cl *client) {
	log := that.logger.With("method", "handleDisconnect")

	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	for playerID, connection := range that.connections {
		if connection == cl {
			delete(that.connections, playerID)
			log.Info("player disconnected", "playerID", playerID)
			return
		}
	}
}

func (that *Server) sendMessage(cl *client, action string, payload Payload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadBytes,
	}

	if err = cl.writeJSON(response); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(cl *client, action, message string) error {
	return that.sendMessage(cl, action, Payload{Error: message})
}

// broadcastGame - sends the updated game to every connected human player.
func (that *Server) broadcastGame(action string, game *entity.Game) {
	log := that.logger.With("method", "broadcastGame", "gameID", game.ID)

	view := newGameView(game)

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		that.connectionsMutex.RLock()
		cl, ok := that.connections[player.ID]
		that.connectionsMutex.RUnlock()

		if !ok {
			log.Warn("connection not found for player", "playerID", player.ID)
			continue
		}

		payload := Payload{
			Player: player,
			Game:   view,
		}

		if err := that.sendMessage(cl, action, payload); err != nil {
			log.Error("failed to send game update", "error", err)
		}
	}
}
