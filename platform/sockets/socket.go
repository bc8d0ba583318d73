package socket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DedS3t/marble-backend/app/models"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

const (
	namespace     = "/"
	actionTimeout = 10 * time.Second
	shutdownGrace = 5 * time.Second
)

// Actions is the slice of the game engine the socket layer drives.
type Actions interface {
	RollDice(ctx context.Context, roomID string, req models.RollDiceRequest) error
	TradeLand(ctx context.Context, roomID string, req models.TradeLandRequest) error
	Construct(ctx context.Context, roomID string, req models.ConstructRequest) error
	Jail(ctx context.Context, roomID string, req models.JailRequest) error
	WorldTravel(ctx context.Context, roomID string, req models.WorldTravelRequest) error
	Tax(ctx context.Context, roomID string, req models.TaxRequest) error
	UseCard(ctx context.Context, roomID string, req models.UseCardRequest) error
	SkipTurn(ctx context.Context, roomID string, req models.SkipTurnRequest) error
	State(ctx context.Context, roomID string) (*models.GameState, error)
}

type envelope struct {
	GameID string `json:"game_id"`
}

// handler runs one inbound event and reports the room it addressed.
type handler func(ctx context.Context, payload string) (string, error)

func action[T any](call func(context.Context, string, T) error) handler {
	return func(ctx context.Context, payload string) (string, error) {
		var env envelope
		var req T
		if err := json.Unmarshal([]byte(payload), &env); err != nil {
			return "", models.InvalidAction("malformed payload: %v", err)
		}
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return env.GameID, models.InvalidAction("malformed payload: %v", err)
		}
		if env.GameID == "" {
			return "", models.InvalidAction("game_id is required")
		}
		return env.GameID, call(ctx, env.GameID, req)
	}
}

type Server struct {
	io      *socketio.Server
	actions Actions
}

// NewServer creates the socket.io server. Bind must be called before Serve so
// that inbound events reach the engine.
func NewServer() (*Server, error) {
	io, err := socketio.NewServer(nil)
	if err != nil {
		return nil, err
	}
	return &Server{io: io}, nil
}

// Broadcast sends n to everyone in the room under its type as the event name.
func (s *Server) Broadcast(roomID string, n models.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}
	s.io.BroadcastToRoom(namespace, roomID, n.Type, string(body))
	return nil
}

func (s *Server) handlers() map[string]handler {
	return map[string]handler{
		"roll-dice":    action(s.actions.RollDice),
		"trade-land":   action(s.actions.TradeLand),
		"construct":    action(s.actions.Construct),
		"jail":         action(s.actions.Jail),
		"world-travel": action(s.actions.WorldTravel),
		"tax":          action(s.actions.Tax),
		"use-card":     action(s.actions.UseCard),
		"skip-turn":    action(s.actions.SkipTurn),
	}
}

func (s *Server) Bind(actions Actions) {
	s.actions = actions

	s.io.OnConnect(namespace, func(c socketio.Conn) error {
		c.SetContext("")
		log.WithField("conn", c.ID()).Debug("socket connected")
		return nil
	})

	s.io.OnEvent(namespace, "join-game", s.join)

	s.io.OnEvent(namespace, "leave-game", func(c socketio.Conn, payload string) {
		var env envelope
		if err := json.Unmarshal([]byte(payload), &env); err != nil || env.GameID == "" {
			s.reject(c, "leave-game", "", models.InvalidAction("game_id is required"))
			return
		}
		c.Leave(env.GameID)
	})

	for event, h := range s.handlers() {
		event, h := event, h
		s.io.OnEvent(namespace, event, func(c socketio.Conn, payload string) {
			ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
			defer cancel()
			if room, err := h(ctx, payload); err != nil {
				s.reject(c, event, room, err)
			}
		})
	}

	s.io.OnError(namespace, func(c socketio.Conn, e error) {
		entry := log.WithError(e)
		if c != nil {
			entry = entry.WithField("conn", c.ID())
		}
		entry.Error("socket error")
	})

	s.io.OnDisconnect(namespace, func(c socketio.Conn, reason string) {
		log.WithFields(log.Fields{"conn": c.ID(), "reason": reason}).Debug("socket disconnected")
		c.LeaveAll()
	})
}

// join puts the socket in the game's room and, if the game is running, sends
// it the current state.
func (s *Server) join(c socketio.Conn, payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil || env.GameID == "" {
		s.reject(c, "join-game", "", models.InvalidAction("game_id is required"))
		return
	}
	c.Join(env.GameID)
	c.Emit("joined-game", strconv.Itoa(s.io.RoomLen(namespace, env.GameID)))

	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()
	st, err := s.actions.State(ctx, env.GameID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		return
	case err != nil:
		s.reject(c, "join-game", env.GameID, err)
		return
	}
	body, err := json.Marshal(models.NewNotification(models.TypeGameState, st))
	if err != nil {
		s.reject(c, "join-game", env.GameID, err)
		return
	}
	c.Emit(models.TypeGameState, string(body))
}

// reject tells only the acting client why its event failed.
func (s *Server) reject(c socketio.Conn, event, room string, err error) {
	rej := models.AsRejection(err)
	entry := log.WithFields(log.Fields{"conn": c.ID(), "event": event, "room": room, "code": rej.Code})
	if rej.Code == models.CodeInternal {
		entry.WithError(err).Error("socket event failed")
	} else {
		entry.Debug("socket event rejected")
	}
	body, _ := json.Marshal(rej)
	c.Emit("error-message", string(body))
}

// ListenAndServe serves socket.io on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string, origins []string) error {
	go func() {
		if err := s.io.Serve(); err != nil {
			log.WithError(err).Error("socket.io serve failed")
		}
	}()
	defer s.io.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.io)
	srv := &http.Server{Addr: addr, Handler: c.Handler(mux)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("socket server shutdown")
		}
	}()

	log.WithField("addr", addr).Info("socket.io listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
