// Package wsserver serves a remote calculator keypad over WebSocket. Each
// connection owns one calculator state; key presses arrive as JSON messages
// and every message is answered with the resulting display.
package wsserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/germanamz/scicalc/pkg/calc"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
	readLimit         = 64 << 10
)

var errEmptyRequest = errors.New("request names no tokens")

// Request is a client message. Token and Tokens may both be set; Token is
// applied first.
type Request struct {
	Token  string   `json:"token,omitempty"`
	Tokens []string `json:"tokens,omitempty"`
}

// Response is sent after every request. Error is set when the request could
// not be applied; the state is then unchanged.
type Response struct {
	Display string `json:"display"`
	Errored bool   `json:"errored"`
	Error   string `json:"error,omitempty"`
}

// Server handles /ws and /healthz.
type Server struct {
	log   *slog.Logger
	mux   *http.ServeMux
	conns atomic.Int64
	opts  *websocket.AcceptOptions
}

// Option configures a Server.
type Option func(*Server)

// WithOriginPatterns allows cross-origin connections from the given host
// patterns.
func WithOriginPatterns(patterns ...string) Option {
	return func(s *Server) {
		s.opts.OriginPatterns = append(s.opts.OriginPatterns, patterns...)
	}
}

// New creates a Server. A nil logger discards log output.
func New(log *slog.Logger, opts ...Option) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		log:  log,
		mux:  http.NewServeMux(),
		opts: &websocket.AcceptOptions{},
	}
	for _, o := range opts {
		o(s)
	}

	s.mux.HandleFunc("/ws", s.handleWS)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Connections returns the number of open keypad connections.
func (s *Server) Connections() int64 { return s.conns.Load() }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, s.opts)
	if err != nil {
		s.log.Warn("websocket accept failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer func() { _ = c.CloseNow() }()

	s.conns.Add(1)
	defer s.conns.Add(-1)

	s.log.Info("keypad connected", "remote", r.RemoteAddr)

	err = s.serve(r.Context(), c)
	switch status := websocket.CloseStatus(err); {
	case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
		s.log.Info("keypad disconnected", "remote", r.RemoteAddr)
	case errors.Is(err, context.Canceled):
		_ = c.Close(websocket.StatusGoingAway, "server shutting down")
	default:
		s.log.Warn("keypad connection failed", "remote", r.RemoteAddr, "error", err)
	}
}

// serve runs the read-apply-reply loop for one connection. Messages are
// handled strictly in order, so the state needs no locking.
func (s *Server) serve(ctx context.Context, c *websocket.Conn) error {
	state := calc.Initial()

	if err := wsjson.Write(ctx, c, respond(state, nil)); err != nil {
		return err
	}

	c.SetReadLimit(readLimit)

	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			return err
		}

		var req Request
		if typ != websocket.MessageText {
			err = errors.New("expected a text message")
		} else if jerr := json.Unmarshal(data, &req); jerr != nil {
			err = fmt.Errorf("invalid request: %w", jerr)
		}

		if err == nil {
			var next calc.State
			if next, err = handle(state, req); err == nil {
				state = next
			}
		}

		if werr := wsjson.Write(ctx, c, respond(state, err)); werr != nil {
			return werr
		}
	}
}

func handle(state calc.State, req Request) (calc.State, error) {
	labels := req.Tokens
	if req.Token != "" {
		labels = append([]string{req.Token}, labels...)
	}
	if len(labels) == 0 {
		return state, errEmptyRequest
	}

	toks, err := calc.ParseTokens(labels)
	if err != nil {
		return state, err
	}

	return calc.ApplyAll(state, toks...), nil
}

func respond(state calc.State, err error) Response {
	r := Response{Display: state.Display, Errored: state.Errored}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
