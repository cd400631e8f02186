package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"go.mau.fi/util/exhttp"
)

// Options configure the HTTP server.
type Options struct {
	Addr      string
	Log       zerolog.Logger
	Handler   *Handler
	Version   string
	RateLimit RateLimitConfig
}

// Server wraps the stdlib HTTP server with middleware wiring and graceful
// shutdown.
type Server struct {
	log       zerolog.Logger
	addr      string
	boundAddr string
	srv       *http.Server
	routes    func(ctx context.Context) http.Handler
}

func NewServer(opts Options) *Server {
	return &Server{
		log:  opts.Log,
		addr: opts.Addr,
		routes: func(ctx context.Context) http.Handler {
			return buildRoutes(ctx, opts)
		},
	}
}

func buildRoutes(ctx context.Context, opts Options) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search", opts.Handler.HandleSearch)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		exhttp.WriteJSONResponse(w, http.StatusOK, map[string]any{
			"ok":      true,
			"version": opts.Version,
		})
	})

	var handler http.Handler = mux
	if opts.RateLimit.RequestsPerMin > 0 {
		handler = rateLimit(ctx, opts.RateLimit)(handler)
	}
	handler = accessLog(handler)
	handler = requestID(handler)
	handler = hlog.NewHandler(opts.Log)(handler)
	return handler
}

// Start begins serving. Blocks until the context is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.boundAddr = listener.Addr().String()
	s.srv = &http.Server{Handler: s.routes(ctx)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn().Err(err).Msg("HTTP server shutdown failed")
		}
	}()

	s.log.Info().Str("addr", s.boundAddr).Msg("HTTP server listening")
	if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// BoundAddr returns the address the server bound to. Only valid after Start.
func (s *Server) BoundAddr() string { return s.boundAddr }
