// Package selfcare hosts the telecom self-service dashboard.
package selfcare

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/haqatak/telcoco/internal/platform/i18n"
	"github.com/haqatak/telcoco/internal/platform/timeouts"
	"github.com/haqatak/telcoco/internal/services/selfcare/app"
	"github.com/haqatak/telcoco/internal/services/selfcare/fixture"
	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	"github.com/haqatak/telcoco/internal/services/selfcare/modules"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/httpx"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/observability"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/requestmeta"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/sessioncookie"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
	"github.com/haqatak/telcoco/internal/services/selfcare/session"
	selfcarestatic "github.com/haqatak/telcoco/internal/services/selfcare/static"
)

// Config defines startup inputs for the selfcare service.
type Config struct {
	HTTPAddr            string
	Fixtures            fixture.Source
	Translations        i18n.Table
	SessionStore        session.Store
	SessionSecret       []byte
	TrustForwardedProto bool
	Logger              *log.Logger
	// Metrics is optional; nil disables /metrics and request metrics.
	Metrics *observability.Metrics
}

// Server hosts the selfcare HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	codec, err := sessioncookie.NewCodec(cfg.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("session codec: %w", err)
	}
	sessions, err := session.NewManager(cfg.SessionStore, codec, policy)
	if err != nil {
		return nil, err
	}
	deps := module.Dependencies{
		Fixtures:     cfg.Fixtures,
		Sessions:     sessions,
		Translations: cfg.Translations,
		Logger:       logger,
		SchemePolicy: policy,
		Metrics:      cfg.Metrics,
	}
	h, err := app.Composer{}.Compose(app.ComposeInput{
		Dependencies:     deps,
		Authenticated:    authenticated(sessions, logger),
		PublicModules:    modules.DefaultPublicModules(),
		ProtectedModules: modules.DefaultProtectedModules(),
	})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(selfcarestatic.FS))))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Metrics != nil {
		rootMux.Handle(http.MethodGet+" "+routepath.Metrics, cfg.Metrics.Handler())
	}
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		cfg.Metrics.Middleware(metricPathLabel),
		observability.RequestLogger(logger),
	), nil
}

func authenticated(sessions *session.Manager, logger *log.Logger) func(*http.Request) bool {
	return func(r *http.Request) bool {
		_, ok, err := sessions.LoggedInUser(r)
		if err != nil {
			logger.Printf("session lookup failed path=%s request_id=%s err=%v", r.URL.Path, httpx.RequestIDFrom(r), err)
			return false
		}
		return ok
	}
}

func metricPathLabel(urlPath string) string {
	if label := routepath.MetricLabel(urlPath); label != "" {
		return label
	}
	return observability.OtherPath
}

// NewServer validates config and constructs a selfcare server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose selfcare handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("selfcare server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown selfcare http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve selfcare http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
