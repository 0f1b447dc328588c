// Package server exposes the claim engine over HTTP using fiber.
package server

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sicko7947/claimflow"
)

// HeaderSender carries the authenticated caller identity
const HeaderSender = "X-Claim-Sender"

// localsSender is the fiber locals key holding the resolved sender
const localsSender = "claimflow.sender"

// ClaimService is the command surface the HTTP layer dispatches to.
// *engine.Engine satisfies it.
type ClaimService interface {
	Instantiate(ctx context.Context, info claimflow.MessageInfo, msg claimflow.InstantiateMsg) (*claimflow.Response, error)
	Execute(ctx context.Context, info claimflow.MessageInfo, msg claimflow.ExecuteMsg) (*claimflow.Response, error)
	Query(ctx context.Context, msg claimflow.QueryMsg) ([]byte, error)
}

// Server wraps a fiber app routing requests to a ClaimService
type Server struct {
	app      *fiber.App
	service  ClaimService
	logger   zerolog.Logger
	limiter  *MapLimiter
	gatherer prometheus.Gatherer
	now      func() time.Time
}

// Option configures the server
type Option func(*Server)

// WithLogger sets a custom logger for the server
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRateLimit enables per-sender rate limiting on command routes.
// A non-positive RPS disables it.
func WithRateLimit(cfg claimflow.RateLimitConfig) Option {
	return func(s *Server) {
		s.limiter = NewMapLimiter(cfg.RPS, cfg.Burst, cfg.IdleTTL)
	}
}

// WithMetrics exposes g on GET /metrics
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// New creates a server and registers its routes
func New(service ClaimService, opts ...Option) *Server {
	s := &Server{
		service: service,
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger().
			Level(zerolog.InfoLevel),
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.app = fiber.New(fiber.Config{
		AppName: "claimd",
	})
	s.registerRoutes()

	return s
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves HTTP on addr until the app is shut down
func (s *Server) Listen(addr string) error {
	s.logger.Info().Str("address", addr).Msg("Starting HTTP server")
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops accepting connections and waits up to timeout for in-flight requests
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func (s *Server) registerRoutes() {
	// Health check endpoint
	s.app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
		})
	})

	if s.gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	// API v1 routes
	v1 := s.app.Group("/api/v1")

	v1.Post("/instantiate", s.requireSender, s.rateLimit, s.handleInstantiate)
	v1.Post("/execute", s.requireSender, s.rateLimit, s.handleExecute)
	v1.Post("/query", s.handleQuery)
}

// requireSender resolves the caller identity from HeaderSender
func (s *Server) requireSender(c fiber.Ctx) error {
	sender := strings.TrimSpace(c.Get(HeaderSender))
	if sender == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":    claimflow.ErrCodeUnauthorized,
			"message": "Missing " + HeaderSender + " header",
		})
	}
	c.Locals(localsSender, claimflow.Identity(sender))
	return c.Next()
}

func (s *Server) rateLimit(c fiber.Ctx) error {
	sender, _ := c.Locals(localsSender).(claimflow.Identity)
	if !s.limiter.Allow(sender.String(), s.now()) {
		s.logger.Debug().Str("sender", sender.String()).Msg("Rate limit exceeded")
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"code":    "RATE_LIMITED",
			"message": "Too many requests",
		})
	}
	return c.Next()
}

func messageInfo(c fiber.Ctx) claimflow.MessageInfo {
	sender, _ := c.Locals(localsSender).(claimflow.Identity)
	return claimflow.MessageInfo{Sender: sender}
}

// handleInstantiate acknowledges contract setup
func (s *Server) handleInstantiate(c fiber.Ctx) error {
	var msg claimflow.InstantiateMsg
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&msg); err != nil {
			return badRequest(c)
		}
	}

	resp, err := s.service.Instantiate(c.Context(), messageInfo(c), msg)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// handleExecute decodes an ExecuteMsg and applies it
func (s *Server) handleExecute(c fiber.Ctx) error {
	var msg claimflow.ExecuteMsg
	if err := c.Bind().JSON(&msg); err != nil {
		return badRequest(c)
	}

	resp, err := s.service.Execute(c.Context(), messageInfo(c), msg)
	if err != nil {
		if statusFor(err) >= fiber.StatusInternalServerError {
			s.logger.Error().Err(err).Msg("Failed to execute claim command")
		}
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// handleQuery forwards to the service, which rejects every query
func (s *Server) handleQuery(c fiber.Ctx) error {
	data, err := s.service.Query(c.Context(), claimflow.QueryMsg{})
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

func badRequest(c fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    claimflow.ErrCodeInvalidInput,
		"message": "Invalid request body",
	})
}
