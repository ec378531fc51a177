// Package api exposes the calculator pipeline as an HTTP JSON API.
package api

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ameleshko/cplxcalc/internal/engine"
	"github.com/ameleshko/cplxcalc/internal/ops"
	"github.com/ameleshko/cplxcalc/internal/results"
	"github.com/ameleshko/cplxcalc/pkg/project"
	"github.com/ameleshko/cplxcalc/pkg/types"

	"github.com/gofiber/fiber/v2"
)

var _ types.Server = &APIServer{}

// CalculateRequest represents the body of a calculate request
type CalculateRequest struct {
	Operation string `json:"operation"`
	First     string `json:"first"`
	Second    string `json:"second"`
}

// CalculateResponse represents the body of a successful calculate response
type CalculateResponse struct {
	Operation string               `json:"operation"`
	First     string               `json:"first"`
	Second    string               `json:"second"`
	Result    results.ComplexValue `json:"result"`
}

// ErrorResponse represents the body of a failed response
type ErrorResponse struct {
	Error string `json:"error"`
}

// APIServer represents the cplxcalc HTTP API server
type APIServer struct {
	app    *fiber.App
	engine *engine.Engine
	config *types.Config
}

// NewAPIServer creates a new cplxcalc HTTP API server
func NewAPIServer(config *types.Config) *APIServer {
	s := &APIServer{
		app: fiber.New(fiber.Config{
			AppName:               project.Name,
			DisableStartupMessage: true,
		}),
		engine: engine.New(),
		config: config,
	}
	s.registerRoutes()
	return s
}

func (s *APIServer) registerRoutes() {
	s.app.Get("/health", s.handleHealth)
	s.app.Post("/api/v1/calculate", s.handleCalculate)
}

// handleHealth reports server liveness
func (s *APIServer) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"name":    project.Name,
		"version": project.Version,
	})
}

// handleCalculate applies one arithmetic operation to two complex numbers.
// Malformed bodies, unknown operation tokens, and unparsable operands are
// rejected with 400; division by zero with 422.
func (s *APIServer) handleCalculate(c *fiber.Ctx) error {
	var req CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: fmt.Sprintf("invalid request body: %v", err),
		})
	}

	result, err := s.engine.Evaluate(req.Operation, req.First, req.Second)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, ops.ErrDivisionByZero) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
	}

	return c.JSON(CalculateResponse{
		Operation: req.Operation,
		First:     req.First,
		Second:    req.Second,
		Result:    results.NewComplexValue(result),
	})
}

// Start starts the HTTP API server and blocks until it shuts down
func (s *APIServer) Start(ctx context.Context) error {
	log.Printf("Starting cplxcalc API server on %s", s.config.ListenAddr)

	if err := s.app.Listen(s.config.ListenAddr); err != nil {
		return fmt.Errorf("failed to serve API server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP API server, waiting for
// in-flight requests to complete
func (s *APIServer) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown API server: %w", err)
	}

	return nil
}
