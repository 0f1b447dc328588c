package engine

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sicko7947/claimflow"
)

// Engine applies claim commands to the single claim slot
type Engine struct {
	store     claimflow.ClaimStore
	validator claimflow.IdentityValidator
	logger    zerolog.Logger
	metrics   *Metrics

	// mu serializes every load-check-save sequence
	mu sync.Mutex
}

// EngineOption configures the claim engine
type EngineOption func(*Engine)

// WithLogger sets a custom logger for the engine
func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics records command outcomes in m
func WithMetrics(m *Metrics) EngineOption {
	return func(e *Engine) {
		e.metrics = m
	}
}

// NewEngine creates a new claim engine with optional configuration
// If no logger is provided, a default stdout logger with Info level is used
func NewEngine(store claimflow.ClaimStore, validator claimflow.IdentityValidator, opts ...EngineOption) *Engine {
	// Default logger: pretty console output, Info level
	defaultLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	eng := &Engine{
		store:     store,
		validator: validator,
		logger:    defaultLogger,
	}

	// Apply options
	for _, opt := range opts {
		opt(eng)
	}

	return eng
}

// Instantiate acknowledges contract setup. It does not touch storage.
func (e *Engine) Instantiate(ctx context.Context, info claimflow.MessageInfo, msg claimflow.InstantiateMsg) (*claimflow.Response, error) {
	requestID := uuid.New().String()

	claimflow.LogContractInstantiated(e.logger, requestID, info.Sender)
	e.metrics.observe(claimflow.MethodInstantiate, nil)

	return claimflow.NewResponse(requestID).
		AddAttribute(claimflow.AttrMethod, claimflow.MethodInstantiate), nil
}

// Execute dispatches a state-changing command to its handler
func (e *Engine) Execute(ctx context.Context, info claimflow.MessageInfo, msg claimflow.ExecuteMsg) (*claimflow.Response, error) {
	method, ok := msg.Variant()
	if !ok {
		err := claimflow.NewInvalidInputError("execute message must set exactly one command")
		e.metrics.observe("execute", err)
		return nil, err
	}

	switch method {
	case claimflow.MethodSubmitClaim:
		return e.SubmitClaim(ctx, info, msg.SubmitClaim.Patient, msg.SubmitClaim.MedicalRecord)
	default:
		return e.ApproveClaim(ctx, info, msg.ApproveClaim.Admin)
	}
}

// SubmitClaim creates the claim. It fails with ErrClaimAlreadyExists if a
// claim has already been submitted; it never overwrites.
func (e *Engine) SubmitClaim(ctx context.Context, info claimflow.MessageInfo, patient, medicalRecord string) (resp *claimflow.Response, err error) {
	requestID := uuid.New().String()
	logger := claimflow.RequestLogger(e.logger, requestID, claimflow.MethodSubmitClaim, info.Sender)
	defer func() {
		e.finish(logger, requestID, claimflow.MethodSubmitClaim, err)
	}()

	patientID, err := e.validator.ValidateIdentity(patient)
	if err != nil {
		return nil, claimflow.NewInvalidIdentityError(claimflow.MethodSubmitClaim, patient, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	_, err = e.store.LoadClaim(ctx)
	switch {
	case err == nil:
		return nil, claimflow.NewClaimErrorWithMethod(
			claimflow.ErrCodeClaimAlreadyExists, "Claim already exists", claimflow.MethodSubmitClaim)
	case !errors.Is(err, claimflow.ErrClaimNotFound):
		return nil, claimflow.NewStorageError(claimflow.MethodSubmitClaim, "load", err)
	}

	claim := &claimflow.Claim{
		Patient:       patientID,
		MedicalRecord: medicalRecord,
		IsApproved:    false,
	}
	if err := e.store.SaveClaim(ctx, claim); err != nil {
		return nil, claimflow.NewStorageError(claimflow.MethodSubmitClaim, "save", err)
	}

	claimflow.LogClaimSubmitted(logger, requestID, patientID, len(medicalRecord))

	return claimflow.NewResponse(requestID).
		AddAttribute(claimflow.AttrMethod, claimflow.MethodSubmitClaim), nil
}

// ApproveClaim marks the stored claim approved.
//
// The admin identity is supplied by the caller and only compared against
// the sender; there is no registered admin. Any sender naming itself as
// admin passes the check.
func (e *Engine) ApproveClaim(ctx context.Context, info claimflow.MessageInfo, admin string) (resp *claimflow.Response, err error) {
	requestID := uuid.New().String()
	logger := claimflow.RequestLogger(e.logger, requestID, claimflow.MethodApproveClaim, info.Sender)
	defer func() {
		e.finish(logger, requestID, claimflow.MethodApproveClaim, err)
	}()

	adminID, err := e.validator.ValidateIdentity(admin)
	if err != nil {
		return nil, claimflow.NewInvalidIdentityError(claimflow.MethodApproveClaim, admin, err)
	}

	if info.Sender != adminID {
		return nil, claimflow.NewClaimErrorWithMethod(
			claimflow.ErrCodeUnauthorized, "Unauthorized", claimflow.MethodApproveClaim)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	claim, err := e.store.LoadClaim(ctx)
	if err != nil {
		return nil, claimflow.NewStorageError(claimflow.MethodApproveClaim, "load", err)
	}

	if claim.IsApproved {
		return nil, claimflow.NewClaimErrorWithMethod(
			claimflow.ErrCodeClaimAlreadyApproved, "Claim already approved", claimflow.MethodApproveClaim)
	}

	claim.IsApproved = true
	if err := e.store.SaveClaim(ctx, claim); err != nil {
		return nil, claimflow.NewStorageError(claimflow.MethodApproveClaim, "save", err)
	}

	claimflow.LogClaimApproved(logger, requestID, adminID)

	return claimflow.NewResponse(requestID).
		AddAttribute(claimflow.AttrMethod, claimflow.MethodApproveClaim), nil
}

// Query rejects every read request. The query category has no variants.
func (e *Engine) Query(ctx context.Context, msg claimflow.QueryMsg) ([]byte, error) {
	requestID := uuid.New().String()
	claimflow.LogQueryRejected(e.logger, requestID)

	err := claimflow.NewClaimErrorWithMethod(
		claimflow.ErrCodeUnsupported, "Unsupported operation", claimflow.MethodQuery)
	e.metrics.observe(claimflow.MethodQuery, err)
	return nil, err
}

// finish logs and counts the outcome of a state-changing command
func (e *Engine) finish(logger zerolog.Logger, requestID, method string, err error) {
	e.metrics.observe(method, err)
	if err == nil {
		return
	}
	if errors.Is(err, claimflow.ErrStorageFailure) && !claimflow.IsNotFound(err) {
		claimflow.LogPersistenceError(logger, requestID, method, err)
		return
	}
	claimflow.LogClaimRejected(logger, requestID, method, err)
}
