package claimflow

import (
	"github.com/rs/zerolog"
)

// Log event names
const (
	// Lifecycle events
	EventContractInstantiated = "contract_instantiated"
	EventClaimSubmitted       = "claim_submitted"
	EventClaimApproved        = "claim_approved"

	// Rejections
	EventClaimRejected = "claim_rejected"
	EventQueryRejected = "query_rejected"

	// Persistence events
	EventPersistenceError = "persistence_error"
)

// LogContractInstantiated logs the initialization acknowledgment
func LogContractInstantiated(logger zerolog.Logger, requestID string, sender Identity) {
	logger.Info().
		Str("event", EventContractInstantiated).
		Str("request_id", requestID).
		Str("sender", sender.String()).
		Msg("Contract instantiated")
}

// LogClaimSubmitted logs a stored claim. The medical record itself is never
// logged, only its size.
func LogClaimSubmitted(logger zerolog.Logger, requestID string, patient Identity, recordBytes int) {
	logger.Info().
		Str("event", EventClaimSubmitted).
		Str("request_id", requestID).
		Str("patient", patient.String()).
		Int("medical_record_bytes", recordBytes).
		Msg("Claim submitted")
}

// LogClaimApproved logs a successful approval
func LogClaimApproved(logger zerolog.Logger, requestID string, admin Identity) {
	logger.Info().
		Str("event", EventClaimApproved).
		Str("request_id", requestID).
		Str("admin", admin.String()).
		Msg("Claim approved")
}

// LogClaimRejected logs a command that failed a guard
func LogClaimRejected(logger zerolog.Logger, requestID, method string, err error) {
	logger.Warn().
		Str("event", EventClaimRejected).
		Str("request_id", requestID).
		Str("method", method).
		Str("code", ErrorCode(err)).
		Err(err).
		Msg("Claim command rejected")
}

// LogQueryRejected logs a query request
func LogQueryRejected(logger zerolog.Logger, requestID string) {
	logger.Debug().
		Str("event", EventQueryRejected).
		Str("request_id", requestID).
		Msg("Query rejected")
}

// LogPersistenceError logs errors during persistence operations
func LogPersistenceError(logger zerolog.Logger, requestID, operation string, err error) {
	logger.Error().
		Str("event", EventPersistenceError).
		Str("request_id", requestID).
		Str("operation", operation).
		Err(err).
		Msg("Persistence error")
}

// RequestLogger creates a logger enriched with request context
func RequestLogger(baseLogger zerolog.Logger, requestID, method string, sender Identity) zerolog.Logger {
	return baseLogger.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("sender", sender.String()).
		Logger()
}
