package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeInvalidState:    "Invalid state for this operation",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// External service errors
	CodeExternalServiceError: "External service error",
	CodeServiceTimeout:       "Service request timeout",
	CodeServiceUnavailable:   "Service temporarily unavailable",
	CodeRateLimitExceeded:    "Rate limit exceeded",

	// System errors
	CodeInternalError: "Internal server error",
	CodeUnknownError:  "An unknown error occurred",

	// WebSocket / transport errors
	CodeWebSocketConnectionError: "WebSocket connection error",
	CodeWebSocketReconnecting:    "WebSocket reconnecting",
	CodeWebSocketClosed:          "WebSocket connection closed",
	CodeWebSocketSendError:       "Failed to send WebSocket message",
	CodeForcedReconnect:          "Forced reconnect interval elapsed",

	// Parser errors
	CodeParsePriceFailed:  "Failed to parse price to decimal",
	CodeParseVolumeFailed: "Failed to parse volume to decimal",
	CodeUnknownEnvelope:   "Unrecognized message envelope",
	CodeMalformedFrame:    "Malformed frame payload",
	CodeUnknownChannel:    "Update for unknown channel",

	// Order-book errors
	CodeCrossedBook:      "Best bid at or above best ask",
	CodeInvalidOrderbook: "Invalid orderbook data",

	// Registry / configuration errors
	CodeUnknownExchange:      "Unknown exchange",
	CodeEmptyPairList:        "Exchange configured with no pairs",
	CodeMalformedURLTemplate: "Malformed endpoint URL template",

	// Poll-mode / REST errors
	CodePollRequestFailed: "Poll-mode request failed",

	// Publisher errors
	CodePublishFailed: "Failed to publish summary",

	// Circuit breaker errors
	CodeCircuitOpen:     "Circuit breaker is open",
	CodeCircuitHalfOpen: "Circuit breaker is half-open",
}
