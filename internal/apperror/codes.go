package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	// General validation
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidState    Code = "INVALID_STATE"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	// Configuration
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// External service errors
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
	CodeServiceTimeout       Code = "SERVICE_TIMEOUT"
	CodeServiceUnavailable   Code = "SERVICE_UNAVAILABLE"
	CodeRateLimitExceeded    Code = "RATE_LIMIT_EXCEEDED"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Feed-engine error codes
const (
	// WebSocket / transport errors
	CodeWebSocketConnectionError Code = "WEBSOCKET_CONNECTION_ERROR"
	CodeWebSocketReconnecting    Code = "WEBSOCKET_RECONNECTING"
	CodeWebSocketClosed          Code = "WEBSOCKET_CLOSED"
	CodeWebSocketSendError       Code = "WEBSOCKET_SEND_ERROR"
	CodeForcedReconnect          Code = "FORCED_RECONNECT"

	// Parser errors
	CodeParsePriceFailed    Code = "PARSE_PRICE_FAILED"
	CodeParseVolumeFailed   Code = "PARSE_VOLUME_FAILED"
	CodeUnknownEnvelope     Code = "UNKNOWN_ENVELOPE"
	CodeMalformedFrame      Code = "MALFORMED_FRAME"
	CodeUnknownChannel      Code = "UNKNOWN_CHANNEL"

	// Order-book errors
	CodeCrossedBook      Code = "CROSSED_BOOK"
	CodeInvalidOrderbook Code = "INVALID_ORDERBOOK"

	// Registry / configuration errors
	CodeUnknownExchange   Code = "UNKNOWN_EXCHANGE"
	CodeEmptyPairList     Code = "EMPTY_PAIR_LIST"
	CodeMalformedURLTemplate Code = "MALFORMED_URL_TEMPLATE"

	// Poll-mode / REST errors
	CodePollRequestFailed Code = "POLL_REQUEST_FAILED"

	// Publisher errors
	CodePublishFailed Code = "PUBLISH_FAILED"

	// Circuit breaker errors
	CodeCircuitOpen     Code = "CIRCUIT_OPEN"
	CodeCircuitHalfOpen Code = "CIRCUIT_HALF_OPEN"
)
