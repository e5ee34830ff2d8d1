package constvars

// Client-facing messages.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientCaseNotFound                  = "emergency case not found"
	ErrClientInvalidTriageLevel            = "Invalid or missing triage level"
	ErrClientInvalidCaseStatus             = "Invalid or missing case status"
	ErrClientMissingChiefComplaint         = "chief complaint is required"
	ErrClientMissingPatient                = "patient reference or patient details are required"
	ErrClientCaseAlreadyClosed             = "emergency case is already closed"
)

// Developer-facing messages.
const (
	ErrDevValidationFailed            = "request validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON           = "cannot convert struct or other data types to JSON"
	ErrDevURLParamIDValidationFailed  = "invalid %s url parameter"
	ErrDevServerDeadlineExceeded      = "operation exceeded the server deadline"
	ErrDevServerProcess               = "internal server process failed"
	ErrDevMissingRequestID            = "request ID is missing from the request context"
	ErrDevCaseNotFound                = "emergency case does not exist in the store"
	ErrDevCaseAlreadyClosed           = "case already reached a terminal status"
	ErrDevInvalidTriageLevel          = "triage level is not one of the declared enum values"
	ErrDevInvalidCaseStatus           = "case status is not one of the declared enum values"
	ErrDevAuthTokenMissing            = "authorization token is missing from the request"
	ErrDevAuthTokenInvalidOrExpired   = "authorization token is invalid or already expired"
	ErrDevAuthSigningMethod           = "unexpected token signing method"
	ErrDevAuthGenerateToken           = "failed to sign the staff token"
	ErrDevDBFailedToFindDocument      = "database failed to find document"
	ErrDevDBFailedToInsertDocument    = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument    = "database failed to update document"
	ErrDevDBFailedToIterateDocuments  = "database failed to iterate documents"
	ErrDevDBFailedToCountDocuments    = "database failed to count documents"
	ErrDevDBStringNotObjectID         = "given string cannot be converted into mongo ObjectID"
	ErrDevDBFailedToGenerateSequence  = "database failed to generate the daily case sequence"
	ErrDevRedisGetData                = "redis failed to get data"
	ErrDevRedisSetData                = "redis failed to set data"
	ErrDevRedisDeleteData             = "redis failed to delete data"
	ErrDevRedisPublishMessage         = "redis failed to publish message to channel %s"
	ErrDevRabbitMQPublishMessage      = "rabbitmq failed to publish message to queue %s"
	ErrDevRabbitMQMessageNotConfirmed = "rabbitmq did not confirm the published message"
)
