package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingCaseIDKey        = "case_id"
	LoggingCaseNumberKey    = "case_number"
	LoggingPatientIDKey     = "patient_id"
	LoggingStatusKey        = "status"
	LoggingPreviousKey      = "previous_status"
	LoggingTriageLevelKey   = "triage_level"
	LoggingEventKey         = "event"
	LoggingChannelKey       = "channel"
	LoggingQueueKey         = "queue"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingResponseCountKey = "response_count"
)
