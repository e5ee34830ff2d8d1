package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_STAFF_ID_KEY             ContextKey = "staff_id"
)

const (
	REQUEST_ID_PREFIX = "MDCR_SVC_"
)
