package constvars

const (
	URLParamCaseID = "case_id"
)

const (
	QueryParamPage        = "page"
	QueryParamPageSize    = "page_size"
	QueryParamStatus      = "status"
	QueryParamTriageLevel = "triage_level"
)
