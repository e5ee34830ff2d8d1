package utils

import (
	"net/http"
	"strconv"

	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
)

// BuildEmergencyCaseFilter collects list-endpoint query parameters with the
// usual pagination defaults.
func BuildEmergencyCaseFilter(r *http.Request) *requests.EmergencyCaseFilter {
	page, err := strconv.Atoi(r.URL.Query().Get(constvars.QueryParamPage))
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get(constvars.QueryParamPageSize))
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.EmergencyCaseFilter{
		Status:      r.URL.Query().Get(constvars.QueryParamStatus),
		TriageLevel: r.URL.Query().Get(constvars.QueryParamTriageLevel),
		Page:        page,
		PageSize:    pageSize,
	}
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + NewUUID()
}
