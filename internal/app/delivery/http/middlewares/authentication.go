package middlewares

import (
	"context"
	"net/http"
	"strings"

	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
)

// StaffAuthentication resolves the acting staff member from a bearer token
// and stores the staff ID on the request context. Every clinical mutation
// is attributed to that ID.
func (m *Middlewares) StaffAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		staffID, err := utils.ParseStaffJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_STAFF_ID_KEY, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
