package contracts

import (
	"context"

	"medicore-service/internal/app/models"
)

// AdmissionRequestQueue is the one-way handoff to bed management. Producers
// treat it as fire-and-forget: a failed enqueue is logged, never surfaced.
type AdmissionRequestQueue interface {
	Enqueue(ctx context.Context, request *models.AdmissionRequest) error
}
