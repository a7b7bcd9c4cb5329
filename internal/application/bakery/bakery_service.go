package bakery

import (
	"context"

	"github.com/bakery/backend/internal/domain/bakery"
	"github.com/bakery/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// BakeryService serves the read side of bakeries
type BakeryService struct {
	bakeryRepo bakery.BakeryRepository
}

// NewBakeryService creates a new BakeryService
func NewBakeryService(bakeryRepo bakery.BakeryRepository) *BakeryService {
	return &BakeryService{bakeryRepo: bakeryRepo}
}

// List returns every bakery with its baked goods nested
func (s *BakeryService) List(ctx context.Context) ([]BakeryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "bakery", "list")
	defer span.End()

	bakeries, err := s.bakeryRepo.FindAll(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	responses := make([]BakeryResponse, 0, len(bakeries))
	for i := range bakeries {
		responses = append(responses, ToBakeryResponse(&bakeries[i]))
	}
	span.SetAttributes(attribute.Int(telemetry.SpanAttrResultCount, len(responses)))
	return responses, nil
}

// GetByID returns one bakery, or shared.ErrNotFound
func (s *BakeryService) GetByID(ctx context.Context, id int64) (*BakeryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "bakery", "get_by_id",
		attribute.Int64(telemetry.SpanAttrBakeryID, id))
	defer span.End()

	b, err := s.bakeryRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToBakeryResponse(b)
	return &response, nil
}
