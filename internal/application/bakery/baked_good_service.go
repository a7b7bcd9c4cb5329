package bakery

import (
	"context"
	"errors"

	"github.com/bakery/backend/internal/domain/bakery"
	"github.com/bakery/backend/internal/domain/shared"
	"github.com/bakery/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// BakedGoodService serves the read side of baked goods
type BakedGoodService struct {
	bakedGoodRepo bakery.BakedGoodRepository
}

// NewBakedGoodService creates a new BakedGoodService
func NewBakedGoodService(bakedGoodRepo bakery.BakedGoodRepository) *BakedGoodService {
	return &BakedGoodService{bakedGoodRepo: bakedGoodRepo}
}

// ListByPrice returns every baked good, highest price first
func (s *BakedGoodService) ListByPrice(ctx context.Context) ([]BakedGoodByPriceResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "baked_good", "list_by_price")
	defer span.End()

	goods, err := s.bakedGoodRepo.FindAllByPriceDesc(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	responses := make([]BakedGoodByPriceResponse, 0, len(goods))
	for i := range goods {
		responses = append(responses, ToBakedGoodByPriceResponse(&goods[i]))
	}
	span.SetAttributes(attribute.Int(telemetry.SpanAttrResultCount, len(responses)))
	return responses, nil
}

// MostExpensive returns a MostExpensiveBakedGoodResponse, or an
// EmptyMostExpensiveResponse when there are no baked goods.
func (s *BakedGoodService) MostExpensive(ctx context.Context) (any, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "baked_good", "most_expensive")
	defer span.End()

	good, err := s.bakedGoodRepo.FindMostExpensive(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return EmptyMostExpensiveResponse{}, nil
		}
		telemetry.RecordError(span, err)
		return nil, err
	}
	return ToMostExpensiveResponse(good), nil
}
