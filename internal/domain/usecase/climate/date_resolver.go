package climate

import (
	"context"
	"fmt"
	"time"

	"climate-api/internal/domain/gateway/db"
	"climate-api/pkg/util/dateutils"
)

// DateResolver computes the anchor dates the range-bounded views depend on
type DateResolver struct {
	gateway db.ObservationGateway
}

func NewDateResolver(gateway db.ObservationGateway) *DateResolver {
	return &DateResolver{gateway: gateway}
}

// MostRecentDate returns the latest observation date of the whole dataset
func (resolver *DateResolver) MostRecentDate(ctx context.Context) (time.Time, error) {
	value, err := resolver.gateway.FindMostRecentDate(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if value == "" {
		return time.Time{}, ErrEmptyDataset
	}

	date, err := dateutils.Parse(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("stored observation date %q is corrupt: %w", value, err)
	}
	return date, nil
}

// OneYearBefore returns the same calendar day one year earlier; Feb 29 maps to Feb 28
func (resolver *DateResolver) OneYearBefore(date time.Time) time.Time {
	return dateutils.AddYears(date, -1)
}
