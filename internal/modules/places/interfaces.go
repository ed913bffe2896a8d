package places

import (
	"context"

	"placesweb/internal/pkg/placesapi"
)

type API interface {
	ListPlaces(ctx context.Context, token string) (*placesapi.Response, error)
	GetPlace(ctx context.Context, token, placeID string) (*placesapi.Response, error)
}
