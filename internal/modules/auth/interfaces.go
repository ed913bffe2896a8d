package auth

import (
	"context"

	"placesweb/internal/pkg/placesapi"
)

type API interface {
	Login(ctx context.Context, email, password string) (*placesapi.Response, error)
}
