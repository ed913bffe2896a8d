package review

import (
	"context"

	"placesweb/internal/pkg/placesapi"

	"github.com/gin-gonic/gin"
)

type API interface {
	SubmitReview(ctx context.Context, token, placeID, text string, rating int) (*placesapi.Response, error)
}

type FlashStore interface {
	SetFlash(c *gin.Context, message string)
}
