package review

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"placesweb/internal/middleware"
	"placesweb/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	msgSubmitted = "Review submitted successfully!"
	msgFailed    = "Failed to submit review"
)

type Handler struct {
	svc   *Service
	flash FlashStore
}

func NewHandler(svc *Service, flash FlashStore) *Handler {
	return &Handler{svc: svc, flash: flash}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/add_review.html", h.AddReviewPage)
	r.POST("/places/:id/reviews", h.Submit)
}

// AddReviewPage renders the standalone review form for an authenticated user.
func (h *Handler) AddReviewPage(c *gin.Context) {
	if !middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusSeeOther, "/index.html")
		return
	}

	placeID := strings.TrimSpace(c.Query("id"))
	if placeID == "" {
		c.Redirect(http.StatusSeeOther, "/index.html")
		return
	}

	response.Page(c, http.StatusOK, "add_review.html", gin.H{
		"Title":   "Add Review",
		"PlaceID": placeID,
		"Widget":  WidgetFromQuery(c),
	})
}

// Submit posts the review form. Browsers get a redirect back to the place
// with a flash message; JSON callers get the envelope.
func (h *Handler) Submit(c *gin.Context) {
	placeID := strings.TrimSpace(c.Param("id"))
	wantsJSON := response.WantsJSON(c)

	if !middleware.IsAuthenticated(c) {
		h.unauthorized(c)
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("review_submit status=invalid_body place_id=%s error=%q", placeID, err.Error())
		h.fail(c, placeID, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	err := h.svc.Submit(c.Request.Context(), middleware.Token(c), placeID, req)
	if err != nil {
		log.Printf("review_submit status=failed place_id=%s request_id=%s error=%q", placeID, c.GetString("request_id"), err.Error())
		var se *StatusError
		switch {
		case errors.Is(err, ErrUnauthorized):
			h.unauthorized(c)
		case errors.Is(err, ErrInvalidRequest):
			h.fail(c, placeID, http.StatusBadRequest, "INVALID_REQUEST")
		case errors.As(err, &se):
			h.fail(c, placeID, http.StatusBadGateway, "REVIEW_REJECTED")
		default:
			h.fail(c, placeID, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE")
		}
		return
	}

	if wantsJSON {
		response.Success(c, http.StatusCreated, gin.H{"message": msgSubmitted})
		return
	}
	h.flash.SetFlash(c, msgSubmitted)
	c.Redirect(http.StatusSeeOther, placeURL(placeID))
}

func (h *Handler) unauthorized(c *gin.Context) {
	if response.WantsJSON(c) {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login.html")
}

func (h *Handler) fail(c *gin.Context, placeID string, status int, code string) {
	if response.WantsJSON(c) {
		response.Error(c, status, code, msgFailed)
		return
	}
	h.flash.SetFlash(c, msgFailed)
	if placeID == "" {
		c.Redirect(http.StatusSeeOther, "/index.html")
		return
	}
	c.Redirect(http.StatusSeeOther, placeURL(placeID))
}

// WidgetFromQuery restores the star the user clicked (?rating=N).
func WidgetFromQuery(c *gin.Context) *Widget {
	rating, _ := strconv.Atoi(c.Query("rating"))
	return NewWidget(rating)
}

func placeURL(placeID string) string {
	return "/place.html?id=" + url.QueryEscape(placeID)
}
