package places

import (
	"log"
	"net/http"
	"strings"

	"placesweb/internal/middleware"
	"placesweb/internal/modules/review"
	"placesweb/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.GET("/index.html", h.Index)
	r.GET("/place.html", h.Place)
}

// Index lists places for an authenticated visitor; anonymous visitors get
// the page with the login link and no fetch.
func (h *Handler) Index(c *gin.Context) {
	country := strings.TrimSpace(c.Query("country"))
	data := gin.H{
		"Title":     "Places",
		"Countries": []string{AllCountries},
		"Selected":  AllCountries,
		"Cards":     []Card(nil),
	}

	if middleware.IsAuthenticated(c) {
		view, err := h.svc.ListPage(c.Request.Context(), middleware.Token(c), country)
		if err != nil {
			log.Printf("places_fetch status=failed request_id=%s error=%q", c.GetString("request_id"), err.Error())
		}
		data["Cards"] = view.Cards
		data["Countries"] = view.Countries
		data["Selected"] = view.Selected
	}

	response.Page(c, http.StatusOK, "index.html", data)
}

// Place renders place.html?id=<id> with its reviews and the review form.
func (h *Handler) Place(c *gin.Context) {
	placeID := strings.TrimSpace(c.Query("id"))
	data := gin.H{
		"Title":   "Place Details",
		"PlaceID": placeID,
		"Widget":  review.WidgetFromQuery(c),
	}

	if placeID != "" {
		place, err := h.svc.Detail(c.Request.Context(), middleware.Token(c), placeID)
		if err != nil {
			log.Printf("place_fetch status=failed place_id=%s request_id=%s error=%q", placeID, c.GetString("request_id"), err.Error())
		} else {
			data["Title"] = place.Title
			data["Place"] = place
		}
	}

	response.Page(c, http.StatusOK, "place.html", data)
}
