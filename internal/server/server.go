package server

import (
	"net/http"

	"placesweb/internal/config"
	"placesweb/internal/middleware"
	"placesweb/internal/modules/auth"
	"placesweb/internal/modules/places"
	"placesweb/internal/modules/review"
	"placesweb/internal/pkg/placesapi"
	"placesweb/internal/pkg/response"
	"placesweb/internal/pkg/session"
	"placesweb/web"

	"github.com/gin-gonic/gin"
)

// New wires the page handlers around one API client and one token store.
func New(cfg *config.Config) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	api := placesapi.New(cfg.APIBaseURL, cfg.APITimeout)
	store := session.NewCookieStore(session.CookieOptions{
		Name:     cfg.TokenCookieName,
		Path:     cfg.CookiePath,
		Secure:   cfg.CookieSecure,
		HTTPOnly: cfg.CookieHTTPOnly,
		SameSite: cfg.CookieSameSite,
	})

	authHandler := auth.NewHandler(auth.NewService(api), store)
	placesHandler := places.NewHandler(places.NewService(api, places.Options{
		Limit:       cfg.PlacesLimit,
		Images:      cfg.PlaceImages,
		DetailImage: cfg.PlaceDetailImage,
	}))
	reviewHandler := review.NewHandler(review.NewService(api), store)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())

	r.Static("/static", cfg.StaticDir)
	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	pages := r.Group("/")
	pages.Use(middleware.AuthGate(store))
	pages.Use(middleware.Flash(store))
	{
		authHandler.RegisterRoutes(pages)
		placesHandler.RegisterRoutes(pages)
		reviewHandler.RegisterRoutes(pages)
	}

	return r, nil
}
