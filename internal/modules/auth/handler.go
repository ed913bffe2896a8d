package auth

import (
	"errors"
	"log"
	"net/http"

	"placesweb/internal/middleware"
	"placesweb/internal/pkg/response"
	"placesweb/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// Handler serves the login form and the logout action.
type Handler struct {
	service *Service
	store   session.TokenStore
}

func NewHandler(service *Service, store session.TokenStore) *Handler {
	return &Handler{service: service, store: store}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/login.html", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/logout", h.Logout)
}

func (h *Handler) ShowLogin(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusSeeOther, "/index.html")
		return
	}
	response.Page(c, http.StatusOK, "login.html", gin.H{"Title": "Login", "Email": "", "Error": ""})
}

// Login stores the returned token and redirects to the listing. Any failure
// re-renders the form with the error message visible.
func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.showError(c, http.StatusBadRequest, form.Email, "Please enter your email and password")
		return
	}

	token, err := h.service.Login(c.Request.Context(), form)
	if err != nil {
		var rejected *RejectedError
		switch {
		case errors.Is(err, ErrInvalidRequest):
			h.showError(c, http.StatusBadRequest, form.Email, "Please enter your email and password")
		case errors.As(err, &rejected):
			h.showError(c, http.StatusUnauthorized, form.Email, "Login failed: "+rejected.StatusText)
		default:
			log.Printf("login status=error request_id=%s error=%q", c.GetString("request_id"), err.Error())
			h.showError(c, http.StatusBadGateway, form.Email, "An error occurred "+err.Error())
		}
		return
	}

	h.store.Save(c, token)
	c.Redirect(http.StatusSeeOther, "/index.html")
}

// Logout discards the token locally; the API is not called.
func (h *Handler) Logout(c *gin.Context) {
	h.store.Clear(c)
	c.Redirect(http.StatusSeeOther, "/login.html")
}

func (h *Handler) showError(c *gin.Context, status int, email, message string) {
	response.Page(c, status, "login.html", gin.H{
		"Title": "Login",
		"Email": email,
		"Error": message,
	})
}
