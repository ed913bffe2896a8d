// Package apitest runs an in-process stand-in for the places API.
package apitest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"placesweb/internal/domain"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Submission is a review the fake API received.
type Submission struct {
	PlaceID       string
	Authorization string
	Body          domain.ReviewSubmission
}

type Server struct {
	*httptest.Server

	secret []byte

	mu          sync.Mutex
	users       map[string]user
	places      []domain.Place
	submissions []Submission
	reviewCode  int
	requestIDs  []string
}

type user struct {
	name string
	hash []byte
}

type claims struct {
	Name string `json:"name"`
	jwtlib.RegisteredClaims
}

// New starts the fake API and closes it when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		secret:     []byte("apitest-secret"),
		users:      make(map[string]user),
		reviewCode: http.StatusCreated,
	}

	r := gin.New()
	r.Use(s.recordRequestID)
	r.POST("/login", s.login)
	protected := r.Group("/")
	protected.Use(s.bearer)
	{
		protected.GET("/places", s.listPlaces)
		protected.GET("/places/:id", s.getPlace)
		protected.POST("/places/:id/reviews", s.createReview)
	}

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

func (s *Server) AddUser(t testing.TB, email, password, name string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[strings.ToLower(email)] = user{name: name, hash: hash}
}

func (s *Server) AddPlaces(places ...domain.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places = append(s.places, places...)
}

// SetReviewStatus changes the status code returned for review submissions.
func (s *Server) SetReviewStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviewCode = code
}

func (s *Server) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Submission(nil), s.submissions...)
}

func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

// IssueToken signs a token the fake API accepts.
func (s *Server) IssueToken(name string) (string, error) {
	c := claims{
		Name: name,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *Server) parseToken(raw string) (*claims, error) {
	token, err := jwtlib.ParseWithClaims(raw, &claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	c, ok := token.Claims.(*claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return c, nil
}

func (s *Server) recordRequestID(c *gin.Context) {
	if id := c.GetHeader("X-Request-ID"); id != "" {
		s.mu.Lock()
		s.requestIDs = append(s.requestIDs, id)
		s.mu.Unlock()
	}
	c.Next()
}

func (s *Server) bearer(c *gin.Context) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
		return
	}
	cl, err := s.parseToken(strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	c.Set("user_name", cl.Name)
	c.Next()
}

func (s *Server) login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	s.mu.Lock()
	u, ok := s.users[strings.ToLower(req.Email)]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(u.hash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := s.IssueToken(u.name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, domain.LoginResponse{AccessToken: token})
}

func (s *Server) listPlaces(c *gin.Context) {
	s.mu.Lock()
	places := append([]domain.Place{}, s.places...)
	s.mu.Unlock()
	c.JSON(http.StatusOK, places)
}

func (s *Server) getPlace(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.places {
		if p.ID == c.Param("id") {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
}

func (s *Server) createReview(c *gin.Context) {
	var body domain.ReviewSubmission
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, Submission{
		PlaceID:       c.Param("id"),
		Authorization: c.GetHeader("Authorization"),
		Body:          body,
	})

	if s.reviewCode >= 200 && s.reviewCode < 300 {
		for i := range s.places {
			if s.places[i].ID == c.Param("id") {
				s.places[i].Reviews = append(s.places[i].Reviews, domain.Review{
					UserName: c.GetString("user_name"),
					Comment:  body.Review,
					Rating:   domain.Num(float64(body.Rating)),
				})
			}
		}
	}
	if s.reviewCode == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(s.reviewCode, gin.H{"review": body.Review, "rating": body.Rating})
}
