package places

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"placesweb/internal/domain"
	"placesweb/internal/pkg/placesapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListPlaces(ctx context.Context, token string) (*placesapi.Response, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*placesapi.Response), args.Error(1)
}

func (m *mockAPI) GetPlace(ctx context.Context, token, placeID string) (*placesapi.Response, error) {
	args := m.Called(ctx, token, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*placesapi.Response), args.Error(1)
}

func jsonResponse(t *testing.T, code int, v any) *placesapi.Response {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return &placesapi.Response{StatusCode: code, Status: http.StatusText(code), Body: body}
}

func TestService_ListPage(t *testing.T) {
	api := new(mockAPI)
	api.On("ListPlaces", mock.Anything, "tok").Return(jsonResponse(t, http.StatusOK, []domain.Place{
		{ID: "1", CityName: "Paris", CountryName: "FR"},
		{ID: "2", CityName: "Berlin", CountryName: "DE"},
		{ID: "3", CityName: "Lyon", CountryName: "FR"},
	}), nil)

	svc := NewService(api, Options{Limit: 2, Images: []string{"a.jpg"}})
	view, err := svc.ListPage(context.Background(), "tok", "DE")
	require.NoError(t, err)

	require.Len(t, view.Cards, 2)
	assert.True(t, view.Cards[0].Hidden)
	assert.False(t, view.Cards[1].Hidden)
	assert.Equal(t, []string{"All", "FR", "DE"}, view.Countries)
	assert.Equal(t, "DE", view.Selected)
	api.AssertNumberOfCalls(t, "ListPlaces", 1)
}

func TestService_ListPage_DefaultsToAll(t *testing.T) {
	api := new(mockAPI)
	api.On("ListPlaces", mock.Anything, "tok").Return(jsonResponse(t, http.StatusOK, []domain.Place{{ID: "1"}}), nil)

	view, err := NewService(api, Options{}).ListPage(context.Background(), "tok", "")
	require.NoError(t, err)
	assert.Equal(t, "All", view.Selected)
	assert.False(t, view.Cards[0].Hidden)
}

func TestService_List_NonOK(t *testing.T) {
	api := new(mockAPI)
	api.On("ListPlaces", mock.Anything, "tok").
		Return(&placesapi.Response{StatusCode: http.StatusUnauthorized, Status: "401 Unauthorized"}, nil)

	view, err := NewService(api, Options{}).ListPage(context.Background(), "tok", "")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Empty(t, view.Cards)
	assert.Equal(t, []string{"All"}, view.Countries)
}

func TestService_List_TransportError(t *testing.T) {
	api := new(mockAPI)
	boom := errors.New("dial tcp: connection refused")
	api.On("ListPlaces", mock.Anything, "tok").Return(nil, boom)

	_, err := NewService(api, Options{}).List(context.Background(), "tok")
	assert.ErrorIs(t, err, boom)
}

func TestService_List_MalformedBody(t *testing.T) {
	api := new(mockAPI)
	api.On("ListPlaces", mock.Anything, "tok").Return(&placesapi.Response{StatusCode: http.StatusOK, Body: []byte("{")}, nil)

	_, err := NewService(api, Options{}).List(context.Background(), "tok")
	assert.Error(t, err)
}

func TestService_Detail(t *testing.T) {
	api := new(mockAPI)
	api.On("GetPlace", mock.Anything, "tok", "p-1").Return(jsonResponse(t, http.StatusOK, domain.Place{
		ID: "p-1", Description: "Loft", Amenities: []string{"WiFi"},
	}), nil)

	v, err := NewService(api, Options{DetailImage: "images/place7.jpg"}).Detail(context.Background(), "tok", " p-1 ")
	require.NoError(t, err)
	assert.Equal(t, "Loft", v.Title)
	assert.Equal(t, "WiFi", v.Amenities)
	assert.Equal(t, "images/place7.jpg", v.Image)
}

func TestService_Detail_Errors(t *testing.T) {
	api := new(mockAPI)
	api.On("GetPlace", mock.Anything, "tok", "gone").
		Return(&placesapi.Response{StatusCode: http.StatusNotFound, Status: "404 Not Found"}, nil)
	svc := NewService(api, Options{})

	_, err := svc.Detail(context.Background(), "tok", "")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Detail(context.Background(), "tok", "gone")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "fetch place gone: 404 Not Found", se.Error())
}

func TestService_Detail_LenientNumbers(t *testing.T) {
	api := new(mockAPI)
	body := `{"id":"p-1","description":"Loft","price_per_night":"cheap","number_of_rooms":"2",
		"number_of_bathrooms":null,"max_guests":true,
		"reviews":[{"user_name":"Bob","comment":"Nice","rating":4.5},{"rating":"3"},{"rating":"great"}]}`
	api.On("GetPlace", mock.Anything, "tok", "p-1").
		Return(&placesapi.Response{StatusCode: http.StatusOK, Body: []byte(body)}, nil)

	v, err := NewService(api, Options{}).Detail(context.Background(), "tok", "p-1")
	require.NoError(t, err)

	assert.Equal(t, "Loft", v.Title)
	assert.Equal(t, "N/A", v.Price)
	assert.Equal(t, "2", v.Rooms)
	assert.Equal(t, "N/A", v.Bathrooms)
	assert.Equal(t, "N/A", v.MaxGuests)
	require.Len(t, v.Reviews, 3)
	assert.Equal(t, "★★★★☆", v.Reviews[0].Stars)
	assert.Equal(t, "★★★☆☆", v.Reviews[1].Stars)
	assert.Equal(t, "☆☆☆☆☆", v.Reviews[2].Stars)
}

func TestService_List_LenientNumbers(t *testing.T) {
	api := new(mockAPI)
	body := `[{"id":"1","description":"Loft","price_per_night":"80"},{"id":"2","description":"Cabin","price_per_night":{"amount":1}}]`
	api.On("ListPlaces", mock.Anything, "tok").
		Return(&placesapi.Response{StatusCode: http.StatusOK, Body: []byte(body)}, nil)

	view, err := NewService(api, Options{}).ListPage(context.Background(), "tok", "")
	require.NoError(t, err)

	require.Len(t, view.Cards, 2)
	assert.Equal(t, "80", view.Cards[0].Price)
	assert.Equal(t, "Cabin", view.Cards[1].Title)
	assert.Equal(t, "N/A", view.Cards[1].Price)
}
