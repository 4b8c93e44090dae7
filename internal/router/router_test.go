package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct {
	hit string
}

func (s *stubHandler) mark(name string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		s.hit = name
		c.Status(http.StatusOK)
	}
}

func (s *stubHandler) CheckAvailability(c *ginext.Context) { s.mark("CheckAvailability")(c) }
func (s *stubHandler) CreateBooking(c *ginext.Context)     { s.mark("CreateBooking")(c) }
func (s *stubHandler) GetBooking(c *ginext.Context)        { s.mark("GetBooking")(c) }
func (s *stubHandler) ConfirmBooking(c *ginext.Context)    { s.mark("ConfirmBooking")(c) }
func (s *stubHandler) CancelBooking(c *ginext.Context)     { s.mark("CancelBooking")(c) }
func (s *stubHandler) GetUserBookings(c *ginext.Context)   { s.mark("GetUserBookings")(c) }
func (s *stubHandler) CreateSpace(c *ginext.Context)       { s.mark("CreateSpace")(c) }
func (s *stubHandler) ListSpaces(c *ginext.Context)        { s.mark("ListSpaces")(c) }
func (s *stubHandler) GetSpace(c *ginext.Context)          { s.mark("GetSpace")(c) }
func (s *stubHandler) UpdateSpace(c *ginext.Context)       { s.mark("UpdateSpace")(c) }
func (s *stubHandler) DeleteSpace(c *ginext.Context)       { s.mark("DeleteSpace")(c) }

func TestInitRouter_Routes(t *testing.T) {
	h := &stubHandler{}
	r := InitRouter("test", h)

	tests := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/api/availability", "CheckAvailability"},
		{http.MethodPost, "/api/bookings", "CreateBooking"},
		{http.MethodGet, "/api/bookings/1", "GetBooking"},
		{http.MethodPost, "/api/bookings/1/confirm", "ConfirmBooking"},
		{http.MethodPost, "/api/bookings/1/cancel", "CancelBooking"},
		{http.MethodGet, "/api/users/1/bookings", "GetUserBookings"},
		{http.MethodPost, "/api/spaces", "CreateSpace"},
		{http.MethodGet, "/api/spaces", "ListSpaces"},
		{http.MethodGet, "/api/spaces/1", "GetSpace"},
		{http.MethodPut, "/api/spaces/1", "UpdateSpace"},
		{http.MethodDelete, "/api/spaces/1", "DeleteSpace"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			h.hit = ""
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, h.hit)
		})
	}
}

func TestInitRouter_HealthAndMetrics(t *testing.T) {
	r := InitRouter("test", &stubHandler{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
