package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/admins"
)

type fakeVerifier struct {
	admins map[string]*domain.AdminUser
	err    error
}

func (f *fakeVerifier) VerifyAdmin(_ context.Context, id string) (*domain.AdminUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.admins[id]
	if !ok {
		return nil, admins.ErrAdminNotFound
	}
	if !a.IsActive {
		return nil, admins.ErrAdminInactive
	}
	return a, nil
}

func TestAuth(t *testing.T) {
	verifier := &fakeVerifier{admins: map[string]*domain.AdminUser{
		"admin-1":   {ID: "admin-1", Role: domain.RoleAdmin, IsActive: true},
		"admin-off": {ID: "admin-off", Role: domain.RoleAdmin, IsActive: false},
	}}

	var seen string
	h := Auth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetAdminID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	call := func(adminID string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		if adminID != "" {
			req.Header.Set(AdminIDHeader, adminID)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, call(""))
	assert.Equal(t, http.StatusUnauthorized, call("someone-else"))
	assert.Equal(t, http.StatusForbidden, call("admin-off"))
	assert.Empty(t, seen)

	assert.Equal(t, http.StatusOK, call("admin-1"))
	assert.Equal(t, "admin-1", seen)

	verifier.err = errors.New("db down")
	assert.Equal(t, http.StatusInternalServerError, call("admin-1"))
}

type observation struct {
	method, route, status string
}

type fakeObserver struct{ seen []observation }

func (f *fakeObserver) ObserveHTTP(method, route, status string, _ time.Duration) {
	f.seen = append(f.seen, observation{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	obs := &fakeObserver{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(obs))
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/abc-123", nil))

	assert.Equal(t, []observation{{"GET", "/bookings/{bookingId}", "404"}}, obs.seen)
}
