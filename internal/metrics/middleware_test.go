package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/admin/plays/{playID}/verify", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/admin/plays/{playID}/verify", "418"))

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/plays/"+id+"/verify", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/admin/plays/{playID}/verify", "418"))
	assert.Equal(t, 3.0, after-before)
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestRoutePattern_Unmatched(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	assert.Equal(t, UnmatchedRoute, routePattern(req))
}
