package esri

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/geo-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const solvedRoute = `{"messages":[],"routes":{"spatialReference":{"wkid":4326},"features":[{"attributes":{"Name":"P0 - P1","Total_TravelTime":42.5},"geometry":{"paths":[[[121.27,24.15],[121.53,24.48]]]}}]}}`

func TestRouteSolver_Solve(t *testing.T) {
	logger := zap.NewNop()
	query := domain.RouteQuery{Stops: []domain.Coordinate{{X: 121.27, Y: 24.15}, {X: 121.53, Y: 24.48}}}

	t.Run("json body is passed through unchanged", func(t *testing.T) {
		var form url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/solve", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			form, _ = url.ParseQuery(string(body))
			w.Write([]byte(solvedRoute))
		}))
		defer server.Close()

		cfg := testConfig(server.URL)
		solver := NewRouteSolver(NewClient(cfg, logger), cfg, logger)

		result, err := solver.Solve(context.Background(), query)
		require.NoError(t, err)

		doc, ok := result.JSON()
		require.True(t, ok)
		assert.Equal(t, solvedRoute, string(doc))

		assert.Equal(t, "test_token", form.Get("token"))
		assert.Equal(t, "true", form.Get("returnRoutes"))
		assert.Equal(t, "json", form.Get("f"))
		assert.Contains(t, form.Get("stops"), `"Name":"P0"`)
		_, present := form["polygonBarriers"]
		assert.False(t, present)
	})

	t.Run("upstream json error object is still json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":{"code":400,"message":"Unable to complete operation."}}`))
		}))
		defer server.Close()

		cfg := testConfig(server.URL)
		solver := NewRouteSolver(NewClient(cfg, logger), cfg, logger)

		result, err := solver.Solve(context.Background(), query)
		require.NoError(t, err)
		_, ok := result.JSON()
		assert.True(t, ok)
	})

	t.Run("html with status 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<!DOCTYPE html><html><body>Error: internal failure</body></html>`))
		}))
		defer server.Close()

		cfg := testConfig(server.URL)
		solver := NewRouteSolver(NewClient(cfg, logger), cfg, logger)

		result, err := solver.Solve(context.Background(), query)
		require.NoError(t, err)
		_, ok := result.JSON()
		assert.False(t, ok)
		assert.Contains(t, result.Raw(), "internal failure")
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		cfg := testConfig(server.URL)
		server.Close()

		solver := NewRouteSolver(NewClient(cfg, logger), cfg, logger)

		result, err := solver.Solve(context.Background(), query)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
