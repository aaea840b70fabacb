package vote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/smallbiznis/photohub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.Config{
		VoteAPIBaseURL: srv.URL,
		VoteNamespace:  "com.example.photohub",
		HTTPTimeout:    time.Second,
	}, zap.NewNop())
}

func TestCountAndCast(t *testing.T) {
	counts := map[string]int{"map_view": 7}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Path shape is /get/{ns}/{item} or /hit/{ns}/{item}.
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
		require.Len(t, parts, 3)
		action, ns, item := parts[0], parts[1], parts[2]
		assert.Equal(t, "com.example.photohub", ns)

		if action == "hit" {
			counts[item]++
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"value": %d}`, counts[item])
	}))

	n, err := c.Count(context.Background(), "map_view")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = c.Cast(context.Background(), "map_view")
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = c.Count(context.Background(), "map_view")
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestCountUnknownItemStartsAtZero(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"value": 0}`)
	}))

	n, err := c.Count(context.Background(), "never_voted")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))

	_, err := c.Count(context.Background(), "map_view")
	assert.Error(t, err)
}
