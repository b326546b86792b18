package metrics

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"recipebox/internal/models"
	"recipebox/internal/repositories"
	"recipebox/internal/services"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestRecorder_Attach(t *testing.T) {
	ctx := context.Background()
	samples := models.SampleRecipes()
	samples[0].IsFavorite = true
	store := services.NewRecipeStore(repositories.NewMemoryDocumentStore(), samples)

	rec := NewRecorder()
	detach := rec.Attach(store)

	assert.Equal(t, float64(len(samples)), testutil.ToFloat64(rec.recipes))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.favorites))

	_, err := store.ToggleFavorite(ctx, samples[1].ID)
	require.NoError(t, err)
	require.NoError(t, store.Remove(ctx, samples[2].ID))

	assert.Equal(t, float64(len(samples)-1), testutil.ToFloat64(rec.recipes))
	assert.Equal(t, float64(2), testutil.ToFloat64(rec.favorites))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.events.WithLabelValues(string(services.EventFavoriteChanged))))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.events.WithLabelValues(string(services.EventRemoved))))

	detach()
	require.NoError(t, store.Remove(ctx, samples[3].ID))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.events.WithLabelValues(string(services.EventRemoved))))
}

func TestRecorder_Handler(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(services.Event{Kind: services.EventAdded, Count: 3})

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `recipebox_events_total{kind="recipe.added"} 1`))
	assert.Contains(t, string(body), "recipebox_recipes 3")
}
