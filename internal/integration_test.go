package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-listing-backend/config"
	"studio-listing-backend/internal/api"
	"studio-listing-backend/internal/db"
	"studio-listing-backend/internal/seed"
	"studio-listing-backend/internal/store"
	"studio-listing-backend/internal/studio"
)

// bootServer performs the same startup sequence as cmd/studiod against
// the given database and returns a running test server.
func bootServer(t *testing.T, dsn string) (*httptest.Server, store.Store) {
	t.Helper()
	gormDB, err := db.Init(&config.DatabaseConfig{DSN: dsn, LogLevel: "silent"})
	require.NoError(t, err)

	appStore := store.NewGormStore(gormDB)
	_, err = seed.Run(context.Background(), appStore)
	require.NoError(t, err)

	router := api.NewRouter(studio.NewService(appStore), []string{"*"}, log.New(io.Discard, "", 0))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, appStore
}

func request(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// TestStudioLifecycle seeds an empty database, then walks one studio
// through create, read, delete and the 404 that follows.
func TestStudioLifecycle(t *testing.T) {
	dsn := "file:integration_lifecycle?mode=memory&cache=shared"
	server, appStore := bootServer(t, dsn)
	ctx := context.Background()

	t.Run("Startup seeds five sample studios", func(t *testing.T) {
		n, err := appStore.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)

		resp, body := request(t, http.MethodGet, server.URL+"/api/studios", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var studios []studio.Response
		require.NoError(t, json.Unmarshal(body, &studios))

		counts := map[string]int{}
		for _, s := range studios {
			counts[s.Name]++
		}
		for _, name := range []string{"Creative Sound Studio", "Harmony Music Hub", "Digital Dreams Studio", "Acoustic Vibes Studio", "Pro Audio Labs"} {
			assert.Equal(t, 1, counts[name], "sample %q should appear exactly once", name)
		}
	})

	t.Run("Restart against populated store does not reseed", func(t *testing.T) {
		created, err := seed.Run(ctx, appStore)
		require.NoError(t, err)
		assert.Equal(t, 0, created)

		n, err := appStore.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)
	})

	t.Run("Search and location together resolve to the keyword query", func(t *testing.T) {
		resp, body := request(t, http.MethodGet, server.URL+"/api/studios?search=sound&location=Mumbai", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var viaBoth []studio.Response
		require.NoError(t, json.Unmarshal(body, &viaBoth))

		keyword, err := appStore.ListByKeyword(ctx, "sound")
		require.NoError(t, err)
		require.Len(t, viaBoth, len(keyword))
		for i := range keyword {
			assert.Equal(t, keyword[i].ID, viaBoth[i].ID)
		}
	})

	var id int64
	t.Run("Create returns 201 with defaults", func(t *testing.T) {
		resp, body := request(t, http.MethodPost, server.URL+"/api/studios", map[string]any{
			"name": "X", "description": "Y", "location": "Z", "pricePerHour": 100,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "body=%s", body)

		var created studio.Response
		require.NoError(t, json.Unmarshal(body, &created))
		assert.True(t, created.IsAvailable)
		id = created.ID

		resp, body = request(t, http.MethodGet, fmt.Sprintf("%s/api/studios/%d", server.URL, id), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var fetched studio.Response
		require.NoError(t, json.Unmarshal(body, &fetched))
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.Name, fetched.Name)
		assert.Equal(t, created.Description, fetched.Description)
		assert.Equal(t, created.Location, fetched.Location)
		assert.Equal(t, created.PricePerHour, fetched.PricePerHour)
		assert.Equal(t, created.IsAvailable, fetched.IsAvailable)
		assert.True(t, created.CreatedAt.Equal(fetched.CreatedAt))
		assert.True(t, created.UpdatedAt.Equal(fetched.UpdatedAt))
	})

	t.Run("Delete returns 204 and the studio is gone", func(t *testing.T) {
		resp, _ := request(t, http.MethodDelete, fmt.Sprintf("%s/api/studios/%d", server.URL, id), nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, body := request(t, http.MethodGet, fmt.Sprintf("%s/api/studios/%d", server.URL, id), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Empty(t, body)
	})

	t.Run("Health check", func(t *testing.T) {
		resp, body := request(t, http.MethodGet, server.URL+"/api/health", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Studio API is running!", string(body))
	})
}
