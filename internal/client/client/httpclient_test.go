package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamelog/internal/client/models"
	"gamelog/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second)
}

func TestCreateEntry_UnwrapsEnvelopeAndSendsToken(t *testing.T) {
	var gotAuth, gotBody string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/entries", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":{"_id":"srv-1","title":"Hades","platform":"PC",
			"status":"started","entryDate":"2024-02-01T18:30:00Z",
			"createdAt":"2024-02-01T18:30:01Z","updatedAt":"2024-02-01T18:30:01Z"}}`))
	})
	c.SetToken("tok-abc")

	got, err := c.CreateEntry(context.Background(), models.EntryPayload{
		Title:     "Hades",
		Platform:  "PC",
		Status:    models.StatusStarted,
		EntryDate: "2024-02-01T18:30:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, "srv-1", got.ID)
	// absent rating must be omitted, not null
	assert.NotContains(t, gotBody, "rating")
}

func TestUpdateEntry_PatchesByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/entries/srv-9", r.URL.Path)
		_, _ = w.Write([]byte(`{"content":{"_id":"srv-9","title":"Hades","platform":"PC",
			"status":"completed","rating":9,"entryDate":"2024-02-01T18:30:00Z",
			"createdAt":"2024-02-01T18:30:01Z","updatedAt":"2024-02-02T10:00:00Z"}}`))
	})

	rating := 9
	got, err := c.UpdateEntry(context.Background(), "srv-9", models.EntryPayload{
		Title: "Hades", Platform: "PC", Status: models.StatusCompleted,
		Rating: &rating, EntryDate: "2024-02-01T18:30:00Z",
	})
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 9, *got.Rating)
}

func TestDeleteEntry_NotFoundIsTypedError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		http.Error(w, `{"message":"entry not found"}`, http.StatusNotFound)
	})

	err := c.DeleteEntry(context.Background(), "gone")
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.True(t, re.IsNotFound())
	assert.Equal(t, "entry not found", re.Message)
}

func TestListEntries_QueryParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("limit"))
		assert.Equal(t, "2024-02-01T18:30:00Z", q.Get("cursor"))
		assert.Equal(t, "Zelda", q.Get("title"))
		assert.Equal(t, "completed", q.Get("status"))
		assert.Equal(t, "10", q.Get("rating"))
		_, _ = w.Write([]byte(`{"entries":[],"nextCursor":null}`))
	})

	rating := 10
	got, err := c.ListEntries(context.Background(), ListQuery{
		Limit:  20,
		Cursor: "2024-02-01T18:30:00Z",
		Title:  "Zelda",
		Status: models.StatusCompleted,
		Rating: &rating,
	})
	require.NoError(t, err)
	assert.Empty(t, got.Entries)
	assert.Empty(t, got.NextCursor)
}

func TestDo_MapsUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"token expired"}`, http.StatusUnauthorized)
	})

	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestDo_MapsValidationError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"rating requires completed status"}`, http.StatusBadRequest)
	})

	_, err := c.CreateEntry(context.Background(), models.EntryPayload{Title: "x"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, http.StatusBadRequest, ve.StatusCode)
}

func TestLogin_StoresToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"content":{"token":"tok-xyz"}}`))
	})

	tok, err := c.Login(context.Background(), "sam", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", tok)

	// subsequent calls carry it
	assert.Equal(t, "tok-xyz", c.token)
}

func TestRemoteEntry_Model(t *testing.T) {
	r := RemoteEntry{
		ID:        "srv-1",
		Title:     "Celeste",
		Platform:  "Switch",
		Status:    models.StatusCompleted,
		EntryDate: "2024-02-01T18:30:00Z",
		CreatedAt: "2024-02-01T18:30:01Z",
		UpdatedAt: "2024-02-01T18:30:02Z",
	}

	m, err := r.Model()
	require.NoError(t, err)
	assert.Equal(t, "srv-1", m.RemoteID)
	assert.Equal(t, 2024, m.EntryDate.Year())
	assert.Empty(t, m.LocalID)
	assert.False(t, m.Synced)

	r.EntryDate = "yesterday"
	_, err = r.Model()
	assert.Error(t, err)
}
