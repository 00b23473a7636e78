package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
)

func TestListEntries(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/entries", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "username": "pulkit", "data": "first"},
			{"id": 2, "username": "ankit", "data": "second"},
		})
	}))

	entries, err := client.ListEntries(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, "pulkit", entries[0].Username)
}

func TestAddEntry(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "hello", payload["data"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "username": "pulkit", "data": "hello"})
	}))

	entry, err := client.AddEntry(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, int64(7), entry.ID)
	assert.Equal(t, "hello", entry.Data)
}

func TestUpdateEntry(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/entries/7", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "username": "pulkit", "data": "edited"})
	}))

	entry, err := client.UpdateEntry(context.Background(), 7, "edited")

	require.NoError(t, err)
	assert.Equal(t, "edited", entry.Data)
}

func TestDeleteEntry(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/entries/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.NoError(t, client.DeleteEntry(context.Background(), 3))
}

func TestDeleteEntry_Unauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	err := client.DeleteEntry(context.Background(), 3)

	require.Error(t, err)
	var transport *domainauth.TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestListFaces(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/faces/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "username": "pulkit", "image_link": "media/faces/1.jpg"},
		})
	}))

	faces, err := client.ListFaces(context.Background())

	require.NoError(t, err)
	require.Len(t, faces, 1)
	assert.Equal(t, "media/faces/1.jpg", faces[0].ImageLink)
}
