package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookmarkBody struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// TestBookmarkFlow covers the full lifecycle: empty list -> create -> list ->
// get -> edit -> delete -> gone.
func TestBookmarkFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	token := app.signUp(t, "test@test.com", "123")

	// A new user starts with no bookmarks.
	resp := app.doJSON(t, http.MethodGet, "/bookmarks", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []bookmarkBody
	decodeBody(t, resp, &list)
	assert.Len(t, list, 0)

	resp = app.doJSON(t, http.MethodPost, "/bookmarks", token, map[string]string{
		"title": "First Bookmark",
		"link":  "https://google.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created bookmarkBody
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "First Bookmark", created.Title)
	assert.Equal(t, "https://google.com", created.Link)

	resp = app.doJSON(t, http.MethodGet, "/bookmarks", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	resp = app.doJSON(t, http.MethodGet, "/bookmarks/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched bookmarkBody
	decodeBody(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)

	resp = app.doJSON(t, http.MethodPatch, "/bookmarks/"+created.ID, token, map[string]string{
		"title":       "Renamed Bookmark",
		"description": "still a search engine",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var edited bookmarkBody
	decodeBody(t, resp, &edited)
	assert.Equal(t, "Renamed Bookmark", edited.Title)
	assert.Equal(t, "still a search engine", edited.Description)
	assert.Equal(t, "https://google.com", edited.Link)

	resp = app.doJSON(t, http.MethodDelete, "/bookmarks/"+created.ID, token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = app.doJSON(t, http.MethodGet, "/bookmarks", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &list)
	assert.Len(t, list, 0)

	// A deleted bookmark stays gone.
	resp = app.doJSON(t, http.MethodGet, "/bookmarks/"+created.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = app.doJSON(t, http.MethodDelete, "/bookmarks/"+created.ID, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBookmarkValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	token := app.signUp(t, "test@test.com", "123")

	resp := app.doJSON(t, http.MethodPost, "/bookmarks", token, map[string]string{
		"link": "https://google.com",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = app.doJSON(t, http.MethodPost, "/bookmarks", token, map[string]string{
		"title": "No Link",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = app.doJSON(t, http.MethodPost, "/bookmarks", token, map[string]string{
		"title":  "First Bookmark",
		"link":   "https://google.com",
		"pinned": "yes",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = app.doJSON(t, http.MethodGet, "/bookmarks/not-a-uuid", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Nothing was persisted by the rejected requests.
	resp = app.doJSON(t, http.MethodGet, "/bookmarks", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []bookmarkBody
	decodeBody(t, resp, &list)
	assert.Len(t, list, 0)
}

// TestBookmarkOwnership checks that one user's token can never touch another
// user's bookmark: reads look absent, writes are forbidden.
func TestBookmarkOwnership(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	ownerToken := app.signUp(t, "owner@test.com", "123")
	intruderToken := app.signUp(t, "intruder@test.com", "123")

	resp := app.doJSON(t, http.MethodPost, "/bookmarks", ownerToken, map[string]string{
		"title": "Private",
		"link":  "https://example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created bookmarkBody
	decodeBody(t, resp, &created)

	resp = app.doJSON(t, http.MethodGet, "/bookmarks", intruderToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []bookmarkBody
	decodeBody(t, resp, &list)
	assert.Len(t, list, 0)

	resp = app.doJSON(t, http.MethodGet, "/bookmarks/"+created.ID, intruderToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = app.doJSON(t, http.MethodPatch, "/bookmarks/"+created.ID, intruderToken, map[string]string{
		"title": "Hijacked",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = app.doJSON(t, http.MethodDelete, "/bookmarks/"+created.ID, intruderToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// The owner still sees the untouched record.
	resp = app.doJSON(t, http.MethodGet, "/bookmarks/"+created.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched bookmarkBody
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "Private", fetched.Title)
}
