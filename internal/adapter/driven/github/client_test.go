package github_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	ghAdapter "github.com/ericfisherdev/prsizer/internal/adapter/driven/github"
	"github.com/ericfisherdev/prsizer/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler) (*ghAdapter.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := ghAdapter.NewClientWithHTTPClient(server.Client(), server.URL+"/")
	require.NoError(t, err)

	return client, server
}

type lblJSON struct {
	Name string `json:"name"`
}

func TestFetchDiffStats(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/repo/pulls/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"number": 42, "additions": 120, "deletions": 35}`)
	})

	client, _ := newTestClient(t, handler)
	stats, err := client.FetchDiffStats(context.Background(), "owner/repo", 42)

	require.NoError(t, err)
	assert.Equal(t, model.DiffStats{Additions: 120, Deletions: 35}, stats)
	assert.Equal(t, 155, stats.ChangeSize())
}

func TestFetchDiffStats_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	client, _ := newTestClient(t, handler)
	_, err := client.FetchDiffStats(context.Background(), "owner/repo", 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDiffUnavailable)
}

func TestFetchDiffStats_ServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "boom"}`, http.StatusInternalServerError)
	})

	client, _ := newTestClient(t, handler)
	_, err := client.FetchDiffStats(context.Background(), "owner/repo", 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrExternalService)
}

func TestFetchDiffStats_InvalidRepoName(t *testing.T) {
	client, _ := newTestClient(t, http.NewServeMux())

	_, err := client.FetchDiffStats(context.Background(), "not-a-repo", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected owner/repo")
}

func TestListLabels(t *testing.T) {
	labels := []lblJSON{{Name: "size/small"}, {Name: "bug"}}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/repo/issues/7/labels", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(labels))
	})

	client, _ := newTestClient(t, handler)
	got, err := client.ListLabels(context.Background(), "owner/repo", 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"size/small", "bug"}, got)
}

func TestListLabels_Pagination(t *testing.T) {
	var server *httptest.Server

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			require.NoError(t, json.NewEncoder(w).Encode([]lblJSON{{Name: "docs"}}))
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/repos/owner/repo/issues/7/labels?page=2>; rel="next"`, server.URL))
		require.NoError(t, json.NewEncoder(w).Encode([]lblJSON{{Name: "size/huge"}}))
	})

	client, srv := newTestClient(t, handler)
	server = srv

	got, err := client.ListLabels(context.Background(), "owner/repo", 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"size/huge", "docs"}, got)
}

func TestListLabels_Empty(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	client, _ := newTestClient(t, handler)
	got, err := client.ListLabels(context.Background(), "owner/repo", 7)

	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestEditLabels(t *testing.T) {
	var added []string
	var removed []string

	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/owner/repo/issues/7/labels", func(w http.ResponseWriter, r *http.Request) {
		var body []string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		added = append(added, body...)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})
	// Label names may contain slashes, so the path wildcard spans segments.
	mux.HandleFunc("DELETE /repos/owner/repo/issues/7/labels/{name...}", func(w http.ResponseWriter, r *http.Request) {
		removed = append(removed, r.PathValue("name"))
		w.WriteHeader(http.StatusOK)
	})

	client, _ := newTestClient(t, mux)
	err := client.EditLabels(context.Background(), "owner/repo", 7,
		[]string{"size/large"}, []string{"size/small", "size/tiny"})

	require.NoError(t, err)
	assert.Equal(t, []string{"size/large"}, added)
	assert.Equal(t, []string{"size/small", "size/tiny"}, removed)
}

func TestEditLabels_RemoveMissingLabelTolerated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /repos/owner/repo/issues/7/labels/{name...}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Label does not exist"}`, http.StatusNotFound)
	})

	client, _ := newTestClient(t, mux)
	err := client.EditLabels(context.Background(), "owner/repo", 7, nil, []string{"size/small"})

	assert.NoError(t, err)
}

func TestEditLabels_AddFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/owner/repo/issues/7/labels", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Forbidden"}`, http.StatusForbidden)
	})

	client, _ := newTestClient(t, mux)
	err := client.EditLabels(context.Background(), "owner/repo", 7, []string{"size/large"}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrExternalService)
}

func TestEditLabels_NothingToDo(t *testing.T) {
	// No handler registered: any request would 404 and fail the call.
	client, _ := newTestClient(t, http.NewServeMux())

	err := client.EditLabels(context.Background(), "owner/repo", 7, nil, nil)
	assert.NoError(t, err)
}

func TestListOpenPullRequests(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/owner/repo/pulls", r.URL.Path)
		assert.Equal(t, "open", r.URL.Query().Get("state"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"number": 3}, {"number": 8}, {"number": 21}]`)
	})

	client, _ := newTestClient(t, handler)
	numbers, err := client.ListOpenPullRequests(context.Background(), "owner/repo")

	require.NoError(t, err)
	assert.Equal(t, []int{3, 8, 21}, numbers)
}

func TestListOpenPullRequests_Empty(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	client, _ := newTestClient(t, handler)
	numbers, err := client.ListOpenPullRequests(context.Background(), "owner/repo")

	require.NoError(t, err)
	assert.Equal(t, []int{}, numbers)
}
