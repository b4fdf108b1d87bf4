package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DrJosh9000/extglob"
)

func newTestRouter(t *testing.T) (*gin.Engine, *extglob.Cache) {
	t.Helper()
	cache := extglob.NewCache(16)
	return New(cache, zap.NewNop()).NewRouter(), cache
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doRequest(r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestIDPropagated(t *testing.T) {
	r, _ := newTestRouter(t)
	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(RequestIDHeader))
}

func TestMatch(t *testing.T) {
	r, cache := newTestRouter(t)
	w := doRequest(r, http.MethodPost, "/match", MatchRequest{
		Pattern:    "*.+(js|ts)",
		Candidates: []string{"a.js", "b.go", "c.tsts", "A.JS"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "*.+(js|ts)", resp.Pattern)
	assert.Equal(t, []string{"a.js", "c.tsts"}, resp.Matches)
	assert.Equal(t, []bool{true, false, true, false}, resp.Results)
	assert.Equal(t, 1, cache.Len())
}

func TestMatch_Options(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doRequest(r, http.MethodPost, "/match", MatchRequest{
		Pattern:    "src/**",
		Candidates: []string{"SRC/.git/x", `src\a\b`, "src/a"},
		Options: MatchOptions{
			CaseInsensitive: true,
			Dot:             true,
			Unixify:         true,
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []bool{true, true, true}, resp.Results)
}

func TestMatch_NoMatches(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doRequest(r, http.MethodPost, "/match", MatchRequest{
		Pattern:    "x",
		Candidates: []string{},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"pattern":"x","matches":[],"results":[]}`, w.Body.String())
}

func TestMatch_InvalidRequests(t *testing.T) {
	r, _ := newTestRouter(t)
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"missing candidates", `{"pattern":"*"}`},
		{"candidates not a list", `{"pattern":"*","candidates":"a"}`},
		{"pattern too long", `{"pattern":"` + strings.Repeat("a", MaxPatternLength+1) + `","candidates":["a"]}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, ErrorCodeInvalidRequest, resp.Code)
		})
	}
}

func TestClearCache(t *testing.T) {
	r, cache := newTestRouter(t)
	cache.Parse("a*")
	require.Equal(t, 1, cache.Len())

	w := doRequest(r, http.MethodDelete, "/cache", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, cache.Len())
}
