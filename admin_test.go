package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardama18/neo-portfolio/internal/store"
)

func (ts *testSite) login(t *testing.T) *http.Cookie {
	t.Helper()
	rec := ts.postForm("/admin/login", url.Values{"username": {"owner"}, "password": {"s3cret"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_token" {
			return c
		}
	}
	t.Fatal("no admin_token cookie set")
	return nil
}

func (ts *testSite) adminDo(cookie *http.Cookie, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return ts.do(req)
}

func TestAdminRequiresLogin(t *testing.T) {
	ts := newTestSite(t)

	for _, path := range []string{"/admin/dashboard", "/admin/api/stats", "/admin/visitors", "/admin/messages"} {
		rec := ts.get(path)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"), path)
	}

	rec := ts.adminDo(&http.Cookie{Name: "admin_token", Value: "forged"}, http.MethodGet, "/admin/dashboard")
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	ts := newTestSite(t)
	rec := ts.postForm("/admin/login", url.Values{"username": {"owner"}, "password": {"guess"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestAdminPages(t *testing.T) {
	ts := newTestSite(t)
	cookie := ts.login(t)
	ctx := context.Background()

	id, err := ts.store.SaveContact(ctx, store.ContactMessage{
		Name: "Jane", Email: "jane@example.com", Message: "Hello there", Type: "fulltime",
	})
	require.NoError(t, err)
	require.NoError(t, ts.store.RecordVisit(ctx, store.Visitor{HashedIP: ts.hashIP("192.0.2.1"), Path: "/"}))

	for _, path := range []string{"/admin/dashboard", "/admin/visitors", "/admin/messages", "/admin/api/stats", "/admin/export/stats"} {
		rec := ts.adminDo(cookie, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := ts.adminDo(cookie, http.MethodGet, "/admin/messages")
	assert.Contains(t, rec.Body.String(), "Hello there")

	rec = ts.adminDo(cookie, http.MethodGet, "/admin/export/stats")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "admin-stats.json")
	assert.Contains(t, rec.Body.String(), `"total_contacts":1`)

	rec = ts.adminDo(cookie, http.MethodDelete, "/admin/messages/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.adminDo(cookie, http.MethodDelete, "/admin/messages/"+strconv.FormatInt(id, 10))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.adminDo(cookie, http.MethodDelete, "/admin/messages/"+strconv.FormatInt(id, 10))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminLogout(t *testing.T) {
	ts := newTestSite(t)
	cookie := ts.login(t)

	rec := ts.adminDo(cookie, http.MethodGet, "/admin/logout")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestVisitorTracking(t *testing.T) {
	ts := newTestSite(t)
	ctx := context.Background()

	dnt := httptest.NewRequest(http.MethodGet, "/", nil)
	dnt.Header.Set("DNT", "1")
	ts.do(dnt)
	ts.get("/api/portfolio")
	ts.get("/privacy")
	ts.get("/")

	require.Eventually(t, func() bool {
		visitors, err := ts.store.RecentVisitors(ctx, 10)
		return err == nil && len(visitors) == 1
	}, 2*time.Second, 10*time.Millisecond)

	visitors, err := ts.store.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "/", visitors[0].Path)
	assert.Len(t, visitors[0].HashedIP, 16)
	assert.NotContains(t, visitors[0].HashedIP, "192.0.2.1")
}

func TestHashIP(t *testing.T) {
	ts := newTestSite(t)
	assert.Equal(t, ts.hashIP("203.0.113.7"), ts.hashIP("203.0.113.7"))
	assert.NotEqual(t, ts.hashIP("203.0.113.7"), ts.hashIP("203.0.113.8"))
}

func TestUntracked(t *testing.T) {
	assert.True(t, untracked("/static/css/site.css"))
	assert.True(t, untracked("/admin/dashboard"))
	assert.True(t, untracked("/api/chat"))
	assert.False(t, untracked("/"))
	assert.False(t, untracked("/projects/1"))
}
