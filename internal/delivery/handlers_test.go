package delivery

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/domain"
	"github.com/Vovarama1992/salesacademy/internal/infra"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type backendHit struct {
	Method     string
	Path       string
	Query      string
	AdminEmail string
	Body       string
}

type fakeAPI struct {
	mu   sync.Mutex
	hits []backendHit
}

func (f *fakeAPI) hitsFor(method, path string) []backendHit {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []backendHit
	for _, h := range f.hits {
		if h.Method == method && h.Path == path {
			out = append(out, h)
		}
	}
	return out
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		api.mu.Lock()
		api.hits = append(api.hits, backendHit{
			Method:     r.Method,
			Path:       r.URL.Path,
			Query:      r.URL.RawQuery,
			AdminEmail: r.Header.Get(infra.AdminEmailHeader),
			Body:       string(b),
		})
		api.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "GET /api/videos":
			_, _ = w.Write([]byte(`[{"_id":"v1","title":"Cold Call Basics","vimeo_id":"42"}]`))
		case "GET /api/resources":
			_, _ = w.Write([]byte(`[{"_id":"r1","title":"Opener prompts","type":"prompt","url":"https://docs.example/p","tags":["email"]}]`))
		case "GET /api/messages":
			_, _ = w.Write([]byte(`[{"_id":"m1","member_email":"a@b.c","content":"hello from ` + r.URL.Query().Get("channel") + `","channel":"general"}]`))
		case "POST /api/members/register", "POST /api/messages", "POST /api/videos", "POST /api/resources":
			_, _ = w.Write([]byte(`{}`))
		case "POST /api/subscribe":
			_, _ = w.Write([]byte(`{"message":"Checkout created","checkout_url":"https://pay.example/abc"}`))
		case "GET /api/admin/is_admin":
			_, _ = w.Write([]byte(`{"is_admin":true}`))
		case "GET /api/members":
			_, _ = w.Write([]byte(`[{"_id":"u1","name":"Jane","email":"jane@x.com","role":"member","subscription_status":"active"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return api, srv
}

func newTestServer(t *testing.T) (*fakeAPI, http.Handler) {
	t.Helper()
	return newLimitedTestServer(t, 0)
}

func newLimitedTestServer(t *testing.T, limit int) (*fakeAPI, http.Handler) {
	t.Helper()
	api, srv := newFakeAPI(t)
	log := logger.NewZapLogger(zap.NewNop().Sugar())

	client := infra.NewBackendClient(srv.URL, 0, nil)
	sessions := domain.NewSessionService(
		domain.NewJWTTokens("test-secret"),
		func() *domain.Page { return domain.NewPage(client, log) },
		time.Hour,
		limit,
		nil,
	)

	h := NewPageHandler(log)
	h.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }

	r := chi.NewRouter()
	RegisterRoutes(r, h, sessions, log)
	return api, r
}

func get(t *testing.T, h http.Handler, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func post(t *testing.T, h http.Handler, cookie *http.Cookie, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func TestMount_RendersLoadedSections(t *testing.T) {
	api, h := newTestServer(t)

	rec := get(t, h, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	c := sessionCookie(t, rec)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	body := rec.Body.String()
	assert.Contains(t, body, "Cold Call Basics")
	assert.Contains(t, body, "https://player.vimeo.com/video/42")
	assert.Contains(t, body, "Opener prompts")
	assert.Contains(t, body, "hello from general")
	assert.Contains(t, body, "Level up your sales game with AI")

	assert.Len(t, api.hitsFor(http.MethodGet, "/api/videos"), 1)
	assert.Len(t, api.hitsFor(http.MethodGet, "/api/resources"), 1)
	assert.Len(t, api.hitsFor(http.MethodGet, "/api/messages"), 1)
}

func TestMount_ReusesSession(t *testing.T) {
	_, h := newTestServer(t)

	c := sessionCookie(t, get(t, h, nil))
	rec := get(t, h, c)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSubscribe_OpensCheckoutOnce(t *testing.T) {
	api, h := newTestServer(t)
	c := sessionCookie(t, get(t, h, nil))

	rec := post(t, h, c, "/subscribe", url.Values{
		"name":     {"Jane"},
		"email":    {"jane@x.com"},
		"provider": {"paypal"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Checkout created — redirecting")
	assert.Contains(t, body, `window.open("https://pay.example/abc", "_blank");`)
	assert.Contains(t, body, "Open Checkout")

	subs := api.hitsFor(http.MethodPost, "/api/subscribe")
	require.Len(t, subs, 1)
	assert.JSONEq(t, `{"email":"jane@x.com","provider":"paypal"}`, subs[0].Body)

	again := post(t, h, c, "/community/messages", url.Values{"email": {"a@b.c"}, "content": {"x"}})
	assert.NotContains(t, again.Body.String(), "window.open(")
}

func TestPost_BadFormIs400(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader("name=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelectChannel_KeepsDraft(t *testing.T) {
	api, h := newTestServer(t)
	c := sessionCookie(t, get(t, h, nil))

	rec := post(t, h, c, "/community/channel", url.Values{
		"channel": {"wins"},
		"email":   {"a@b.c"},
		"content": {"half written"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, ">half written</textarea>")
	assert.Contains(t, body, `value="wins" selected`)
	assert.Contains(t, body, "hello from wins")

	hits := api.hitsFor(http.MethodGet, "/api/messages")
	require.Len(t, hits, 2)
	assert.Equal(t, "channel=wins", hits[1].Query)
}

func TestPostMessage_FreshSessionMountsFirst(t *testing.T) {
	api, h := newTestServer(t)

	rec := post(t, h, nil, "/community/messages", url.Values{"email": {"a@b.c"}, "content": {"hi"}})
	require.Equal(t, http.StatusOK, rec.Code)
	sessionCookie(t, rec)

	assert.Len(t, api.hitsFor(http.MethodGet, "/api/videos"), 1)
	require.Len(t, api.hitsFor(http.MethodPost, "/api/messages"), 1)
	assert.JSONEq(t, `{"member_email":"a@b.c","content":"hi","channel":"general"}`,
		api.hitsFor(http.MethodPost, "/api/messages")[0].Body)
	assert.Contains(t, rec.Body.String(), "></textarea>")
}

func TestAdmin_GateAndPrivilegedCalls(t *testing.T) {
	api, h := newTestServer(t)
	c := sessionCookie(t, get(t, h, nil))

	rec := post(t, h, c, "/admin/videos", url.Values{"title": {"T"}, "vimeo_id": {"1"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, api.hitsFor(http.MethodPost, "/api/videos"))
	assert.NotContains(t, rec.Body.String(), "Add Video")

	rec = post(t, h, c, "/admin/check", url.Values{"email": {"boss@x.com"}})
	assert.Contains(t, rec.Body.String(), "Add Video")
	assert.Equal(t, "email=boss%40x.com", api.hitsFor(http.MethodGet, "/api/admin/is_admin")[0].Query)

	rec = post(t, h, c, "/admin/members", nil)
	assert.Contains(t, rec.Body.String(), "jane@x.com • member • active")

	post(t, h, c, "/admin/videos", url.Values{"title": {"Intro"}, "vimeo_id": {"42"}, "description": {"d"}})
	post(t, h, c, "/admin/resources", url.Values{"title": {"P"}, "type": {"tool"}, "url": {"https://t.example"}, "tags": {"a, b"}})

	videos := api.hitsFor(http.MethodPost, "/api/videos")
	require.Len(t, videos, 1)
	assert.Equal(t, "boss@x.com", videos[0].AdminEmail)
	assert.JSONEq(t, `{"title":"Intro","vimeo_id":"42","description":"d"}`, videos[0].Body)

	res := api.hitsFor(http.MethodPost, "/api/resources")
	require.Len(t, res, 1)
	assert.Equal(t, "boss@x.com", res[0].AdminEmail)
	assert.JSONEq(t, `{"title":"P","type":"tool","url":"https://t.example","description":"","tags":["a","b"]}`, res[0].Body)
}

func TestMount_IgnoresRequestHost(t *testing.T) {
	api, h := newTestServer(t)

	var internalHits int
	var mu sync.Mutex
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		internalHits++
		mu.Unlock()
		_, _ = w.Write([]byte(`[{"_id":"x","title":"internal secret","vimeo_id":"1"}]`))
	}))
	t.Cleanup(internal.Close)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = strings.TrimPrefix(internal.URL, "http://")
	req.Header.Set("X-Forwarded-Proto", "http")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	mu.Lock()
	assert.Zero(t, internalHits)
	mu.Unlock()
	assert.NotContains(t, rec.Body.String(), "internal secret")
	assert.Len(t, api.hitsFor(http.MethodGet, "/api/videos"), 1)
}

func TestSessionLimit_Is503(t *testing.T) {
	api, h := newLimitedTestServer(t, 1)

	first := get(t, h, nil)
	require.Equal(t, http.StatusOK, first.Code)

	rec := get(t, h, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	// the live visitor is unaffected
	again := get(t, h, sessionCookie(t, first))
	assert.Equal(t, http.StatusOK, again.Code)
	assert.Len(t, api.hitsFor(http.MethodGet, "/api/videos"), 2)
}
