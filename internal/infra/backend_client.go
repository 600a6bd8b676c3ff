package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Vovarama1992/salesacademy/internal/models"
	"github.com/Vovarama1992/salesacademy/internal/ports"
	"github.com/bitly/go-simplejson"
)

// AdminEmailHeader carries the admin email on privileged calls, in cleartext.
const AdminEmailHeader = "x-admin-email"

var ErrNoBaseURL = errors.New("backend url is not configured")

type BackendClient struct {
	baseURL string
	client  *http.Client
	metrics *Metrics
}

// NewBackendClient talks to the backend at baseURL, which comes from config
// only. timeout 0 disables the client timeout.
func NewBackendClient(baseURL string, timeout time.Duration, metrics *Metrics) ports.Backend {
	return &BackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		metrics: metrics,
	}
}

type call struct {
	endpoint   string
	method     string
	path       string
	query      url.Values
	adminEmail string
	body       any
}

func (c *BackendClient) RegisterMember(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, call{
		endpoint: "members.register",
		method:   http.MethodPost,
		path:     "/api/members/register",
		body:     req,
	}, nil)
}

func (c *BackendClient) ListMembers(ctx context.Context, adminEmail string) ([]models.Member, error) {
	var out []models.Member
	err := c.do(ctx, call{
		endpoint:   "members.list",
		method:     http.MethodGet,
		path:       "/api/members",
		adminEmail: adminEmail,
	}, into(&out))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BackendClient) Subscribe(ctx context.Context, req models.SubscribeRequest) (*models.SubscribeResult, error) {
	var out models.SubscribeResult
	err := c.do(ctx, call{
		endpoint: "subscribe",
		method:   http.MethodPost,
		path:     "/api/subscribe",
		body:     req,
	}, into(&out))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BackendClient) ListVideos(ctx context.Context) ([]models.Video, error) {
	var out []models.Video
	err := c.do(ctx, call{
		endpoint: "videos.list",
		method:   http.MethodGet,
		path:     "/api/videos",
	}, into(&out))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BackendClient) CreateVideo(ctx context.Context, adminEmail string, v models.VideoInput) error {
	return c.do(ctx, call{
		endpoint:   "videos.create",
		method:     http.MethodPost,
		path:       "/api/videos",
		adminEmail: adminEmail,
		body:       v,
	}, nil)
}

func (c *BackendClient) ListMessages(ctx context.Context, channel models.Channel) ([]models.Message, error) {
	var out []models.Message
	err := c.do(ctx, call{
		endpoint: "messages.list",
		method:   http.MethodGet,
		path:     "/api/messages",
		query:    url.Values{"channel": {string(channel)}},
	}, into(&out))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BackendClient) PostMessage(ctx context.Context, msg models.MessageInput) error {
	return c.do(ctx, call{
		endpoint: "messages.create",
		method:   http.MethodPost,
		path:     "/api/messages",
		body:     msg,
	}, nil)
}

func (c *BackendClient) ListResources(ctx context.Context) ([]models.Resource, error) {
	var out []models.Resource
	err := c.do(ctx, call{
		endpoint: "resources.list",
		method:   http.MethodGet,
		path:     "/api/resources",
	}, into(&out))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BackendClient) CreateResource(ctx context.Context, adminEmail string, r models.ResourceInput) error {
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return c.do(ctx, call{
		endpoint:   "resources.create",
		method:     http.MethodPost,
		path:       "/api/resources",
		adminEmail: adminEmail,
		body:       r,
	}, nil)
}

func (c *BackendClient) IsAdmin(ctx context.Context, email string) (bool, error) {
	var admin bool
	err := c.do(ctx, call{
		endpoint: "admin.is_admin",
		method:   http.MethodGet,
		path:     "/api/admin/is_admin",
		query:    url.Values{"email": {email}},
	}, func(raw []byte) error {
		js, err := simplejson.NewJson(raw)
		if err != nil {
			return err
		}
		v, ok := js.CheckGet("is_admin")
		admin = ok && truthy(v.Interface())
		return nil
	})
	if err != nil {
		return false, err
	}
	return admin, nil
}

func into(out any) func([]byte) error {
	return func(raw []byte) error {
		return json.Unmarshal(raw, out)
	}
}

// do performs one JSON call. decode may be nil when the response body is
// not used; non-2xx answers come back as *models.APIError.
func (c *BackendClient) do(ctx context.Context, cl call, decode func([]byte) error) error {
	start := time.Now()
	outcome := outcomeOK
	defer func() {
		c.metrics.observe(cl.endpoint, outcome, time.Since(start))
	}()

	target, err := c.resolve(cl.path, cl.query)
	if err != nil {
		outcome = outcomeTransport
		return fmt.Errorf("%s: %w", cl.endpoint, err)
	}

	var body io.Reader
	if cl.body != nil {
		j, err := json.Marshal(cl.body)
		if err != nil {
			outcome = outcomeTransport
			return fmt.Errorf("%s marshal: %w", cl.endpoint, err)
		}
		body = bytes.NewReader(j)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		outcome = outcomeTransport
		return fmt.Errorf("%s new request: %w", cl.endpoint, err)
	}
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.adminEmail != "" {
		req.Header.Set(AdminEmailHeader, cl.adminEmail)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		outcome = outcomeTransport
		return fmt.Errorf("%s request: %w", cl.endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome = outcomeTransport
		return fmt.Errorf("%s read body: %w", cl.endpoint, err)
	}

	// тело ошибки разбираем отдельно, detail может и не быть
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = outcomeHTTPError
		return newAPIError(cl.endpoint, resp.StatusCode, raw)
	}

	if decode == nil {
		return nil
	}
	if err := decode(raw); err != nil {
		outcome = outcomeDecode
		return fmt.Errorf("%s decode: %w", cl.endpoint, err)
	}
	return nil
}

// resolve never looks at the incoming request: Host and X-Forwarded-*
// are client controlled.
func (c *BackendClient) resolve(path string, query url.Values) (string, error) {
	if c.baseURL == "" {
		return "", ErrNoBaseURL
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target, nil
}
