package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pantry/internal/config"
	"pantry/internal/metrics"
	"pantry/internal/model"
	"pantry/internal/queue"
	"pantry/internal/repository"
	"pantry/internal/service/inventory"
	"pantry/internal/session"
	"pantry/internal/sse"
	"pantry/internal/view"
)

const testPage = `{{ with .Page }}` +
	`{{ if .Loading }}loading{{ else if .Err }}error:{{ .Err }}{{ else }}` +
	`{{ range .Rows }}[{{ .DisplayName }}|{{ .QuantityLabel }}]{{ end }}{{ end }}` +
	`{{ if .Modal.Open }} modal:{{ .Modal.SubmitLabel }}:{{ .Modal.NameField }}:{{ .Modal.QuantityField }}{{ end }}` +
	` search:{{ .SearchTerm }}{{ end }}`

type repoMock struct {
	mock.Mock
}

func (m *repoMock) ListItems(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *repoMock) UpsertItem(ctx context.Context, item model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *repoMock) DeleteItem(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) Publish(ctx context.Context, payload []byte, routingKey string) error {
	args := m.Called(ctx, payload, routingKey)
	return args.Error(0)
}

func setupRouter(t *testing.T, repo repository.InventoryRepository, publisher queue.Publisher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Collection:          "inventory",
		RabbitPublishPrefix: "inventory",
		SessionCookie:       "pantry_session",
		SessionTTL:          time.Hour,
		SSEHeartbeat:        time.Second,
	}
	logger := zap.NewNop()
	hub := sse.NewHub()
	svc := inventory.NewService(cfg, repo, hub, metrics.NewStoreMetrics(prometheus.NewRegistry()), logger)
	handler := NewHandler(cfg, svc, view.New(svc, logger), session.NewStore(cfg, logger), hub, logger, publisher)

	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New(pageTemplate).Parse(testPage)))
	router.GET("/", handler.Page)
	router.POST("/ui/open", handler.OpenAdd)
	router.POST("/ui/edit", handler.OpenEdit)
	router.POST("/ui/close", handler.CloseModal)
	router.POST("/ui/submit", handler.Submit)
	router.POST("/ui/remove", handler.Remove)
	router.GET("/api/items", handler.ListItems)
	router.PUT("/api/items/:name", handler.UpsertItem)
	router.DELETE("/api/items/:name", handler.DeleteItem)
	router.POST("/api/items/publish", handler.PublishCommand)
	router.GET("/sse/:collection", handler.Events)
	return router
}

func performJSONRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func performRawRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// browser replays the session cookie the way a real browser would.
type browser struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.router.ServeHTTP(rec, req)
	if set := rec.Result().Cookies(); len(set) > 0 {
		b.cookies = set
	}
	return rec
}

func (b *browser) get(path string) string {
	b.t.Helper()
	rec := b.do(httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(b.t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func (b *browser) post(path string, form url.Values) {
	b.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := b.do(req)
	require.Equal(b.t, http.StatusSeeOther, rec.Code)
	require.Equal(b.t, "/", rec.Header().Get("Location"))
}
