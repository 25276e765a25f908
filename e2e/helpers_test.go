package e2e

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pantry/internal/config"
	httpserver "pantry/internal/http"
	"pantry/internal/http/controller"
	"pantry/internal/metrics"
	"pantry/internal/queue"
	"pantry/internal/repository"
	"pantry/internal/service/inventory"
	"pantry/internal/session"
	"pantry/internal/sse"
	"pantry/internal/view"
)

type noopPublisher struct{}

func (n *noopPublisher) Publish(ctx context.Context, payload []byte, routingKey string) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		HTTPAddr:            ":0",
		Collection:          "inventory",
		SSEHeartbeat:        5 * time.Second,
		SessionCookie:       "pantry_session",
		SessionTTL:          time.Hour,
		OTELServiceName:     "pantry-e2e",
		RabbitPublishPrefix: "inventory",
	}
}

// startServer wires the full router over repo and serves it until the test ends.
func startServer(t *testing.T, cfg *config.Config, repo repository.InventoryRepository, publisher queue.Publisher) (*httptest.Server, *inventory.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	registry := metrics.NewRegistry()
	hub := sse.NewHub()
	svc := inventory.NewService(cfg, repo, hub, metrics.NewStoreMetrics(registry), logger)
	handler := controller.NewHandler(cfg, svc, view.New(svc, logger), session.NewStore(cfg, logger), hub, logger, publisher)
	router := httpserver.NewRouter(cfg, handler, registry, logger)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		cancel()
	})
	return server, svc
}

// newBrowser returns a client that keeps cookies and does not follow redirects.
func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func readSSEData(body io.Reader, timeout time.Duration) (string, error) {
	reader := bufio.NewReader(body)
	type result struct {
		data string
		err  error
	}
	ch := make(chan result, 1)

	go func() {
		var dataLines []string
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				ch <- result{"", err}
				return
			}
			line = strings.TrimRight(line, "\r\n")
			if line == "" {
				if len(dataLines) > 0 {
					ch <- result{strings.Join(dataLines, "\n"), nil}
					return
				}
				continue
			}
			if strings.HasPrefix(line, ":") {
				continue
			}
			if strings.HasPrefix(line, "data:") {
				dataLines = append(dataLines, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
			}
		}
	}()

	select {
	case res := <-ch:
		return res.data, res.err
	case <-time.After(timeout):
		return "", context.DeadlineExceeded
	}
}
