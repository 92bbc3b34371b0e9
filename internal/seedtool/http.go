package seedtool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rostermix/rostermix/pkg/logger"
)

// HTTPClient wraps http.Client with a timeout.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// do performs a request with a JSON body.
func (c *HTTPClient) do(ctx context.Context, method, url string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, url, body)
}

// Put performs a PUT request with a JSON body.
func (c *HTTPClient) Put(ctx context.Context, url string, body any) (*http.Response, error) {
	return c.do(ctx, http.MethodPut, url, body)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// decodeResponse reads the body and unmarshals it into v.
func decodeResponse(resp *http.Response, v any) error {
	body, err := readResponseBody(resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// submitPlayers adds the generated players concurrently using a worker pool.
// A reserve flag or skill level needs a follow-up PATCH since the add
// endpoint only accepts a name.
func submitPlayers(ctx context.Context, config *Config, client *HTTPClient, players []generatedPlayer, stats *Stats) error {
	logger.Get().Info(ctx, "submitting players",
		logger.Int("count", len(players)),
		logger.Int("workers", config.Workers))

	var (
		submitted int64
		accepted  int64
		failed    int64
	)

	playerChan := make(chan generatedPlayer, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range playerChan {
				select {
				case <-ctx.Done():
					return
				default:
					atomic.AddInt64(&submitted, 1)
					if submitSinglePlayer(ctx, config, client, p) {
						atomic.AddInt64(&accepted, 1)
					} else {
						atomic.AddInt64(&failed, 1)
					}
				}
			}
		}()
	}

	go func() {
		defer close(playerChan)
		for _, p := range players {
			select {
			case <-ctx.Done():
				return
			case playerChan <- p:
			}
		}
	}()

	wg.Wait()

	stats.PlayersSubmitted = int(atomic.LoadInt64(&submitted))
	stats.PlayersAccepted = int(atomic.LoadInt64(&accepted))
	stats.PlayersFailed = int(atomic.LoadInt64(&failed))

	logger.Get().Info(ctx, "player submission completed",
		logger.Int("accepted", stats.PlayersAccepted),
		logger.Int("failed", stats.PlayersFailed))

	if stats.PlayersFailed > 0 {
		return fmt.Errorf("%d of %d players failed to submit", stats.PlayersFailed, stats.PlayersSubmitted)
	}
	return nil
}

// submitSinglePlayer adds one player and patches on its skill/reserve flags.
func submitSinglePlayer(ctx context.Context, config *Config, client *HTTPClient, p generatedPlayer) bool {
	resp, err := client.Post(ctx, config.BaseURL+"/players", map[string]string{"name": p.Name})
	if err != nil {
		return false
	}
	if resp.StatusCode != http.StatusCreated {
		_, _ = readResponseBody(resp)
		return false
	}

	var created wirePlayer
	if err := decodeResponse(resp, &created); err != nil {
		return false
	}

	if p.SkillLevel == "" && !p.IsReserve {
		return true
	}

	patch := map[string]any{}
	if p.SkillLevel != "" {
		patch["skillLevel"] = p.SkillLevel
	}
	if p.IsReserve {
		patch["isReserve"] = true
	}

	patchResp, err := client.do(ctx, http.MethodPatch, config.BaseURL+"/players/"+created.ID, patch)
	if err != nil {
		return false
	}
	_, _ = readResponseBody(patchResp)
	return patchResp.StatusCode == http.StatusOK
}
