package inspect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/okian/matchup/internal/adapters/slate"
)

const defaultTimeout = 30 * time.Second

// fetchRemote reads from a running bot: the batter's board entries when a
// batter is given, the latest rankings otherwise.
func fetchRemote(ctx context.Context, cfg *Config) (any, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	target := base + "/rankings"
	if cfg.Batter != "" {
		target = base + "/matchups/batter/" + url.PathEscape(keyOf(cfg.Batter, slate.ParseBatterName))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", target, err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d: %s", target, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", target, err)
	}
	return out, nil
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}
