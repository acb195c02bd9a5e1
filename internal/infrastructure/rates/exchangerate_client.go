package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"lovedktech/internal/domain/currency"
)

var ErrRatesUnavailable = errors.New("exchange rates unavailable")

// Client fetches live EUR-based exchange rates once at startup. A failed
// refresh is logged and the table keeps its built-in fallback rates, so
// pricing never blocks on the rates provider.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type latestRatesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Refresh pulls the latest rates and swaps them into the table. On any
// failure the table is left untouched.
func (c *Client) Refresh(ctx context.Context, table *currency.Table) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[rates][client] fetch failed url=%s err=%v", c.url, err)
		return fmt.Errorf("%w: %v", ErrRatesUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[rates][client] fetch failed url=%s status=%d", c.url, resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrRatesUnavailable, resp.StatusCode)
	}

	var parsed latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("[rates][client] response unmarshal failed err=%v", err)
		return fmt.Errorf("%w: malformed response", ErrRatesUnavailable)
	}
	if len(parsed.Rates) == 0 {
		log.Printf("[rates][client] response carried no rates base=%s", parsed.Base)
		return fmt.Errorf("%w: empty rates", ErrRatesUnavailable)
	}

	table.Replace(parsed.Rates)
	log.Printf("[rates][client] rates refreshed base=%s count=%d", parsed.Base, len(parsed.Rates))
	return nil
}

// RefreshInBackground runs a single refresh attempt off the request path.
// The server starts serving with fallback rates immediately.
func (c *Client) RefreshInBackground(table *currency.Table) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := c.Refresh(ctx, table); err != nil {
			log.Printf("[rates][client] keeping fallback rates err=%v", err)
		}
	}()
}
