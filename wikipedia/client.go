package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/parsatext/hamanand/core"
)

const defaultMaxResults = 10

// Client queries the MediaWiki opensearch endpoint for candidate texts.
//
// The client performs exactly one request per Search call; retries and
// failure recovery are the caller's concern.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client, used by tests to point the
// client at a fixture server.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a new opensearch client. A nil config uses DefaultConfig.
func NewClient(config *Config, opts ...Option) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:     config,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search looks up the query on the wiki for the given language code and
// returns candidate (id, text) pairs. The id is the article title with
// spaces replaced by underscores; the text concatenates title and
// description with ". " when a description exists.
//
// The configured timeout bounds the request only when ctx carries no
// deadline of its own; a caller-supplied deadline always wins. An empty
// query returns no candidates.
func (c *Client) Search(ctx context.Context, query, lang string, maxResults int) ([]core.Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if lang == "" {
		lang = "en"
	}
	if !validLang(lang) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}
	if maxResults < 1 {
		maxResults = defaultMaxResults
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	endpoint := c.config.BaseURL
	if strings.Contains(endpoint, "%s") {
		endpoint = fmt.Sprintf(endpoint, lang)
	}

	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("search", query)
	params.Set("limit", strconv.Itoa(maxResults))
	params.Set("namespace", "0")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	candidates, err := parseOpenSearch(body, maxResults)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("opensearch lookup finished",
		"query", query, "lang", lang, "candidates", len(candidates))
	return candidates, nil
}

// parseOpenSearch decodes the 4-element opensearch payload:
// [query, [titles], [descriptions], [urls]].
func parseOpenSearch(body []byte, maxResults int) ([]core.Candidate, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if len(payload) < 3 {
		return nil, fmt.Errorf("%w: %d elements", ErrMalformedResponse, len(payload))
	}

	var titles, descriptions []string
	if err := json.Unmarshal(payload[1], &titles); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if err := json.Unmarshal(payload[2], &descriptions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	candidates := make([]core.Candidate, 0, len(titles))
	for i, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}

		text := title
		if i < len(descriptions) {
			if description := strings.TrimSpace(descriptions[i]); description != "" {
				text = title + ". " + description
			}
		}

		candidates = append(candidates, core.Candidate{
			Id:   strings.ReplaceAll(title, " ", "_"),
			Text: strings.TrimSpace(text),
		})
		if len(candidates) == maxResults {
			break
		}
	}
	return candidates, nil
}

func validLang(lang string) bool {
	for _, r := range lang {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
