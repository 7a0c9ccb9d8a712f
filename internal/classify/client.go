package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"
)

// DomainSample is one domain submitted for remote classification, with up
// to a few page titles as context.
type DomainSample struct {
	Domain string
	Titles []string
}

// RemoteClassifier classifies a batch of domains. The returned mapping may
// be partial; any failure or omission is recovered by the caller's
// heuristic fallback.
type RemoteClassifier interface {
	Classify(ctx context.Context, batch []DomainSample) (map[string]Category, error)
}

// ClientConfig holds the settings for the remote classification API.
type ClientConfig struct {
	Enabled   bool
	Endpoint  string
	Model     string
	APIKey    string
	TimeoutMs int
}

// HTTPClassifier implements RemoteClassifier against an OpenAI-compatible
// chat-completions endpoint.
type HTTPClassifier struct {
	cfg  ClientConfig
	http *http.Client
	log  *slog.Logger
}

var _ RemoteClassifier = (*HTTPClassifier)(nil)

// NewHTTPClassifier builds a classifier client from configuration.
func NewHTTPClassifier(cfg ClientConfig, logger *slog.Logger) *HTTPClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &HTTPClassifier{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
		log:  logger,
	}
}

// chatRequest is the JSON body for the chat-completions call.
type chatRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify submits one batch of domains and returns the mapping the model
// produced. Entries outside the closed category set are discarded so the
// fallback covers them.
func (c *HTTPClassifier) Classify(ctx context.Context, batch []DomainSample) (map[string]Category, error) {
	if !c.cfg.Enabled || c.cfg.APIKey == "" || c.cfg.Endpoint == "" || c.cfg.Model == "" {
		return nil, ErrClassifierDisabled
	}

	body, err := json.Marshal(chatRequest{
		Model:     c.cfg.Model,
		MaxTokens: 1024,
		Messages: []chatMessage{
			{Role: "user", Content: buildPrompt(batch)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classify call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read classify response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", ErrInvalidResponse)
	}

	return parseMapping(parsed.Choices[0].Message.Content)
}

// buildPrompt renders the batch into a classification prompt. Sample
// titles are capped at three per domain.
func buildPrompt(batch []DomainSample) string {
	var categories strings.Builder
	for _, cat := range AllCategories {
		fmt.Fprintf(&categories, "- %s: %s\n", cat, categoryDescriptions[cat])
	}

	var domains strings.Builder
	for _, sample := range batch {
		titles := sample.Titles
		if len(titles) > 3 {
			titles = titles[:3]
		}
		context := "No titles"
		if len(titles) > 0 {
			context = strings.Join(titles, ", ")
		}
		fmt.Fprintf(&domains, "- %s (pages: %s)\n", sample.Domain, context)
	}

	return fmt.Sprintf(`Categorize these websites/domains into one of these categories:

%s
Domains to categorize (with sample page titles for context):
%s
Return ONLY a JSON object mapping each domain to its category name.
Format: {"domain.com": "category_name"}

Be specific:
- YouTube videos about programming -> "development"
- YouTube entertainment videos -> "video"
- GitHub/StackOverflow -> "development"
- Twitter/Reddit -> "social_media"
- News sites -> "news"

JSON response:`, categories.String(), domains.String())
}

// parseMapping extracts the domain-to-category JSON object from raw model
// text, tolerating code fences and surrounding prose.
func parseMapping(raw string) (map[string]Category, error) {
	jsonStr := extractJSONBlock(raw)
	if jsonStr == "" {
		return nil, fmt.Errorf("%w: no JSON object found", ErrInvalidResponse)
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(jsonStr), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	mapping := make(map[string]Category, len(decoded))
	for domain, value := range decoded {
		cat := Category(value)
		if !cat.Valid() {
			continue
		}
		mapping[domain] = cat
	}
	return mapping, nil
}

// extractJSONBlock finds the first balanced { ... } block in the text.
func extractJSONBlock(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

// sortedDomains returns the mapping keys sorted, for stable debug logging.
func sortedDomains(m map[string]Category) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
