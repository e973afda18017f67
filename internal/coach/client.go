package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is Gemini's OpenAI-compatible endpoint
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultModel   = "gemini-2.5-flash"
)

// Messages returned in place of a tip when something goes wrong
const (
	MsgNotConfigured = "API Key not configured. Please set the API_KEY environment variable."
	msgFailedPrefix  = "Sorry, I couldn't get a tip for you right now. "
	MsgUnknownError  = msgFailedPrefix + "An unknown error occurred."
)

// ErrNotConfigured is returned by Tip when no API key is set
var ErrNotConfigured = errors.New("coach API key not configured")

// errEmptyAnswer is returned when the service answers without any text
var errEmptyAnswer = errors.New("empty answer")

// QuickPrompts are canned questions offered by the coach screen
var QuickPrompts = []string{
	"How to improve my push-up form?",
	"Best food to eat after a workout?",
	"How important is rest for muscle gain?",
	"How can I stay motivated to work out?",
}

// Config holds the connection settings for the tip service
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration // 0 leaves the transport default
}

// Client asks a chat-completions endpoint for fitness tips
type Client struct {
	cfg         Config
	httpClient  *http.Client
	rateLimiter *RateLimiter
	log         logrus.FieldLogger
}

// NewClient creates a tip client. The API key is sent as a bearer token.
func NewClient(cfg Config, log logrus.FieldLogger) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	httpClient := &http.Client{}
	if cfg.APIKey != "" {
		httpClient = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.APIKey,
			TokenType:   "Bearer",
		}))
	}
	httpClient.Timeout = cfg.Timeout

	return &Client{
		cfg:         cfg,
		httpClient:  httpClient,
		rateLimiter: NewRateLimiter(defaultRequestsPerWindow, defaultWindow, defaultMinInterval),
		log:         log,
	}
}

// Configured reports whether an API key is available
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// BuildPrompt wraps a user question in the coach persona
func BuildPrompt(question string) string {
	return fmt.Sprintf("You are a friendly and encouraging fitness coach. A user has a question: \"%s\". "+
		"Provide a clear, concise, and helpful tip. Do not use markdown.", question)
}

// RequestTip returns a tip for the question. It never fails: problems are
// turned into a message the user can read.
func (c *Client) RequestTip(ctx context.Context, question string) string {
	tip, err := c.Tip(ctx, question)
	switch {
	case err == nil:
		return tip
	case errors.Is(err, ErrNotConfigured):
		return MsgNotConfigured
	case errors.Is(err, errEmptyAnswer):
		c.log.WithField("model", c.cfg.Model).Warn("coach returned an empty answer")
		return MsgUnknownError
	default:
		c.log.WithError(err).WithField("model", c.cfg.Model).Error("fetching fitness tip")
		return msgFailedPrefix + "Error: " + err.Error()
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Tip performs the request and returns the raw error, if any
func (c *Client) Tip(ctx context.Context, question string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: BuildPrompt(question)}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.rateLimiter.UpdateFromHeaders(resp.Header)
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errEmptyAnswer
	}

	tip := strings.TrimSpace(out.Choices[0].Message.Content)
	if tip == "" {
		return "", errEmptyAnswer
	}
	return tip, nil
}
