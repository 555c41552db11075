// Package openai talks to the OpenAI chat completions API with a caller
// supplied key.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/studymate/internal/domain"
	"github.com/bnema/studymate/internal/ports"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4"

	maxErrorBodyBytes = 1 << 20
)

// Client builds a fresh SDK client per call because the key is resolved per
// request and never kept.
type Client struct {
	BaseURL        string
	Model          string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.AIProvider = Client{}

// APIError is a non-2xx reply from the API.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("openai: status %d", e.StatusCode)
	}
	return fmt.Sprintf("openai: status %d: %s", e.StatusCode, e.Message)
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c Client) GenerateFlashcards(ctx context.Context, apiKey string, content string, opts domain.GenerationOptions) ([]domain.Flashcard, error) {
	opts = opts.WithDefaults()

	reply, err := c.complete(ctx, apiKey, c.model(opts.Model), userPrompt(flashcardsPrompt(content, opts)), domain.DefaultChatTemperature, 2000)
	if err != nil {
		return nil, fmt.Errorf("generate flashcards: %w", err)
	}

	var cards []domain.Flashcard
	if err := decodeJSONReply(reply.Content, &cards); err != nil {
		return nil, fmt.Errorf("generate flashcards: %w", err)
	}

	return cards, nil
}

func (c Client) GenerateStudyGuide(ctx context.Context, apiKey string, content string, opts domain.GenerationOptions) (domain.StudyGuide, error) {
	opts = opts.WithDefaults()

	reply, err := c.complete(ctx, apiKey, c.model(opts.Model), userPrompt(studyGuidePrompt(content, opts)), domain.DefaultChatTemperature, 3000)
	if err != nil {
		return domain.StudyGuide{}, fmt.Errorf("generate study guide: %w", err)
	}

	var guide domain.StudyGuide
	if err := decodeJSONReply(reply.Content, &guide); err != nil {
		return domain.StudyGuide{}, fmt.Errorf("generate study guide: %w", err)
	}

	return guide, nil
}

func (c Client) GenerateTest(ctx context.Context, apiKey string, content string, opts domain.GenerationOptions) (domain.Test, error) {
	opts = opts.WithDefaults()

	reply, err := c.complete(ctx, apiKey, c.model(opts.Model), userPrompt(testPrompt(content, opts)), domain.DefaultChatTemperature, 3000)
	if err != nil {
		return domain.Test{}, fmt.Errorf("generate test: %w", err)
	}

	var test domain.Test
	if err := decodeJSONReply(reply.Content, &test); err != nil {
		return domain.Test{}, fmt.Errorf("generate test: %w", err)
	}

	return test, nil
}

func (c Client) ChatCompletion(ctx context.Context, apiKey string, messages []domain.ChatMessage, opts domain.ChatOptions) (domain.ChatCompletion, error) {
	if len(messages) == 0 {
		return domain.ChatCompletion{}, errors.New("chat completion: at least one message is required")
	}
	opts = opts.WithDefaults()

	reply, err := c.complete(ctx, apiKey, c.model(opts.Model), messages, *opts.Temperature, opts.MaxTokens)
	if err != nil {
		return domain.ChatCompletion{}, fmt.Errorf("chat completion: %w", err)
	}

	return reply, nil
}

// VerifyKey lists models, the cheapest authenticated call the API offers.
func (c Client) VerifyKey(ctx context.Context, apiKey string) error {
	client, err := c.sdkClient(apiKey)
	if err != nil {
		return err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	if _, err := client.Models.List(requestCtx); err != nil {
		return requestError("request models", err)
	}

	return nil
}

func (c Client) complete(ctx context.Context, apiKey string, model string, messages []domain.ChatMessage, temperature float64, maxTokens int) (domain.ChatCompletion, error) {
	client, err := c.sdkClient(apiKey)
	if err != nil {
		return domain.ChatCompletion{}, err
	}

	params, err := messageParams(messages)
	if err != nil {
		return domain.ChatCompletion{}, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	resp, err := client.Chat.Completions.New(requestCtx, openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(model),
		Messages:    params,
		Temperature: openaisdk.Float(temperature),
		MaxTokens:   openaisdk.Int(int64(maxTokens)),
	})
	if err != nil {
		return domain.ChatCompletion{}, requestError("request chat completion", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return domain.ChatCompletion{}, errors.New("no response from OpenAI")
	}

	return domain.ChatCompletion{
		Content: resp.Choices[0].Message.Content,
		Usage: domain.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// sdkClient never retries: a failed provider call is reported as is.
func (c Client) sdkClient(apiKey string) (openaisdk.Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return openaisdk.Client{}, errors.New("api key is required")
	}

	baseURL, err := normalizeBaseURL(c.baseURL())
	if err != nil {
		return openaisdk.Client{}, err
	}

	return openaisdk.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(c.httpClient()),
		option.WithMaxRetries(0),
	), nil
}

func messageParams(messages []domain.ChatMessage) ([]openaisdk.ChatCompletionMessageParamUnion, error) {
	params := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, message := range messages {
		switch message.Role {
		case domain.ChatRoleSystem:
			params = append(params, openaisdk.SystemMessage(message.Content))
		case domain.ChatRoleUser:
			params = append(params, openaisdk.UserMessage(message.Content))
		case domain.ChatRoleAssistant:
			params = append(params, openaisdk.AssistantMessage(message.Content))
		default:
			return nil, fmt.Errorf("unsupported chat role %q", message.Role)
		}
	}

	return params, nil
}

func (c Client) model(override string) string {
	if override != "" {
		return override
	}
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel
}

func (c Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 2 * time.Minute
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// requestError turns an SDK status error into *APIError and wraps anything
// else (transport, timeout) with op.
func requestError(op string, err error) error {
	var sdkErr *openaisdk.Error
	if !errors.As(err, &sdkErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	apiErr := &APIError{
		StatusCode: sdkErr.StatusCode,
		Type:       sdkErr.Type,
		Message:    sdkErr.Message,
	}
	if apiErr.Message == "" && sdkErr.Response != nil && sdkErr.Response.Body != nil {
		var payload errorResponse
		if err := json.NewDecoder(io.LimitReader(sdkErr.Response.Body, maxErrorBodyBytes)).Decode(&payload); err == nil {
			apiErr.Message = payload.Error.Message
			apiErr.Type = payload.Error.Type
		}
	}

	return apiErr
}

// decodeJSONReply parses a model reply that should be bare JSON but may be
// wrapped in a markdown code fence.
func decodeJSONReply(reply string, out any) error {
	trimmed := strings.TrimSpace(reply)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		if newline := strings.IndexByte(trimmed, '\n'); newline >= 0 {
			trimmed = trimmed[newline+1:]
		}
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	}

	if err := json.Unmarshal([]byte(trimmed), out); err != nil {
		return fmt.Errorf("invalid response format from OpenAI: %w", err)
	}

	return nil
}

// normalizeBaseURL validates the API root and gives it the trailing slash the
// SDK resolves endpoint paths against.
func normalizeBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/") + "/"
	return parsed.String(), nil
}
