package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/studymate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return Client{
		BaseURL:    server.URL + "/v1",
		HTTPClient: server.Client(),
	}
}

// sentChatRequest is the part of the request body the tests inspect.
type sentChatRequest struct {
	Model       string               `json:"model"`
	Messages    []domain.ChatMessage `json:"messages"`
	Temperature *float64             `json:"temperature"`
	MaxTokens   int                  `json:"max_tokens"`
}

func chatReply(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []any{
			map[string]any{"message": map[string]any{"role": "assistant", "content": content}},
		},
		"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 30, "total_tokens": 42},
	})
	return string(body)
}

func TestGenerateFlashcardsParsesReply(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test1234567890abcdef", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var req sentChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, DefaultModel, req.Model)
		assert.Equal(t, 2000, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, domain.ChatRoleUser, req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "Generate 3 flashcards")
		assert.Contains(t, req.Messages[0].Content, "Focus areas: mitosis, meiosis")

		_, _ = w.Write([]byte(chatReply(`[{"front":"What is mitosis?","back":"Cell division","difficulty":"easy","tags":["biology"]}]`)))
	})

	cards, err := client.GenerateFlashcards(context.Background(), "sk-test1234567890abcdef", "Cells divide.", domain.GenerationOptions{
		Count:      3,
		FocusAreas: []string{"mitosis", "meiosis"},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Flashcard{{
		Front:      "What is mitosis?",
		Back:       "Cell division",
		Difficulty: domain.DifficultyEasy,
		Tags:       []string{"biology"},
	}}, cards)
}

func TestGenerateStudyGuideStripsCodeFence(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatReply("```json\n{\"title\":\"Cells\",\"content\":\"Overview\",\"sections\":[{\"title\":\"Mitosis\",\"content\":\"Phases\"}]}\n```")))
	})

	guide, err := client.GenerateStudyGuide(context.Background(), "sk-test1234567890abcdef", "Cells divide.", domain.GenerationOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Cells", guide.Title)
	require.Len(t, guide.Sections, 1)
	assert.Equal(t, "Mitosis", guide.Sections[0].Title)
}

func TestGenerateTestUsesModelOverride(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req sentChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, 3000, req.MaxTokens)

		_, _ = w.Write([]byte(chatReply(`{"title":"Quiz","questions":[{"type":"short_answer","prompt":"Define mitosis","correctAnswer":"Cell division","points":5}]}`)))
	})
	client.Model = "gpt-4"

	test, err := client.GenerateTest(context.Background(), "sk-test1234567890abcdef", "Cells divide.", domain.GenerationOptions{Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "Quiz", test.Title)
	require.Len(t, test.Questions, 1)
	assert.Equal(t, domain.QuestionShortAnswer, test.Questions[0].Type)
	assert.Equal(t, 5, test.Questions[0].Points)
}

func TestGenerateFlashcardsRejectsNonJSONReply(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatReply("Sure! Here are your flashcards.")))
	})

	_, err := client.GenerateFlashcards(context.Background(), "sk-test1234567890abcdef", "x", domain.GenerationOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid response format from OpenAI")
}

func TestChatCompletionReturnsUsage(t *testing.T) {
	t.Parallel()

	temperature := 0.2

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req sentChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Temperature)
		assert.InDelta(t, 0.2, *req.Temperature, 1e-9)
		assert.Equal(t, 1000, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, domain.ChatRoleSystem, req.Messages[0].Role)

		_, _ = w.Write([]byte(chatReply("Mitosis has four phases.")))
	})

	got, err := client.ChatCompletion(context.Background(), "sk-test1234567890abcdef", []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "You are a tutor."},
		{Role: domain.ChatRoleUser, Content: "Explain mitosis."},
	}, domain.ChatOptions{Temperature: &temperature})
	require.NoError(t, err)
	assert.Equal(t, "Mitosis has four phases.", got.Content)
	assert.Equal(t, domain.TokenUsage{PromptTokens: 12, CompletionTokens: 30, TotalTokens: 42}, got.Usage)
}

func TestChatCompletionRequiresMessages(t *testing.T) {
	t.Parallel()

	_, err := Client{}.ChatCompletion(context.Background(), "sk-test1234567890abcdef", nil, domain.ChatOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "at least one message")
}

func TestChatCompletionSurfacesAPIError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	})

	_, err := client.ChatCompletion(context.Background(), "sk-bad", []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "hi"}}, domain.ChatOptions{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid_request_error", apiErr.Type)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestChatCompletionEmptyChoices(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.ChatCompletion(context.Background(), "sk-test1234567890abcdef", []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "hi"}}, domain.ChatOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "no response from OpenAI")
}

func TestVerifyKey(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/models", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer sk-good-key-1234567890" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"id":"gpt-4"}]}`))
	})

	require.NoError(t, client.VerifyKey(context.Background(), "sk-good-key-1234567890"))

	err := client.VerifyKey(context.Background(), "sk-bad-key-1234567890")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestRequestTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(chatReply("late")))
	})
	client.RequestTimeout = 20 * time.Millisecond

	_, err := client.ChatCompletion(context.Background(), "sk-test1234567890abcdef", []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "hi"}}, domain.ChatOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request chat completion")
}

func TestChatCompletionSendsZeroTemperature(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req sentChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Temperature)
		assert.Zero(t, *req.Temperature)

		_, _ = w.Write([]byte(chatReply("Deterministic.")))
	})

	zero := 0.0
	_, err := client.ChatCompletion(context.Background(), "sk-test1234567890abcdef", []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "hi"}}, domain.ChatOptions{Temperature: &zero})
	require.NoError(t, err)
}

func TestChatCompletionDoesNotRetryServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream failure","type":"server_error"}}`))
	})

	_, err := client.ChatCompletion(context.Background(), "sk-test1234567890abcdef", []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "hi"}}, domain.ChatOptions{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestChatCompletionRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	_, err := Client{}.ChatCompletion(context.Background(), "sk-test1234567890abcdef", []domain.ChatMessage{{Role: "tool", Content: "hi"}}, domain.ChatOptions{})
	require.ErrorContains(t, err, `unsupported chat role "tool"`)
}

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		want    string
		wantErr string
	}{
		{name: "adds trailing slash", base: "https://api.openai.com/v1", want: "https://api.openai.com/v1/"},
		{name: "keeps trailing slash", base: "https://api.openai.com/v1//", want: "https://api.openai.com/v1/"},
		{name: "empty base", base: "", wantErr: "base url is required"},
		{name: "bad scheme", base: "ftp://example.com", wantErr: "http or https"},
		{name: "missing host", base: "https://", wantErr: "host is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tc.base)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
