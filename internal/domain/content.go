package domain

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Flashcard struct {
	Front      string     `json:"front"`
	Back       string     `json:"back"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
}

type StudyGuideSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type StudyGuide struct {
	Title    string              `json:"title"`
	Content  string              `json:"content"`
	Sections []StudyGuideSection `json:"sections,omitempty"`
}

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionEssay          QuestionType = "essay"
)

type Question struct {
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"prompt"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer,omitempty"`
	Points        int          `json:"points,omitempty"`
}

type Test struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

type TokenUsage struct {
	PromptTokens     int64 `json:"promptTokens"`
	CompletionTokens int64 `json:"completionTokens"`
	TotalTokens      int64 `json:"totalTokens"`
}

type ChatCompletion struct {
	Content string     `json:"content"`
	Usage   TokenUsage `json:"usage"`
}

type GenerationOptions struct {
	Count      int
	Difficulty Difficulty
	FocusAreas []string
	Model      string
}

// WithDefaults fills the zero values the generators rely on.
func (o GenerationOptions) WithDefaults() GenerationOptions {
	if o.Count <= 0 {
		o.Count = 10
	}
	if o.Difficulty == "" {
		o.Difficulty = DifficultyMedium
	}
	if len(o.FocusAreas) == 0 {
		o.FocusAreas = []string{"general"}
	}

	return o
}

const DefaultChatTemperature = 0.7

type ChatOptions struct {
	// Temperature is nil when unset; zero is a valid sampling temperature.
	Temperature *float64
	MaxTokens   int
	Model       string
}

func (o ChatOptions) WithDefaults() ChatOptions {
	if o.Temperature == nil {
		temperature := DefaultChatTemperature
		o.Temperature = &temperature
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = 1000
	}

	return o
}
