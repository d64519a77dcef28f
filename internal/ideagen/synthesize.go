package ideagen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// LLMCaller is one round trip to a chat-completion provider. Implementations
// return the raw text content; non-2xx upstream answers surface as
// *UpstreamError so the boundary can report status and body.
type LLMCaller interface {
	Complete(ctx context.Context, system, user string) (string, error)
	ModelName() string
}

type OpenAIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	HTTPClient  *http.Client
}

// OpenAICaller talks to an OpenAI-compatible chat-completions endpoint over
// plain HTTP.
type OpenAICaller struct {
	cfg OpenAIConfig
}

func NewOpenAICaller(cfg OpenAIConfig) *OpenAICaller {
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenAIURL
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &OpenAICaller{cfg: cfg}
}

func (c *OpenAICaller) ModelName() string { return c.cfg.Model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *OpenAICaller) Complete(ctx context.Context, system, user string) (string, error) {
	payload, _ := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<20))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &UpstreamError{Status: res.StatusCode, Details: string(b)}
	}

	// An undecodable 2xx body degrades to empty content, which the
	// synthesizer reports as ErrEmptyCompletion.
	var parsed chatResponse
	_ = json.Unmarshal(b, &parsed)
	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}

type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// AnthropicCaller is the alternate provider, used when only an Anthropic
// credential is configured.
type AnthropicCaller struct {
	messages AnthropicMessager
	model    string
}

func NewAnthropicCaller(apiKey, model string) *AnthropicCaller {
	if model == "" {
		model = DefaultAnthropicModel
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicCaller{messages: &client.Messages, model: model}
}

func (c *AnthropicCaller) ModelName() string { return c.model }

func (c *AnthropicCaller) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   2048,
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(user))},
		Temperature: anthropic.Float(DefaultTemperature),
	})
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			return "", &UpstreamError{Status: apierr.StatusCode, Details: apierr.Error()}
		}
		return "", err
	}
	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

// Synthesizer runs one LLM-backed synthesis: prompt, bounded call, response
// recovery, coercion. It holds no per-request state.
type Synthesizer struct {
	caller  LLMCaller
	timeout time.Duration
}

func NewSynthesizer(caller LLMCaller) *Synthesizer {
	return &Synthesizer{caller: caller, timeout: SynthesisTimeout}
}

// Synthesize asks the model for one idea. fetched is the trend list gathered
// by this request; it backs the response when the model supplies no valid
// trends of its own. Failures are surfaced, never silently replaced: the idea
// is the core deliverable.
func (s *Synthesizer) Synthesize(ctx context.Context, answers Answers, fetched []TrendItem) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	system, user := BuildPrompt(answers, fetched)
	raw, err := s.caller.Complete(ctx, system, user)
	if err != nil {
		return Result{}, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{}, ErrEmptyCompletion
	}

	parsed, ok := parseLooseJSON(raw)
	if !ok {
		return Result{}, &ParseError{Raw: raw}
	}

	trends := CoerceTrends(parsed["trends"])
	if len(trends) == 0 {
		trends = fetched
	}
	return Result{
		BusinessIdea: CoerceBusinessIdea(parsed["businessIdea"]),
		Trends:       trends,
	}, nil
}
