package genai

import (
	"context"
	"io"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ykhadiri/alkimiya/internal/elements"
)

// OpenAIClient implements Generator using the OpenAI Chat Completions and
// Speech APIs. Speech responses are requested as raw PCM, which OpenAI
// produces as 24 kHz single-channel 16-bit samples.
type OpenAIClient struct {
	client   *openai.Client
	model    string
	ttsModel string
	voice    openai.SpeechVoice
	onUsage  UsageFunc
}

// NewOpenAIClient creates a new OpenAI-backed generator.
func NewOpenAIClient(apiKey string, opts Options) *OpenAIClient {
	voice := openai.SpeechVoice(opts.Voice)
	if voice == "" {
		voice = openai.VoiceAlloy
	}
	return &OpenAIClient{
		client:   openai.NewClient(apiKey),
		model:    opts.Model,
		ttsModel: opts.TTSModel,
		voice:    voice,
		onUsage:  opts.OnUsage,
	}
}

func (c *OpenAIClient) Name() string { return "openai" }

func (c *OpenAIClient) record(u Usage) {
	if c.onUsage != nil {
		c.onUsage(u)
	}
}

// completeJSON runs a single-turn chat completion in JSON mode.
func (c *OpenAIClient) completeJSON(ctx context.Context, op Op, prompt string) ([]byte, error) {
	apiReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a chemistry assistant. Always answer with a single JSON object using exactly the keys the user requests, and no other text.",
			},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.4,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		c.record(Usage{Provider: c.Name(), Model: c.model, Op: op, Duration: time.Since(start), Failed: true})
		return nil, upstream(c.Name(), op, "request failed", err)
	}

	c.record(Usage{
		Provider:     c.Name(),
		Model:        c.model,
		Op:           op,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Duration:     time.Since(start),
	})

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, upstream(c.Name(), op, "empty response", nil)
	}
	return []byte(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) ElementDetails(ctx context.Context, el elements.Element) (*ElementDetails, error) {
	raw, err := c.completeJSON(ctx, OpDetails, detailsPrompt(el))
	if err != nil {
		return nil, err
	}
	return parseElementDetails(c.Name(), raw)
}

func (c *OpenAIClient) Speech(ctx context.Context, text string, lang elements.Lang) ([]byte, error) {
	start := time.Now()
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(c.ttsModel),
		Input:          text,
		Voice:          c.voice,
		ResponseFormat: openai.SpeechResponseFormatPcm,
	})
	if err != nil {
		c.record(Usage{Provider: c.Name(), Model: c.ttsModel, Op: OpSpeech, Characters: len(text), Duration: time.Since(start), Failed: true})
		return nil, upstream(c.Name(), OpSpeech, "request failed", err)
	}
	defer resp.Close()

	pcm, err := io.ReadAll(resp)
	if err != nil {
		c.record(Usage{Provider: c.Name(), Model: c.ttsModel, Op: OpSpeech, Characters: len(text), Duration: time.Since(start), Failed: true})
		return nil, upstream(c.Name(), OpSpeech, "reading audio payload", err)
	}
	if len(pcm) == 0 {
		c.record(Usage{Provider: c.Name(), Model: c.ttsModel, Op: OpSpeech, Characters: len(text), Duration: time.Since(start), Failed: true})
		return nil, upstream(c.Name(), OpSpeech, "missing audio payload", nil)
	}

	c.record(Usage{Provider: c.Name(), Model: c.ttsModel, Op: OpSpeech, Characters: len(text), Duration: time.Since(start)})
	return pcm, nil
}

func (c *OpenAIClient) Combine(ctx context.Context, els []elements.Element) (*Compound, error) {
	raw, err := c.completeJSON(ctx, OpMix, mixPrompt(els))
	if err != nil {
		return nil, err
	}
	return parseCompound(c.Name(), raw)
}
