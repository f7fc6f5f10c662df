package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ykhadiri/alkimiya/internal/elements"
)

const googleAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GoogleClient implements Generator using the Google Gemini API via direct HTTP.
type GoogleClient struct {
	apiKey   string
	model    string
	ttsModel string
	voices   map[elements.Lang]string
	baseURL  string
	client   *http.Client
	onUsage  UsageFunc
}

// NewGoogleClient creates a new Gemini-backed generator.
func NewGoogleClient(apiKey string, opts Options) *GoogleClient {
	return &GoogleClient{
		apiKey:   apiKey,
		model:    opts.Model,
		ttsModel: opts.TTSModel,
		voices: map[elements.Lang]string{
			elements.LangFr: opts.VoiceFr,
			elements.LangAr: opts.VoiceAr,
		},
		baseURL: googleAPIBaseURL,
		client:  &http.Client{},
		onUsage: opts.OnUsage,
	}
}

func (c *GoogleClient) Name() string { return "google" }

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature        float64            `json:"temperature"`
	ResponseMIMEType   string             `json:"responseMimeType,omitempty"`
	ResponseSchema     json.RawMessage    `json:"responseSchema,omitempty"`
	ResponseModalities []string           `json:"responseModalities,omitempty"`
	SpeechConfig       *geminiSpeechConfig `json:"speechConfig,omitempty"`
}

type geminiSpeechConfig struct {
	VoiceConfig geminiVoiceConfig `json:"voiceConfig"`
}

type geminiVoiceConfig struct {
	PrebuiltVoiceConfig geminiPrebuiltVoice `json:"prebuiltVoiceConfig"`
}

type geminiPrebuiltVoice struct {
	VoiceName string `json:"voiceName"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate    `json:"candidates"`
	UsageMetadata *geminiUsageMetadata `json:"usageMetadata"`
	Error         *geminiError         `json:"error,omitempty"`
}

type geminiCandidate struct {
	Content      *geminiContent `json:"content"`
	FinishReason string         `json:"finishReason"`
}

type geminiUsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// generate posts a generateContent request to the given model and returns the
// parsed response. Transport and API-level failures are UpstreamErrors.
func (c *GoogleClient) generate(ctx context.Context, op Op, model string, apiReq geminiRequest) (*geminiResponse, error) {
	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("marshalling gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, upstream(c.Name(), op, "request failed", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, upstream(c.Name(), op, "reading response", err)
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, upstream(c.Name(), op, "unmarshalling response", err)
	}

	if apiResp.Error != nil {
		return nil, upstream(c.Name(), op, fmt.Sprintf("API error (%s): %s", apiResp.Error.Status, apiResp.Error.Message), nil)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, upstream(c.Name(), op, fmt.Sprintf("status %d", httpResp.StatusCode), nil)
	}

	return &apiResp, nil
}

// candidateText concatenates the text parts of the first candidate.
func candidateText(resp *geminiResponse) string {
	var content string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			content += part.Text
		}
	}
	return content
}

func (c *GoogleClient) record(op Op, resp *geminiResponse, chars int, start time.Time, failed bool) {
	if c.onUsage == nil {
		return
	}
	u := Usage{
		Provider:   c.Name(),
		Model:      c.model,
		Op:         op,
		Characters: chars,
		Duration:   time.Since(start),
		Failed:     failed,
	}
	if op == OpSpeech {
		u.Model = c.ttsModel
	}
	if resp != nil && resp.UsageMetadata != nil {
		u.InputTokens = resp.UsageMetadata.PromptTokenCount
		u.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
	}
	c.onUsage(u)
}

func (c *GoogleClient) ElementDetails(ctx context.Context, el elements.Element) (*ElementDetails, error) {
	apiReq := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: detailsPrompt(el)}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      0.4,
			ResponseMIMEType: "application/json",
			ResponseSchema:   json.RawMessage(detailsSchema),
		},
	}

	start := time.Now()
	resp, err := c.generate(ctx, OpDetails, c.model, apiReq)
	if err != nil {
		c.record(OpDetails, nil, 0, start, true)
		return nil, err
	}

	text := candidateText(resp)
	if text == "" {
		c.record(OpDetails, resp, 0, start, true)
		return nil, upstream(c.Name(), OpDetails, "empty response", nil)
	}

	details, err := parseElementDetails(c.Name(), []byte(text))
	c.record(OpDetails, resp, 0, start, err != nil)
	return details, err
}

func (c *GoogleClient) Speech(ctx context.Context, text string, lang elements.Lang) ([]byte, error) {
	voice := c.voices[lang]
	apiReq := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: text}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &geminiSpeechConfig{
				VoiceConfig: geminiVoiceConfig{
					PrebuiltVoiceConfig: geminiPrebuiltVoice{VoiceName: voice},
				},
			},
		},
	}

	start := time.Now()
	resp, err := c.generate(ctx, OpSpeech, c.ttsModel, apiReq)
	if err != nil {
		c.record(OpSpeech, nil, len(text), start, true)
		return nil, err
	}

	var encoded string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				encoded = part.InlineData.Data
				break
			}
		}
	}
	if encoded == "" {
		c.record(OpSpeech, resp, len(text), start, true)
		return nil, upstream(c.Name(), OpSpeech, "missing audio payload", nil)
	}

	pcm, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		c.record(OpSpeech, resp, len(text), start, true)
		return nil, upstream(c.Name(), OpSpeech, "invalid audio payload", err)
	}

	c.record(OpSpeech, resp, len(text), start, false)
	return pcm, nil
}

func (c *GoogleClient) Combine(ctx context.Context, els []elements.Element) (*Compound, error) {
	apiReq := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: mixPrompt(els)}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      0.4,
			ResponseMIMEType: "application/json",
			ResponseSchema:   json.RawMessage(compoundSchema),
		},
	}

	start := time.Now()
	resp, err := c.generate(ctx, OpMix, c.model, apiReq)
	if err != nil {
		c.record(OpMix, nil, 0, start, true)
		return nil, err
	}

	text := candidateText(resp)
	if text == "" {
		c.record(OpMix, resp, 0, start, true)
		return nil, upstream(c.Name(), OpMix, "empty response", nil)
	}

	compound, err := parseCompound(c.Name(), []byte(text))
	c.record(OpMix, resp, 0, start, err != nil)
	return compound, err
}
