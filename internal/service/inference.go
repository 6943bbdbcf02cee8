package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pcoshealth/pcos-assistant/backend/config"
)

// Generation parameters sent with every text-generation request. One call
// per request, no retries.
const (
	maxNewTokens = 1200
	temperature  = 0.7
	topP         = 0.9
)

// InferenceClient talks to the Hugging Face Inference API. It implements
// both TextGenerator and QuestionAnswerer.
type InferenceClient struct {
	apiToken      string
	baseURL       string
	textModel     string
	questionModel string
	client        *http.Client
}

// NewInferenceClient creates a client from configuration. The token may be
// empty; the upstream will then reject calls and callers degrade to their
// fallback paths.
func NewInferenceClient(cfg *config.Config) *InferenceClient {
	return &InferenceClient{
		apiToken:      cfg.HFAPIToken,
		baseURL:       cfg.HFAPIURL,
		textModel:     cfg.HFTextModel,
		questionModel: cfg.HFQuestionModel,
		client:        &http.Client{Timeout: 60 * time.Second},
	}
}

type generationParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

type textGenerationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type questionAnsweringRequest struct {
	Inputs struct {
		Question string `json:"question"`
		Context  string `json:"context"`
	} `json:"inputs"`
}

// GenerateText sends a prompt to the text-generation model and returns the
// first generation's text.
func (c *InferenceClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	reqBody := textGenerationRequest{
		Inputs: prompt,
		Parameters: generationParameters{
			MaxNewTokens:   maxNewTokens,
			Temperature:    temperature,
			TopP:           topP,
			DoSample:       true,
			ReturnFullText: false,
		},
	}

	body, err := c.query(ctx, c.textModel, reqBody)
	if err != nil {
		return "", err
	}

	var generations []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(body, &generations); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}
	if len(generations) == 0 {
		return "", fmt.Errorf("no generations in response")
	}

	return generations[0].GeneratedText, nil
}

// AnswerQuestion runs the question-answering model against the given
// knowledge context.
func (c *InferenceClient) AnswerQuestion(ctx context.Context, question, knowledge string) (string, error) {
	var reqBody questionAnsweringRequest
	reqBody.Inputs.Question = question
	reqBody.Inputs.Context = knowledge

	body, err := c.query(ctx, c.questionModel, reqBody)
	if err != nil {
		return "", err
	}

	var answer struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(body, &answer); err != nil {
		return "", fmt.Errorf("failed to decode answer response: %w", err)
	}
	if answer.Answer == "" {
		return "", fmt.Errorf("no answer in response")
	}

	return answer.Answer, nil
}

// query posts a payload to a model endpoint and returns the raw body. Any
// non-2xx status or an error-shaped body is returned as an error.
func (c *InferenceClient) query(ctx context.Context, model string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference request failed with status %d: %s", resp.StatusCode, string(body))
	}

	// The API reports model errors with a 200 and an error body.
	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return nil, fmt.Errorf("inference error: %s", apiErr.Error)
	}

	return body, nil
}
