package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hireai-be/internal/constant"
	"hireai-be/pkg/reply"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1"

// Provider calls the Gemini generateContent API directly instead of going
// through a workflow webhook.
type Provider struct {
	BaseURL    string
	ApiKey     string
	ModelName  string
	HttpClient *http.Client
}

var _ reply.Generator = &Provider{}

func NewProvider(apiKey, modelName string) *Provider {
	return &Provider{
		BaseURL:   defaultBaseURL,
		ApiKey:    apiKey,
		ModelName: modelName,
		HttpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type geminiChatParts struct {
	Text string `json:"text"`
}

type geminiChatContent struct {
	Parts []*geminiChatParts `json:"parts"`
	Role  string             `json:"role"`
}

type geminiChatRequest struct {
	Contents []*geminiChatContent `json:"contents"`
}

type geminiChatCandidate struct {
	Content *geminiChatContent `json:"content"`
}

type geminiChatResponse struct {
	Candidates []*geminiChatCandidate `json:"candidates"`
}

// --- Interface Implementation ---

func (p *Provider) GenerateReply(ctx context.Context, req *reply.Request) (string, error) {
	// Gemini speaks user/model roles; the prompt itself goes last as a user turn.
	contents := make([]*geminiChatContent, 0, len(req.History)+1)
	for _, turn := range req.History {
		role := constant.GeminiRoleModel
		if turn.Sender == constant.MessageSenderUser {
			role = constant.GeminiRoleUser
		}
		contents = append(contents, &geminiChatContent{
			Parts: []*geminiChatParts{{Text: turn.Text}},
			Role:  role,
		})
	}
	contents = append(contents, &geminiChatContent{
		Parts: []*geminiChatParts{{Text: req.Prompt}},
		Role:  constant.GeminiRoleUser,
	})

	payload := geminiChatRequest{Contents: contents}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.BaseURL, p.ModelName)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	httpReq.Header.Set("x-goog-api-key", p.ApiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := p.HttpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiChatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response contains no candidates")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}
