package webhook

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

// Client forwards prompts to a workflow-automation webhook (e.g. an n8n AI
// agent) and expects a {"reply": "..."} body back.
type Client struct {
	WebhookURL string
	HttpClient *http.Client
}

var _ reply.Generator = &Client{}

func NewClient(webhookURL string) *Client {
	return &Client{
		WebhookURL: webhookURL,
		HttpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type webhookHistoryData struct {
	Content string `json:"content"`
}

type webhookHistoryEntry struct {
	Type string             `json:"type"`
	Data webhookHistoryData `json:"data"`
}

type webhookRequest struct {
	Prompt    string                `json:"prompt"`
	ChatId    string                `json:"chatId"`
	UserId    string                `json:"userId"`
	History   []webhookHistoryEntry `json:"history"`
	IpAddress string                `json:"ipAddress"`
}

type webhookResponse struct {
	Reply string `json:"reply"`
}

// --- Interface Implementation ---

func (c *Client) GenerateReply(ctx context.Context, req *reply.Request) (string, error) {
	// The agent's memory nodes expect human/ai typed history entries, not the
	// internal user/bot senders.
	history := make([]webhookHistoryEntry, len(req.History))
	for i, turn := range req.History {
		entryType := constant.WebhookHistoryTypeAI
		if turn.Sender == constant.MessageSenderUser {
			entryType = constant.WebhookHistoryTypeHuman
		}
		history[i] = webhookHistoryEntry{
			Type: entryType,
			Data: webhookHistoryData{Content: turn.Text},
		}
	}

	payload := webhookRequest{
		Prompt:    req.Prompt,
		ChatId:    req.ChatId,
		UserId:    req.UserId,
		History:   history,
		IpAddress: req.IpAddress,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.WebhookURL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.HttpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("webhook request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("webhook failed with status %d: %s", res.StatusCode, string(resBody))
	}

	var webhookRes webhookResponse
	if err := json.Unmarshal(resBody, &webhookRes); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if webhookRes.Reply == "" {
		return "", fmt.Errorf("invalid response format from webhook, expected a 'reply' key")
	}

	return webhookRes.Reply, nil
}
