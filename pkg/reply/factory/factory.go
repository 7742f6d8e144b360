package factory

import (
	"fmt"

	"hireai-be/pkg/reply"
	"hireai-be/pkg/reply/gemini"
	"hireai-be/pkg/reply/webhook"
)

func NewGenerator(providerType, webhookURL, geminiApiKey, geminiModel string) (reply.Generator, error) {
	switch providerType {
	case "webhook":
		if webhookURL == "" {
			return nil, fmt.Errorf("webhook provider requires AI_WEBHOOK_URL")
		}
		return webhook.NewClient(webhookURL), nil
	case "gemini":
		if geminiApiKey == "" {
			return nil, fmt.Errorf("gemini provider requires GOOGLE_GEMINI_API_KEY")
		}
		if geminiModel == "" {
			geminiModel = "gemini-1.5-flash" // Default
		}
		return gemini.NewProvider(geminiApiKey, geminiModel), nil
	default:
		return nil, fmt.Errorf("unsupported reply provider: %s", providerType)
	}
}
