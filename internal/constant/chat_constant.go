package constant

// Sender values persisted on a message row.
const (
	MessageSenderUser = "user"
	MessageSenderBot  = "bot"
)

// History entry types expected by the workflow webhook.
const (
	WebhookHistoryTypeHuman = "human"
	WebhookHistoryTypeAI    = "ai"
)

// Role vocabulary of the Gemini generateContent API.
const (
	GeminiRoleUser  = "user"
	GeminiRoleModel = "model"
)
