package chat

const (
	ChatRoleUser   = "user"
	ChatRoleAgent  = "assistant" // the storyteller
	ChatRoleSystem = "system"
)

// ChatMessage is a single message in a model conversation. The role names
// follow the convention shared by the Anthropic and OpenAI-style APIs.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// ChatResponse is the model's reply to a prompt.
type ChatResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
