package realtime

import "encoding/json"

// Event names on the realtime channel.
const (
	EventReceiveMessage = "receive_message"
)

// Message roles carried by chat events.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is the transient payload broadcast through a room. It is not
// persisted here; persistence happens independently in the chat handler.
type ChatMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UserMessage builds the event relayed when a member submits a message.
func UserMessage(content string) ChatMessage {
	return ChatMessage{Type: EventReceiveMessage, Role: RoleUser, Content: content}
}

// AssistantMessage builds the event published after a completed chat turn.
func AssistantMessage(content string) ChatMessage {
	return ChatMessage{Type: EventReceiveMessage, Role: RoleAssistant, Content: content}
}

// Encode renders the event as a websocket text payload.
func (m ChatMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}
