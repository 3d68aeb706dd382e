package controller

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Kalashsatyapal/ChatNova/internal/infrastructure/realtime"
)

// ChatSocketController handles the websocket endpoint for realtime chat
// traffic: joining chat rooms and relaying user messages to other members.
// The channel carries no credentials; anyone may join any room. Plug a
// proper checker when auth is added.
type ChatSocketController struct {
	hub *realtime.Hub
}

func NewChatSocketController(hub *realtime.Hub) *ChatSocketController {
	return &ChatSocketController{hub: hub}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type inboundFrame struct {
	Type        string `json:"type"`
	ChatID      string `json:"chat_id,omitempty"`
	UserMessage string `json:"user_message,omitempty"`
}

type ackFrame struct {
	Type   string `json:"type"`
	ChatID string `json:"chat_id,omitempty"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

const defaultReadTimeout = 60 * time.Second

// Handle upgrades HTTP connections to websocket and processes frames until
// the client disconnects. Teardown runs exactly once per connection, ungraceful
// closes included: the deferred Detach clears every room membership.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; just log and return.
			slog.Debug("websocket upgrade failed", "err", err)
			return
		}

		conn := realtime.NewConnection(ws)
		conn.Start()
		ctl.hub.Attach(conn)
		defer func() {
			ctl.hub.Detach(conn.ID())
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 20) // 1MB payload cap
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		if payload, err := json.Marshal(ackFrame{Type: "connected"}); err == nil {
			_ = conn.Send(payload)
		}

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
					errors.Is(err, websocket.ErrCloseSent) {
					return
				}
				ctl.replyError(conn, "read_error", err.Error())
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "bad_request", "invalid payload")
				continue
			}

			switch frame.Type {
			case "join_chat":
				ctl.handleJoin(conn, frame)
			case "leave_chat":
				ctl.handleLeave(conn, frame)
			case "send_message":
				ctl.handleSendMessage(conn, frame)
			default:
				ctl.replyError(conn, "unsupported_type", "unknown frame type")
			}
		}
	}
}

func (ctl *ChatSocketController) handleJoin(conn *realtime.Connection, frame inboundFrame) {
	if frame.ChatID == "" {
		ctl.replyError(conn, "bad_request", "chat_id is required")
		return
	}

	ctl.hub.Join(frame.ChatID, conn.ID())

	if payload, err := json.Marshal(ackFrame{Type: "joined", ChatID: frame.ChatID}); err == nil {
		_ = conn.Send(payload)
	}
}

func (ctl *ChatSocketController) handleLeave(conn *realtime.Connection, frame inboundFrame) {
	if frame.ChatID == "" {
		ctl.replyError(conn, "bad_request", "chat_id is required")
		return
	}
	ctl.hub.Leave(frame.ChatID, conn.ID())

	if payload, err := json.Marshal(ackFrame{Type: "left", ChatID: frame.ChatID}); err == nil {
		_ = conn.Send(payload)
	}
}

// handleSendMessage relays a member's message to the rest of the room. The
// sender is excluded: its client already rendered the message locally. No
// persistence happens here; durable turns go through the HTTP chat
// endpoint.
func (ctl *ChatSocketController) handleSendMessage(conn *realtime.Connection, frame inboundFrame) {
	if frame.ChatID == "" {
		ctl.replyError(conn, "bad_request", "chat_id is required")
		return
	}

	payload, err := realtime.UserMessage(frame.UserMessage).Encode()
	if err != nil {
		ctl.replyError(conn, "internal_error", "failed to encode message")
		return
	}

	ctl.hub.Broadcast(frame.ChatID, payload, conn.ID())
}

func (ctl *ChatSocketController) replyError(conn *realtime.Connection, code string, message string) {
	frame := errorFrame{
		Type:  "error",
		Code:  code,
		Error: message,
	}
	if payload, err := json.Marshal(frame); err == nil {
		_ = conn.Send(payload)
	}
}
