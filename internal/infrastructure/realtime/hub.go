package realtime

import (
	"sync"
)

// Hub is the room-membership registry: it maps chat identifiers to the set
// of sessions currently joined to them and fans messages out to members.
// Rooms exist implicitly: a room springs into existence on first join and
// is garbage once its last member leaves. Nothing here is persisted; all
// membership is lost on restart.
type Hub struct {
	mu           sync.RWMutex
	sessions     map[string]Session            // sessionID -> session
	rooms        map[string]map[string]Session // chatID -> sessionID -> session
	sessionRooms map[string]map[string]struct{} // sessionID -> set of chatIDs
}

// NewHub constructs an initialized Hub.
func NewHub() *Hub {
	return &Hub{
		sessions:     make(map[string]Session),
		rooms:        make(map[string]map[string]Session),
		sessionRooms: make(map[string]map[string]struct{}),
	}
}

// Attach registers a session with an empty membership set. It always
// succeeds; the channel is unauthenticated and a user may hold several
// sessions at once (multiple tabs).
func (h *Hub) Attach(s Session) {
	h.mu.Lock()
	h.sessions[s.ID()] = s
	h.sessionRooms[s.ID()] = make(map[string]struct{})
	h.mu.Unlock()
}

// Detach removes the session from every room it joined and forgets it.
// Safe to call for sessions the hub never saw or already dropped.
func (h *Hub) Detach(sessionID string) {
	h.mu.Lock()
	h.detachLocked(sessionID)
	h.mu.Unlock()
}

// Join adds the session to the named room. Idempotent: joining twice has no
// additional effect. A session unknown to the hub (disconnect race) is a
// silent no-op.
func (h *Hub) Join(chatID string, sessionID string) {
	if chatID == "" {
		return
	}
	h.mu.Lock()
	s, ok := h.sessions[sessionID]
	if !ok {
		h.mu.Unlock()
		return
	}

	room := h.rooms[chatID]
	if room == nil {
		room = make(map[string]Session)
		h.rooms[chatID] = room
	}
	room[sessionID] = s

	memberships := h.sessionRooms[sessionID]
	if memberships == nil {
		memberships = make(map[string]struct{})
		h.sessionRooms[sessionID] = memberships
	}
	memberships[chatID] = struct{}{}
	h.mu.Unlock()
}

// Leave removes the session from the named room.
func (h *Hub) Leave(chatID string, sessionID string) {
	h.mu.Lock()
	h.leaveLocked(chatID, sessionID)
	h.mu.Unlock()
}

// Broadcast delivers payload to every member of the room, skipping
// excludeSessionID when non-empty. Delivery is fire-and-forget per
// recipient: a send failure drops that recipient's copy, never the
// broadcast. An unknown or empty room is a no-op. Returns the number of
// sessions the payload was handed to.
func (h *Hub) Broadcast(chatID string, payload []byte, excludeSessionID string) int {
	h.mu.RLock()
	room := h.rooms[chatID]
	if len(room) == 0 {
		h.mu.RUnlock()
		return 0
	}

	delivered := 0
	for id, s := range room {
		if excludeSessionID != "" && id == excludeSessionID {
			continue
		}
		if err := s.Send(payload); err == nil {
			delivered++
		}
	}
	h.mu.RUnlock()
	return delivered
}

// RoomSize reports the current member count of a room; zero for rooms that
// do not exist.
func (h *Hub) RoomSize(chatID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[chatID])
}

// Close terminates all tracked sessions and clears hub state.
func (h *Hub) Close() {
	h.mu.Lock()
	sessions := make([]Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.sessions = make(map[string]Session)
	h.rooms = make(map[string]map[string]Session)
	h.sessionRooms = make(map[string]map[string]struct{})
	h.mu.Unlock()

	for _, s := range sessions {
		s.Close(1001, "hub shutdown")
	}
}

func (h *Hub) detachLocked(sessionID string) {
	if _, ok := h.sessions[sessionID]; !ok {
		return
	}
	delete(h.sessions, sessionID)

	for chatID := range h.sessionRooms[sessionID] {
		h.leaveLocked(chatID, sessionID)
	}
	delete(h.sessionRooms, sessionID)
}

func (h *Hub) leaveLocked(chatID string, sessionID string) {
	if sessionID == "" {
		return
	}
	room := h.rooms[chatID]
	if room == nil {
		return
	}
	delete(room, sessionID)
	if len(room) == 0 {
		delete(h.rooms, chatID)
	}
	if memberships, ok := h.sessionRooms[sessionID]; ok {
		delete(memberships, chatID)
	}
}
