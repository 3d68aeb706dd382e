package realtime

import (
	"sync"
	"testing"
)

// fakeSession records delivered payloads in place of a websocket.
type fakeSession struct {
	id string

	mu       sync.Mutex
	payloads [][]byte
	closed   bool
	sendErr  error
}

func newFakeSession(id string) *fakeSession {
	return &fakeSession{id: id}
}

func (f *fakeSession) ID() string { return f.id }

func (f *fakeSession) Send(payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakeSession) Close(code int, reason string) {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *fakeSession) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payloads)
}

func TestBroadcastReachesAllMembers(t *testing.T) {
	h := NewHub()
	a := newFakeSession("a")
	b := newFakeSession("b")
	h.Attach(a)
	h.Attach(b)
	h.Join("room-1", "a")
	h.Join("room-1", "b")

	delivered := h.Broadcast("room-1", []byte("hello"), "")

	if delivered != 2 {
		t.Fatalf("delivered = %d, want 2", delivered)
	}
	if a.received() != 1 || b.received() != 1 {
		t.Fatalf("a=%d b=%d payloads, want 1 each", a.received(), b.received())
	}
}

func TestBroadcastExcludesSender(t *testing.T) {
	h := NewHub()
	a := newFakeSession("a")
	b := newFakeSession("b")
	h.Attach(a)
	h.Attach(b)
	h.Join("room-1", "a")
	h.Join("room-1", "b")

	delivered := h.Broadcast("room-1", []byte("hi"), "a")

	if delivered != 1 {
		t.Fatalf("delivered = %d, want 1", delivered)
	}
	if a.received() != 0 {
		t.Fatalf("sender received its own message")
	}
	if b.received() != 1 {
		t.Fatalf("peer did not receive the message")
	}
}

func TestDetachRemovesAllMemberships(t *testing.T) {
	h := NewHub()
	a := newFakeSession("a")
	b := newFakeSession("b")
	h.Attach(a)
	h.Attach(b)
	h.Join("room-1", "a")
	h.Join("room-2", "a")
	h.Join("room-1", "b")

	h.Detach("a")

	h.Broadcast("room-1", []byte("x"), "")
	h.Broadcast("room-2", []byte("y"), "")

	if a.received() != 0 {
		t.Fatalf("detached session still receives broadcasts")
	}
	if b.received() != 1 {
		t.Fatalf("remaining member missed the broadcast")
	}
	if h.RoomSize("room-2") != 0 {
		t.Fatalf("room-2 should be gone once its last member left")
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	h := NewHub()
	a := newFakeSession("a")
	h.Attach(a)
	h.Join("room-1", "a")
	h.Join("room-1", "a")

	if got := h.RoomSize("room-1"); got != 1 {
		t.Fatalf("RoomSize = %d, want 1", got)
	}
	if delivered := h.Broadcast("room-1", []byte("x"), ""); delivered != 1 {
		t.Fatalf("delivered = %d, want 1", delivered)
	}
}

func TestJoinUnknownSessionIsNoop(t *testing.T) {
	h := NewHub()
	h.Join("room-1", "ghost")

	if got := h.RoomSize("room-1"); got != 0 {
		t.Fatalf("RoomSize = %d, want 0", got)
	}
}

func TestBroadcastToEmptyRoomIsNoop(t *testing.T) {
	h := NewHub()
	if delivered := h.Broadcast("nobody-here", []byte("x"), ""); delivered != 0 {
		t.Fatalf("delivered = %d, want 0", delivered)
	}
}

func TestSendFailureDropsOnlyThatRecipient(t *testing.T) {
	h := NewHub()
	a := newFakeSession("a")
	b := newFakeSession("b")
	a.sendErr = errFake
	h.Attach(a)
	h.Attach(b)
	h.Join("room-1", "a")
	h.Join("room-1", "b")

	if delivered := h.Broadcast("room-1", []byte("x"), ""); delivered != 1 {
		t.Fatalf("delivered = %d, want 1", delivered)
	}
	if b.received() != 1 {
		t.Fatalf("healthy member missed the broadcast")
	}
}

func TestCloseDropsAllSessions(t *testing.T) {
	h := NewHub()
	a := newFakeSession("a")
	h.Attach(a)
	h.Join("room-1", "a")

	h.Close()

	if !a.closed {
		t.Fatalf("session not closed on hub shutdown")
	}
	if delivered := h.Broadcast("room-1", []byte("x"), ""); delivered != 0 {
		t.Fatalf("broadcast after Close delivered %d, want 0", delivered)
	}
}

func TestConcurrentJoinLeaveBroadcast(t *testing.T) {
	h := NewHub()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		s := newFakeSession(string(rune('a' + i)))
		h.Attach(s)
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Join("room-1", id)
				h.Broadcast("room-1", []byte("x"), id)
				h.Leave("room-1", id)
			}
			h.Detach(id)
		}(s.ID())
	}
	wg.Wait()

	if got := h.RoomSize("room-1"); got != 0 {
		t.Fatalf("RoomSize after teardown = %d, want 0", got)
	}
}

var errFake = &fakeSendError{}

type fakeSendError struct{}

func (*fakeSendError) Error() string { return "send failed" }
