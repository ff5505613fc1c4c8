package server

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/toastd/toastd/expire"
	"github.com/toastd/toastd/toast"
)

// Incoming is a notice accepted from a remote sender, ready for the TUI to
// push onto its toast stack. A zero TTL means "use the configured default".
type Incoming struct {
	Notice toast.Notice
	TTL    expire.Seconds
}

type clientMessage struct {
	client  *Client
	message Message
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan clientMessage
	seq        int64

	// Notices receives accepted notices; the TUI drains it.
	Notices chan Incoming
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan clientMessage, 256),
		Notices:    make(chan Incoming, 64),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			close(h.Notices)
			return

		case client := <-h.register:
			h.clients[client] = true
			log.Printf("sender connected: %s (%d total)", client.remoteAddr, len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("sender disconnected: %s (%d remaining)", client.remoteAddr, len(h.clients))
			}

		case cm := <-h.incoming:
			h.handleMessage(cm)
		}
	}
}

func (h *Hub) handleMessage(cm clientMessage) {
	msg := cm.message

	switch msg.Type {
	case MsgNoticePush:
		var p NoticePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			h.sendReject(cm.client, "malformed payload")
			return
		}
		if p.Text == "" {
			h.sendReject(cm.client, "empty text")
			return
		}
		level, err := toast.ParseLevel(p.Level)
		if err != nil {
			h.sendReject(cm.client, err.Error())
			return
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}

		in := Incoming{
			Notice: toast.Notice{ID: p.ID, Level: level, Text: p.Text},
			TTL:    expire.Seconds(p.TTLSeconds),
		}
		select {
		case h.Notices <- in:
		default:
			log.Printf("notice buffer full, dropping %s", p.ID)
			h.sendReject(cm.client, "receiver overloaded")
			return
		}

		h.seq++
		h.sendAck(cm.client, p.ID)

	case MsgPing:
		pong, _ := json.Marshal(Message{Type: MsgPong, Sender: "server", Seq: h.seq})
		cm.client.send <- pong
	}
}

func (h *Hub) sendAck(client *Client, id string) {
	msg, err := NewMessage(MsgNoticeAck, "server", AckPayload{ID: id})
	if err != nil {
		log.Printf("failed to create ack: %v", err)
		return
	}
	msg.Seq = h.seq
	h.trySend(client, msg)
}

func (h *Hub) sendReject(client *Client, reason string) {
	msg, err := NewMessage(MsgReject, "server", RejectPayload{Reason: reason})
	if err != nil {
		log.Printf("failed to create reject: %v", err)
		return
	}
	msg.Seq = h.seq
	h.trySend(client, msg)
}

func (h *Hub) trySend(client *Client, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("failed to marshal %s: %v", msg.Type, err)
		return
	}
	select {
	case client.send <- data:
	default:
		close(client.send)
		delete(h.clients, client)
	}
}

// rejectData builds a serialized reject envelope for paths that bypass the
// hub loop, such as the read pump's rate limiter.
func rejectData(reason string) []byte {
	msg, err := NewMessage(MsgReject, "server", RejectPayload{Reason: reason})
	if err != nil {
		return nil
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return nil
	}
	return data
}
