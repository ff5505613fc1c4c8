package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const ackWait = 5 * time.Second

// Send dials a running toastd instance, pushes a single notice, and waits
// for the acknowledgement.
func Send(ctx context.Context, addr string, p NoticePayload) error {
	url := addr
	if !strings.Contains(url, "://") {
		url = fmt.Sprintf("ws://%s/ws", addr)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", addr, err)
	}
	defer conn.Close()

	msg, err := NewMessage(MsgNoticePush, "toastd-send", p)
	if err != nil {
		return fmt.Errorf("building message: %w", err)
	}
	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("sending notice: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(ackWait))
	var reply Message
	if err := conn.ReadJSON(&reply); err != nil {
		return fmt.Errorf("waiting for ack: %w", err)
	}

	switch reply.Type {
	case MsgNoticeAck:
		return nil
	case MsgReject:
		var r RejectPayload
		if err := json.Unmarshal(reply.Payload, &r); err != nil {
			return fmt.Errorf("notice rejected")
		}
		return fmt.Errorf("notice rejected: %s", r.Reason)
	default:
		return fmt.Errorf("unexpected reply %q", reply.Type)
	}
}
