package server

import (
	"encoding/json"
	"testing"
)

func TestNewMessageRoundTrip(t *testing.T) {
	msg, err := NewMessage(MsgNoticePush, "cli", NoticePayload{Text: "hi", Level: "info"})
	if err != nil {
		t.Fatalf("building message: %v", err)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshaling: %v", err)
	}

	var decoded Message
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshaling: %v", err)
	}
	if decoded.Type != MsgNoticePush {
		t.Errorf("type: got %q, want %q", decoded.Type, MsgNoticePush)
	}

	var p NoticePayload
	if err := json.Unmarshal(decoded.Payload, &p); err != nil {
		t.Fatalf("unmarshaling payload: %v", err)
	}
	if p.Text != "hi" {
		t.Errorf("text: got %q, want %q", p.Text, "hi")
	}
}

func TestNewMessageNilPayload(t *testing.T) {
	msg, err := NewMessage(MsgPing, "cli", nil)
	if err != nil {
		t.Fatalf("building message: %v", err)
	}
	if msg.Payload != nil {
		t.Errorf("payload: got %q, want nil", msg.Payload)
	}
}
