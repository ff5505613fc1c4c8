package server

import "encoding/json"

// Message is the wire envelope for all WebSocket communication.
type Message struct {
	Type    string          `json:"type"`
	Seq     int64           `json:"seq"`
	Sender  string          `json:"sender"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message types
const (
	MsgNoticePush = "notice.push"
	MsgNoticeAck  = "notice.ack"
	MsgReject     = "notice.reject"
	MsgPing       = "ping"
	MsgPong       = "pong"
)

// NoticePayload is a toast raised by a remote sender. ID is minted by the
// hub when absent; TTLSeconds of zero means "use the receiver's default".
type NoticePayload struct {
	ID         string `json:"id,omitempty"`
	Level      string `json:"level,omitempty"`
	Text       string `json:"text"`
	TTLSeconds int    `json:"ttl_seconds,omitempty"`
}

type AckPayload struct {
	ID string `json:"id"`
}

type RejectPayload struct {
	Reason string `json:"reason"`
}

func NewMessage(msgType string, sender string, payload interface{}) (Message, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return Message{}, err
		}
		raw = data
	}
	return Message{
		Type:    msgType,
		Sender:  sender,
		Payload: raw,
	}, nil
}
