package models

import (
	"bytes"
	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
	"math"
	"strings"
	"time"
)

const UnknownRole = "unknown"

// create_time values outside this window do not render as a YYYY-MM-DD key
// in every timezone and are treated as malformed.
var (
	minCreateTime = float64(time.Date(0, time.January, 2, 0, 0, 0, 0, time.UTC).Unix())
	maxCreateTime = float64(time.Date(9999, time.December, 30, 0, 0, 0, 0, time.UTC).Unix())
)

// MessageNode is one mapping entry: the mapping key and the node object as
// it appeared in the export.
type MessageNode struct {
	ID  string
	Raw json.RawMessage
}

type nodeEnvelope struct {
	Message json.RawMessage `json:"message"`
}

type messageEnvelope struct {
	CreateTime json.RawMessage `json:"create_time"`
	Author     json.RawMessage `json:"author"`
}

type authorEnvelope struct {
	Role json.RawMessage `json:"role"`
}

// Message is a read-only view of node.message. Fields that are missing or of
// an unexpected type read as absent instead of failing the whole node.
type Message struct {
	createTime json.RawMessage
	author     json.RawMessage
}

// Message parses node.message. It reports false when the node is not an
// object or carries no message object.
func (n MessageNode) Message() (*Message, bool) {
	if !isObject(n.Raw) {
		return nil, false
	}
	var node nodeEnvelope
	if err := json.Unmarshal(n.Raw, &node); err != nil {
		return nil, false
	}
	if !isObject(node.Message) {
		return nil, false
	}
	var msg messageEnvelope
	if err := json.Unmarshal(node.Message, &msg); err != nil {
		return nil, false
	}
	return &Message{createTime: msg.CreateTime, author: msg.Author}, true
}

// NodeID returns the node's own "id" field, falling back to the mapping key.
func (n MessageNode) NodeID() string {
	if isObject(n.Raw) {
		var node struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(n.Raw, &node); err == nil {
			if id, ok := decodeString(node.ID); ok && id != "" {
				return id
			}
		}
	}
	return n.ID
}

// CreateTime returns create_time as seconds since the Unix epoch. JSON
// numbers and numeric strings are accepted; null, booleans, empty strings,
// non-finite values and dates outside years 0000-9999 are not.
func (m *Message) CreateTime() (float64, bool) {
	raw := bytes.TrimSpace(m.createTime)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}

	switch val := v.(type) {
	case json.Number:
	case string:
		if strings.TrimSpace(val) == "" {
			return 0, false
		}
		v = strings.TrimSpace(val)
	default:
		return 0, false
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < minCreateTime || f > maxCreateTime {
		return 0, false
	}
	return f, true
}

// Role returns message.author.role, or UnknownRole.
func (m *Message) Role() string {
	if !isObject(m.author) {
		return UnknownRole
	}
	var author authorEnvelope
	if err := json.Unmarshal(m.author, &author); err != nil {
		return UnknownRole
	}
	if role, ok := decodeString(author.Role); ok && role != "" {
		return role
	}
	return UnknownRole
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func decodeString(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}
