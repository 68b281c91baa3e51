package models

import (
	"bytes"
	"fmt"
	json "github.com/goccy/go-json"
)

// Mapping is the {identifier: node} object of a conversation, decoded in
// document order. Duplicate keys are kept as separate entries.
type Mapping struct {
	Nodes []MessageNode
	valid bool
}

func NewMapping(nodes ...MessageNode) *Mapping {
	return &Mapping{Nodes: nodes, valid: true}
}

func (m *Mapping) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("mapping: %w", err)
	}
	if tok == nil {
		m.Nodes, m.valid = nil, false
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("mapping: expected object, got %v", tok)
	}

	nodes := make([]MessageNode, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("mapping key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("mapping: expected string key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("mapping node %q: %w", key, err)
		}
		nodes = append(nodes, MessageNode{ID: key, Raw: append(json.RawMessage(nil), raw...)})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("mapping: %w", err)
	}

	m.Nodes, m.valid = nodes, true
	return nil
}

func (m *Mapping) MarshalJSON() ([]byte, error) {
	if m == nil || !m.valid {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range m.Nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(n.ID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if len(n.Raw) == 0 {
			buf.WriteString("null")
		} else {
			buf.Write(n.Raw)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
