package models

import "fmt"

// Conversation is one entry of an export. Only the fields the tool reads are
// decoded; nodes are kept raw inside Mapping.
type Conversation struct {
	Title       string   `json:"title"`
	CurrentNode string   `json:"current_node"`
	Mapping     *Mapping `json:"mapping"`
}

// Export is the root array of an archive file.
type Export []*Conversation

func (e Export) Conversation(index int) (*Conversation, error) {
	if len(e) == 0 {
		return nil, ErrEmptyExport
	}
	if index < 0 || index >= len(e) || e[index] == nil {
		return nil, fmt.Errorf("%w: %d of %d", ErrConversationIndex, index, len(e))
	}
	return e[index], nil
}

func (c *Conversation) Nodes() ([]MessageNode, error) {
	if c.Mapping == nil || !c.Mapping.valid {
		return nil, ErrNoMapping
	}
	return c.Mapping.Nodes, nil
}
