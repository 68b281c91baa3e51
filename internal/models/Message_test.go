package models

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func node(id, raw string) MessageNode {
	return MessageNode{ID: id, Raw: []byte(raw)}
}

func TestMessageNode_Message_Present(t *testing.T) {
	msg, ok := node("a", `{"message":{"create_time":1700000000}}`).Message()
	require.True(t, ok)
	ts, ok := msg.CreateTime()
	require.True(t, ok)
	assert.Equal(t, 1700000000.0, ts)
}

func TestMessageNode_Message_Missing(t *testing.T) {
	cases := map[string]string{
		"empty object":   `{}`,
		"null message":   `{"message":null}`,
		"string message": `{"message":"hi"}`,
		"array node":     `[1,2,3]`,
		"null node":      `null`,
		"number node":    `42`,
		"empty raw":      ``,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := node("a", raw).Message()
			assert.False(t, ok)
		})
	}
}

func TestMessage_CreateTime(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
		ok   bool
	}{
		{"integer", `{"message":{"create_time":1700000000}}`, 1700000000, true},
		{"fractional", `{"message":{"create_time":1700000000.5251}}`, 1700000000.5251, true},
		{"zero", `{"message":{"create_time":0}}`, 0, true},
		{"exponent", `{"message":{"create_time":1.7e9}}`, 1.7e9, true},
		{"numeric string", `{"message":{"create_time":"1700000000"}}`, 1700000000, true},
		{"null", `{"message":{"create_time":null}}`, 0, false},
		{"absent", `{"message":{"author":{"role":"user"}}}`, 0, false},
		{"empty string", `{"message":{"create_time":""}}`, 0, false},
		{"word", `{"message":{"create_time":"yesterday"}}`, 0, false},
		{"boolean", `{"message":{"create_time":true}}`, 0, false},
		{"object", `{"message":{"create_time":{"s":1}}}`, 0, false},
		{"nan string", `{"message":{"create_time":"NaN"}}`, 0, false},
		{"year one", `{"message":{"create_time":-62135596800}}`, -62135596800, true},
		{"year 9999", `{"message":{"create_time":253402041600}}`, 253402041600, true},
		{"far future", `{"message":{"create_time":1e18}}`, 0, false},
		{"beyond int64", `{"message":{"create_time":1e20}}`, 0, false},
		{"beyond int64 negative", `{"message":{"create_time":-1e20}}`, 0, false},
		{"far future string", `{"message":{"create_time":"1e18"}}`, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, ok := node("a", tc.raw).Message()
			require.True(t, ok)
			got, ok := msg.CreateTime()
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.want, got, 1e-6)
			}
		})
	}
}

func TestMessage_Role(t *testing.T) {
	msg, ok := node("a", `{"message":{"author":{"role":"assistant"}}}`).Message()
	require.True(t, ok)
	assert.Equal(t, "assistant", msg.Role())

	msg, ok = node("a", `{"message":{"author":null}}`).Message()
	require.True(t, ok)
	assert.Equal(t, UnknownRole, msg.Role())

	msg, ok = node("a", `{"message":{"author":{"role":7}}}`).Message()
	require.True(t, ok)
	assert.Equal(t, UnknownRole, msg.Role())

	msg, ok = node("a", `{"message":{}}`).Message()
	require.True(t, ok)
	assert.Equal(t, UnknownRole, msg.Role())
}

func TestMessageNode_NodeID(t *testing.T) {
	assert.Equal(t, "inner", node("outer", `{"id":"inner"}`).NodeID())
	assert.Equal(t, "outer", node("outer", `{"id":12}`).NodeID())
	assert.Equal(t, "outer", node("outer", `{}`).NodeID())
	assert.Equal(t, "outer", node("outer", `null`).NodeID())
}
