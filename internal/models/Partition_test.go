package models

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPartition_PreservesFirstSeenOrder(t *testing.T) {
	p := NewPartition()
	p.Append("2023-11-15", node("x", `{}`))
	p.Append("2023-11-14", node("y", `{}`))
	p.Append("2023-11-15", node("z", `{}`))

	assert.Equal(t, []string{"2023-11-15", "2023-11-14"}, p.Dates())
	assert.Equal(t, []string{"2023-11-14", "2023-11-15"}, p.SortedDates())

	nodes, ok := p.Get("2023-11-15")
	require.True(t, ok)
	assert.Equal(t, []string{"x", "z"}, nodeIDs(nodes))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 3, p.NodeCount())

	_, ok = p.Get("2020-01-01")
	assert.False(t, ok)
}

func TestFirstIDs_KeepsFirstOnly(t *testing.T) {
	f := NewFirstIDs()
	assert.True(t, f.Offer("2023-11-15", "x"))
	assert.False(t, f.Offer("2023-11-15", "y"))
	assert.True(t, f.Offer("2023-11-14", "z"))

	assert.Equal(t, []FirstID{
		{Date: "2023-11-15", ID: "x"},
		{Date: "2023-11-14", ID: "z"},
	}, f.Entries())
	assert.Equal(t, 2, f.Len())
}

func TestDaySummary_SortedRoles(t *testing.T) {
	d := &DaySummary{Roles: map[string]int{"user": 2, "assistant": 3, "tool": 1}}
	assert.Equal(t, []string{"assistant", "tool", "user"}, d.SortedRoles())
}

func TestPartition_CompareEqualIgnoresDateOrderAndWhitespace(t *testing.T) {
	a := NewPartition()
	a.Append("2023-11-15", node("x", `{"id": "x", "n": 1}`))
	a.Append("2023-11-14", node("y", `{"id":"y"}`))

	b := NewPartition()
	b.Append("2023-11-14", node("y", "{\n    \"id\": \"y\"\n}"))
	b.Append("2023-11-15", node("x", `{"id":"x","n":1}`))

	assert.NoError(t, a.Compare(b))
}

func TestPartition_CompareDetectsDifferences(t *testing.T) {
	base := func() *Partition {
		p := NewPartition()
		p.Append("2023-11-14", node("x", `{"id":"x"}`))
		p.Append("2023-11-14", node("y", `{"id":"y"}`))
		return p
	}

	missingDate := NewPartition()
	missingDate.Append("2023-11-13", node("x", `{"id":"x"}`))
	missingDate.Append("2023-11-13", node("y", `{"id":"y"}`))
	assert.ErrorIs(t, base().Compare(missingDate), ErrPartitionMismatch)

	reordered := NewPartition()
	reordered.Append("2023-11-14", node("y", `{"id":"y"}`))
	reordered.Append("2023-11-14", node("x", `{"id":"x"}`))
	assert.ErrorIs(t, base().Compare(reordered), ErrPartitionMismatch)

	short := NewPartition()
	short.Append("2023-11-14", node("x", `{"id":"x"}`))
	assert.ErrorIs(t, base().Compare(short), ErrPartitionMismatch)

	extra := base()
	extra.Append("2023-11-15", node("z", `{"id":"z"}`))
	assert.ErrorIs(t, base().Compare(extra), ErrPartitionMismatch)
}
