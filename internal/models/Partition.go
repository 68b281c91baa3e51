package models

import (
	"bytes"
	"fmt"
	json "github.com/goccy/go-json"
	"sort"
)

const DateKeyLayout = "2006-01-02"

type DateGroup struct {
	Date  string
	Nodes []MessageNode
}

// Partition maps DateKey to the nodes created that day. Dates and the nodes
// inside each date keep first-seen order.
type Partition struct {
	groups []*DateGroup
	index  map[string]int
}

func NewPartition() *Partition {
	return &Partition{index: make(map[string]int)}
}

func (p *Partition) Append(date string, node MessageNode) {
	if i, ok := p.index[date]; ok {
		p.groups[i].Nodes = append(p.groups[i].Nodes, node)
		return
	}
	p.index[date] = len(p.groups)
	p.groups = append(p.groups, &DateGroup{Date: date, Nodes: []MessageNode{node}})
}

func (p *Partition) Get(date string) ([]MessageNode, bool) {
	i, ok := p.index[date]
	if !ok {
		return nil, false
	}
	return p.groups[i].Nodes, true
}

func (p *Partition) Dates() []string {
	dates := make([]string, len(p.groups))
	for i, g := range p.groups {
		dates[i] = g.Date
	}
	return dates
}

func (p *Partition) Groups() []*DateGroup {
	return p.groups
}

func (p *Partition) Len() int {
	return len(p.groups)
}

// NodeCount is the number of nodes across all dates.
func (p *Partition) NodeCount() int {
	total := 0
	for _, g := range p.groups {
		total += len(g.Nodes)
	}
	return total
}

// SortedDates returns the dates in calendar order. DateKeys sort
// lexicographically in calendar order.
func (p *Partition) SortedDates() []string {
	dates := p.Dates()
	sort.Strings(dates)
	return dates
}

// Compare checks that other holds the same dates and, per date, the same
// nodes in the same order. Date order itself is not compared. Nodes are
// compared by their compacted JSON.
func (p *Partition) Compare(other *Partition) error {
	if p.Len() != other.Len() {
		return fmt.Errorf("%w: %d dates, got %d", ErrPartitionMismatch, p.Len(), other.Len())
	}
	for _, g := range p.groups {
		nodes, ok := other.Get(g.Date)
		if !ok {
			return fmt.Errorf("%w: date %s missing", ErrPartitionMismatch, g.Date)
		}
		if len(nodes) != len(g.Nodes) {
			return fmt.Errorf("%w: date %s has %d nodes, got %d", ErrPartitionMismatch, g.Date, len(g.Nodes), len(nodes))
		}
		for i := range g.Nodes {
			same, err := sameJSON(g.Nodes[i].Raw, nodes[i].Raw)
			if err != nil {
				return fmt.Errorf("%w: date %s node %d: %v", ErrPartitionMismatch, g.Date, i, err)
			}
			if !same {
				return fmt.Errorf("%w: date %s node %d (%s) differs", ErrPartitionMismatch, g.Date, i, g.Nodes[i].ID)
			}
		}
	}
	return nil
}

func sameJSON(a, b []byte) (bool, error) {
	var ca, cb bytes.Buffer
	if err := json.Compact(&ca, a); err != nil {
		return false, err
	}
	if err := json.Compact(&cb, b); err != nil {
		return false, err
	}
	return bytes.Equal(ca.Bytes(), cb.Bytes()), nil
}

type FirstID struct {
	Date string
	ID   string
}

// FirstIDs keeps the identifier of the first node seen per date.
type FirstIDs struct {
	entries []FirstID
	seen    map[string]struct{}
}

func NewFirstIDs() *FirstIDs {
	return &FirstIDs{seen: make(map[string]struct{})}
}

// Offer records id for date unless the date already has one.
func (f *FirstIDs) Offer(date, id string) bool {
	if _, ok := f.seen[date]; ok {
		return false
	}
	f.seen[date] = struct{}{}
	f.entries = append(f.entries, FirstID{Date: date, ID: id})
	return true
}

func (f *FirstIDs) Entries() []FirstID {
	return f.entries
}

func (f *FirstIDs) Len() int {
	return len(f.entries)
}

type DaySummary struct {
	Date     string
	Messages int
	Roles    map[string]int
}

// SortedRoles returns role names in alphabetical order.
func (d *DaySummary) SortedRoles() []string {
	roles := make([]string, 0, len(d.Roles))
	for r := range d.Roles {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}
