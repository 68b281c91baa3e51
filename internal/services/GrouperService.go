package services

import (
	"chatsplit/internal/models"
)

type GrouperServiceInterface interface {
	GroupByDate(nodes []models.MessageNode) (*models.Partition, Stats)
	FirstMessagePerDate(nodes []models.MessageNode) (*models.FirstIDs, Stats)
	Summarize(nodes []models.MessageNode) ([]*models.DaySummary, Stats)
}

// Stats counts what a single pass did with the nodes it saw.
type Stats struct {
	Seen    int
	Grouped int
	Skipped int
}

type GrouperService struct {
	keyer *DateKeyer
}

func NewGrouperService(keyer *DateKeyer) GrouperServiceInterface {
	return &GrouperService{keyer: keyer}
}

// each calls fn for every node that carries a usable create_time, in input
// order. Nodes without one are counted as skipped.
func (gs *GrouperService) each(nodes []models.MessageNode, fn func(date string, node models.MessageNode, msg *models.Message)) Stats {
	var stats Stats
	for _, node := range nodes {
		stats.Seen++
		msg, ok := node.Message()
		if !ok {
			stats.Skipped++
			continue
		}
		ts, ok := msg.CreateTime()
		if !ok {
			stats.Skipped++
			continue
		}
		stats.Grouped++
		fn(gs.keyer.Key(ts), node, msg)
	}
	return stats
}

func (gs *GrouperService) GroupByDate(nodes []models.MessageNode) (*models.Partition, Stats) {
	partition := models.NewPartition()
	stats := gs.each(nodes, func(date string, node models.MessageNode, _ *models.Message) {
		partition.Append(date, node)
	})
	return partition, stats
}

func (gs *GrouperService) FirstMessagePerDate(nodes []models.MessageNode) (*models.FirstIDs, Stats) {
	first := models.NewFirstIDs()
	stats := gs.each(nodes, func(date string, node models.MessageNode, _ *models.Message) {
		first.Offer(date, node.ID)
	})
	return first, stats
}

func (gs *GrouperService) Summarize(nodes []models.MessageNode) ([]*models.DaySummary, Stats) {
	var summaries []*models.DaySummary
	index := make(map[string]*models.DaySummary)

	stats := gs.each(nodes, func(date string, _ models.MessageNode, msg *models.Message) {
		day, ok := index[date]
		if !ok {
			day = &models.DaySummary{Date: date, Roles: make(map[string]int)}
			index[date] = day
			summaries = append(summaries, day)
		}
		day.Messages++
		day.Roles[msg.Role()]++
	})
	return summaries, stats
}
