package controllers

import (
	"chatsplit/internal/archive"
	"chatsplit/internal/models"
	"chatsplit/internal/providers"
	"chatsplit/internal/services"
	"chatsplit/internal/structures"
	"context"
	"fmt"
	"io"
	"strings"
)

type ArchiveController struct {
	conf        *structures.Config
	logger      providers.Logger
	loader      archive.LoaderInterface
	grouper     services.GrouperServiceInterface
	fileManager archive.FileManagerInterface
	metrics     providers.MetricsProviderInterface
	out         io.Writer
}

func NewArchiveController(conf *structures.Config, logger providers.Logger, loader archive.LoaderInterface, grouper services.GrouperServiceInterface, fileManager archive.FileManagerInterface, metrics providers.MetricsProviderInterface, out io.Writer) *ArchiveController {
	return &ArchiveController{
		conf:        conf,
		logger:      logger,
		loader:      loader,
		grouper:     grouper,
		fileManager: fileManager,
		metrics:     metrics,
		out:         out,
	}
}

func (ac *ArchiveController) loadNodes() ([]models.MessageNode, error) {
	_, nodes, err := ac.loader.LoadNodes(ac.conf.Input.Path, ac.conf.Input.Conversation)
	return nodes, err
}

func (ac *ArchiveController) record(command string, dates int, stats services.Stats) {
	ac.metrics.AddNodes(stats.Grouped, stats.Skipped)
	ac.metrics.SetDatesTotal(command, dates)
	ac.logger.Infof(providers.GetLogTypeByCommand(command), "%d node(s) seen, %d grouped into %d date(s), %d skipped", stats.Seen, stats.Grouped, dates, stats.Skipped)
}

// Split writes one messages_<date>.json file per date into the output directory.
func (ac *ArchiveController) Split(ctx context.Context) error {
	nodes, err := ac.loadNodes()
	if err != nil {
		return err
	}

	partition, stats := ac.grouper.GroupByDate(nodes)
	ac.record(structures.CommandSplit, partition.Len(), stats)

	written, err := ac.fileManager.SavePartition(ctx, partition)
	if err != nil {
		return err
	}

	ac.logger.Infof(providers.TypeWrite, "Wrote %d file(s) to %s", len(written), ac.conf.Output.Dir)
	_, err = fmt.Fprintf(ac.out, "Messages have been split and saved into separate files in %s\n", ac.conf.Output.Dir)
	return err
}

// FirstIDs prints the identifier of the first message seen on each date.
func (ac *ArchiveController) FirstIDs(ctx context.Context) error {
	nodes, err := ac.loadNodes()
	if err != nil {
		return err
	}

	first, stats := ac.grouper.FirstMessagePerDate(nodes)
	ac.record(structures.CommandFirstIDs, first.Len(), stats)

	for _, entry := range first.Entries() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(ac.out, "Date: %s, First Message ID: %s\n", entry.Date, entry.ID); err != nil {
			return err
		}
	}
	return nil
}

// Summary prints per-date message counts broken down by author role.
func (ac *ArchiveController) Summary(ctx context.Context) error {
	nodes, err := ac.loadNodes()
	if err != nil {
		return err
	}

	summaries, stats := ac.grouper.Summarize(nodes)
	ac.record(structures.CommandSummary, len(summaries), stats)

	for _, day := range summaries {
		if err := ctx.Err(); err != nil {
			return err
		}
		roles := make([]string, 0, len(day.Roles))
		for _, role := range day.SortedRoles() {
			roles = append(roles, fmt.Sprintf("%s=%d", role, day.Roles[role]))
		}
		if _, err := fmt.Fprintf(ac.out, "Date: %s, Messages: %d, Roles: %s\n", day.Date, day.Messages, strings.Join(roles, " ")); err != nil {
			return err
		}
	}
	return nil
}

// Verify re-merges the files in the output directory, groups them again and
// checks the result matches grouping the input directly.
func (ac *ArchiveController) Verify(ctx context.Context) error {
	nodes, err := ac.loadNodes()
	if err != nil {
		return err
	}

	original, stats := ac.grouper.GroupByDate(nodes)
	ac.record(structures.CommandVerify, original.Len(), stats)

	if err := ctx.Err(); err != nil {
		return err
	}
	stored, err := ac.fileManager.ReadPartition(ac.conf.Output.Dir)
	if err != nil {
		return err
	}

	var merged []models.MessageNode
	for _, group := range stored.Groups() {
		merged = append(merged, group.Nodes...)
	}
	regrouped, _ := ac.grouper.GroupByDate(merged)

	if err := original.Compare(regrouped); err != nil {
		ac.logger.Errorf(providers.TypeLoad, "Output in %s does not match the input: %s", ac.conf.Output.Dir, err)
		return err
	}

	_, err = fmt.Fprintf(ac.out, "Verified %d date(s) and %d message(s) in %s\n", original.Len(), original.NodeCount(), ac.conf.Output.Dir)
	return err
}
