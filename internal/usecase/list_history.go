package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/spawn/internal/domain"
)

// ListHistoryInput contains the parameters for listing launch history.
type ListHistoryInput struct {
	Limit       int  // Max entries to return, 0 = all
	RunningOnly bool // Only processes that are still alive
}

// HistoryEntry is a launch record with its current liveness.
type HistoryEntry struct {
	State  domain.ProcessState
	Record domain.LaunchRecord
}

// ListHistoryOutput contains the listed entries, newest first.
type ListHistoryOutput struct {
	Entries []HistoryEntry
}

// ListHistory is the use case for listing recorded launches.
type ListHistory struct {
	history domain.HistoryRepository
	probe   domain.LivenessProbe
}

// NewListHistory creates a new ListHistory use case.
func NewListHistory(history domain.HistoryRepository, probe domain.LivenessProbe) *ListHistory {
	return &ListHistory{
		history: history,
		probe:   probe,
	}
}

// Execute lists launch records annotated with liveness.
func (uc *ListHistory) Execute(_ context.Context, in ListHistoryInput) (*ListHistoryOutput, error) {
	records, err := uc.history.List()
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		state := uc.probe.State(rec.PID)
		if in.RunningOnly && state != domain.ProcessRunning {
			continue
		}
		entries = append(entries, HistoryEntry{Record: rec, State: state})
		if in.Limit > 0 && len(entries) == in.Limit {
			break
		}
	}

	return &ListHistoryOutput{Entries: entries}, nil
}

// ClearHistory is the use case for removing all launch records.
type ClearHistory struct {
	history domain.HistoryRepository
	logger  domain.Logger
}

// NewClearHistory creates a new ClearHistory use case.
func NewClearHistory(history domain.HistoryRepository, logger domain.Logger) *ClearHistory {
	return &ClearHistory{
		history: history,
		logger:  logger,
	}
}

// Execute removes all records.
func (uc *ClearHistory) Execute(_ context.Context) error {
	if err := uc.history.Clear(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	uc.logger.Info("", "history", "cleared")
	return nil
}

// ListRunning is the use case for listing recorded processes that are still alive.
type ListRunning struct {
	list *ListHistory
}

// NewListRunning creates a new ListRunning use case.
func NewListRunning(history domain.HistoryRepository, probe domain.LivenessProbe) *ListRunning {
	return &ListRunning{list: NewListHistory(history, probe)}
}

// Execute lists running processes, newest first.
func (uc *ListRunning) Execute(ctx context.Context) (*ListHistoryOutput, error) {
	return uc.list.Execute(ctx, ListHistoryInput{RunningOnly: true})
}
