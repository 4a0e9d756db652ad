package courses

import (
	"context"
)

// Updates accumulates the worksheet cell writes and audit log entries for a run so
// that they can be applied in two bulk operations once every row has been processed.
type Updates struct {
	Cells []PendingWrite
	Log   []LogEntry
}

func (u *Updates) Write(row, column int, value string) {
	u.Cells = append(u.Cells, PendingWrite{
		Row:    row,
		Column: column,
		Value:  value,
	})
}

func (u *Updates) Record(entry LogEntry) {
	u.Log = append(u.Log, entry)
}

func (u *Updates) ApplyCells(ctx context.Context, table Table) error {
	if len(u.Cells) == 0 {
		return nil
	}

	if err := table.WriteCells(ctx, u.Cells); err != nil {
		return &BulkWriteError{Op: "update main sheet", Err: err}
	}

	return nil
}

func (u *Updates) ApplyLog(ctx context.Context, log AuditLog) error {
	if len(u.Log) == 0 {
		return nil
	}

	if err := log.Append(ctx, u.Log); err != nil {
		return &BulkWriteError{Op: "update log sheet", Err: err}
	}

	return nil
}
