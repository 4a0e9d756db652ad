// Package courses reconciles course rows from a worksheet with the courses held by a
// classroom service.
package courses

import (
	"context"
	"time"
)

type Action string

const (
	Created  Action = "Created"
	Updated  Action = "Updated"
	NoChange Action = "No changes needed"
	Error    Action = "Error"
	Skipped  Action = "Skipped"
)

const ACTIVE = "ACTIVE"

// Classroom API field names, in field mask order.
const (
	FieldName               = "name"
	FieldDescriptionHeading = "descriptionHeading"
	FieldDescription        = "description"
	FieldOwnerID            = "ownerId"
)

// Intent is the course described by a single worksheet row.
type Intent struct {
	Name         string
	TeacherEmail string
	Description  string
	CourseID     string
	Students     []string
}

// Course is the subset of a remote course resource used for matching and diffing.
type Course struct {
	ID                 string
	Name               string
	OwnerID            string
	DescriptionHeading string
	Description        string
	CourseState        string
}

type LogEntry struct {
	Timestamp  time.Time
	CourseName string
	Action     Action
	CourseID   string
	Notes      string
}

// PendingWrite is a deferred cell update. Row and Column are 1-based worksheet
// coordinates, with row 1 being the header row.
type PendingWrite struct {
	Row    int
	Column int
	Value  string
}

// Table is the source worksheet. ReadAll returns every row including the header.
type Table interface {
	ReadAll(ctx context.Context) ([][]string, error)
	Header(ctx context.Context) ([]string, error)
	EnsureColumn(ctx context.Context, name string) (bool, error)
	WriteCells(ctx context.Context, writes []PendingWrite) error
}

// AuditLog is the append-only log worksheet.
type AuditLog interface {
	EnsureHeader(ctx context.Context, header []string) (bool, error)
	Append(ctx context.Context, entries []LogEntry) error
}

type Classroom interface {
	ListCourses(ctx context.Context) ([]Course, error)
	CreateCourse(ctx context.Context, course Course) (*Course, error)
	PatchCourse(ctx context.Context, id string, course Course, mask []string) (*Course, error)
	AddTeacher(ctx context.Context, courseID string, userID string) error
	AddStudent(ctx context.Context, courseID string, userID string) error
}

type Identity interface {
	CurrentUser(ctx context.Context) (string, error)
}
