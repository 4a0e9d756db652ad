package courses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const TimestampFormat = "2006-01-02 15:04:05"

var LogHeader = []string{"Timestamp", "Course Name", "Action", "Course ID", "Notes"}

var DefaultExclusions = []string{"Homeroom", "Intervention"}

// Batch reconciles every row of the source worksheet with the classroom service in a
// single sequential pass.
type Batch struct {
	Sheet     Table
	Log       AuditLog
	Classroom Classroom
	Identity  Identity
	Exclude   []string
	Now       func() time.Time
}

// Outcome is the result of processing a single worksheet row.
type Outcome struct {
	Row        int
	Name       string
	Action     Action
	CourseID   string
	Fields     []string
	Teacher    TeacherResult
	Enrollment Enrollment
	Reason     string
}

type Summary struct {
	Run       uuid.UUID
	Rows      int
	Skipped   int
	Created   int
	Updated   int
	Unchanged int
	Errors    int
	Cells     int
	Logged    int
	Failures  []error
}

// Run processes all rows. Row level failures are recorded in the audit log and
// failures writing the worksheet or log are reported in the summary, so an error
// is only returned if the batch could not be started.
func (b *Batch) Run(ctx context.Context) (Summary, error) {
	summary := Summary{
		Run: uuid.New(),
	}

	infof("run %v  started", summary.Run)

	header, err := b.Sheet.Header(ctx)
	if err != nil {
		return summary, fmt.Errorf("Unable to retrieve column headers from main sheet (%w)", err)
	} else if _, err := MakeColumns(header); err != nil {
		return summary, err
	}

	if added, err := b.Log.EnsureHeader(ctx, LogHeader); err != nil {
		return summary, fmt.Errorf("Unable to initialise log sheet (%w)", err)
	} else if added {
		infof("run %v  initialised log sheet", summary.Run)
	}

	for _, column := range []string{ColumnCourseID, ColumnLastUpdated} {
		if added, err := b.Sheet.EnsureColumn(ctx, column); err != nil {
			return summary, fmt.Errorf("Unable to create '%v' column (%w)", column, err)
		} else if added {
			infof("run %v  created %v column", summary.Run, strings.ToLower(column))
		}
	}

	rows, err := b.Sheet.ReadAll(ctx)
	if err != nil {
		return summary, fmt.Errorf("Unable to retrieve data from main sheet (%w)", err)
	} else if len(rows) == 0 {
		return summary, fmt.Errorf("No data in main sheet")
	}

	columns, err := MakeColumns(rows[0])
	if err != nil {
		return summary, err
	}

	debugf("main sheet column index: %+v", columns)

	user, err := b.Identity.CurrentUser(ctx)
	if err != nil {
		return summary, fmt.Errorf("Unable to identify current user (%w)", err)
	}

	infof("run %v  fetching courses from api", summary.Run)

	existing, err := b.Classroom.ListCourses(ctx)
	if err != nil {
		return summary, fmt.Errorf("Unable to retrieve courses (%w)", err)
	}

	infof("run %v  retrieved %v courses", summary.Run, len(existing))

	updates := Updates{}

	for i, row := range rows[1:] {
		outcome := b.process(ctx, summary.Run, i+2, row, columns, existing, user, &updates)

		summary.add(outcome)
	}

	if err := updates.ApplyCells(ctx, b.Sheet); err != nil {
		errorf("run %v  %v", summary.Run, err)
		summary.Failures = append(summary.Failures, err)
	} else if len(updates.Cells) > 0 {
		infof("run %v  updated %v cells in main sheet", summary.Run, len(updates.Cells))
		summary.Cells = len(updates.Cells)
	}

	if err := updates.ApplyLog(ctx, b.Log); err != nil {
		errorf("run %v  %v", summary.Run, err)
		summary.Failures = append(summary.Failures, err)
	} else if len(updates.Log) > 0 {
		infof("run %v  added %v entries to log sheet", summary.Run, len(updates.Log))
		summary.Logged = len(updates.Log)
	}

	return summary, nil
}

func (b *Batch) process(ctx context.Context, run uuid.UUID, row int, cells []string, columns Columns, existing []Course, user string, updates *Updates) Outcome {
	if empty(cells) {
		infof("run %v  skipping empty row %v", run, row)

		return Outcome{Row: row, Action: Skipped, Reason: "empty row"}
	}

	name := cell(cells, columns.Name)
	if keyword, ok := b.excluded(name); ok {
		infof("run %v  skipping %v course", run, name)

		return Outcome{Row: row, Name: name, Action: Skipped, Reason: fmt.Sprintf("excluded (%v)", keyword)}
	}

	id := strings.TrimSpace(cell(cells, columns.CourseID))
	if id != "" {
		infof("run %v  processing row %v: updating existing course", run, row)
	} else {
		infof("run %v  processing row %v: creating new course", run, row)
	}

	outcome := b.reconcile(ctx, row, cells, columns, existing, user)
	now := b.now()

	if outcome.Action == Error {
		errorf("run %v  %v", run, outcome.Reason)

		updates.Record(LogEntry{
			Timestamp:  now,
			CourseName: outcome.Name,
			Action:     Error,
			CourseID:   "",
			Notes:      outcome.Reason,
		})

		return outcome
	}

	if columns.CourseID != -1 && id == "" {
		updates.Write(row, columns.CourseID+1, outcome.CourseID)
	}

	if columns.LastUpdated != -1 {
		updates.Write(row, columns.LastUpdated+1, now.Format(TimestampFormat))
	}

	updates.Record(LogEntry{
		Timestamp:  now,
		CourseName: outcome.Name,
		Action:     outcome.Action,
		CourseID:   outcome.CourseID,
		Notes:      notes(outcome),
	})

	return outcome
}

func (b *Batch) reconcile(ctx context.Context, row int, cells []string, columns Columns, existing []Course, user string) Outcome {
	raw := cell(cells, columns.Name)

	failed := func(err error) Outcome {
		return Outcome{
			Row:    row,
			Name:   raw,
			Action: Error,
			Reason: fmt.Sprintf("failed to process course: %v (row %v). error: %v", raw, row, message(err)),
		}
	}

	intent, err := Extract(cells, columns)
	if err != nil {
		return failed(err)
	}

	course, _ := Match(*intent, existing)

	result, err := Reconcile(ctx, b.Classroom, course, *intent, user)
	if err != nil {
		return failed(err)
	}

	if result.Course.ID == "" {
		return Outcome{
			Row:    row,
			Name:   intent.Name,
			Action: Error,
			Reason: fmt.Sprintf("invalid course id for %v", intent.Name),
		}
	}

	teacher := SetLeadTeacher(ctx, b.Classroom, result.Course.ID, intent.TeacherEmail)
	enrollment := EnrollStudents(ctx, b.Classroom, result.Course.ID, intent.Students)

	return Outcome{
		Row:        row,
		Name:       intent.Name,
		Action:     result.Action,
		CourseID:   result.Course.ID,
		Fields:     result.Fields,
		Teacher:    teacher,
		Enrollment: enrollment,
	}
}

func (b *Batch) excluded(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	for _, keyword := range b.Exclude {
		if keyword != "" && strings.Contains(name, keyword) {
			return keyword, true
		}
	}

	return "", false
}

func (b *Batch) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}

	return time.Now()
}

func (s *Summary) add(outcome Outcome) {
	s.Rows++

	switch outcome.Action {
	case Skipped:
		s.Skipped++
	case Created:
		s.Created++
	case Updated:
		s.Updated++
	case NoChange:
		s.Unchanged++
	case Error:
		s.Errors++
	}
}

func notes(outcome Outcome) string {
	notes := fmt.Sprintf("%v. %v %v", outcome.Action, outcome.Teacher.Message, outcome.Enrollment.Message)
	if len(outcome.Fields) > 0 {
		notes += fmt.Sprintf(" updated fields: %v.", strings.Join(outcome.Fields, ", "))
	}

	return notes
}

func empty(cells []string) bool {
	for _, v := range cells {
		if v != "" {
			return false
		}
	}

	return true
}
