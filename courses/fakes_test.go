package courses

import (
	"context"
	"fmt"
	"time"
)

type patch struct {
	id     string
	course Course
	mask   []string
}

type enrol struct {
	courseID string
	userID   string
}

type fakeClassroom struct {
	courses  []Course
	created  []Course
	patched  []patch
	teachers []enrol
	students []enrol
	next     int

	failList     error
	failCreate   map[string]error
	failPatch    error
	failTeacher  error
	failStudents map[string]error
	emptyID      bool
}

func (c *fakeClassroom) ListCourses(ctx context.Context) ([]Course, error) {
	if c.failList != nil {
		return nil, c.failList
	}

	list := make([]Course, len(c.courses))
	copy(list, c.courses)

	return list, nil
}

func (c *fakeClassroom) CreateCourse(ctx context.Context, course Course) (*Course, error) {
	if err, ok := c.failCreate[course.Name]; ok {
		return nil, err
	}

	c.next++
	c.created = append(c.created, course)

	if !c.emptyID {
		course.ID = fmt.Sprintf("course-%v", c.next)
	}

	c.courses = append(c.courses, course)

	return &course, nil
}

func (c *fakeClassroom) PatchCourse(ctx context.Context, id string, course Course, mask []string) (*Course, error) {
	if c.failPatch != nil {
		return nil, c.failPatch
	}

	c.patched = append(c.patched, patch{id: id, course: course, mask: mask})

	for i := range c.courses {
		if c.courses[i].ID == id {
			for _, field := range mask {
				switch field {
				case FieldName:
					c.courses[i].Name = course.Name
				case FieldDescriptionHeading:
					c.courses[i].DescriptionHeading = course.DescriptionHeading
				case FieldDescription:
					c.courses[i].Description = course.Description
				case FieldOwnerID:
					c.courses[i].OwnerID = course.OwnerID
				}
			}

			updated := c.courses[i]

			return &updated, nil
		}
	}

	return nil, fmt.Errorf("course %v not found", id)
}

func (c *fakeClassroom) AddTeacher(ctx context.Context, courseID string, userID string) error {
	c.teachers = append(c.teachers, enrol{courseID, userID})

	return c.failTeacher
}

func (c *fakeClassroom) AddStudent(ctx context.Context, courseID string, userID string) error {
	c.students = append(c.students, enrol{courseID, userID})

	if err, ok := c.failStudents[userID]; ok {
		return err
	}

	return nil
}

type fakeTable struct {
	rows      [][]string
	writes    []PendingWrite
	failWrite error
}

func (t *fakeTable) ReadAll(ctx context.Context) ([][]string, error) {
	rows := [][]string{}
	for _, row := range t.rows {
		rows = append(rows, append([]string{}, row...))
	}

	return rows, nil
}

func (t *fakeTable) Header(ctx context.Context) ([]string, error) {
	if len(t.rows) == 0 {
		return []string{}, nil
	}

	return append([]string{}, t.rows[0]...), nil
}

func (t *fakeTable) EnsureColumn(ctx context.Context, name string) (bool, error) {
	for _, v := range t.rows[0] {
		if normalise(v) == normalise(name) {
			return false, nil
		}
	}

	t.rows[0] = append(t.rows[0], name)

	return true, nil
}

func (t *fakeTable) WriteCells(ctx context.Context, writes []PendingWrite) error {
	if t.failWrite != nil {
		return t.failWrite
	}

	t.writes = append(t.writes, writes...)

	for _, w := range writes {
		for len(t.rows) < w.Row {
			t.rows = append(t.rows, []string{})
		}

		row := t.rows[w.Row-1]
		for len(row) < w.Column {
			row = append(row, "")
		}

		row[w.Column-1] = w.Value
		t.rows[w.Row-1] = row
	}

	return nil
}

func (t *fakeTable) get(row, column int) string {
	return cell(t.rows[row-1], column-1)
}

type fakeLog struct {
	header     []string
	entries    []LogEntry
	failAppend error
}

func (l *fakeLog) EnsureHeader(ctx context.Context, header []string) (bool, error) {
	if len(l.header) > 0 || len(l.entries) > 0 {
		return false, nil
	}

	l.header = header

	return true, nil
}

func (l *fakeLog) Append(ctx context.Context, entries []LogEntry) error {
	if l.failAppend != nil {
		return l.failAppend
	}

	l.entries = append(l.entries, entries...)

	return nil
}

type fakeIdentity string

func (id fakeIdentity) CurrentUser(ctx context.Context) (string, error) {
	return string(id), nil
}

var timestamp = time.Date(2024, time.September, 2, 8, 30, 15, 0, time.Local)

func newBatch(table *fakeTable, log *fakeLog, remote *fakeClassroom) *Batch {
	return &Batch{
		Sheet:     table,
		Log:       log,
		Classroom: remote,
		Identity:  fakeIdentity("admin@school.org"),
		Exclude:   DefaultExclusions,
		Now:       func() time.Time { return timestamp },
	}
}
