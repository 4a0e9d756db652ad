package commands

import (
	"context"
	"strings"

	"github.com/uhppoted/uhppoted-app-classroom/courses"
)

const DRYRUN_COURSE_ID = "(dryrun)"

// dryrunClassroom forwards reads to the wrapped classroom and logs the mutating
// calls instead of sending them.
type dryrunClassroom struct {
	courses.Classroom
}

func (d dryrunClassroom) CreateCourse(ctx context.Context, course courses.Course) (*courses.Course, error) {
	infof("dryrun  create course %q (owner:%v)", course.Name, course.OwnerID)

	course.ID = DRYRUN_COURSE_ID

	return &course, nil
}

func (d dryrunClassroom) PatchCourse(ctx context.Context, id string, course courses.Course, mask []string) (*courses.Course, error) {
	infof("dryrun  patch course %v %q (fields:%v)", id, course.Name, strings.Join(mask, ","))

	course.ID = id

	return &course, nil
}

func (d dryrunClassroom) AddTeacher(ctx context.Context, courseID string, userID string) error {
	infof("dryrun  add teacher %v to course %v", userID, courseID)

	return nil
}

func (d dryrunClassroom) AddStudent(ctx context.Context, courseID string, userID string) error {
	infof("dryrun  add student %v to course %v", userID, courseID)

	return nil
}

type dryrunTable struct {
	courses.Table
}

func (d dryrunTable) EnsureColumn(ctx context.Context, name string) (bool, error) {
	header, err := d.Header(ctx)
	if err != nil {
		return false, err
	}

	for _, v := range header {
		if normalise(v) == normalise(name) {
			return false, nil
		}
	}

	infof("dryrun  add column '%v'", name)

	return false, nil
}

func (d dryrunTable) WriteCells(ctx context.Context, writes []courses.PendingWrite) error {
	for _, w := range writes {
		infof("dryrun  write cell %v%v %q", columnName(w.Column), w.Row, w.Value)
	}

	return nil
}

type dryrunLog struct {
	courses.AuditLog
}

func (d dryrunLog) EnsureHeader(ctx context.Context, header []string) (bool, error) {
	return false, nil
}

func (d dryrunLog) Append(ctx context.Context, entries []courses.LogEntry) error {
	for _, row := range logRows(entries) {
		infof("dryrun  log %v", strings.Join(row, " | "))
	}

	return nil
}
