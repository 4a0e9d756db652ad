package commands

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/uhppoted/uhppoted-app-classroom/courses"
)

type stub struct {
	courses []courses.Course
	calls   []string
}

func (s *stub) ListCourses(ctx context.Context) ([]courses.Course, error) {
	s.calls = append(s.calls, "list")
	return s.courses, nil
}

func (s *stub) CreateCourse(ctx context.Context, course courses.Course) (*courses.Course, error) {
	s.calls = append(s.calls, "create")
	course.ID = "123456789"
	return &course, nil
}

func (s *stub) PatchCourse(ctx context.Context, id string, course courses.Course, mask []string) (*courses.Course, error) {
	s.calls = append(s.calls, "patch")
	return &course, nil
}

func (s *stub) AddTeacher(ctx context.Context, courseID string, userID string) error {
	s.calls = append(s.calls, "teacher")
	return nil
}

func (s *stub) AddStudent(ctx context.Context, courseID string, userID string) error {
	s.calls = append(s.calls, "student")
	return nil
}

func (s *stub) CurrentUser(ctx context.Context) (string, error) {
	return "admin@school.org", nil
}

type stubTable struct {
	rows   [][]string
	calls  []string
	writes []courses.PendingWrite
}

func (s *stubTable) ReadAll(ctx context.Context) ([][]string, error) {
	return s.rows, nil
}

func (s *stubTable) Header(ctx context.Context) ([]string, error) {
	return s.rows[0], nil
}

func (s *stubTable) EnsureColumn(ctx context.Context, name string) (bool, error) {
	s.calls = append(s.calls, "column:"+name)
	return true, nil
}

func (s *stubTable) WriteCells(ctx context.Context, writes []courses.PendingWrite) error {
	s.calls = append(s.calls, "write")
	s.writes = append(s.writes, writes...)
	return nil
}

type stubLog struct {
	calls []string
}

func (s *stubLog) EnsureHeader(ctx context.Context, header []string) (bool, error) {
	s.calls = append(s.calls, "header")
	return true, nil
}

func (s *stubLog) Append(ctx context.Context, entries []courses.LogEntry) error {
	s.calls = append(s.calls, "append")
	return nil
}

func TestDryrunClassroom(t *testing.T) {
	remote := stub{
		courses: []courses.Course{
			{ID: "987654321", Name: "Y11 Chemistry"},
		},
	}

	dryrun := dryrunClassroom{&remote}
	ctx := context.Background()

	list, err := dryrun.ListCourses(ctx)
	if err != nil {
		t.Fatalf("Unexpected error listing courses (%v)", err)
	} else if !reflect.DeepEqual(list, remote.courses) {
		t.Errorf("Incorrect course list\n   expected: %v\n   got:      %v\n", remote.courses, list)
	}

	created, err := dryrun.CreateCourse(ctx, courses.Course{Name: "Y10 Physics"})
	if err != nil {
		t.Fatalf("Unexpected error creating course (%v)", err)
	} else if created.ID != DRYRUN_COURSE_ID {
		t.Errorf("Incorrect course ID\n   expected: %v\n   got:      %v\n", DRYRUN_COURSE_ID, created.ID)
	}

	patched, err := dryrun.PatchCourse(ctx, "987654321", courses.Course{Name: "Y11 Chemistry (Set 2)"}, []string{courses.FieldName})
	if err != nil {
		t.Fatalf("Unexpected error patching course (%v)", err)
	} else if patched.ID != "987654321" {
		t.Errorf("Incorrect course ID\n   expected: %v\n   got:      %v\n", "987654321", patched.ID)
	}

	if err := dryrun.AddTeacher(ctx, "987654321", "ms.curie@school.org"); err != nil {
		t.Errorf("Unexpected error adding teacher (%v)", err)
	}

	if err := dryrun.AddStudent(ctx, "987654321", "a@school.org"); err != nil {
		t.Errorf("Unexpected error adding student (%v)", err)
	}

	if !reflect.DeepEqual(remote.calls, []string{"list"}) {
		t.Errorf("Unexpected calls to classroom\n   expected: %v\n   got:      %v\n", []string{"list"}, remote.calls)
	}
}

func TestDryrunTable(t *testing.T) {
	table := stubTable{
		rows: [][]string{
			{"Course/Class Name", "Course ID"},
		},
	}

	dryrun := dryrunTable{&table}
	ctx := context.Background()

	for _, column := range []string{"course id", "Last Updated"} {
		if added, err := dryrun.EnsureColumn(ctx, column); err != nil {
			t.Errorf("Unexpected error adding column '%v' (%v)", column, err)
		} else if added {
			t.Errorf("Expected column '%v' not to be added", column)
		}
	}

	if err := dryrun.WriteCells(ctx, []courses.PendingWrite{{Row: 2, Column: 2, Value: "123456789"}}); err != nil {
		t.Errorf("Unexpected error writing cells (%v)", err)
	}

	if len(table.calls) != 0 {
		t.Errorf("Unexpected calls to table: %v", table.calls)
	}
}

func TestDryrunLog(t *testing.T) {
	log := stubLog{}
	dryrun := dryrunLog{&log}
	ctx := context.Background()

	if added, err := dryrun.EnsureHeader(ctx, courses.LogHeader); err != nil {
		t.Errorf("Unexpected error initialising log (%v)", err)
	} else if added {
		t.Errorf("Expected log header not to be added")
	}

	entries := []courses.LogEntry{
		{Timestamp: time.Now(), CourseName: "Y10 Physics", Action: courses.Created, CourseID: DRYRUN_COURSE_ID},
	}

	if err := dryrun.Append(ctx, entries); err != nil {
		t.Errorf("Unexpected error appending to log (%v)", err)
	}

	if len(log.calls) != 0 {
		t.Errorf("Unexpected calls to log: %v", log.calls)
	}
}

func TestSyncDryrun(t *testing.T) {
	remote := stub{}
	table := stubTable{
		rows: [][]string{
			{"Course/Class Name", "Course Leads this academic year", "Subject", "Year Group", "Students"},
			{"Y10 Physics", "ms.curie@school.org", "Physics", "Year 10", "a@school.org, b@school.org"},
		},
	}
	log := stubLog{}

	cmd := Sync{
		exclude: "Homeroom,Intervention",
		dryrun:  true,
	}

	batch := cmd.batch(&table, &log, &remote, &remote)

	summary, err := batch.Run(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error running dryrun sync (%v)", err)
	}

	if summary.Created != 1 {
		t.Errorf("Incorrect created count\n   expected: %v\n   got:      %v\n", 1, summary.Created)
	}

	if !reflect.DeepEqual(remote.calls, []string{"list"}) {
		t.Errorf("Unexpected calls to classroom\n   expected: %v\n   got:      %v\n", []string{"list"}, remote.calls)
	}

	if len(table.calls) != 0 {
		t.Errorf("Unexpected calls to table: %v", table.calls)
	}

	if len(log.calls) != 0 {
		t.Errorf("Unexpected calls to log: %v", log.calls)
	}
}

func TestSyncWithoutDryrun(t *testing.T) {
	remote := stub{}
	table := stubTable{
		rows: [][]string{
			{"Course/Class Name", "Course Leads this academic year", "Subject", "Year Group", "Students", "Course ID", "Last Updated"},
			{"Y10 Physics", "ms.curie@school.org", "Physics", "Year 10", "a@school.org"},
			{"Y10 Homeroom", "", "", "", ""},
		},
	}
	log := stubLog{}

	cmd := Sync{
		exclude: "Homeroom,Intervention",
	}

	batch := cmd.batch(&table, &log, &remote, &remote)

	summary, err := batch.Run(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error running sync (%v)", err)
	}

	if summary.Created != 1 || summary.Skipped != 1 {
		t.Errorf("Incorrect summary\n   expected: created:%v skipped:%v\n   got:      created:%v skipped:%v\n", 1, 1, summary.Created, summary.Skipped)
	}

	expected := []string{"list", "create", "teacher", "student"}
	if !reflect.DeepEqual(remote.calls, expected) {
		t.Errorf("Incorrect calls to classroom\n   expected: %v\n   got:      %v\n", expected, remote.calls)
	}

	if len(table.writes) == 0 || table.writes[0] != (courses.PendingWrite{Row: 2, Column: 6, Value: "123456789"}) {
		t.Errorf("Incorrect course ID write: %v", table.writes)
	}

	if !reflect.DeepEqual(log.calls, []string{"header", "append"}) {
		t.Errorf("Incorrect calls to log\n   expected: %v\n   got:      %v\n", []string{"header", "append"}, log.calls)
	}
}
