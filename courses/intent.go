package courses

import (
	"fmt"
	"strings"
)

const (
	ColumnName        = "Course/Class Name"
	ColumnLeads       = "Course Leads this academic year"
	ColumnSubject     = "Subject"
	ColumnYearGroup   = "Year Group"
	ColumnCourseID    = "Course ID"
	ColumnLastUpdated = "Last Updated"
	ColumnStudents    = "Students"
)

// Columns holds the 0-based index of each recognised column, or -1 if the column
// is not present in the header row.
type Columns struct {
	Name        int
	Leads       int
	Subject     int
	YearGroup   int
	CourseID    int
	LastUpdated int
	Students    int
}

func MakeColumns(header []string) (Columns, error) {
	columns := Columns{
		Name:        -1,
		Leads:       -1,
		Subject:     -1,
		YearGroup:   -1,
		CourseID:    -1,
		LastUpdated: -1,
		Students:    -1,
	}

	index := map[string]*int{
		normalise(ColumnName):        &columns.Name,
		normalise(ColumnLeads):       &columns.Leads,
		normalise(ColumnSubject):     &columns.Subject,
		normalise(ColumnYearGroup):   &columns.YearGroup,
		normalise(ColumnCourseID):    &columns.CourseID,
		normalise(ColumnLastUpdated): &columns.LastUpdated,
		normalise(ColumnStudents):    &columns.Students,
	}

	for i, v := range header {
		if p, ok := index[normalise(v)]; ok {
			if *p != -1 {
				return columns, fmt.Errorf("Duplicate column name '%s'", v)
			}

			*p = i
		}
	}

	if columns.Name == -1 {
		return columns, fmt.Errorf("Missing '%s' column", ColumnName)
	}

	return columns, nil
}

// Extract builds the course intent for a single row. A row without a course name
// fails with a ValidationError.
func Extract(row []string, columns Columns) (*Intent, error) {
	name := cell(row, columns.Name)
	teacher := strings.TrimSpace(cell(row, columns.Leads))
	subject := cell(row, columns.Subject)
	yearGroup := cell(row, columns.YearGroup)
	students := split(cell(row, columns.Students))

	infof("raw course data: name: %q, subject: %q, teacher: %q", name, subject, teacher)
	infof("extracted %v student emails for course: %v", len(students), name)

	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Raw: name}
	}

	return &Intent{
		Name:         strings.TrimSpace(name),
		TeacherEmail: teacher,
		Description:  fmt.Sprintf("Subject: %v\nYear Group: %v", orNA(subject), orNA(yearGroup)),
		CourseID:     strings.TrimSpace(cell(row, columns.CourseID)),
		Students:     students,
	}, nil
}

func cell(row []string, ix int) string {
	if ix < 0 || ix >= len(row) {
		return ""
	}

	return row[ix]
}

func split(v string) []string {
	list := []string{}
	for _, s := range strings.Split(v, ",") {
		if email := strings.TrimSpace(s); email != "" {
			list = append(list, email)
		}
	}

	return list
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}

	return v
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
