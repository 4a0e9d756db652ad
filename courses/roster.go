package courses

import (
	"context"
	"errors"
	"fmt"
)

type TeacherResult struct {
	OK      bool
	Message string
}

type Enrollment struct {
	Added    int
	Existing int
	Failed   int
	OK       bool
	Message  string
}

// SetLeadTeacher adds the course lead as a co-teacher. Failures are logged and
// reported in the result, never returned.
func SetLeadTeacher(ctx context.Context, remote Classroom, courseID string, teacher string) TeacherResult {
	if teacher == "" {
		return TeacherResult{
			OK:      true,
			Message: "no course lead specified, current user remains as owner.",
		}
	}

	if err := remote.AddTeacher(ctx, courseID, teacher); err != nil && !errors.Is(err, ErrAlreadyExists) {
		warnf("failed to set head teacher for course: %v. error: %v", courseID, err)

		return TeacherResult{
			OK:      false,
			Message: fmt.Sprintf("failed to set head teacher: %v", err),
		}
	}

	infof("set %v as head teacher for course: %v", teacher, courseID)

	return TeacherResult{
		OK:      true,
		Message: fmt.Sprintf("%v set as head teacher.", teacher),
	}
}

// EnrollStudents adds each student to the course independently. A student that
// cannot be added is counted and logged but does not stop the remaining enrollments.
func EnrollStudents(ctx context.Context, remote Classroom, courseID string, students []string) Enrollment {
	enrollment := Enrollment{}

	infof("attempting to add %v students to course %v", len(students), courseID)

	for _, email := range students {
		err := remote.AddStudent(ctx, courseID, email)

		switch {
		case err == nil:
			enrollment.Added++
			debugf("added student: %v to course: %v", email, courseID)

		case errors.Is(err, ErrAlreadyExists):
			enrollment.Added++
			enrollment.Existing++
			debugf("student: %v already enrolled in course: %v", email, courseID)

		default:
			enrollment.Failed++
			warnf("failed to add student: %v to course: %v. error: %v", email, courseID, err)
		}
	}

	enrollment.OK = enrollment.Added > 0 || len(students) == 0
	enrollment.Message = fmt.Sprintf("added %v students. failed to add %v students.", enrollment.Added, enrollment.Failed)

	infof("student addition result: %v", enrollment.Message)

	return enrollment
}
