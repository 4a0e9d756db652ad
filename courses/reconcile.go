package courses

import (
	"context"
	"strings"
)

type Result struct {
	Action Action
	Course Course
	Fields []string
}

// Reconcile creates the intended course if there is no existing course, or patches
// the fields of the existing course that differ from the intent. Remote failures
// are returned to the caller.
func Reconcile(ctx context.Context, remote Classroom, existing *Course, intent Intent, user string) (Result, error) {
	course := Course{
		Name:               intent.Name,
		DescriptionHeading: intent.Name,
		Description:        intent.Description,
		CourseState:        ACTIVE,
	}

	if existing == nil {
		infof("no existing course found. creating new course: %v", intent.Name)

		course.OwnerID = user
		if intent.TeacherEmail != "" {
			course.OwnerID = intent.TeacherEmail
		}

		created, err := remote.CreateCourse(ctx, course)
		if err != nil {
			return Result{}, &RemoteCallError{Op: "create course", Err: err}
		}

		return Result{
			Action: Created,
			Course: deref(created),
			Fields: []string{FieldName, FieldDescriptionHeading, FieldDescription, FieldOwnerID},
		}, nil
	}

	infof("existing course found: %v", intent.Name)

	fields := diff(*existing, course)
	if intent.TeacherEmail != "" && existing.OwnerID != intent.TeacherEmail {
		course.OwnerID = intent.TeacherEmail
		fields = append(fields, FieldOwnerID)
	}

	if len(fields) == 0 {
		infof("no updates needed for: %v", intent.Name)

		return Result{
			Action: NoChange,
			Course: *existing,
			Fields: []string{},
		}, nil
	}

	updated, err := remote.PatchCourse(ctx, existing.ID, course, fields)
	if err != nil {
		return Result{}, &RemoteCallError{Op: "patch course", Err: err}
	}

	infof("course details updated for: %v. updated fields: %v", intent.Name, strings.Join(fields, ","))

	return Result{
		Action: Updated,
		Course: deref(updated),
		Fields: fields,
	}, nil
}

// diff compares the name and description fields exactly, without any normalisation.
func diff(remote, intended Course) []string {
	fields := []string{}

	if remote.Name != intended.Name {
		fields = append(fields, FieldName)
	}

	if remote.DescriptionHeading != intended.DescriptionHeading {
		fields = append(fields, FieldDescriptionHeading)
	}

	if remote.Description != intended.Description {
		fields = append(fields, FieldDescription)
	}

	return fields
}

func deref(c *Course) Course {
	if c == nil {
		return Course{}
	}

	return *c
}
