package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/api/classroom/v1"
	"google.golang.org/api/googleapi"

	"github.com/uhppoted/uhppoted-app-classroom/courses"
)

// gclassroom implements the classroom service and identity provider over the Google
// Classroom API. Every API call waits on the rate limiter.
type gclassroom struct {
	google  *classroom.Service
	limiter *rate.Limiter
}

func newClassroom(google *classroom.Service, requestsPerSecond float64) *gclassroom {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}

	return &gclassroom{
		google:  google,
		limiter: limiter,
	}
}

// ListCourses retrieves all the courses for which the current user is a teacher.
func (g *gclassroom) ListCourses(ctx context.Context) ([]courses.Course, error) {
	list := []courses.Course{}
	page := ""

	for {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := g.google.Courses.List().TeacherId("me")
		if page != "" {
			call.PageToken(page)
		}

		response, err := call.Context(ctx).Do()
		if err != nil {
			return nil, err
		}

		for _, c := range response.Courses {
			list = append(list, fromCourse(c))
		}

		if page = response.NextPageToken; page == "" {
			break
		}
	}

	return list, nil
}

func (g *gclassroom) CreateCourse(ctx context.Context, course courses.Course) (*courses.Course, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	created, err := g.google.Courses.Create(toCourse(course)).Context(ctx).Do()
	if err != nil {
		return nil, remoteError(err)
	}

	c := fromCourse(created)

	return &c, nil
}

func (g *gclassroom) PatchCourse(ctx context.Context, id string, course courses.Course, mask []string) (*courses.Course, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	updated, err := g.google.Courses.Patch(id, toCourse(course)).UpdateMask(strings.Join(mask, ",")).Context(ctx).Do()
	if err != nil {
		return nil, remoteError(err)
	}

	c := fromCourse(updated)

	return &c, nil
}

func (g *gclassroom) AddTeacher(ctx context.Context, courseID string, userID string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	teacher := classroom.Teacher{
		UserId: userID,
	}

	if _, err := g.google.Courses.Teachers.Create(courseID, &teacher).Context(ctx).Do(); err != nil {
		return remoteError(err)
	}

	return nil
}

func (g *gclassroom) AddStudent(ctx context.Context, courseID string, userID string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	student := classroom.Student{
		UserId: userID,
	}

	if _, err := g.google.Courses.Students.Create(courseID, &student).Context(ctx).Do(); err != nil {
		return remoteError(err)
	}

	return nil
}

func (g *gclassroom) CurrentUser(ctx context.Context) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	profile, err := g.google.UserProfiles.Get("me").Context(ctx).Do()
	if err != nil {
		return "", err
	}

	if profile.EmailAddress == "" {
		return "", fmt.Errorf("no e-mail address in user profile (missing %v scope?)", classroom.ClassroomProfileEmailsScope)
	}

	return profile.EmailAddress, nil
}

func fromCourse(c *classroom.Course) courses.Course {
	if c == nil {
		return courses.Course{}
	}

	return courses.Course{
		ID:                 c.Id,
		Name:               c.Name,
		OwnerID:            c.OwnerId,
		DescriptionHeading: c.DescriptionHeading,
		Description:        c.Description,
		CourseState:        c.CourseState,
	}
}

func toCourse(c courses.Course) *classroom.Course {
	return &classroom.Course{
		Id:                 c.ID,
		Name:               c.Name,
		OwnerId:            c.OwnerID,
		DescriptionHeading: c.DescriptionHeading,
		Description:        c.Description,
		CourseState:        c.CourseState,
	}
}

// remoteError maps a 409 Conflict to courses.ErrAlreadyExists.
func remoteError(err error) error {
	var e *googleapi.Error
	if errors.As(err, &e) {
		if e.Code == http.StatusConflict {
			return fmt.Errorf("%v (%w)", e.Message, courses.ErrAlreadyExists)
		}

		if e.Message != "" {
			return errors.New(e.Message)
		}
	}

	return err
}
