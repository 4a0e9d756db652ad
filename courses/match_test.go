package courses

import (
	"testing"
)

var listed = []Course{
	{ID: "c1", Name: "Biology 101"},
	{ID: "c2", Name: "Chemistry"},
	{ID: "c3", Name: "Biology 101"},
}

func TestMatchByID(t *testing.T) {
	course, ok := Match(Intent{Name: "Biology 101", CourseID: "c3"}, listed)
	if !ok {
		t.Fatalf("Expected match for course ID %v", "c3")
	}

	if course.ID != "c3" {
		t.Errorf("Incorrect course - expected:%v, got:%v", "c3", course.ID)
	}
}

func TestMatchByName(t *testing.T) {
	course, ok := Match(Intent{Name: "Biology 101", CourseID: "c9"}, listed)
	if !ok {
		t.Fatalf("Expected match for course name %v", "Biology 101")
	}

	if course.ID != "c1" {
		t.Errorf("Incorrect course - expected:%v, got:%v", "c1", course.ID)
	}
}

func TestMatchIsCaseSensitive(t *testing.T) {
	for _, name := range []string{"biology 101", "Biology  101", "Biology 101 "} {
		if course, ok := Match(Intent{Name: name}, listed); ok {
			t.Errorf("Unexpected match for %q: %v", name, course)
		}
	}
}

func TestMatchWithoutCourseID(t *testing.T) {
	courses := []Course{
		{ID: "", Name: "Physics"},
		{ID: "c4", Name: "Chemistry"},
	}

	course, ok := Match(Intent{Name: "Chemistry"}, courses)
	if !ok || course.ID != "c4" {
		t.Errorf("Incorrect match - expected:%v, got:%v", "c4", course)
	}
}

func TestMatchWithNoCourses(t *testing.T) {
	if _, ok := Match(Intent{Name: "Chemistry", CourseID: "c2"}, nil); ok {
		t.Errorf("Unexpected match in empty course list")
	}
}
