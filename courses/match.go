package courses

// Match returns the first course with the intended course ID or, failing that, the
// first course with exactly the intended name.
func Match(intent Intent, courses []Course) (*Course, bool) {
	if intent.CourseID != "" {
		for i := range courses {
			if courses[i].ID == intent.CourseID {
				return &courses[i], true
			}
		}
	}

	for i := range courses {
		if courses[i].Name == intent.Name {
			return &courses[i], true
		}
	}

	return nil, false
}
