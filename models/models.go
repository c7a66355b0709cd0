package models

// All returns every model managed by migrations.
func All() []interface{} {
	return []interface{}{
		&User{},
		&SubjectMaster{},
		&Course{},
		&VideoLesson{},
		&VideoProgress{},
		&CourseRating{},
		&Certificate{},
		&PasswordReset{},
		&Report{},
	}
}
