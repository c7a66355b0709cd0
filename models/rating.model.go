package models

import "time"

type CourseRating struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CourseID    uint      `gorm:"not null;uniqueIndex:idx_course_ratings_course_user,priority:1" json:"course_id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_course_ratings_course_user,priority:2" json:"user_id"`
	RatingValue int       `gorm:"not null;check:rating_value >= 1 AND rating_value <= 5" json:"rating_value"`
	ReviewText  *string   `gorm:"type:text" json:"review_text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CourseRating) TableName() string { return "course_ratings" }
