package repository

import (
	"context"

	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	MinRating = 1
	MaxRating = 5
)

// UpsertRating stores the user's rating of a course and puts the course's
// first lesson back into review at zero seconds. Both writes commit together.
func (s *Store) UpsertRating(ctx context.Context, courseID, userID uint, value int, review *string) (*models.CourseRating, error) {
	if value < MinRating || value > MaxRating {
		return nil, apperror.InvalidField("rating", "Rating must be between 1 and 5")
	}

	ts := s.now()
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.Select("course_id").First(&course, "course_id = ?", courseID).Error; err != nil {
			return mapDBError(err, "Course not found")
		}

		rating := models.CourseRating{
			CourseID:    courseID,
			UserID:      userID,
			RatingValue: value,
			ReviewText:  review,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating_value", "review_text", "updated_at"}),
		}).Create(&rating).Error; err != nil {
			return mapDBError(err, "Failed to save rating")
		}

		var first models.VideoLesson
		err := tx.Select("lesson_id").
			Where("course_id = ?", courseID).
			Order("lesson_id ASC").
			First(&first).Error
		if err != nil {
			return mapDBError(err, "Course has no lessons")
		}

		return upsertProgress(tx, ProgressInput{
			UserID:   userID,
			CourseID: courseID,
			LessonID: first.LessonID,
			Status:   models.StatusReview,
		}, ts)
	})
	if err != nil {
		return nil, err
	}
	return s.GetRating(ctx, userID, courseID)
}

func (s *Store) GetRating(ctx context.Context, userID, courseID uint) (*models.CourseRating, error) {
	var rating models.CourseRating
	err := s.conn(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&rating).Error
	if err != nil {
		return nil, mapDBError(err, "Rating not found")
	}
	return &rating, nil
}
