package repository

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NewCourse struct {
	CourseCode       string
	CourseName       string
	ShortDescription string
	Description      string
	Objective        string
	UserID           uint
}

// CourseUpdate carries the admin-editable columns. Nil fields are left alone.
type CourseUpdate struct {
	CourseCode       *string
	CourseName       *string
	ShortDescription *string
	Description      *string
	Objective        *string
}

// CourseMedia names the stored files of a course. Nil fields are left alone.
type CourseMedia struct {
	Image *string
	Video *string
	File  *string
}

type NewLesson struct {
	CourseID         uint
	LessonNo         int
	VideoName        string
	ShortDescription string
	VideoPath        *string
	PdfPath          *string
	Segments         []string
}

func (s *Store) SubjectExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.conn(ctx).Model(&models.SubjectMaster{}).
		Where("course_code = ?", strings.TrimSpace(code)).
		Count(&count).Error
	if err != nil {
		return false, mapDBError(err, "Failed to check course code")
	}
	return count > 0, nil
}

func (s *Store) ListSubjects(ctx context.Context) ([]models.SubjectMaster, error) {
	subjects := []models.SubjectMaster{}
	if err := s.conn(ctx).Order("course_code ASC").Find(&subjects).Error; err != nil {
		return nil, mapDBError(err, "Failed to fetch subjects")
	}
	return subjects, nil
}

// CreateSubject registers a course code in subject_master.
func (s *Store) CreateSubject(ctx context.Context, code, name string) error {
	code = strings.TrimSpace(code)
	ok, err := s.SubjectExists(ctx, code)
	if err != nil {
		return err
	}
	if ok {
		return apperror.Conflict("course_code", "Course code already exists!")
	}
	row := models.SubjectMaster{CourseCode: code, SubjectName: name}
	return mapDBError(s.conn(ctx).Create(&row).Error, "Failed to create subject")
}

// CreateCourse inserts the course row; the code must exist in subject_master.
func (s *Store) CreateCourse(ctx context.Context, in NewCourse) (*models.Course, error) {
	ok, err := s.SubjectExists(ctx, in.CourseCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("Course code not found in subject master")
	}

	course := models.Course{
		CourseCode:       strings.TrimSpace(in.CourseCode),
		CourseName:       in.CourseName,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		Objective:        in.Objective,
		UserID:           in.UserID,
		UploadDate:       s.now(),
	}
	if err := s.conn(ctx).Create(&course).Error; err != nil {
		return nil, mapDBError(err, "Failed to create course")
	}
	return &course, nil
}

func (s *Store) SetCourseMedia(ctx context.Context, courseID uint, media CourseMedia) error {
	updates := map[string]interface{}{}
	if media.Image != nil {
		updates["name_image"] = *media.Image
	}
	if media.Video != nil {
		updates["name_vdo"] = *media.Video
	}
	if media.File != nil {
		updates["name_file"] = *media.File
	}
	if len(updates) == 0 {
		return nil
	}
	res := s.conn(ctx).Model(&models.Course{}).Where("course_id = ?", courseID).Updates(updates)
	if res.Error != nil {
		return mapDBError(res.Error, "Failed to update course media")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("Course not found")
	}
	return nil
}

func (s *Store) courseListing(db *gorm.DB) *gorm.DB {
	return db.Model(&models.CourseListing{}).
		Select("courses.*, u.first_name, u.last_name").
		Joins("LEFT JOIN users u ON u.user_id = courses.user_id")
}

func (s *Store) GetCourse(ctx context.Context, courseID uint) (*models.CourseListing, error) {
	var course models.CourseListing
	err := s.courseListing(s.conn(ctx)).
		Where("courses.course_id = ?", courseID).
		Take(&course).Error
	if err != nil {
		return nil, mapDBError(err, "Course not found")
	}
	return &course, nil
}

// ListCourses returns every course, newest first.
func (s *Store) ListCourses(ctx context.Context) ([]models.CourseListing, error) {
	courses := []models.CourseListing{}
	err := s.courseListing(s.conn(ctx)).
		Order("courses.course_id DESC").
		Find(&courses).Error
	if err != nil {
		return nil, mapDBError(err, "Failed to fetch courses")
	}
	return courses, nil
}

func (s *Store) UpdateCourse(ctx context.Context, courseID uint, in CourseUpdate) (*models.CourseListing, error) {
	if _, err := s.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.CourseCode != nil {
		code := strings.TrimSpace(*in.CourseCode)
		ok, err := s.SubjectExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperror.NotFound("Course code not found in subject master")
		}
		updates["course_code"] = code
	}
	if in.CourseName != nil {
		updates["course_name"] = *in.CourseName
	}
	if in.ShortDescription != nil {
		updates["short_description"] = *in.ShortDescription
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Objective != nil {
		updates["objective"] = *in.Objective
	}
	if len(updates) > 0 {
		err := s.conn(ctx).Model(&models.Course{}).Where("course_id = ?", courseID).Updates(updates).Error
		if err != nil {
			return nil, mapDBError(err, "Failed to update course")
		}
	}
	return s.GetCourse(ctx, courseID)
}

// ListLessons returns a course's lessons in upload order.
func (s *Store) ListLessons(ctx context.Context, courseID uint) ([]models.VideoLesson, error) {
	lessons := []models.VideoLesson{}
	err := s.conn(ctx).
		Where("course_id = ?", courseID).
		Order("lesson_id ASC").
		Find(&lessons).Error
	if err != nil {
		return nil, mapDBError(err, "Failed to fetch lessons")
	}
	return lessons, nil
}

// NextLessonNo is the positional number the next uploaded lesson gets.
func (s *Store) NextLessonNo(ctx context.Context, courseID uint) (int, error) {
	var last int
	row := s.conn(ctx).Model(&models.VideoLesson{}).
		Select("COALESCE(MAX(lesson_no), 0)").
		Where("course_id = ?", courseID).
		Row()
	if err := row.Scan(&last); err != nil {
		return 0, mapDBError(err, "Failed to number lesson")
	}
	return last + 1, nil
}

func (s *Store) CreateLesson(ctx context.Context, in NewLesson) (*models.VideoLesson, error) {
	lesson := models.VideoLesson{
		CourseID:         in.CourseID,
		LessonNo:         in.LessonNo,
		VideoName:        in.VideoName,
		ShortDescription: in.ShortDescription,
		VideoPath:        in.VideoPath,
		PdfPath:          in.PdfPath,
		CreatedAt:        s.now(),
	}
	if len(in.Segments) > 0 {
		raw, err := json.Marshal(in.Segments)
		if err != nil {
			return nil, apperror.Server(err, "Failed to encode segments")
		}
		lesson.Segments = datatypes.JSON(raw)
	}
	if err := s.conn(ctx).Create(&lesson).Error; err != nil {
		return nil, mapDBError(err, "Failed to create lesson")
	}
	return &lesson, nil
}
