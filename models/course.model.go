package models

import (
	"time"

	"gorm.io/datatypes"
)

// SubjectMaster lists the course codes a professor may open a course for.
type SubjectMaster struct {
	CourseCode  string `gorm:"column:course_code;primaryKey;size:20" json:"course_code"`
	SubjectName string `gorm:"size:200" json:"subject_name"`
}

func (SubjectMaster) TableName() string { return "subject_master" }

// Course media names are stored as single file names relative to the
// course folder (image/, vdo/, file/).
type Course struct {
	CourseID         uint      `gorm:"column:course_id;primaryKey" json:"course_id"`
	CourseCode       string    `gorm:"size:20;not null;index" json:"course_code"`
	CourseName       string    `gorm:"size:200" json:"course_name"`
	ShortDescription string    `gorm:"type:text" json:"short_description"`
	Description      string    `gorm:"type:text" json:"description"`
	Objective        string    `gorm:"type:text" json:"objective"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	NameImage        *string   `json:"name_image"`
	NameVdo          *string   `json:"name_vdo"`
	NameFile         *string   `json:"name_file"`
	UploadDate       time.Time `json:"upload_date"`
}

func (Course) TableName() string { return "courses" }

type VideoLesson struct {
	LessonID         uint           `gorm:"column:lesson_id;primaryKey" json:"lesson_id"`
	CourseID         uint           `gorm:"not null;index" json:"course_id"`
	LessonNo         int            `gorm:"not null" json:"lesson_no"`
	VideoName        string         `gorm:"size:200;not null" json:"video_name"`
	ShortDescription string         `gorm:"type:text" json:"short_description"`
	VideoPath        *string        `json:"video_path"`
	PdfPath          *string        `json:"pdf_path"`
	Segments         datatypes.JSON `json:"segments,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

func (VideoLesson) TableName() string { return "video_lessons" }

// CourseListing is a course row joined with its professor's name.
type CourseListing struct {
	Course
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (CourseListing) TableName() string { return "courses" }

func (c CourseListing) ProfessorName() string {
	return c.FirstName + " " + c.LastName
}
