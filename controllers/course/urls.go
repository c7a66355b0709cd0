package courseController

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/media"
	"github.com/pattanan23/elearnnig-it/models"
)

// BaseURL prefers the configured public origin over the request host.
func BaseURL(c *fiber.Ctx, override string) string {
	if override != "" {
		return strings.TrimRight(override, "/")
	}
	return c.BaseURL()
}

func ImageURL(base string, course *models.Course) string {
	if course.NameImage == nil || *course.NameImage == "" {
		return media.PlaceholderImage
	}
	return base + media.PublicPath(course.UserID, course.CourseID, media.ImageDir, *course.NameImage)
}

// ThumbURL points at the generated thumbnail, or nil when none was written
// under root.
func ThumbURL(base, root string, course *models.Course) interface{} {
	if course.NameImage == nil || *course.NameImage == "" {
		return nil
	}
	thumb := filepath.Join(media.CourseDir(root, course.UserID, course.CourseID), media.ImageDir, media.ThumbFileName())
	if _, err := os.Stat(thumb); err != nil {
		return nil
	}
	return base + media.PublicPath(course.UserID, course.CourseID, media.ImageDir, media.ThumbFileName())
}

func lessonFileURL(base string, course *models.Course, lesson *models.VideoLesson, name *string) interface{} {
	if name == nil || *name == "" {
		return nil
	}
	return base + media.LessonPublicPath(course.UserID, course.CourseID, lesson.LessonNo, *name)
}

func courseFileURL(base string, course *models.Course, dir string, name *string) interface{} {
	if name == nil || *name == "" {
		return nil
	}
	return base + media.PublicPath(course.UserID, course.CourseID, dir, *name)
}

func LessonView(base string, course *models.Course, lesson *models.VideoLesson) fiber.Map {
	view := fiber.Map{
		"lesson_id":         lesson.LessonID,
		"video_lesson_id":   lesson.LessonID,
		"lesson_no":         lesson.LessonNo,
		"video_name":        lesson.VideoName,
		"video_description": lesson.ShortDescription,
		"video_path":        lesson.VideoPath,
		"pdf_path":          lesson.PdfPath,
		"video_url":         lessonFileURL(base, course, lesson, lesson.VideoPath),
		"pdf_url":           lessonFileURL(base, course, lesson, lesson.PdfPath),
	}
	if len(lesson.Segments) > 0 {
		view["segments"] = lesson.Segments
	}
	return view
}

// CourseSummary is the listing shape used by show_courses and the admin views.
func CourseSummary(base, root string, course *models.CourseListing) fiber.Map {
	return fiber.Map{
		"course_id":         course.CourseID,
		"course_code":       course.CourseCode,
		"course_name":       course.CourseName,
		"short_description": course.ShortDescription,
		"user_id":           course.UserID,
		"image_url":         ImageURL(base, &course.Course),
		"thumb_url":         ThumbURL(base, root, &course.Course),
		"professor_name":    course.ProfessorName(),
		"upload_date":       course.UploadDate,
	}
}

func CourseDetail(base, root string, course *models.CourseListing, lessons []models.VideoLesson) fiber.Map {
	views := make([]fiber.Map, 0, len(lessons))
	for i := range lessons {
		views = append(views, LessonView(base, &course.Course, &lessons[i]))
	}

	detail := CourseSummary(base, root, course)
	detail["description"] = course.Description
	detail["objective"] = course.Objective
	detail["video_url"] = courseFileURL(base, &course.Course, media.VideoDir, course.NameVdo)
	detail["file_url"] = courseFileURL(base, &course.Course, media.FileDir, course.NameFile)
	detail["lessons"] = views
	return detail
}
