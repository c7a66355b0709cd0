package courseController

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/config"
	"github.com/pattanan23/elearnnig-it/media"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/repository"
	courseValidator "github.com/pattanan23/elearnnig-it/validators/course"
)

type CourseController struct {
	Store    *repository.Store
	Cfg      *config.Config
	Uploader *media.Uploader
}

func NewCourseController(store *repository.Store, cfg *config.Config, uploader *media.Uploader) *CourseController {
	return &CourseController{Store: store, Cfg: cfg, Uploader: uploader}
}

func (cc *CourseController) ListSubjects(c *fiber.Ctx) error {
	subjects, err := cc.Store.ListSubjects(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully.", subjects)
}

// CreateCourse inserts the course row first, then stores its files. A file
// failure leaves the row in place with whatever media was already saved.
func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	ctx := c.UserContext()

	course, err := cc.Store.CreateCourse(ctx, repository.NewCourse{
		CourseCode:       reqData.CourseCode,
		CourseName:       reqData.CourseName,
		ShortDescription: reqData.ShortDescription,
		Description:      reqData.Description,
		Objective:        reqData.Objective,
		UserID:           reqData.UserID,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var saved repository.CourseMedia
	var uploadErr error
	if reqData.Image != nil {
		name, err := cc.Uploader.SaveCourseImage(reqData.UserID, course.CourseID, reqData.Image)
		if err != nil {
			uploadErr = err
		} else {
			saved.Image = &name
		}
	}
	if uploadErr == nil && reqData.Video != nil {
		name, err := cc.Uploader.SaveCourseVideo(reqData.UserID, course.CourseID, reqData.Video)
		if err != nil {
			uploadErr = err
		} else {
			saved.Video = &name
		}
	}
	if uploadErr == nil && reqData.PDF != nil {
		name, err := cc.Uploader.SaveCourseFile(reqData.UserID, course.CourseID, reqData.PDF)
		if err != nil {
			uploadErr = err
		} else {
			saved.File = &name
		}
	}

	if err := cc.Store.SetCourseMedia(ctx, course.CourseID, saved); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if uploadErr != nil {
		log.Printf("[UPLOAD] Course %d stored without all files: %v", course.CourseID, uploadErr)
		return middleware.ErrorResponse(c, uploadErr)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true,
		"Course details uploaded successfully! You can now upload video lessons.",
		fiber.Map{"course_id": course.CourseID})
}

func (cc *CourseController) UploadVideo(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLesson").(*courseValidator.UploadVideoRequest)
	ctx := c.UserContext()

	course, err := cc.Store.GetCourse(ctx, reqData.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	// Number the lesson after the last one
	lessonNo, err := cc.Store.NextLessonNo(ctx, course.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	// Store video, pdf and segments
	files, err := cc.Uploader.SaveLessonFiles(ctx, course.UserID, course.CourseID, lessonNo, reqData.Video, reqData.PDF)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	lesson, err := cc.Store.CreateLesson(ctx, repository.NewLesson{
		CourseID:         course.CourseID,
		LessonNo:         lessonNo,
		VideoName:        reqData.VideoName,
		ShortDescription: reqData.ShortDescription,
		VideoPath:        files.Video,
		PdfPath:          files.PDF,
		Segments:         files.Segments,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	base := BaseURL(c, cc.Cfg.PublicBaseURL)
	return middleware.JsonResponse(c, fiber.StatusCreated, true,
		fmt.Sprintf("Video lesson %d uploaded successfully!", lessonNo),
		LessonView(base, &course.Course, lesson))
}

func (cc *CourseController) ShowCourses(c *fiber.Ctx) error {
	courses, err := cc.Store.ListCourses(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	base := BaseURL(c, cc.Cfg.PublicBaseURL)
	out := make([]fiber.Map, 0, len(courses))
	for i := range courses {
		out = append(out, CourseSummary(base, cc.Cfg.UploadDir, &courses[i]))
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", out)
}

func (cc *CourseController) CourseDetail(c *fiber.Ctx) error {
	courseID := c.Locals("validatedID").(uint)
	ctx := c.UserContext()

	course, err := cc.Store.GetCourse(ctx, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	lessons, err := cc.Store.ListLessons(ctx, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	base := BaseURL(c, cc.Cfg.PublicBaseURL)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", CourseDetail(base, cc.Cfg.UploadDir, course, lessons))
}

func (cc *CourseController) CourseVideos(c *fiber.Ctx) error {
	courseID := c.Locals("validatedID").(uint)
	ctx := c.UserContext()

	course, err := cc.Store.GetCourse(ctx, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	lessons, err := cc.Store.ListLessons(ctx, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	base := BaseURL(c, cc.Cfg.PublicBaseURL)
	views := make([]fiber.Map, 0, len(lessons))
	for i := range lessons {
		views = append(views, LessonView(base, &course.Course, &lessons[i]))
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully.", fiber.Map{
		"course_id":   course.CourseID,
		"course_name": course.CourseName,
		"lessons":     views,
	})
}
