package media

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamingPolicy(t *testing.T) {
	assert.Equal(t, ".mp4", Ext("My Lecture.MP4"))
	assert.Equal(t, "", Ext("noext"))
	assert.Equal(t, "course_image.png", ImageFileName(".png"))
	assert.Equal(t, "course_vdo.mp4", CourseVideoFileName(".mp4"))
	assert.Equal(t, "course_file.pdf", CourseFileFileName(".pdf"))
	assert.Equal(t, "lesson_3", LessonDirName(3))
	assert.Equal(t, "lesson_3_vdo.mp4", LessonVideoFileName(3, ".mp4"))
	assert.Equal(t, "lesson_3_file.pdf", LessonPDFFileName(3, ".pdf"))
	assert.Equal(t, "lesson_3_vdo_part_2.mp4", SegmentFileName(3, 2, ".mp4"))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "7", "12"), CourseDir("data", 7, 12))
	assert.Equal(t, filepath.Join("data", "7", "12", "lessons", "lesson_1"), LessonDir("data", 7, 12, 1))
	assert.Equal(t, "/data/7/12/image/course_image.png", PublicPath(7, 12, ImageDir, "course_image.png"))
	assert.Equal(t, "/data/7/12/lessons/lesson_2/lesson_2_vdo.mp4", LessonPublicPath(7, 12, 2, "lesson_2_vdo.mp4"))
}
