// Package media stores uploaded course files under a deterministic layout:
//
//	{root}/{userId}/{courseId}/image/course_image{ext}
//	{root}/{userId}/{courseId}/vdo/course_vdo{ext}
//	{root}/{userId}/{courseId}/file/course_file{ext}
//	{root}/{userId}/{courseId}/lessons/lesson_{n}/lesson_{n}_vdo{ext}
//
// Original upload names only contribute their extension.
package media

import (
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	ImageDir   = "image"
	VideoDir   = "vdo"
	FileDir    = "file"
	LessonsDir = "lessons"

	// PublicPrefix is the URL prefix the upload root is served under.
	PublicPrefix = "/data"

	// PlaceholderImage is shown for courses without an image.
	PlaceholderImage = "https://placehold.co/600x400.png"
)

// Ext returns the lowercased extension of an uploaded file name.
func Ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func CourseDir(root string, userID, courseID uint) string {
	return filepath.Join(root, id(userID), id(courseID))
}

func ImageFileName(ext string) string { return "course_image" + ext }

func ThumbFileName() string { return "course_image_thumb.jpg" }

func CourseVideoFileName(ext string) string { return "course_vdo" + ext }

func CourseFileFileName(ext string) string { return "course_file" + ext }

func LessonDirName(n int) string { return fmt.Sprintf("lesson_%d", n) }

func LessonVideoFileName(n int, ext string) string {
	return fmt.Sprintf("lesson_%d_vdo%s", n, ext)
}

func LessonPDFFileName(n int, ext string) string {
	return fmt.Sprintf("lesson_%d_file%s", n, ext)
}

// SegmentFileName names the i-th (1-based) segment of lesson n.
func SegmentFileName(n, i int, ext string) string {
	return fmt.Sprintf("lesson_%d_vdo_part_%d%s", n, i, ext)
}

// LessonDir is the on-disk folder of lesson n.
func LessonDir(root string, userID, courseID uint, n int) string {
	return filepath.Join(CourseDir(root, userID, courseID), LessonsDir, LessonDirName(n))
}

// PublicPath is the URL path of a stored file, e.g. /data/3/12/image/course_image.png.
func PublicPath(userID, courseID uint, elems ...string) string {
	parts := append([]string{PublicPrefix, id(userID), id(courseID)}, elems...)
	return path.Join(parts...)
}

// LessonPublicPath is the URL path of a file inside lesson n's folder.
func LessonPublicPath(userID, courseID uint, n int, name string) string {
	return PublicPath(userID, courseID, LessonsDir, LessonDirName(n), name)
}

func id(v uint) string { return strconv.FormatUint(uint64(v), 10) }
