package media

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/pattanan23/elearnnig-it/apperror"
)

// Uploader writes multipart files into the upload root.
type Uploader struct {
	Root      string
	Segmenter *Segmenter
}

func NewUploader(root string, segmenter *Segmenter) *Uploader {
	return &Uploader{Root: root, Segmenter: segmenter}
}

// LessonFiles lists the stored names of one lesson upload.
type LessonFiles struct {
	Video    *string
	PDF      *string
	Segments []string
}

// SaveCourseImage stores the course image and a 600x400 JPEG thumbnail next
// to it. A thumbnail failure is logged and does not fail the upload.
func (u *Uploader) SaveCourseImage(userID, courseID uint, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(CourseDir(u.Root, userID, courseID), ImageDir)
	name := ImageFileName(Ext(file.Filename))
	if err := saveFile(file, dir, name); err != nil {
		return "", err
	}

	if err := WriteThumbnail(filepath.Join(dir, name), filepath.Join(dir, ThumbFileName())); err != nil {
		log.Printf("[UPLOAD] Thumbnail skipped for course %d: %v", courseID, err)
	}
	return name, nil
}

func (u *Uploader) SaveCourseVideo(userID, courseID uint, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(CourseDir(u.Root, userID, courseID), VideoDir)
	name := CourseVideoFileName(Ext(file.Filename))
	return name, saveFile(file, dir, name)
}

func (u *Uploader) SaveCourseFile(userID, courseID uint, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(CourseDir(u.Root, userID, courseID), FileDir)
	name := CourseFileFileName(Ext(file.Filename))
	return name, saveFile(file, dir, name)
}

// SaveLessonFiles stores lesson n's video and optional pdf, then segments the
// video when a segmenter is enabled.
func (u *Uploader) SaveLessonFiles(ctx context.Context, userID, courseID uint, n int, video, pdf *multipart.FileHeader) (*LessonFiles, error) {
	dir := LessonDir(u.Root, userID, courseID, n)
	out := &LessonFiles{}

	if video != nil {
		ext := Ext(video.Filename)
		name := LessonVideoFileName(n, ext)
		if err := saveFile(video, dir, name); err != nil {
			return nil, err
		}
		out.Video = &name

		if u.Segmenter.Enabled() {
			src, err := video.Open()
			if err != nil {
				return nil, apperror.Storage(err, "Failed to read uploaded video")
			}
			segments, err := u.Segmenter.Split(ctx, src, dir, n, ext)
			src.Close()
			if err != nil {
				return nil, err
			}
			out.Segments = segments
		}
	}

	if pdf != nil {
		name := LessonPDFFileName(n, Ext(pdf.Filename))
		if err := saveFile(pdf, dir, name); err != nil {
			return nil, err
		}
		out.PDF = &name
	}
	return out, nil
}

// saveFile copies an uploaded part to dir/name. MkdirAll makes concurrent
// uploads into the same course folder harmless.
func saveFile(file *multipart.FileHeader, dir, name string) error {
	src, err := file.Open()
	if err != nil {
		return apperror.Storage(err, "Failed to read uploaded file")
	}
	defer src.Close()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperror.Storage(err, "Failed to create upload folder")
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return apperror.Storage(err, "Failed to save file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return apperror.Storage(err, "Failed to save file")
	}
	return nil
}
