package media

import (
	"github.com/disintegration/imaging"
)

const (
	ThumbWidth  = 600
	ThumbHeight = 400
)

// WriteThumbnail scales src to fit 600x400 and saves it as JPEG at dst.
func WriteThumbnail(src, dst string) error {
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}
	thumb := imaging.Fit(img, ThumbWidth, ThumbHeight, imaging.Lanczos)
	return imaging.Save(thumb, dst, imaging.JPEGQuality(85))
}
