package repository

import (
	"context"
	"time"

	"github.com/pattanan23/elearnnig-it/models"
	"gorm.io/gorm/clause"
)

// IssueCertificateDate inserts the certificate unless one exists. issued is
// true only when this call wrote the row; the stored row is always returned.
func (s *Store) IssueCertificateDate(ctx context.Context, userID, courseID uint, date time.Time) (bool, *models.Certificate, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return false, nil, err
	}
	if _, err := s.GetCourse(ctx, courseID); err != nil {
		return false, nil, err
	}

	cert := models.Certificate{UserID: userID, CourseID: courseID, IssueDate: date}
	res := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoNothing: true,
	}).Create(&cert)
	if res.Error != nil {
		return false, nil, mapDBError(res.Error, "Failed to save certificate")
	}

	stored, err := s.GetCertificate(ctx, userID, courseID)
	if err != nil {
		return false, nil, err
	}
	return res.RowsAffected == 1, stored, nil
}

func (s *Store) GetCertificate(ctx context.Context, userID, courseID uint) (*models.Certificate, error) {
	var cert models.Certificate
	err := s.conn(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&cert).Error
	if err != nil {
		return nil, mapDBError(err, "Certificate not found")
	}
	return &cert, nil
}

// CertificateView joins the certificate with the names printed on it.
func (s *Store) CertificateView(ctx context.Context, userID, courseID uint) (*models.CertificateView, error) {
	var view models.CertificateView
	err := s.conn(ctx).
		Table("certificates AS ct").
		Select("ct.user_id, ct.course_id, u.first_name, u.last_name, c.course_name, c.course_code, ct.issue_date").
		Joins("JOIN users u ON u.user_id = ct.user_id").
		Joins("JOIN courses c ON c.course_id = ct.course_id").
		Where("ct.user_id = ? AND ct.course_id = ?", userID, courseID).
		Take(&view).Error
	if err != nil {
		return nil, mapDBError(err, "Certificate not found")
	}
	return &view, nil
}
