package repository

import (
	"context"

	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/models"
)

// ReportListing is a report joined with its author.
type ReportListing struct {
	models.Report
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (s *Store) CreateReport(ctx context.Context, userID uint, category, message string) (*models.Report, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	status := models.ReportPending
	report := models.Report{
		UserID:     userID,
		Category:   category,
		ReportMess: message,
		Status:     &status,
		CreatedAt:  s.now(),
	}
	if err := s.conn(ctx).Create(&report).Error; err != nil {
		return nil, mapDBError(err, "Failed to create report")
	}
	return &report, nil
}

// ListReports returns all reports, newest first, optionally by status.
func (s *Store) ListReports(ctx context.Context, status string) ([]ReportListing, error) {
	q := s.conn(ctx).Model(&models.Report{}).
		Select("reports.*, u.first_name, u.last_name, u.email").
		Joins("LEFT JOIN users u ON u.user_id = reports.user_id").
		Order("reports.created_at DESC").Order("reports.report_id DESC")
	if status != "" {
		q = q.Where("reports.status = ?", status)
	}
	reports := []ReportListing{}
	if err := q.Scan(&reports).Error; err != nil {
		return nil, mapDBError(err, "Failed to fetch reports")
	}
	return reports, nil
}

func (s *Store) ListUserReports(ctx context.Context, userID uint) ([]models.Report, error) {
	reports := []models.Report{}
	err := s.conn(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("report_id DESC").
		Find(&reports).Error
	if err != nil {
		return nil, mapDBError(err, "Failed to fetch reports")
	}
	return reports, nil
}

func (s *Store) UpdateReportStatus(ctx context.Context, reportID uint, status string) (*models.Report, error) {
	switch status {
	case models.ReportPending, models.ReportReviewed, models.ReportResolved:
	default:
		return nil, apperror.InvalidField("status", "Invalid report status")
	}
	res := s.conn(ctx).Model(&models.Report{}).Where("report_id = ?", reportID).Update("status", status)
	if res.Error != nil {
		return nil, mapDBError(res.Error, "Failed to update report")
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFound("Report not found")
	}

	var report models.Report
	if err := s.conn(ctx).First(&report, "report_id = ?", reportID).Error; err != nil {
		return nil, mapDBError(err, "Report not found")
	}
	return &report, nil
}
