package repository

import (
	"context"
	"time"

	"github.com/jinzhu/now"
	"github.com/pattanan23/elearnnig-it/models"
)

type DashboardStats struct {
	Students              int64 `json:"students"`
	Professors            int64 `json:"professors"`
	Admins                int64 `json:"admins"`
	Courses               int64 `json:"courses"`
	Lessons               int64 `json:"lessons"`
	CertificatesThisMonth int64 `json:"certificates_this_month"`
	ReportsToday          int64 `json:"reports_today"`
	PendingReports        int64 `json:"pending_reports"`
}

// DashboardStats aggregates the admin dashboard counters as of at.
func (s *Store) DashboardStats(ctx context.Context, at time.Time) (*DashboardStats, error) {
	db := s.conn(ctx)
	day := now.With(at)
	stats := &DashboardStats{}

	counts := []struct {
		dst   *int64
		model interface{}
		where string
		args  []interface{}
	}{
		{&stats.Students, &models.User{}, "role = ?", []interface{}{models.RoleStudent}},
		{&stats.Professors, &models.User{}, "role = ?", []interface{}{models.RoleProfessor}},
		{&stats.Admins, &models.User{}, "role = ?", []interface{}{models.RoleAdmin}},
		{&stats.Courses, &models.Course{}, "", nil},
		{&stats.Lessons, &models.VideoLesson{}, "", nil},
		{&stats.CertificatesThisMonth, &models.Certificate{}, "issue_date >= ? AND issue_date <= ?",
			[]interface{}{day.BeginningOfMonth(), day.EndOfMonth()}},
		{&stats.ReportsToday, &models.Report{}, "created_at >= ? AND created_at <= ?",
			[]interface{}{day.BeginningOfDay(), day.EndOfDay()}},
		{&stats.PendingReports, &models.Report{}, "status = ?", []interface{}{models.ReportPending}},
	}

	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != "" {
			q = q.Where(c.where, c.args...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, mapDBError(err, "Failed to fetch dashboard stats")
		}
	}
	return stats, nil
}
