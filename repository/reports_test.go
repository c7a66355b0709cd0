package repository

import (
	"context"
	"testing"

	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@example.com", "6400001", models.RoleStudent)

	report, err := s.CreateReport(ctx, user.UserID, "video", "Lesson 2 does not play")
	require.NoError(t, err)
	require.NotNil(t, report.Status)
	assert.Equal(t, models.ReportPending, *report.Status)

	updated, err := s.UpdateReportStatus(ctx, report.ReportID, models.ReportResolved)
	require.NoError(t, err)
	assert.Equal(t, models.ReportResolved, *updated.Status)

	pending, err := s.ListReports(ctx, models.ReportPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	all, err := s.ListReports(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "a@example.com", all[0].Email)

	mine, err := s.ListUserReports(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = s.UpdateReportStatus(ctx, 999, models.ReportResolved)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	_, err = s.UpdateReportStatus(ctx, report.ReportID, "archived")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestDashboardStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	prof := seedUser(t, s, "p@example.com", "", models.RoleProfessor)
	student := seedUser(t, s, "s@example.com", "6400001", models.RoleStudent)
	course := seedCourse(t, s, prof.UserID)
	seedLesson(t, s, course.CourseID)

	_, _, err := s.IssueCertificateDate(ctx, student.UserID, course.CourseID, fixedNow)
	require.NoError(t, err)
	_, err = s.CreateReport(ctx, student.UserID, "other", "hello")
	require.NoError(t, err)

	stats, err := s.DashboardStats(ctx, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Students)
	assert.Equal(t, int64(1), stats.Professors)
	assert.Equal(t, int64(1), stats.Courses)
	assert.Equal(t, int64(1), stats.Lessons)
	assert.Equal(t, int64(1), stats.CertificatesThisMonth)
	assert.Equal(t, int64(1), stats.ReportsToday)
	assert.Equal(t, int64(1), stats.PendingReports)
}
