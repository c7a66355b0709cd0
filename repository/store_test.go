package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))

	store := New(db, bcrypt.MinCost)
	store.now = func() time.Time { return fixedNow }
	return store
}

func seedUser(t *testing.T, s *Store, email, studentID, role string) *models.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), NewUser{
		FirstName: "Somchai",
		LastName:  "Jaidee",
		Email:     email,
		StudentID: studentID,
		Password:  "secret123",
		Role:      role,
	})
	require.NoError(t, err)
	return user
}

func seedCourse(t *testing.T, s *Store, ownerID uint) *models.Course {
	t.Helper()
	ctx := context.Background()
	ok, err := s.SubjectExists(ctx, "IT101")
	require.NoError(t, err)
	if !ok {
		require.NoError(t, s.CreateSubject(ctx, "IT101", "Introduction to IT"))
	}
	course, err := s.CreateCourse(ctx, NewCourse{
		CourseCode: "IT101",
		CourseName: "Intro to IT",
		UserID:     ownerID,
	})
	require.NoError(t, err)
	return course
}

func seedLesson(t *testing.T, s *Store, courseID uint) *models.VideoLesson {
	t.Helper()
	ctx := context.Background()
	no, err := s.NextLessonNo(ctx, courseID)
	require.NoError(t, err)
	lesson, err := s.CreateLesson(ctx, NewLesson{CourseID: courseID, LessonNo: no, VideoName: fmt.Sprintf("Lesson %d", no)})
	require.NoError(t, err)
	return lesson
}

func TestAuthenticateByEmailAndStudentID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	created := seedUser(t, s, "a@example.com", "6400001", models.RoleStudent)

	byEmail, err := s.Authenticate(ctx, "a@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, byEmail.UserID)

	byStudentID, err := s.Authenticate(ctx, "6400001", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, byStudentID.Role)
}

func TestAuthenticateFailures(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@example.com", "6400001", models.RoleStudent)

	_, err := s.Authenticate(ctx, "nobody@example.com", "secret123")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = s.Authenticate(ctx, "a@example.com", "wrong")
	assert.True(t, apperror.Is(err, apperror.KindAuth))

	require.NoError(t, s.db.Model(&models.User{}).Where("user_id = ?", user.UserID).
		Update("password_hash", "not-a-bcrypt-hash").Error)
	_, err = s.Authenticate(ctx, "a@example.com", "secret123")
	assert.True(t, apperror.Is(err, apperror.KindServer))
}

func TestCreateUserConflicts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "a@example.com", "6400001", models.RoleStudent)

	_, err := s.CreateUser(ctx, NewUser{Email: "a@example.com", Password: "x", StudentID: "6400002"})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindConflict, appErr.Kind)
	assert.Equal(t, "email", appErr.Field)

	_, err = s.CreateUser(ctx, NewUser{Email: "b@example.com", Password: "x", StudentID: "6400001"})
	appErr, ok = apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "student_id", appErr.Field)

	// professors have no student id; several NULLs must not collide
	seedUser(t, s, "p1@example.com", "", models.RoleProfessor)
	seedUser(t, s, "p2@example.com", "", models.RoleProfessor)
}

func TestCreateUserStoresHashOnly(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "a@example.com", "", "")

	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestUpdateUserAndChangePassword(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := seedUser(t, s, "a@example.com", "6400001", models.RoleStudent)
	seedUser(t, s, "b@example.com", "6400002", models.RoleStudent)

	taken := "b@example.com"
	_, err := s.UpdateUser(ctx, a.UserID, UserUpdate{Email: &taken})
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	name := "Somsri"
	same := "a@example.com"
	updated, err := s.UpdateUser(ctx, a.UserID, UserUpdate{FirstName: &name, Email: &same})
	require.NoError(t, err)
	assert.Equal(t, "Somsri", updated.FirstName)

	assert.True(t, apperror.Is(s.ChangePassword(ctx, a.UserID, "wrong", "newpass123"), apperror.KindAuth))
	require.NoError(t, s.ChangePassword(ctx, a.UserID, "secret123", "newpass123"))
	_, err = s.Authenticate(ctx, "a@example.com", "newpass123")
	assert.NoError(t, err)
}

func TestListUsersByRole(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "s@example.com", "6400001", models.RoleStudent)
	seedUser(t, s, "p@example.com", "", models.RoleProfessor)

	professors, err := s.ListUsers(ctx, models.RoleProfessor)
	require.NoError(t, err)
	require.Len(t, professors, 1)
	assert.Equal(t, "p@example.com", professors[0].Email)

	all, err := s.ListUsers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
