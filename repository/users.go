package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	StudentID string
	Password  string
	Role      string
}

// UserUpdate carries the editable profile columns. Nil fields are left alone.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	StudentID *string
	Role      *string
}

// Authenticate looks a user up by email or student id and checks the password.
func (s *Store) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	user, err := s.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user.PasswordHash == "" {
		return nil, apperror.Server(errors.New("empty password hash"), "Stored credentials are invalid")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return nil, apperror.Auth("Invalid password")
	default:
		return nil, apperror.Server(err, "Stored credentials are invalid")
	}
}

func (s *Store) FindUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	var user models.User
	err := s.conn(ctx).
		Where("email = ? OR student_id = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		return nil, mapDBError(err, "User not found")
	}
	return &user, nil
}

func (s *Store) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.conn(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, mapDBError(err, "User not found")
	}
	return &user, nil
}

// ListUsers returns users ordered by id, optionally filtered by role.
func (s *Store) ListUsers(ctx context.Context, role string) ([]models.User, error) {
	q := s.conn(ctx).Order("user_id ASC")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	users := []models.User{}
	if err := q.Find(&users).Error; err != nil {
		return nil, mapDBError(err, "Failed to fetch users")
	}
	return users, nil
}

func (s *Store) CreateUser(ctx context.Context, in NewUser) (*models.User, error) {
	db := s.conn(ctx)

	var studentID *string
	if sid := strings.TrimSpace(in.StudentID); sid != "" {
		studentID = &sid
	}
	if err := s.checkUnique(db, 0, in.Email, studentID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.saltRound)
	if err != nil {
		return nil, apperror.Server(err, "Failed to process your request!")
	}

	role := in.Role
	if role == "" {
		role = models.RoleStudent
	}
	user := models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        strings.TrimSpace(in.Email),
		StudentID:    studentID,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now(),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, mapDBError(err, "Failed to register user")
	}
	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, userID uint, in UserUpdate) (*models.User, error) {
	db := s.conn(ctx)
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	email := ""
	if in.Email != nil {
		email = strings.TrimSpace(*in.Email)
		updates["email"] = email
	}
	var studentID *string
	if in.StudentID != nil {
		if sid := strings.TrimSpace(*in.StudentID); sid != "" {
			studentID = &sid
			updates["student_id"] = sid
		} else {
			updates["student_id"] = nil
		}
	}
	if in.Role != nil {
		updates["role"] = *in.Role
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.checkUnique(db, userID, email, studentID); err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
		return nil, mapDBError(err, "Failed to update user")
	}
	return s.GetUser(ctx, userID)
}

// ChangePassword replaces the hash after verifying the current password.
func (s *Store) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return apperror.Auth("Current password is incorrect")
	}
	return s.setPassword(s.conn(ctx), userID, next)
}

func (s *Store) setPassword(db *gorm.DB, userID uint, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRound)
	if err != nil {
		return apperror.Server(err, "Failed to process your request!")
	}
	res := db.Model(&models.User{}).Where("user_id = ?", userID).Update("password_hash", string(hash))
	if res.Error != nil {
		return mapDBError(res.Error, "Failed to update password")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}

// checkUnique reports a field conflict when another user already owns the
// email or student id. excludeID skips the user being edited.
func (s *Store) checkUnique(db *gorm.DB, excludeID uint, email string, studentID *string) error {
	var count int64
	if email != "" {
		q := db.Model(&models.User{}).Where("email = ?", email)
		if excludeID != 0 {
			q = q.Where("user_id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return mapDBError(err, "Failed to check email")
		}
		if count > 0 {
			return apperror.Conflict("email", "Email is already registered!")
		}
	}
	if studentID != nil {
		q := db.Model(&models.User{}).Where("student_id = ?", *studentID)
		if excludeID != 0 {
			q = q.Where("user_id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return mapDBError(err, "Failed to check student id")
		}
		if count > 0 {
			return apperror.Conflict("student_id", "Student ID is already registered!")
		}
	}
	return nil
}
