package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/models"
	"gorm.io/gorm"
)

var ErrInvalidResetCode = apperror.InvalidField("otp", "Invalid or expired code")

// ReplaceResetCode supersedes any earlier code of the user.
func (s *Store) ReplaceResetCode(ctx context.Context, userID uint, code string, expiresAt time.Time) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.PasswordReset{}).Error; err != nil {
			return mapDBError(err, "Failed to clear reset code")
		}
		row := models.PasswordReset{
			UserID:    userID,
			Code:      code,
			ExpiresAt: expiresAt,
			CreatedAt: s.now(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return mapDBError(err, "Failed to store reset code")
		}
		return nil
	})
}

// ConsumeResetCode verifies the code, sets the new password and deletes the
// code. Nothing changes unless all three steps succeed.
func (s *Store) ConsumeResetCode(ctx context.Context, userID uint, code, newPassword string, now time.Time) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.PasswordReset
		err := tx.Where("user_id = ? AND code = ? AND expires_at > ?", userID, code, now).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetCode
		}
		if err != nil {
			return mapDBError(err, "Failed to verify reset code")
		}

		if err := s.setPassword(tx, userID, newPassword); err != nil {
			return err
		}
		if err := tx.Delete(&row).Error; err != nil {
			return mapDBError(err, "Failed to consume reset code")
		}
		return nil
	})
}

// PurgeExpiredResetCodes removes codes that can no longer be used.
func (s *Store) PurgeExpiredResetCodes(ctx context.Context, now time.Time) (int64, error) {
	res := s.conn(ctx).Where("expires_at <= ?", now).Delete(&models.PasswordReset{})
	if res.Error != nil {
		return 0, mapDBError(res.Error, "Failed to purge reset codes")
	}
	return res.RowsAffected, nil
}
