// Package repository owns every SQL statement of the application. Each
// method runs on the injected *gorm.DB and honours the request context.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pattanan23/elearnnig-it/apperror"
	"gorm.io/gorm"
)

type Store struct {
	db        *gorm.DB
	saltRound int
	now       func() time.Time
}

func New(db *gorm.DB, saltRound int) *Store {
	return &Store{db: db, saltRound: saltRound, now: time.Now}
}

// DB exposes the handle for health checks.
func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// constraintFields maps unique index names to the request field they guard.
var constraintFields = map[string]string{
	"users_email_key":      "email",
	"users_student_id_key": "student_id",
}

// mapDBError turns driver errors into application errors. Unknown errors are
// wrapped as server errors so their text never reaches a client.
func mapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.As(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(msg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch constraintFields[pgErr.ConstraintName] {
			case "email":
				return apperror.Conflict("email", "Email is already registered!")
			case "student_id":
				return apperror.Conflict("student_id", "Student ID is already registered!")
			}
			return apperror.Conflict("", "Duplicate record")
		case "23503":
			return apperror.NotFound("Referenced record not found")
		}
	}
	return apperror.Server(err, msg)
}
