package models

import "time"

const (
	RoleStudent   = "student"
	RoleProfessor = "professor"
	RoleAdmin     = "admin"
)

type User struct {
	UserID       uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	FirstName    string    `gorm:"size:100;not null" json:"first_name"`
	LastName     string    `gorm:"size:100;not null" json:"last_name"`
	Email        string    `gorm:"size:150;not null;uniqueIndex:users_email_key" json:"email"`
	StudentID    *string   `gorm:"size:20;uniqueIndex:users_student_id_key" json:"student_id"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"size:20;not null;default:'student'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
