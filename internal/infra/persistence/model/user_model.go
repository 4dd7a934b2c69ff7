// Package model holds the GORM persistence models and their domain mappers.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// UserModel mirrors the 'users' table. IDs are generated by the application (UUIDv7).
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	Phone        string    `gorm:"type:varchar(32)"`
	Address      string    `gorm:"type:text"`
	JoinDate     time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToUserDomain maps a row to the domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
		Phone:        m.Phone,
		Address:      m.Address,
		JoinDate:     m.JoinDate,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromUserDomain maps the domain entity to a row.
func FromUserDomain(u *entity.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		Phone:        u.Phone,
		Address:      u.Address,
		JoinDate:     u.JoinDate,
		UpdatedAt:    u.UpdatedAt,
	}
}
