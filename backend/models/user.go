package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"unique;not null"`
	Name         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"default:user"` // user, moderator, admin
	Subscription string `gorm:"default:free"` // free, pro
	StudyTime    int    // horas disponíveis por semana
}

type LoginHistory struct {
	gorm.Model
	UserID    uint
	LoginTime time.Time
}
