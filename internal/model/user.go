package model

import (
	"time"

	"siap-spj-backend/internal/access"
)

type User struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Username  string      `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Nama      string      `json:"nama" gorm:"size:150"`
	Password  string      `json:"-" gorm:"not null"`
	Role      access.Role `json:"role" gorm:"size:40;not null"`
	CreatedAt time.Time   `json:"created_at"`
}
