package models

import "time"

// Staff is a back-office user able to log in to the admin panel.
type Staff struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	NamaStaff    string     `gorm:"column:nama_staff;not null" json:"nama_staff"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"column:password;not null" json:"-"`
	Jabatan      string     `gorm:"not null" json:"jabatan"`
	Image        string     `json:"image"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login"`
}

func (Staff) TableName() string {
	return "staff"
}
