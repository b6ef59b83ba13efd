package models

import "time"

type StaffRole string

const (
	RoleAdmin        StaffRole = "admin"
	RoleManager      StaffRole = "manager"
	RoleReceptionist StaffRole = "receptionist"
	RoleHousekeeping StaffRole = "housekeeping"
)

// Staff is an account of the front office or housekeeping team.
type Staff struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Role      StaffRole `json:"role" gorm:"size:32;not null"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Staff) TableName() string {
	return "staff"
}

func (r StaffRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleReceptionist, RoleHousekeeping:
		return true
	}
	return false
}
