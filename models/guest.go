package models

import "time"

type Guest struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	FirstName   string    `json:"firstName" gorm:"size:100"`
	LastName    string    `json:"lastName" gorm:"size:100"`
	Phone       string    `json:"phone" gorm:"size:32"`
	IDType      string    `json:"idType" gorm:"size:32"`
	IDNumber    string    `json:"idNumber" gorm:"size:64"`
	Nationality string    `json:"nationality" gorm:"size:64"`
	Address     string    `json:"address" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (g Guest) FullName() string {
	switch {
	case g.FirstName == "":
		return g.LastName
	case g.LastName == "":
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}
