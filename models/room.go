package models

import "time"

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
	RoomTypeDeluxe RoomType = "deluxe"
	RoomTypeFamily RoomType = "family"
)

var RoomTypes = []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe, RoomTypeFamily}

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusDirty       RoomStatus = "dirty"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusBlocked     RoomStatus = "blocked"
)

type Room struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Number       string     `json:"number" gorm:"uniqueIndex;size:16;not null"`
	Type         RoomType   `json:"type" gorm:"size:16;not null"`
	Floor        int        `json:"floor"`
	MaxOccupancy int        `json:"maxOccupancy" gorm:"not null;default:1"`
	BaseRate     float64    `json:"baseRate" gorm:"not null"`
	Status       RoomStatus `json:"status" gorm:"size:16;not null;default:available;index"`
	Description  string     `json:"description" gorm:"type:text"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}
