package services

import (
	"context"
	"math"
	"time"

	"hotelpms/constants"
	apperrors "hotelpms/errors"
	"hotelpms/models"
	"hotelpms/utils"

	"gorm.io/gorm"
)

const reportCacheTTL = 5 * time.Minute

// ReportService builds read-only projections over reservations, rooms and tasks.
type ReportService struct {
	db    *gorm.DB
	cache *Cache
}

func NewReportService(db *gorm.DB, cache *Cache) *ReportService {
	return &ReportService{db: db, cache: cache}
}

func (s *ReportService) Daily(ctx context.Context, date time.Time) (*models.DailyReport, error) {
	day := utils.DateOnly(date)
	key := constants.CacheReportPrefix + utils.FormatDate(day)

	var report models.DailyReport
	if s.cache.Get(ctx, key, &report) {
		return &report, nil
	}

	db := s.db.WithContext(ctx)
	report = models.DailyReport{Date: utils.FormatDate(day), RoomsByStatus: map[string]int{}}

	if err := db.Preload("Guest").Preload("Room").
		Where("status = ? AND check_in_date = ?", models.ReservationConfirmed, day).
		Order("id").Find(&report.Arrivals).Error; err != nil {
		return nil, apperrors.Database("load arrivals", err)
	}
	if err := db.Preload("Guest").Preload("Room").
		Where("status = ? AND check_out_date = ?", models.ReservationCheckedIn, day).
		Order("id").Find(&report.Departures).Error; err != nil {
		return nil, apperrors.Database("load departures", err)
	}
	if err := db.Model(&models.Reservation{}).
		Where("status = ?", models.ReservationCheckedIn).
		Count(&report.InHouse).Error; err != nil {
		return nil, apperrors.Database("count in-house", err)
	}

	var byStatus []struct {
		Status string
		Total  int
	}
	if err := db.Model(&models.Room{}).Select("status, COUNT(*) AS total").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, apperrors.Database("count rooms", err)
	}
	for _, row := range byStatus {
		report.RoomsByStatus[row.Status] = row.Total
		report.TotalRooms += int64(row.Total)
	}
	sellable := report.TotalRooms -
		int64(report.RoomsByStatus[string(models.RoomStatusMaintenance)]) -
		int64(report.RoomsByStatus[string(models.RoomStatusBlocked)])
	if sellable > 0 {
		rate := float64(report.RoomsByStatus[string(models.RoomStatusOccupied)]) / float64(sellable) * 100
		report.OccupancyRate = math.Round(rate*100) / 100
	}

	var revenue struct{ Total float64 }
	if err := db.Model(&models.Reservation{}).
		Select("COALESCE(SUM(room_rate), 0) AS total").
		Where("status IN ? AND check_in_date <= ? AND check_out_date > ?", activeStatuses(), day, day).
		Scan(&revenue).Error; err != nil {
		return nil, apperrors.Database("sum night revenue", err)
	}
	report.NightRevenue = math.Round(revenue.Total*100) / 100

	if err := db.Model(&models.HousekeepingTask{}).Where("status = ?", models.TaskPending).Count(&report.PendingTasks).Error; err != nil {
		return nil, apperrors.Database("count tasks", err)
	}
	if err := db.Model(&models.HousekeepingTask{}).Where("status = ?", models.TaskInProgress).Count(&report.InProgressTasks).Error; err != nil {
		return nil, apperrors.Database("count tasks", err)
	}

	s.cache.SetTTL(ctx, key, &report, reportCacheTTL)
	return &report, nil
}
