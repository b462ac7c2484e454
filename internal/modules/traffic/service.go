package traffic

import (
	"time"

	"github.com/harborview/realty-core/internal/models"
	"gorm.io/gorm"
)

const (
	topN           = 10
	recentN        = 100
	dailyRangeDays = 30
)

// Service appends visit events and computes analytics aggregates.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Log appends one visit event. Rows are never updated or deleted.
func (s *Service) Log(dto *LogVisitDTO) error {
	return s.db.Create(&models.TrafficLogModel{
		VisitorID: dto.VisitorID,
		Country:   dto.Country,
		Region:    dto.Region,
		City:      dto.City,
		Page:      dto.Page,
	}).Error
}

// Analytics recomputes the full aggregate report from scratch.
func (s *Service) Analytics() (*Report, error) {
	report := &Report{
		TopCountries: []countryCount{},
		TopPages:     []pageCount{},
		RecentVisits: []models.TrafficLogModel{},
		DailyVisits:  map[string]int64{},
	}

	if err := s.db.Model(&models.TrafficLogModel{}).Count(&report.TotalVisits).Error; err != nil {
		return nil, err
	}

	todayStart := beginningOfDay(time.Now())
	if err := s.db.Model(&models.TrafficLogModel{}).
		Where("created_at >= ?", todayStart).
		Count(&report.TodayVisits).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.TrafficLogModel{}).
		Distinct("visitor_id").
		Count(&report.UniqueVisitors).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.TrafficLogModel{}).
		Select("country, COUNT(*) as count").
		Where("country <> ''").
		Group("country").
		Order("count DESC").
		Limit(topN).
		Scan(&report.TopCountries).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.TrafficLogModel{}).
		Select("page, COUNT(*) as count").
		Group("page").
		Order("count DESC").
		Limit(topN).
		Scan(&report.TopPages).Error; err != nil {
		return nil, err
	}

	if err := s.db.
		Order("created_at DESC").
		Limit(recentN).
		Find(&report.RecentVisits).Error; err != nil {
		return nil, err
	}

	daily, err := s.dailyBuckets(todayStart)
	if err != nil {
		return nil, err
	}
	report.DailyVisits = daily

	return report, nil
}

// dailyBuckets counts visits per ISO date over the trailing 30 days.
func (s *Service) dailyBuckets(todayStart time.Time) (map[string]int64, error) {
	rangeStart := todayStart.AddDate(0, 0, -(dailyRangeDays - 1))

	var rows []struct {
		CreatedAt time.Time
	}
	if err := s.db.Model(&models.TrafficLogModel{}).
		Select("created_at").
		Where("created_at >= ?", rangeStart).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string]int64, dailyRangeDays)
	for _, row := range rows {
		key := row.CreatedAt.In(time.Local).Format("2006-01-02")
		buckets[key]++
	}
	return buckets, nil
}

func beginningOfDay(t time.Time) time.Time {
	local := t.In(time.Local)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
