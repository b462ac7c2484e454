package traffic

import "github.com/harborview/realty-core/internal/models"

// LogVisitDTO is the request body for recording a page visit.
type LogVisitDTO struct {
	VisitorID string `json:"visitorId" binding:"required"`
	Page      string `json:"page"      binding:"required"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	City      string `json:"city"`
}

// countryCount is a single country aggregation row from GROUP BY queries.
type countryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// pageCount is a single page aggregation row from GROUP BY queries.
type pageCount struct {
	Page  string `json:"page"`
	Count int64  `json:"count"`
}

// Report is the admin analytics aggregate, recomputed on every call.
type Report struct {
	TotalVisits    int64                    `json:"totalVisits"`
	TodayVisits    int64                    `json:"todayVisits"`
	UniqueVisitors int64                    `json:"uniqueVisitors"`
	TopCountries   []countryCount           `json:"topCountries"`
	TopPages       []pageCount              `json:"topPages"`
	RecentVisits   []models.TrafficLogModel `json:"recentVisits"`
	DailyVisits    map[string]int64         `json:"dailyVisits"`
}
