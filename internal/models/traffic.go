package models

// TrafficLogModel is a single page-visit event. Rows are append-only: the
// API never updates or deletes them.
type TrafficLogModel struct {
	Base
	VisitorID string `json:"visitorId" gorm:"index;not null"`
	Country   string `json:"country"   gorm:"index"`
	Region    string `json:"region"`
	City      string `json:"city"`
	Page      string `json:"page"      gorm:"index;not null"`
}

func (TrafficLogModel) TableName() string { return "traffic_logs" }
