package models

// VideoCategories is the fixed category enumeration for videos.
var VideoCategories = []string{"buying", "selling", "tips"}

// VideoModel is a bilingual video entry.
type VideoModel struct {
	Base
	VideoURL      string `json:"videoUrl"      gorm:"uniqueIndex;not null"`
	Title         string `json:"title"         gorm:"not null"`
	TitleZh       string `json:"titleZh"`
	Category      string `json:"category"      gorm:"index;not null"`
	CoverImageURL string `json:"coverImageUrl" gorm:"not null"`
	Duration      string `json:"duration"` // "MM:SS" or "HH:MM:SS"
	Views         string `json:"views"`    // display string, not a counter
	DisplayOrder  int    `json:"displayOrder"  gorm:"index;default:0"`
}

func (VideoModel) TableName() string { return "videos" }
