package models

import "time"

// PostCategories is the fixed category enumeration for blog posts.
var PostCategories = []string{
	"buying-tips",
	"selling-strategies",
	"market-insights",
	"investment-guide",
	"property-management",
	"financing-loans",
}

// PostModel is a bilingual blog post.
type PostModel struct {
	Base
	Slug         string    `json:"slug"         gorm:"uniqueIndex;not null"`
	Title        string    `json:"title"        gorm:"not null"`
	TitleZh      string    `json:"titleZh"`
	Content      string    `json:"content"      gorm:"type:longtext"`
	ContentZh    string    `json:"contentZh"    gorm:"type:longtext"`
	Excerpt      string    `json:"excerpt"      gorm:"type:text"`
	ExcerptZh    string    `json:"excerptZh"    gorm:"type:text"`
	Category     string    `json:"category"     gorm:"index;not null"`
	Keywords     string    `json:"keywords"`
	PublishDate  time.Time `json:"publishDate"  gorm:"index"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	HeaderImage  string    `json:"headerImage"`
}

func (PostModel) TableName() string { return "posts" }
