package video

import "regexp"

// durationPattern accepts "MM:SS" or "HH:MM:SS" display durations.
var durationPattern = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

// CreateVideoDTO is the request body for creating a video.
type CreateVideoDTO struct {
	VideoURL      string `json:"videoUrl"      binding:"required,http_url"`
	Title         string `json:"title"         binding:"required"`
	TitleZh       string `json:"titleZh"`
	Category      string `json:"category"      binding:"required,oneof=buying selling tips"`
	CoverImageURL string `json:"coverImageUrl" binding:"required,http_url"`
	Duration      string `json:"duration"      binding:"required"`
	Views         string `json:"views"`
	DisplayOrder  *int   `json:"displayOrder"`
}

// UpdateVideoDTO is the request body for updating a video (all fields optional).
type UpdateVideoDTO struct {
	VideoURL      *string `json:"videoUrl"      binding:"omitempty,http_url"`
	Title         *string `json:"title"`
	TitleZh       *string `json:"titleZh"`
	Category      *string `json:"category"      binding:"omitempty,oneof=buying selling tips"`
	CoverImageURL *string `json:"coverImageUrl" binding:"omitempty,http_url"`
	Duration      *string `json:"duration"`
	Views         *string `json:"views"`
	DisplayOrder  *int    `json:"displayOrder"`
}

// ListQuery holds query params for the public video listing.
type ListQuery struct {
	Category string `form:"category"`
}

func validDuration(d string) bool {
	return durationPattern.MatchString(d)
}
