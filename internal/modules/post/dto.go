package post

import "github.com/harborview/realty-core/internal/models"

// CreatePostDTO is the request body for creating a post. The slug is never
// supplied by the caller; it is derived from the English title.
type CreatePostDTO struct {
	Title        string `json:"title"        binding:"required"`
	TitleZh      string `json:"titleZh"`
	Content      string `json:"content"      binding:"required"`
	ContentZh    string `json:"contentZh"`
	Excerpt      string `json:"excerpt"`
	ExcerptZh    string `json:"excerptZh"`
	Category     string `json:"category"     binding:"required,oneof=buying-tips selling-strategies market-insights investment-guide property-management financing-loans"`
	Keywords     string `json:"keywords"`
	ThumbnailURL string `json:"thumbnailUrl" binding:"omitempty,http_url"`
	HeaderImage  string `json:"headerImage"  binding:"omitempty,http_url"`
}

// UpdatePostDTO is the request body for updating a post (all fields optional).
type UpdatePostDTO struct {
	Slug         *string `json:"slug"`
	Title        *string `json:"title"`
	TitleZh      *string `json:"titleZh"`
	Content      *string `json:"content"`
	ContentZh    *string `json:"contentZh"`
	Excerpt      *string `json:"excerpt"`
	ExcerptZh    *string `json:"excerptZh"`
	Category     *string `json:"category"     binding:"omitempty,oneof=buying-tips selling-strategies market-insights investment-guide property-management financing-loans"`
	Keywords     *string `json:"keywords"`
	ThumbnailURL *string `json:"thumbnailUrl" binding:"omitempty,http_url"`
	HeaderImage  *string `json:"headerImage"  binding:"omitempty,http_url"`
}

// ListQuery holds query params for the public listing.
type ListQuery struct {
	Category string `form:"category"`
	Exclude  string `form:"exclude"`
}

// postDetail is the single-post response shape: the stored markdown plus
// its rendered HTML for direct page use.
type postDetail struct {
	models.PostModel
	ContentHTML   string `json:"contentHtml"`
	ContentZhHTML string `json:"contentZhHtml"`
}
