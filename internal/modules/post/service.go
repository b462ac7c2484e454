package post

import (
	"errors"
	"time"

	"github.com/harborview/realty-core/internal/models"
	"github.com/harborview/realty-core/internal/pkg/pagination"
	"github.com/harborview/realty-core/internal/pkg/response"
	"gorm.io/gorm"
)

// ErrSlugExists is returned when a create or update would collide with
// another post's slug.
var ErrSlugExists = errors.New("slug already exists")

// Service handles blog post business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// AdminList returns every post, newest publish date first.
func (s *Service) AdminList() ([]models.PostModel, error) {
	var posts []models.PostModel
	err := s.db.Order("publish_date DESC").Find(&posts).Error
	return posts, err
}

// PublicList returns a page of posts filtered by category and/or an
// excluded id. An unrecognized category simply matches nothing.
func (s *Service) PublicList(q pagination.Query, lq ListQuery) ([]models.PostModel, response.Pagination, error) {
	tx := s.db.Model(&models.PostModel{}).Order("publish_date DESC")
	if lq.Category != "" {
		tx = tx.Where("category = ?", lq.Category)
	}
	if lq.Exclude != "" {
		tx = tx.Where("id <> ?", lq.Exclude)
	}

	var posts []models.PostModel
	pag, err := pagination.Paginate(tx, q, &posts)
	return posts, pag, err
}

// Featured returns the single most-recently-published post, or nil when
// the store is empty.
func (s *Service) Featured() (*models.PostModel, error) {
	var post models.PostModel
	if err := s.db.Order("publish_date DESC").First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetBySlug fetches a single post by slug.
func (s *Service) GetBySlug(slug string) (*models.PostModel, error) {
	var post models.PostModel
	if err := s.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByID fetches a single post by ID.
func (s *Service) GetByID(id string) (*models.PostModel, error) {
	var post models.PostModel
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post. The slug is derived from the English title;
// a title without alphanumerics falls back to a random slug. The unique
// index backstops the pre-check, so a racing duplicate insert still comes
// back as ErrSlugExists.
func (s *Service) Create(dto *CreatePostDTO) (*models.PostModel, error) {
	slug := Slugify(dto.Title)
	if slug == "" {
		var err error
		if slug, err = s.randomUnusedSlug(); err != nil {
			return nil, err
		}
	} else {
		taken, err := s.slugTaken(slug, "")
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugExists
		}
	}

	post := models.PostModel{
		Slug:         slug,
		Title:        dto.Title,
		TitleZh:      dto.TitleZh,
		Content:      dto.Content,
		ContentZh:    dto.ContentZh,
		Excerpt:      dto.Excerpt,
		ExcerptZh:    dto.ExcerptZh,
		Category:     dto.Category,
		Keywords:     dto.Keywords,
		PublishDate:  time.Now(),
		ThumbnailURL: dto.ThumbnailURL,
		HeaderImage:  dto.HeaderImage,
	}
	if err := s.db.Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugExists
		}
		return nil, err
	}
	return &post, nil
}

// Update patches a post by ID. Only supplied fields change. A slug change
// that collides with a different post fails with ErrSlugExists; setting a
// post's slug to its own current value is a no-op and succeeds.
func (s *Service) Update(id string, dto *UpdatePostDTO) (*models.PostModel, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Slug != nil && *dto.Slug != post.Slug {
		taken, err := s.slugTaken(*dto.Slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugExists
		}
		updates["slug"] = *dto.Slug
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.TitleZh != nil {
		updates["title_zh"] = *dto.TitleZh
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.ContentZh != nil {
		updates["content_zh"] = *dto.ContentZh
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.ExcerptZh != nil {
		updates["excerpt_zh"] = *dto.ExcerptZh
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.Keywords != nil {
		updates["keywords"] = *dto.Keywords
	}
	if dto.ThumbnailURL != nil {
		updates["thumbnail_url"] = *dto.ThumbnailURL
	}
	if dto.HeaderImage != nil {
		updates["header_image"] = *dto.HeaderImage
	}

	if len(updates) > 0 {
		if err := s.db.Model(post).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrSlugExists
			}
			return nil, err
		}
	}
	return post, nil
}

// Delete removes a post by ID. Returns false when no row matched.
func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.PostModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *Service) slugTaken(slug, excludeID string) (bool, error) {
	tx := s.db.Model(&models.PostModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Service) randomUnusedSlug() (string, error) {
	for {
		slug := randomSlug(slugFallbackLen)
		taken, err := s.slugTaken(slug, "")
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
	}
}
