package video

import (
	"errors"

	"github.com/harborview/realty-core/internal/models"
	"gorm.io/gorm"
)

// ErrVideoURLExists is returned when a create or update would collide with
// another video's URL.
var ErrVideoURLExists = errors.New("video url already exists")

// Service handles video business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns all videos, ordered by category, then display order, ties
// broken by newest first.
func (s *Service) List() ([]models.VideoModel, error) {
	var videos []models.VideoModel
	err := s.db.
		Order("category ASC, display_order ASC, created_at DESC").
		Find(&videos).Error
	return videos, err
}

// ListByCategory returns videos in one category, display order ascending,
// ties broken by newest first.
func (s *Service) ListByCategory(category string) ([]models.VideoModel, error) {
	var videos []models.VideoModel
	err := s.db.
		Where("category = ?", category).
		Order("display_order ASC, created_at DESC").
		Find(&videos).Error
	return videos, err
}

// GetByID fetches a single video by ID.
func (s *Service) GetByID(id string) (*models.VideoModel, error) {
	var video models.VideoModel
	if err := s.db.First(&video, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

// Create inserts a new video. The unique index on video_url backstops the
// pre-check, so a racing duplicate insert still comes back as
// ErrVideoURLExists.
func (s *Service) Create(dto *CreateVideoDTO) (*models.VideoModel, error) {
	taken, err := s.urlTaken(dto.VideoURL, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrVideoURLExists
	}

	video := models.VideoModel{
		VideoURL:      dto.VideoURL,
		Title:         dto.Title,
		TitleZh:       dto.TitleZh,
		Category:      dto.Category,
		CoverImageURL: dto.CoverImageURL,
		Duration:      dto.Duration,
		Views:         dto.Views,
	}
	if dto.DisplayOrder != nil {
		video.DisplayOrder = *dto.DisplayOrder
	}

	if err := s.db.Create(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrVideoURLExists
		}
		return nil, err
	}
	return &video, nil
}

// Update patches a video by ID. A videoUrl change is checked only against
// rows other than the one being updated.
func (s *Service) Update(id string, dto *UpdateVideoDTO) (*models.VideoModel, error) {
	video, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.VideoURL != nil && *dto.VideoURL != video.VideoURL {
		taken, err := s.urlTaken(*dto.VideoURL, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrVideoURLExists
		}
		updates["video_url"] = *dto.VideoURL
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.TitleZh != nil {
		updates["title_zh"] = *dto.TitleZh
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.CoverImageURL != nil {
		updates["cover_image_url"] = *dto.CoverImageURL
	}
	if dto.Duration != nil {
		updates["duration"] = *dto.Duration
	}
	if dto.Views != nil {
		updates["views"] = *dto.Views
	}
	if dto.DisplayOrder != nil {
		updates["display_order"] = *dto.DisplayOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(video).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrVideoURLExists
			}
			return nil, err
		}
	}
	return video, nil
}

// Delete removes a video by ID. Returns false when no row matched.
func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.VideoModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *Service) urlTaken(videoURL, excludeID string) (bool, error) {
	tx := s.db.Model(&models.VideoModel{}).Where("video_url = ?", videoURL)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
