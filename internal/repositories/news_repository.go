package repositories

import (
	"errors"

	"sentosa_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNewsNotFound = errors.New("news not found")

type NewsRepository interface {
	FindAll(db *gorm.DB) ([]models.News, error)
	FindByID(db *gorm.DB, id uint) (*models.News, error)
	Create(db *gorm.DB, news *models.News) error
	// Update writes title, category and content; the image column is only
	// touched when newImage is non-empty.
	Update(db *gorm.DB, id uint, title, category, content, newImage string) error
	Delete(db *gorm.DB, id uint) error
}

type NewsRepositoryImpl struct{}

func NewNewsRepository() NewsRepository {
	return &NewsRepositoryImpl{}
}

func (r *NewsRepositoryImpl) FindAll(db *gorm.DB) ([]models.News, error) {
	var news []models.News
	if err := db.Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

func (r *NewsRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.News, error) {
	var news models.News
	err := db.First(&news, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &news, nil
}

func (r *NewsRepositoryImpl) Create(db *gorm.DB, news *models.News) error {
	return db.Create(news).Error
}

func (r *NewsRepositoryImpl) Update(db *gorm.DB, id uint, title, category, content, newImage string) error {
	// Existence is checked up front. RowsAffected cannot distinguish a
	// missing row from a resubmission of identical values, since MySQL
	// reports changed rows.
	var existing models.News
	if err := db.Select("id").First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNewsNotFound
		}
		return err
	}

	updates := map[string]interface{}{
		"title":    title,
		"category": category,
		"content":  content,
	}
	if newImage != "" {
		updates["image"] = newImage
	}

	return db.Model(&models.News{}).Where("id = ?", id).Updates(updates).Error
}

func (r *NewsRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.News{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}
	return nil
}
