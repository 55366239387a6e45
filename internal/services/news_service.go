package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"sentosa_backend/internal/logger"
	"sentosa_backend/internal/models"
	"sentosa_backend/internal/repositories"
	"sentosa_backend/internal/services/dto"
	"sentosa_backend/internal/storage"
	"sentosa_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// NewsUpload carries an incoming image file alongside its original name,
// which only contributes the extension to the stored filename.
type NewsUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

type NewsService interface {
	List(db *gorm.DB) ([]models.News, error)
	Get(db *gorm.DB, id uint) (*models.News, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.NewsRequest, upload *NewsUpload) (*models.News, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.NewsUpdateRequest, upload *NewsUpload) error
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

type NewsServiceImpl struct {
	newsRepo repositories.NewsRepository
	storage  storage.Storage
}

func NewNewsService(newsRepo repositories.NewsRepository, storage storage.Storage) NewsService {
	return &NewsServiceImpl{
		newsRepo: newsRepo,
		storage:  storage,
	}
}

func (s *NewsServiceImpl) List(db *gorm.DB) ([]models.News, error) {
	news, err := s.newsRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if news == nil {
		news = []models.News{}
	}
	return news, nil
}

func (s *NewsServiceImpl) Get(db *gorm.DB, id uint) (*models.News, error) {
	news, err := s.newsRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNewsNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return news, nil
}

func (s *NewsServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.NewsRequest, upload *NewsUpload) (*models.News, error) {
	var imageName string
	if upload != nil {
		name, err := s.storeUpload(ctx, upload)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		imageName = name
	}

	news := &models.News{
		Title:          req.Title,
		Category:       req.Category,
		Image:          imageName,
		Date:           req.Date,
		AuthorName:     req.AuthorName,
		AuthorRole:     req.AuthorRole,
		AuthorImageURL: req.AuthorImageURL,
		Content:        req.Content,
	}

	if err := s.newsRepo.Create(db, news); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return news, nil
}

func (s *NewsServiceImpl) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.NewsUpdateRequest, upload *NewsUpload) error {
	var newImage string

	if upload != nil {
		existing, err := s.newsRepo.FindByID(db, id)
		if err != nil {
			if apperrors.Is(err, repositories.ErrNewsNotFound) {
				return apperrors.ErrNewsNotFound
			}
			return apperrors.InternalError(err)
		}

		name, err := s.storeUpload(ctx, upload)
		if err != nil {
			return apperrors.InternalError(err)
		}
		newImage = name

		s.deleteFileDetached(existing.Image)
	}

	if err := s.newsRepo.Update(db, id, req.Title, req.Category, req.Content, newImage); err != nil {
		if apperrors.Is(err, repositories.ErrNewsNotFound) {
			return apperrors.ErrNewsNotFound
		}
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *NewsServiceImpl) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	existing, err := s.newsRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNewsNotFound) {
			return apperrors.ErrNewsNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.newsRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}

	s.deleteFileDetached(existing.Image)

	return nil
}

// storeUpload writes the file under a timestamp-based name, keeping only
// the original extension.
func (s *NewsServiceImpl) storeUpload(ctx context.Context, upload *NewsUpload) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(upload.Filename))
	if err := s.storage.Save(ctx, name, upload.Reader, upload.ContentType); err != nil {
		return "", err
	}
	return name, nil
}

// deleteFileDetached removes a stored image on a detached goroutine.
// Cleanup failures are logged and never fail the primary operation.
func (s *NewsServiceImpl) deleteFileDetached(name string) {
	if name == "" {
		return
	}
	go func() {
		if err := s.storage.Delete(context.Background(), name); err != nil {
			logger.Warn("failed to delete old image", "image", name, "error", err.Error())
		}
	}()
}
