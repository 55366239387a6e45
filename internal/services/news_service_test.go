package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sentosa_backend/internal/models"
	"sentosa_backend/internal/repositories"
	"sentosa_backend/internal/services/dto"
	"sentosa_backend/internal/storage"
	"sentosa_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNewsRepo struct {
	rows   map[uint]*models.News
	nextID uint
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{rows: map[uint]*models.News{}, nextID: 1}
}

func (f *fakeNewsRepo) FindAll(db *gorm.DB) ([]models.News, error) {
	var out []models.News
	for _, row := range f.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (f *fakeNewsRepo) FindByID(db *gorm.DB, id uint) (*models.News, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, repositories.ErrNewsNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeNewsRepo) Create(db *gorm.DB, news *models.News) error {
	news.ID = f.nextID
	f.nextID++
	copied := *news
	f.rows[news.ID] = &copied
	return nil
}

func (f *fakeNewsRepo) Update(db *gorm.DB, id uint, title, category, content, newImage string) error {
	row, ok := f.rows[id]
	if !ok {
		return repositories.ErrNewsNotFound
	}
	row.Title = title
	row.Category = category
	row.Content = content
	if newImage != "" {
		row.Image = newImage
	}
	return nil
}

func (f *fakeNewsRepo) Delete(db *gorm.DB, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return repositories.ErrNewsNotFound
	}
	delete(f.rows, id)
	return nil
}

func newsTestService(t *testing.T) (NewsService, *fakeNewsRepo, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: dir})
	require.NoError(t, err)

	repo := newFakeNewsRepo()
	return NewNewsService(repo, store), repo, dir
}

func TestNewsCreate_StoresUpload(t *testing.T) {
	svc, repo, dir := newsTestService(t)

	req := &dto.NewsRequest{Title: "Opening", Category: "Company", Content: "Body"}
	upload := &NewsUpload{
		Reader:      strings.NewReader("fake image bytes"),
		Filename:    "photo.png",
		ContentType: "image/png",
	}

	news, err := svc.Create(context.Background(), testDB(), req, upload)
	require.NoError(t, err)
	require.NotZero(t, news.ID)

	// Stored name is timestamp-based, keeping only the extension.
	assert.True(t, strings.HasSuffix(news.Image, ".png"))
	assert.NotContains(t, news.Image, "photo")

	data, err := os.ReadFile(filepath.Join(dir, news.Image))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	stored, ok := repo.rows[news.ID]
	require.True(t, ok)
	assert.Equal(t, "Opening", stored.Title)
}

func TestNewsCreate_NoUpload(t *testing.T) {
	svc, repo, _ := newsTestService(t)

	news, err := svc.Create(context.Background(), testDB(), &dto.NewsRequest{Title: "Plain"}, nil)
	require.NoError(t, err)

	assert.Empty(t, news.Image)
	assert.Len(t, repo.rows, 1)
}

func TestNewsUpdate_ReplacesImage(t *testing.T) {
	svc, repo, dir := newsTestService(t)

	oldPath := filepath.Join(dir, "old.jpg")
	require.NoError(t, os.WriteFile(oldPath, []byte("old"), 0644))
	repo.rows[1] = &models.News{ID: 1, Title: "Before", Image: "old.jpg"}

	req := &dto.NewsUpdateRequest{Title: "After", Category: "Company", Content: "Updated"}
	upload := &NewsUpload{Reader: strings.NewReader("new"), Filename: "new.jpg", ContentType: "image/jpeg"}

	err := svc.Update(context.Background(), testDB(), 1, req, upload)
	require.NoError(t, err)

	row := repo.rows[1]
	assert.Equal(t, "After", row.Title)
	assert.NotEqual(t, "old.jpg", row.Image)
	assert.True(t, strings.HasSuffix(row.Image, ".jpg"))

	// The old file is removed on a detached goroutine.
	require.Eventually(t, func() bool {
		_, err := os.Stat(oldPath)
		return os.IsNotExist(err)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNewsUpdate_NoUploadKeepsImage(t *testing.T) {
	svc, repo, dir := newsTestService(t)

	oldPath := filepath.Join(dir, "keep.jpg")
	require.NoError(t, os.WriteFile(oldPath, []byte("keep"), 0644))
	repo.rows[1] = &models.News{ID: 1, Title: "Before", Image: "keep.jpg"}

	err := svc.Update(context.Background(), testDB(), 1, &dto.NewsUpdateRequest{Title: "After"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "keep.jpg", repo.rows[1].Image)
	_, statErr := os.Stat(oldPath)
	assert.NoError(t, statErr)
}

func TestNewsUpdate_NotFound(t *testing.T) {
	svc, _, _ := newsTestService(t)

	err := svc.Update(context.Background(), testDB(), 42, &dto.NewsUpdateRequest{Title: "X"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
}

func TestNewsDelete_RemovesRowAndFile(t *testing.T) {
	svc, repo, dir := newsTestService(t)

	imgPath := filepath.Join(dir, "gone.jpg")
	require.NoError(t, os.WriteFile(imgPath, []byte("gone"), 0644))
	repo.rows[1] = &models.News{ID: 1, Title: "Doomed", Image: "gone.jpg"}

	err := svc.Delete(context.Background(), testDB(), 1)
	require.NoError(t, err)

	assert.Empty(t, repo.rows)
	require.Eventually(t, func() bool {
		_, err := os.Stat(imgPath)
		return os.IsNotExist(err)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNewsDelete_NotFound(t *testing.T) {
	svc, _, _ := newsTestService(t)

	err := svc.Delete(context.Background(), testDB(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
}

func TestNewsGet_NotFound(t *testing.T) {
	svc, _, _ := newsTestService(t)

	_, err := svc.Get(testDB(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNewsNotFound)
}
