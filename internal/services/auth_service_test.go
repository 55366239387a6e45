package services

import (
	"errors"
	"testing"

	"sentosa_backend/internal/auth"
	"sentosa_backend/internal/config"
	"sentosa_backend/internal/models"
	"sentosa_backend/internal/repositories"
	"sentosa_backend/internal/services/dto"
	"sentosa_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStaffRepo struct {
	byUsername map[string]*models.Staff
	byID       map[uint]*models.Staff

	created      *models.Staff
	createErr    error
	lastLoginErr error
	lastLoginID  uint
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{
		byUsername: map[string]*models.Staff{},
		byID:       map[uint]*models.Staff{},
	}
}

func (f *fakeStaffRepo) add(staff *models.Staff) {
	f.byUsername[staff.Username] = staff
	f.byID[staff.ID] = staff
}

func (f *fakeStaffRepo) FindByID(db *gorm.DB, id uint) (*models.Staff, error) {
	staff, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrStaffNotFound
	}
	return staff, nil
}

func (f *fakeStaffRepo) FindByUsername(db *gorm.DB, username string) (*models.Staff, error) {
	staff, ok := f.byUsername[username]
	if !ok {
		return nil, repositories.ErrStaffNotFound
	}
	return staff, nil
}

func (f *fakeStaffRepo) Create(db *gorm.DB, staff *models.Staff) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byUsername[staff.Username]; exists {
		return repositories.ErrStaffAlreadyExists
	}
	staff.ID = uint(len(f.byID) + 1)
	f.add(staff)
	f.created = staff
	return nil
}

func (f *fakeStaffRepo) UpdateLastLogin(db *gorm.DB, id uint) error {
	f.lastLoginID = id
	return f.lastLoginErr
}

func setAuthTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	config.AppConfig = cfg
}

func TestRegisterAndLogin(t *testing.T) {
	setAuthTestConfig(t)

	repo := newFakeStaffRepo()
	svc := NewAuthService(repo)

	err := svc.Register(nil, &dto.RegisterRequest{
		NamaStaff: "Ani",
		Username:  "ani1",
		Password:  "pw123",
		Jabatan:   "Admin",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	// Stored hash must never equal the raw password.
	assert.NotEqual(t, "pw123", repo.created.PasswordHash)

	resp, err := svc.Login(nil, &dto.LoginRequest{Username: "ani1", Password: "pw123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, repo.created.ID, repo.lastLoginID)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, repo.created.ID, claims.StaffID)
	assert.Equal(t, "Admin", claims.Jabatan)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	setAuthTestConfig(t)

	repo := newFakeStaffRepo()
	svc := NewAuthService(repo)

	req := &dto.RegisterRequest{NamaStaff: "Ani", Username: "ani1", Password: "pw123", Jabatan: "Admin"}
	require.NoError(t, svc.Register(nil, req))

	err := svc.Register(nil, req)
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

// Short passwords are stored as-is; no strength rule applies server-side.
func TestRegister_ShortPassword(t *testing.T) {
	setAuthTestConfig(t)

	repo := newFakeStaffRepo()
	svc := NewAuthService(repo)

	err := svc.Register(nil, &dto.RegisterRequest{NamaStaff: "Ani", Username: "ani1", Password: "pw", Jabatan: "Admin"})
	require.NoError(t, err)

	_, err = svc.Login(nil, &dto.LoginRequest{Username: "ani1", Password: "pw"})
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	setAuthTestConfig(t)

	repo := newFakeStaffRepo()
	svc := NewAuthService(repo)

	require.NoError(t, svc.Register(nil, &dto.RegisterRequest{
		NamaStaff: "Ani", Username: "ani1", Password: "pw123", Jabatan: "Admin",
	}))

	_, err := svc.Login(nil, &dto.LoginRequest{Username: "ani1", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	setAuthTestConfig(t)

	svc := NewAuthService(newFakeStaffRepo())

	_, err := svc.Login(nil, &dto.LoginRequest{Username: "ghost", Password: "pw123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_LastLoginWriteFailure(t *testing.T) {
	setAuthTestConfig(t)

	repo := newFakeStaffRepo()
	svc := NewAuthService(repo)

	require.NoError(t, svc.Register(nil, &dto.RegisterRequest{
		NamaStaff: "Ani", Username: "ani1", Password: "pw123", Jabatan: "Admin",
	}))

	// Valid credentials still fail when the timestamp write fails.
	repo.lastLoginErr = errors.New("disk full")
	_, err := svc.Login(nil, &dto.LoginRequest{Username: "ani1", Password: "pw123"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInternalError, appErr.Code)
}

func TestAuthenticate(t *testing.T) {
	setAuthTestConfig(t)

	repo := newFakeStaffRepo()
	repo.add(&models.Staff{ID: 9, NamaStaff: "Budi", Username: "budi", Jabatan: "Editor", Image: "budi.jpg"})
	svc := NewAuthService(repo)

	resp, err := svc.Authenticate(nil, &auth.Claims{StaffID: 9, Jabatan: "Editor"})
	require.NoError(t, err)

	assert.Equal(t, "Budi", resp.NamaStaff)
	assert.Equal(t, "Editor", resp.Jabatan)
	assert.Equal(t, "budi.jpg", resp.Image)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(9), claims.StaffID)
	assert.Equal(t, "budi.jpg", claims.Image)
}

func TestAuthenticate_StaffGone(t *testing.T) {
	setAuthTestConfig(t)

	svc := NewAuthService(newFakeStaffRepo())

	_, err := svc.Authenticate(nil, &auth.Claims{StaffID: 404, Jabatan: "Admin"})
	assert.ErrorIs(t, err, apperrors.ErrStaffNotFound)
}
