package services

import (
	"sentosa_backend/internal/auth"
	"sentosa_backend/internal/models"
	"sentosa_backend/internal/repositories"
	"sentosa_backend/internal/services/dto"
	"sentosa_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Authenticate serves the /verify flow: it re-fetches the staff row for
	// the token's subject and re-mints a fresh token with the same claim
	// shape.
	Authenticate(db *gorm.DB, claims *auth.Claims) (*dto.VerifyResponse, error)
}

type AuthServiceImpl struct {
	staffRepo repositories.StaffRepository
}

func NewAuthService(staffRepo repositories.StaffRepository) AuthService {
	return &AuthServiceImpl{staffRepo: staffRepo}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) error {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	staff := &models.Staff{
		NamaStaff:    req.NamaStaff,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Jabatan:      req.Jabatan,
	}

	if err := s.staffRepo.Create(db, staff); err != nil {
		if apperrors.Is(err, repositories.ErrStaffAlreadyExists) {
			return apperrors.ErrUsernameAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	staff, err := s.staffRepo.FindByUsername(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStaffNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, staff.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// The timestamp write happens before minting: a failed write fails the
	// login even though the credentials were valid.
	if err := s.staffRepo.UpdateLastLogin(db, staff.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(staff.ID, staff.Jabatan, staff.Image)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{Token: token}, nil
}

func (s *AuthServiceImpl) Authenticate(db *gorm.DB, claims *auth.Claims) (*dto.VerifyResponse, error) {
	staff, err := s.staffRepo.FindByID(db, claims.StaffID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStaffNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Role comes from the presented token, name and avatar from the store.
	token, err := auth.GenerateToken(claims.StaffID, claims.Jabatan, staff.Image)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.VerifyResponse{
		NamaStaff: staff.NamaStaff,
		Jabatan:   claims.Jabatan,
		Image:     staff.Image,
		Token:     token,
	}, nil
}
