package services

import (
	"context"

	"sentosa_backend/internal/models"
	"sentosa_backend/internal/repositories"
	"sentosa_backend/internal/services/dto"
	"sentosa_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type JobService interface {
	List(db *gorm.DB) ([]repositories.JobListRow, error)
	GetDetail(ctx context.Context, db *gorm.DB, id uint) (*dto.JobDetailResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) List(db *gorm.DB) ([]repositories.JobListRow, error) {
	rows, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if rows == nil {
		rows = []repositories.JobListRow{}
	}
	return rows, nil
}

// GetDetail composes the denormalized position view. The primary row is
// fetched first; the four child lookups then run concurrently and the merge
// only happens once every one of them has succeeded. A single failed lookup
// fails the whole call — partial views are never returned.
func (s *JobServiceImpl) GetDetail(ctx context.Context, db *gorm.DB, id uint) (*dto.JobDetailResponse, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	var (
		tasks []models.Task
		docs  []models.DocumentRequirement
		reqs  []models.Requirement
		conds []models.WorkingCondition
	)

	g, gctx := errgroup.WithContext(ctx)
	gdb := db.WithContext(gctx)

	g.Go(func() error {
		var err error
		tasks, err = s.jobRepo.FindTasks(gdb, id)
		return err
	})
	g.Go(func() error {
		var err error
		docs, err = s.jobRepo.FindDocumentRequirements(gdb, id)
		return err
	})
	g.Go(func() error {
		var err error
		reqs, err = s.jobRepo.FindRequirements(gdb, id)
		return err
	})
	g.Go(func() error {
		var err error
		conds, err = s.jobRepo.FindWorkingConditions(gdb, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	detail := &dto.JobDetailResponse{
		JobRow:               *job,
		Tasks:                tasks,
		DocumentRequirements: docs,
	}
	if detail.Tasks == nil {
		detail.Tasks = []models.Task{}
	}
	if detail.DocumentRequirements == nil {
		detail.DocumentRequirements = []models.DocumentRequirement{}
	}
	if len(reqs) > 0 {
		detail.Requirements = &reqs[0]
	}
	if len(conds) > 0 {
		detail.WorkingConditions = &conds[0]
	}

	return detail, nil
}
