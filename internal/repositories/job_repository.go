package repositories

import (
	"errors"

	"sentosa_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobListRow is the projection served by the jobs list endpoint: the
// position joined with its country and sector labels.
type JobListRow struct {
	ID             uint   `json:"id"`
	Position       string `json:"position"`
	Sector         string `json:"sector"`
	Location       string `json:"location"`
	Worker         int    `json:"worker"`
	ContractPeriod string `json:"contractPeriod"`
	Salary         string `json:"salary"`
	DateUpload     string `json:"dateUpload"`
	Image          string `json:"image"`
}

// JobRow is the primary row of the detail endpoint: all position columns
// plus the joined labels.
type JobRow struct {
	models.Position
	Country string `json:"country"`
	Sector  string `json:"sector"`
}

type JobRepository interface {
	FindAll(db *gorm.DB) ([]JobListRow, error)
	FindByID(db *gorm.DB, id uint) (*JobRow, error)
	FindTasks(db *gorm.DB, positionID uint) ([]models.Task, error)
	FindDocumentRequirements(db *gorm.DB, positionID uint) ([]models.DocumentRequirement, error)
	FindRequirements(db *gorm.DB, positionID uint) ([]models.Requirement, error)
	FindWorkingConditions(db *gorm.DB, positionID uint) ([]models.WorkingCondition, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) FindAll(db *gorm.DB) ([]JobListRow, error) {
	var rows []JobListRow
	err := db.Model(&models.Position{}).
		Select("positions.id, positions.name AS position, sectors.name AS sector, " +
			"destination_countries.country AS location, positions.totalWorker AS worker, " +
			"positions.contractPeriod AS contract_period, positions.salary, " +
			"positions.dateUpload AS date_upload, positions.image").
		Joins("JOIN destination_countries ON positions.country_id = destination_countries.id").
		Joins("JOIN sectors ON positions.sector_id = sectors.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id uint) (*JobRow, error) {
	var row JobRow
	err := db.Model(&models.Position{}).
		Select("positions.*, destination_countries.country, sectors.name AS sector").
		Joins("JOIN destination_countries ON positions.country_id = destination_countries.id").
		Joins("JOIN sectors ON positions.sector_id = sectors.id").
		Where("positions.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *JobRepositoryImpl) FindTasks(db *gorm.DB, positionID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := db.Where("position_id = ?", positionID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *JobRepositoryImpl) FindDocumentRequirements(db *gorm.DB, positionID uint) ([]models.DocumentRequirement, error) {
	var docs []models.DocumentRequirement
	if err := db.Where("position_id = ?", positionID).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *JobRepositoryImpl) FindRequirements(db *gorm.DB, positionID uint) ([]models.Requirement, error) {
	var reqs []models.Requirement
	if err := db.Where("position_id = ?", positionID).Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *JobRepositoryImpl) FindWorkingConditions(db *gorm.DB, positionID uint) ([]models.WorkingCondition, error) {
	var conds []models.WorkingCondition
	if err := db.Where("position_id = ?", positionID).Find(&conds).Error; err != nil {
		return nil, err
	}
	return conds, nil
}
