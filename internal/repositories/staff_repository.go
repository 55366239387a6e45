package repositories

import (
	"errors"

	"sentosa_backend/internal/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound      = errors.New("staff not found")
	ErrStaffAlreadyExists = errors.New("staff already exists")
)

// MySQL error 1062: duplicate entry for a unique key.
const mysqlDuplicateEntry = 1062

type StaffRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Staff, error)
	FindByUsername(db *gorm.DB, username string) (*models.Staff, error)
	Create(db *gorm.DB, staff *models.Staff) error
	UpdateLastLogin(db *gorm.DB, id uint) error
}

type StaffRepositoryImpl struct{}

func NewStaffRepository() StaffRepository {
	return &StaffRepositoryImpl{}
}

func (r *StaffRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Staff, error) {
	var staff models.Staff
	err := db.First(&staff, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func (r *StaffRepositoryImpl) FindByUsername(db *gorm.DB, username string) (*models.Staff, error) {
	var staff models.Staff
	err := db.First(&staff, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &staff, nil
}

// Create inserts the staff row. The unique index on username is the sole
// duplicate guard; the constraint violation is translated, not pre-checked.
func (r *StaffRepositoryImpl) Create(db *gorm.DB, staff *models.Staff) error {
	err := db.Create(staff).Error
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrStaffAlreadyExists
		}
		return err
	}
	return nil
}

// UpdateLastLogin stamps the row. RowsAffected is not inspected: MySQL
// reports changed rows, so an identical timestamp within the same second
// legitimately affects zero rows.
func (r *StaffRepositoryImpl) UpdateLastLogin(db *gorm.DB, id uint) error {
	return db.Model(&models.Staff{}).Where("id = ?", id).
		Update("last_login", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
