package helpers

import (
	"testing"

	"sentosa_backend/internal/auth"
	"sentosa_backend/internal/models"

	"gorm.io/gorm"
)

// CreateStaff inserts a staff account with a properly hashed password.
func CreateStaff(t *testing.T, db *gorm.DB, namaStaff, username, password, jabatan string) *models.Staff {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	staff := &models.Staff{
		NamaStaff:    namaStaff,
		Username:     username,
		PasswordHash: hash,
		Jabatan:      jabatan,
	}
	if err := db.Create(staff).Error; err != nil {
		t.Fatalf("failed to create staff fixture: %v", err)
	}
	return staff
}

// CreateNews inserts a news row directly.
func CreateNews(t *testing.T, db *gorm.DB, title, image string) *models.News {
	t.Helper()

	news := &models.News{
		Title:    title,
		Category: "Company",
		Image:    image,
		Content:  "Fixture content",
	}
	if err := db.Create(news).Error; err != nil {
		t.Fatalf("failed to create news fixture: %v", err)
	}
	return news
}

// JobFixture bundles the IDs of a seeded position and its lookups.
type JobFixture struct {
	Position models.Position
	Country  models.DestinationCountry
	Sector   models.Sector
}

// CreateJob seeds a position with its country and sector plus the given
// number of task and document rows, one requirement and one working
// condition row.
func CreateJob(t *testing.T, db *gorm.DB, name string, taskCount, docCount int) *JobFixture {
	t.Helper()

	country := models.DestinationCountry{Country: "Japan"}
	if err := db.Create(&country).Error; err != nil {
		t.Fatalf("failed to create country fixture: %v", err)
	}
	sector := models.Sector{Name: "Manufacturing"}
	if err := db.Create(&sector).Error; err != nil {
		t.Fatalf("failed to create sector fixture: %v", err)
	}

	position := models.Position{
		Name:           name,
		CountryID:      country.ID,
		SectorID:       sector.ID,
		TotalWorker:    10,
		ContractPeriod: "3 years",
		Salary:         "JPY 200,000",
		DateUpload:     "2025-05-01",
		Image:          "job.jpg",
	}
	if err := db.Create(&position).Error; err != nil {
		t.Fatalf("failed to create position fixture: %v", err)
	}

	for i := 0; i < taskCount; i++ {
		task := models.Task{PositionID: position.ID, Task: "Duty line"}
		if err := db.Create(&task).Error; err != nil {
			t.Fatalf("failed to create task fixture: %v", err)
		}
	}
	for i := 0; i < docCount; i++ {
		doc := models.DocumentRequirement{PositionID: position.ID, Document: "Passport"}
		if err := db.Create(&doc).Error; err != nil {
			t.Fatalf("failed to create document fixture: %v", err)
		}
	}

	req := models.Requirement{
		PositionID: position.ID,
		Gender:     "Male",
		MinAge:     20,
		MaxAge:     35,
		Education:  "High school",
		Experience: "1 year",
	}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("failed to create requirement fixture: %v", err)
	}

	cond := models.WorkingCondition{
		PositionID:    position.ID,
		WorkingHours:  "8 hours",
		WorkDays:      "Mon-Fri",
		Overtime:      "Paid",
		Accommodation: "Provided",
		Insurance:     "Full",
	}
	if err := db.Create(&cond).Error; err != nil {
		t.Fatalf("failed to create working condition fixture: %v", err)
	}

	return &JobFixture{Position: position, Country: country, Sector: sector}
}
