package models

// Position is a job opening placed abroad. Country and sector are
// normalized into lookup tables; the remaining child tables hang off
// position_id.
type Position struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string `gorm:"not null" json:"name"`
	CountryID      uint   `gorm:"column:country_id" json:"country_id"`
	SectorID       uint   `gorm:"column:sector_id" json:"sector_id"`
	TotalWorker    int    `gorm:"column:totalWorker" json:"totalWorker"`
	ContractPeriod string `gorm:"column:contractPeriod" json:"contractPeriod"`
	Salary         string `json:"salary"`
	DateUpload     string `gorm:"column:dateUpload" json:"dateUpload"`
	Image          string `json:"image"`
}

func (Position) TableName() string {
	return "positions"
}

type DestinationCountry struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Country string `gorm:"not null" json:"country"`
}

func (DestinationCountry) TableName() string {
	return "destination_countries"
}

type Sector struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Sector) TableName() string {
	return "sectors"
}

// Task is a single duty line item of a position.
type Task struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	PositionID uint   `gorm:"column:position_id;index" json:"-"`
	Task       string `gorm:"column:task" json:"task"`
}

func (Task) TableName() string {
	return "tasks"
}

// DocumentRequirement is a document an applicant must provide.
type DocumentRequirement struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	PositionID uint   `gorm:"column:position_id;index" json:"-"`
	Document   string `gorm:"column:document" json:"document"`
}

func (DocumentRequirement) TableName() string {
	return "document_requirements"
}

// Requirement holds applicant criteria. The store allows several rows per
// position but the API contract only ever exposes the first one.
type Requirement struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PositionID uint   `gorm:"column:position_id;index" json:"position_id"`
	Gender     string `json:"gender"`
	MinAge     int    `gorm:"column:min_age" json:"min_age"`
	MaxAge     int    `gorm:"column:max_age" json:"max_age"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
}

func (Requirement) TableName() string {
	return "requirements"
}

// WorkingCondition describes the working arrangement of a position.
// Same 1:N-store / first-row-contract shape as Requirement.
type WorkingCondition struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PositionID    uint   `gorm:"column:position_id;index" json:"position_id"`
	WorkingHours  string `gorm:"column:working_hours" json:"working_hours"`
	WorkDays      string `gorm:"column:work_days" json:"work_days"`
	Overtime      string `json:"overtime"`
	Accommodation string `json:"accommodation"`
	Insurance     string `json:"insurance"`
}

func (WorkingCondition) TableName() string {
	return "working_conditions"
}
