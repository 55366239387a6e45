package models

// News is a published article with an optional stored image.
// Image holds the bare filename inside the uploads directory.
type News struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string `gorm:"not null" json:"title"`
	Category       string `json:"category"`
	Image          string `json:"image"`
	Date           string `json:"date"`
	AuthorName     string `gorm:"column:author_name" json:"author_name"`
	AuthorRole     string `gorm:"column:author_role" json:"author_role"`
	AuthorImageURL string `gorm:"column:author_image_url" json:"author_image_url"`
	Content        string `gorm:"type:text" json:"content"`
}

func (News) TableName() string {
	return "news"
}
