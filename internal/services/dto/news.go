package dto

// NewsRequest holds the multipart form fields of add-news and edit-news.
// The image file travels separately.
type NewsRequest struct {
	Title          string `form:"title" validate:"required"`
	Category       string `form:"category"`
	Date           string `form:"date"`
	AuthorName     string `form:"author_name"`
	AuthorRole     string `form:"author_role"`
	AuthorImageURL string `form:"author_image_url"`
	Content        string `form:"content"`
}

// NewsUpdateRequest is the subset of fields edit-news actually writes.
type NewsUpdateRequest struct {
	Title    string `form:"title" validate:"required"`
	Category string `form:"category"`
	Content  string `form:"content"`
}
