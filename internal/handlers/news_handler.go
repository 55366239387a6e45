package handlers

import (
	"mime/multipart"
	"net/http"

	"sentosa_backend/internal/services"
	"sentosa_backend/internal/services/dto"
	"sentosa_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	*BaseHandler
	newsService services.NewsService
}

func NewNewsHandler(base *BaseHandler, newsService services.NewsService) *NewsHandler {
	return &NewsHandler{
		BaseHandler: base,
		newsService: newsService,
	}
}

func (h *NewsHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/berita", h.List)
	r.GET("/berita/:id", h.Get)
	r.POST("/add-news", h.Create)
	r.PUT("/edit-news/:id", h.Update)
	r.DELETE("/delete-news/:id", h.Delete)
}

func (h *NewsHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	news, err := h.newsService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	db := h.GetDB(c)

	news, err := h.newsService.Get(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req dto.NewsRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	upload, file, ok := h.openUpload(c)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	db := h.GetDB(c)

	news, err := h.newsService.Create(c.Request.Context(), db, &req, upload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, news)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.NewsUpdateRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	upload, file, ok := h.openUpload(c)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	db := h.GetDB(c)

	if err := h.newsService.Update(c.Request.Context(), db, id, &req, upload); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "News edited successfully"})
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	db := h.GetDB(c)

	if err := h.newsService.Delete(c.Request.Context(), db, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
}

// openUpload extracts the optional "image" part of the multipart form.
// Returns a nil upload when the request carries no file.
func (h *NewsHandler) openUpload(c *gin.Context) (*services.NewsUpload, multipart.File, bool) {
	header, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, nil, true
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid image upload: "+err.Error()))
		return nil, nil, false
	}

	file, err := header.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return nil, nil, false
	}

	return &services.NewsUpload{
		Reader:      file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, file, true
}
