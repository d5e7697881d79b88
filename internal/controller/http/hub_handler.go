package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/usecase"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"

	"github.com/gin-gonic/gin"
)

type HubHandler struct {
	hubUseCase    usecase.HubUseCase
	maxUploadSize int64
	logger        *logger.Logger
}

func NewHubHandler(hubUseCase usecase.HubUseCase, maxUploadSize int64, log *logger.Logger) *HubHandler {
	return &HubHandler{
		hubUseCase:    hubUseCase,
		maxUploadSize: maxUploadSize,
		logger:        log,
	}
}

// Feed serves the paginated community feed with optional search.
func (h *HubHandler) Feed(c *gin.Context) {
	page := queryInt(c, "page", 1)
	search := c.Query("search")

	result := h.hubUseCase.FeedPage(c.Request.Context(), search, page)

	c.JSON(http.StatusOK, gin.H{
		"posts":        result.Posts,
		"pagination":   result.Pagination,
		"search_query": result.SearchQuery,
		"storage_type": result.StorageType,
	})
}

type createPostRequest struct {
	Username string `form:"username"`
	Content  string `form:"content"`
}

func (h *HubHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upload, err := h.readUpload(c, "file")
	if err != nil {
		h.respondError(c, err)
		return
	}

	post, err := h.hubUseCase.CreatePost(c.Request.Context(), req.Username, req.Content, upload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Skibidi post created! ID: %s", post.ID),
		"post":    post,
	})
}

func (h *HubHandler) LikePost(c *gin.Context) {
	postID := c.Param("id")
	username := c.PostForm("username")

	action, count, err := h.hubUseCase.ToggleLike(c.Request.Context(), postID, username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"action": action,
		"count":  count,
	})
}

func (h *HubHandler) AddComment(c *gin.Context) {
	postID := c.Param("id")
	username := c.PostForm("username")
	content := c.PostForm("comment")

	comment, err := h.hubUseCase.AddComment(c.Request.Context(), postID, username, content)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added!",
		"comment": comment,
	})
}

// GetComments returns one page of a post's comments, newest first.
func (h *HubHandler) GetComments(c *gin.Context) {
	postID := c.Param("id")
	page := queryInt(c, "page", 1)

	pagination := h.hubUseCase.GetComments(c.Request.Context(), postID, page)

	c.JSON(http.StatusOK, gin.H{
		"comments":    pagination.Items,
		"has_next":    pagination.HasNext,
		"has_prev":    pagination.HasPrev,
		"next_num":    pagination.NextNum,
		"prev_num":    pagination.PrevNum,
		"page":        pagination.PageNum,
		"total_pages": pagination.TotalPages,
		"pagination":  pagination,
	})
}

func (h *HubHandler) HallOfFame(c *gin.Context) {
	posts := h.hubUseCase.HallOfFame(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *HubHandler) HallOfShame(c *gin.Context) {
	posts := h.hubUseCase.HallOfShame(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *HubHandler) ServeUpload(c *gin.Context) {
	filename := c.Param("filename")

	file, err := h.hubUseCase.FetchUpload(c.Request.Context(), filename)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func (h *HubHandler) APIPosts(c *gin.Context) {
	posts := h.hubUseCase.AllPosts(c.Request.Context())
	c.JSON(http.StatusOK, posts)
}

// readUpload pulls the named multipart file if present. A missing file is not
// an error; uploads are optional on posts.
func (h *HubHandler) readUpload(c *gin.Context, field string) (*usecase.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to parse upload: %v", usecase.ErrValidation, err)
	}

	if header.Size > h.maxUploadSize {
		return nil, fmt.Errorf("%w: file too large, maximum size is %d bytes", usecase.ErrValidation, h.maxUploadSize)
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open upload: %v", usecase.ErrValidation, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read upload: %v", usecase.ErrValidation, err)
	}
	if int64(len(data)) > h.maxUploadSize {
		return nil, fmt.Errorf("%w: file too large, maximum size is %d bytes", usecase.ErrValidation, h.maxUploadSize)
	}

	return &usecase.Upload{
		Filename:    header.Filename,
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

func (h *HubHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrUnsupportedMedia):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value := c.Query(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
