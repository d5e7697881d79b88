package http

import (
	"net/http"

	"github.com/ujhhhhhhh/skibidi-hub-REAL/internal/usecase"
	"github.com/ujhhhhhhh/skibidi-hub-REAL/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	hub          *HubHandler
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, hub *HubHandler, log *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		hub:          hub,
		logger:       log,
	}
}

func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos := h.videoUseCase.Videos(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

type createVideoRequest struct {
	Username    string `form:"username"`
	Title       string `form:"title"`
	Description string `form:"description"`
}

func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req createVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upload, err := h.hub.readUpload(c, "file")
	if err != nil {
		h.hub.respondError(c, err)
		return
	}

	video, err := h.videoUseCase.CreateVideo(c.Request.Context(), req.Username, req.Title, req.Description, upload)
	if err != nil {
		h.hub.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"video": video})
}

func (h *VideoHandler) LikeVideo(c *gin.Context) {
	videoID := c.Param("id")
	username := c.PostForm("username")

	action, count, err := h.videoUseCase.ToggleVideoLike(c.Request.Context(), videoID, username)
	if err != nil {
		h.hub.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"action": action,
		"count":  count,
	})
}

func (h *VideoHandler) TrackView(c *gin.Context) {
	videoID := c.Param("id")

	views, err := h.videoUseCase.TrackView(c.Request.Context(), videoID)
	if err != nil {
		h.hub.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"views":   views,
	})
}
