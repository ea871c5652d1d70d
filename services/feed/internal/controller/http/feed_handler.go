package http

import (
	"errors"
	"net/http"

	"sourced-feed/pkg/logger"
	"sourced-feed/services/feed/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NextPostRequest struct {
	ExcludeIDs []string `json:"exclude_ids"`
	IsInitial  bool     `json:"is_initial"`
	UserID     string   `json:"user_id"`
}

type LogViewRequest struct {
	PostID     string `json:"post_id" binding:"required"`
	TimeSpent  int    `json:"time_spent"`
	Interacted bool   `json:"interacted"`
	UserID     string `json:"user_id"`
}

type FeedHandler struct {
	feedUseCase usecase.FeedUseCase
	logger      *logger.Logger
}

func NewFeedHandler(feedUseCase usecase.FeedUseCase, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		logger:      logger,
	}
}

// NextPost godoc
// @Summary      Get the next feed post
// @Description  Returns one ranked candidate, adapting to the viewer's follows, dwell time and interactions. is_initial is accepted but currently unused by the selection logic.
// @Tags         feed
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body NextPostRequest true "Seen post ids and viewer id"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /feed/next [post]
func (h *FeedHandler) NextPost(c *gin.Context) {
	var req NextPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = c.GetString("user_id")
	}

	if req.IsInitial {
		h.logger.Info("Initial feed request for user %q", userID)
	}

	result, err := h.feedUseCase.NextPost(userID, req.ExcludeIDs)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyCandidateBatch) {
			h.logger.Error("Feed invariant violation: %v", err)
		} else {
			h.logger.Error("Failed to get next feed post: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed post"})
		return
	}

	if result.Post == nil {
		c.JSON(http.StatusOK, gin.H{"post": nil, "message": result.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": result.Post, "algorithm_info": result.AlgorithmInfo})
}

// LogView godoc
// @Summary      Log a post view
// @Description  Records dwell time and interaction outcome for a post. A repeat view for the same pair overwrites the previous record.
// @Tags         feed
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LogViewRequest true "View record"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /feed/log-view [post]
func (h *FeedHandler) LogView(c *gin.Context) {
	var req LogViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = c.GetString("user_id")
	}
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	view, err := h.feedUseCase.LogView(userID, req.PostID, req.TimeSpent, req.Interacted)
	if err != nil {
		h.logger.Error("Failed to log post view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log post view"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}

// GetPreferences godoc
// @Summary      Get viewer preference diagnostics
// @Description  Projection of the derived preference profile: following count, engaged creators, average dwell time, recent interactions.
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "Viewer id"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /feed/preferences/{user_id} [get]
func (h *FeedHandler) GetPreferences(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	summary, err := h.feedUseCase.GetPreferences(userID)
	if err != nil {
		h.logger.Error("Failed to get preferences: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get preferences"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
