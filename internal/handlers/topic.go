package handlers

import (
	"fmt"
	"net/http"
	"time"
	"toron/internal/db"
	"toron/internal/models"
	"toron/internal/services"
	"toron/internal/utils"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct{}

func NewTopicHandler() *TopicHandler {
	return &TopicHandler{}
}

// List returns topics under optional equality filters and a sort mode.
// Results are shared across users, so they go through the LRU cache.
func (h *TopicHandler) List(c *gin.Context) {
	filter := services.TopicFilter{
		Category:  c.Query("category"),
		Region:    c.Query("region"),
		District:  c.Query("district"),
		TopicType: c.Query("topic_type"),
	}
	sortBy := c.DefaultQuery("sort_by", "best")

	cacheKey := fmt.Sprintf("topics:%s:%s:%s:%s:%s",
		filter.Category, filter.Region, filter.District, filter.TopicType, sortBy)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if topics, ok := cached.([]models.Topic); ok {
			c.JSON(http.StatusOK, topics)
			return
		}
	}

	topics, err := services.GetRankingService().Topics(filter, sortBy)
	if err != nil {
		ServiceError(c, err)
		return
	}

	utils.GetCache().Set(cacheKey, topics, 1*time.Minute)
	c.JSON(http.StatusOK, topics)
}

type topicCreateRequest struct {
	Title     string           `json:"title" binding:"required"`
	Category  string           `json:"category"`
	Region    string           `json:"region"`
	District  string           `json:"district"`
	TopicType models.TopicType `json:"topic_type" binding:"required"`
}

// Create opens a new debate. Admin only; the router enforces it.
func (h *TopicHandler) Create(c *gin.Context) {
	var req topicCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "title and topic_type are required")
		return
	}

	topic := models.Topic{
		Title:     req.Title,
		Category:  req.Category,
		Region:    req.Region,
		District:  req.District,
		TopicType: req.TopicType,
	}
	if err := db.DB.Create(&topic).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	// Cached topic lists are stale now; keys vary by filter, so drop
	// the whole cache.
	utils.GetCache().Purge()

	c.JSON(http.StatusOK, topic)
}

func (h *TopicHandler) Get(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var topic models.Topic
	if err := db.DB.First(&topic, id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "topic not found")
		return
	}
	c.JSON(http.StatusOK, topic)
}
