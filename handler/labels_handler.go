package handler

import (
	"errors"

	"main/dto"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LabelsHandler struct {
	LabelService *usecase.LabelService
	Logger       *zap.Logger
}

func NewLabelsHandler(labelService *usecase.LabelService, logger *zap.Logger) *LabelsHandler {
	return &LabelsHandler{LabelService: labelService, Logger: logger}
}

func (h *LabelsHandler) ListLabels(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	labels, err := h.LabelService.ListLabels(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("list labels failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Success(c, gin.H{"labels": labels})
}

func (h *LabelsHandler) CreateLabel(c *gin.Context) {
	var req dto.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "label name and user ID are required")
		return
	}

	label, err := h.LabelService.CreateLabel(c.Request.Context(), req.Name, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrLabelExists) {
			utils.Conflict(c, "label already exists")
			return
		}
		h.Logger.Error("create label failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Created(c, gin.H{
		"message": "label created",
		"label":   label,
	})
}
