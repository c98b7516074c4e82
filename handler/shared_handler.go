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

type SharedHandler struct {
	NoteService *usecase.NoteService
	Logger      *zap.Logger
}

func NewSharedHandler(noteService *usecase.NoteService, logger *zap.Logger) *SharedHandler {
	return &SharedHandler{NoteService: noteService, Logger: logger}
}

// GetSharedNote serves the public projection of a note to whoever holds its
// share token. No authentication is involved.
func (h *SharedHandler) GetSharedNote(c *gin.Context) {
	note, ownerName, err := h.NoteService.GetSharedNote(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "note not found or not shared")
			return
		}
		h.Logger.Error("shared note lookup failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Success(c, gin.H{"note": dto.ToSharedNoteResponse(note, ownerName)})
}
