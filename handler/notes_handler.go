package handler

import (
	"errors"
	"strconv"
	"time"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotesHandler struct {
	NoteService *usecase.NoteService
	Logger      *zap.Logger
}

func NewNotesHandler(noteService *usecase.NoteService, logger *zap.Logger) *NotesHandler {
	return &NotesHandler{NoteService: noteService, Logger: logger}
}

// noteID parses the :id path parameter. A non-numeric id behaves like a
// missing row.
func (h *NotesHandler) noteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.NotFound(c, "note not found")
		return 0, false
	}
	return id, true
}

func userIDFromQuery(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil || id <= 0 {
		utils.BadRequest(c, "user ID is required")
		return 0, false
	}
	return id, true
}

func (h *NotesHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "content and user ID are required")
		return
	}

	note := &model.Note{
		Title:   req.Title,
		Content: req.Content,
		Labels:  req.Labels,
		UserID:  req.UserID,
	}
	if err := h.NoteService.CreateNote(c.Request.Context(), note); err != nil {
		h.Logger.Error("create note failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("create").Inc()
	utils.Created(c, gin.H{
		"message": "note created",
		"note":    note,
	})
}

func (h *NotesHandler) ListNotes(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	var archived *bool
	if val, exists := c.GetQuery("archived"); exists {
		flag := val == "true"
		archived = &flag
	}

	notes, err := h.NoteService.ListNotes(c.Request.Context(), userID, c.Query("search"), archived)
	if err != nil {
		h.Logger.Error("list notes failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Success(c, gin.H{"notes": notes})
}

func (h *NotesHandler) GetNote(c *gin.Context) {
	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	note, err := h.NoteService.GetNote(c.Request.Context(), noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "note not found")
			return
		}
		h.Logger.Error("get note failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	utils.Success(c, gin.H{"note": note})
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	note, err := h.NoteService.UpdateNote(c.Request.Context(), noteID, req.ToPatch())
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "note not found")
			return
		}
		h.Logger.Error("update note failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("update").Inc()
	utils.Success(c, gin.H{
		"message": "note updated",
		"note": dto.NoteWithShareURL{
			Note:     note,
			ShareURL: h.NoteService.ShareURL(note),
		},
	})
}

func (h *NotesHandler) RestoreNote(c *gin.Context) {
	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	var req dto.RestoreNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Action != "restore" {
		utils.BadRequest(c, "unknown action")
		return
	}

	note, err := h.NoteService.RestoreNote(c.Request.Context(), noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "note not found or not deleted")
			return
		}
		h.Logger.Error("restore note failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("restore").Inc()
	utils.Success(c, gin.H{
		"message": "note restored",
		"note":    note,
	})
}

func (h *NotesHandler) DeleteNote(c *gin.Context) {
	noteID, ok := h.noteID(c)
	if !ok {
		return
	}

	if err := h.NoteService.DeleteNote(c.Request.Context(), noteID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "note not found or already deleted")
			return
		}
		h.Logger.Error("delete note failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("delete").Inc()
	utils.Success(c, gin.H{"message": "note moved to trash"})
}

func (h *NotesHandler) ListTrash(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	now := time.Now().UTC()
	notes, err := h.NoteService.ListTrash(c.Request.Context(), userID, now)
	if err != nil {
		h.Logger.Error("list trash failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	trash := make([]dto.TrashNote, 0, len(notes))
	for _, note := range notes {
		trash = append(trash, dto.TrashNote{
			Note:     note,
			TimeLeft: h.NoteService.TimeLeft(note, now),
		})
	}
	utils.Success(c, gin.H{"notes": trash})
}

func (h *NotesHandler) Cleanup(c *gin.Context) {
	cleaned, err := h.NoteService.Cleanup(c.Request.Context(), time.Now().UTC())
	if err != nil {
		h.Logger.Error("cleanup failed", zap.Error(err))
		utils.InternalError(c, "internal server error")
		return
	}

	middleware.PurgedNotesTotal.Add(float64(cleaned))
	utils.Success(c, gin.H{
		"message":       "cleanup complete",
		"cleaned_count": cleaned,
	})
}
