package dto

type CreateLabelRequest struct {
	Name   string `json:"name" binding:"required,notblank"`
	UserID int64  `json:"userId" binding:"required"`
}
