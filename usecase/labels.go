package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"main/model"
	"main/repository"
)

type LabelService struct {
	LabelsRepo *repository.LabelsRepo
}

// CreateLabel stores a label name for the user. (name, user) uniqueness is
// enforced; duplicates surface as repository.ErrLabelExists.
func (svc *LabelService) CreateLabel(ctx context.Context, name string, userID int64) (*model.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("label name is required")
	}
	if userID <= 0 {
		return nil, errors.New("user ID is required")
	}

	label := &model.Label{
		Name:      name,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := svc.LabelsRepo.CreateLabel(ctx, label); err != nil {
		return nil, err
	}
	return label, nil
}

// ListLabels returns the user's labels ordered by name.
func (svc *LabelService) ListLabels(ctx context.Context, userID int64) ([]*model.Label, error) {
	if userID <= 0 {
		return nil, errors.New("user ID is required")
	}
	return svc.LabelsRepo.GetUserLabels(ctx, userID)
}
