package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"main/model"
)

type LabelsRepo struct {
	DB *sql.DB
}

func GetLabelsRepo(db *sql.DB) *LabelsRepo {
	return &LabelsRepo{DB: db}
}

// CreateLabel inserts the label; (name, user) duplicates surface as
// ErrLabelExists via the store's uniqueness constraint.
func (r *LabelsRepo) CreateLabel(ctx context.Context, label *model.Label) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO labels (name, user_id, created_at) VALUES (?, ?, ?)`,
		label.Name, label.UserID, toMillis(label.CreatedAt))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrLabelExists
		}
		return fmt.Errorf("failed to insert label: %w", err)
	}

	label.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read label id: %w", err)
	}
	return nil
}

// GetUserLabels lists the user's labels ordered by name.
func (r *LabelsRepo) GetUserLabels(ctx context.Context, userID int64) ([]*model.Label, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, user_id, created_at FROM labels WHERE user_id = ? ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select labels: %w", err)
	}
	defer rows.Close()

	labels := []*model.Label{}
	for rows.Next() {
		var (
			label     model.Label
			createdAt int64
		)
		if err := rows.Scan(&label.ID, &label.Name, &label.UserID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		label.CreatedAt = fromMillis(createdAt)
		labels = append(labels, &label)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}
