package rdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deskman/deskman/domain"
	"github.com/deskman/deskman/domain/model"
)

// WorkspaceRepository is a GORM-backed implementation of
// domain.WorkspaceRepository. Workspaces are keyed by name; records keep
// an opaque ID for the primary key.
type WorkspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

func toRecord(w *model.Workspace) (*WorkspaceRecord, error) {
	apps := w.Apps
	if apps == nil {
		apps = []model.App{}
	}
	data, err := json.Marshal(apps)
	if err != nil {
		return nil, fmt.Errorf("encoding apps for %q: %w", w.Name, err)
	}
	return &WorkspaceRecord{
		ID:        w.ID,
		Name:      w.Name,
		Apps:      string(data),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}, nil
}

func toModel(r *WorkspaceRecord) (*model.Workspace, error) {
	w := &model.Workspace{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Apps != "" {
		if err := json.Unmarshal([]byte(r.Apps), &w.Apps); err != nil {
			return nil, fmt.Errorf("decoding apps for %q: %w", r.Name, err)
		}
	}
	w.Normalize()
	return w, nil
}

// Create inserts or overwrites the record for w's name. Overwrite keeps
// the storage-key invariant: one persisted entry per name.
func (r *WorkspaceRepository) Create(ctx context.Context, w *model.Workspace) error {
	if err := model.ValidateWorkspaceName(w.Name); err != nil {
		return err
	}
	rec, err := toRecord(w)
	if err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = "ws-" + uuid.NewString()
		w.ID = rec.ID
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).
		Create(rec).Error
}

func (r *WorkspaceRepository) Get(ctx context.Context, name string) (*model.Workspace, error) {
	var rec WorkspaceRecord
	if err := r.db.WithContext(ctx).First(&rec, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, model.ErrWorkspaceNotFound
		}
		return nil, err
	}
	return toModel(&rec)
}

func (r *WorkspaceRepository) List(ctx context.Context) ([]*model.Workspace, error) {
	var recs []WorkspaceRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Workspace, 0, len(recs))
	for i := range recs {
		w, err := toModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (r *WorkspaceRepository) Update(ctx context.Context, w *model.Workspace) error {
	rec, err := toRecord(w)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&WorkspaceRecord{}).Where("name = ?", rec.Name).Updates(map[string]any{
		"apps":       rec.Apps,
		"updated_at": rec.UpdatedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrWorkspaceNotFound
	}
	return nil
}

func (r *WorkspaceRepository) Delete(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Delete(&WorkspaceRecord{}, "name = ?", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrWorkspaceNotFound
	}
	return nil
}

// Ensure interface satisfaction.
var _ domain.WorkspaceRepository = (*WorkspaceRepository)(nil)
