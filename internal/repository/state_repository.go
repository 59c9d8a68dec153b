package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sirup-monitor/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateStore menyimpan AppState sebagai satu dokumen utuh.
// Load mengembalikan found=false jika dokumen belum pernah ditulis.
type StateStore interface {
	Load(ctx context.Context) (state model.AppState, found bool, err error)
	Save(ctx context.Context, state model.AppState) error
}

type remoteStateRepository struct {
	db *gorm.DB
}

// NewRemoteStateRepository memakai tabel sirup_data, baris global_state.
func NewRemoteStateRepository(db *gorm.DB) StateStore {
	return &remoteStateRepository{db}
}

// Migrate membuat tabel dokumen jika belum ada.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.StateDocument{})
}

func (r *remoteStateRepository) Load(ctx context.Context) (model.AppState, bool, error) {
	var doc model.StateDocument
	err := r.db.WithContext(ctx).First(&doc, "id = ?", model.GlobalDocumentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.AppState{}, false, nil
	}
	if err != nil {
		return model.AppState{}, false, err
	}

	var state model.AppState
	if err := json.Unmarshal([]byte(doc.JSONContent), &state); err != nil {
		return model.AppState{}, false, fmt.Errorf("json_content rusak: %w", err)
	}
	return state, true, nil
}

func (r *remoteStateRepository) Save(ctx context.Context, state model.AppState) error {
	content, err := json.Marshal(state)
	if err != nil {
		return err
	}
	doc := model.StateDocument{
		ID:          model.GlobalDocumentID,
		JSONContent: model.JSONText(content),
		UpdatedAt:   time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&doc).Error
}
