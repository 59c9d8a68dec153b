package repository

import (
	"context"
	"sync"

	"sirup-monitor/internal/model"

	"go.uber.org/zap"
)

// SaveResult: Success bergantung hanya pada store lokal.
type SaveResult struct {
	Success      bool `json:"success"`
	RemoteSynced bool `json:"remote_synced"`
}

// Gateway menggabungkan store remote (best-effort) dan store lokal (jaminan durabilitas).
// Mode ditentukan sekali saat konstruksi.
type Gateway struct {
	remote StateStore
	local  StateStore
	log    *zap.Logger

	mu sync.Mutex // menserialkan penulisan; penyimpanan terakhir yang selesai menang
}

// NewGateway: remote boleh nil untuk mode lokal.
func NewGateway(remote, local StateStore, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{remote: remote, local: local, log: log}
}

func (g *Gateway) IsRemoteMode() bool {
	return g.remote != nil
}

// LoadAll tidak pernah gagal: remote -> lokal -> state kosong.
func (g *Gateway) LoadAll(ctx context.Context) model.AppState {
	if g.remote != nil {
		state, found, err := g.remote.Load(ctx)
		switch {
		case err != nil:
			g.log.Warn("Load remote gagal, memakai data lokal", zap.Error(err))
		case !found:
			g.log.Info("Dokumen remote belum ada, memakai data lokal")
		default:
			g.log.Info("Data cloud berhasil dimuat",
				zap.Int("opd", len(state.OPDs)),
				zap.Int("progress", len(state.Progress)))
			return state
		}
	}

	state, _, err := g.local.Load(ctx)
	if err != nil {
		g.log.Error("Load lokal gagal, memakai state kosong", zap.Error(err))
		return model.EmptyState()
	}
	return state
}

// SaveAll selalu menulis lokal dulu. Kegagalan remote hanya dicatat di log.
func (g *Gateway) SaveAll(ctx context.Context, state model.AppState) (SaveResult, error) {
	snapshot := state.Clone()

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.local.Save(ctx, snapshot); err != nil {
		g.log.Error("Simpan lokal gagal", zap.Error(err))
		return SaveResult{}, err
	}

	res := SaveResult{Success: true}
	if g.remote == nil {
		return res, nil
	}
	if err := g.remote.Save(ctx, snapshot); err != nil {
		g.log.Error("Cloud sync gagal", zap.Error(err))
		return res, nil
	}
	res.RemoteSynced = true
	return res, nil
}
