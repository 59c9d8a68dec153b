package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"sirup-monitor/internal/bulk"
	"sirup-monitor/internal/database"
	"sirup-monitor/internal/format"
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Persister dipenuhi oleh *repository.Gateway.
type Persister interface {
	LoadAll(ctx context.Context) model.AppState
	SaveAll(ctx context.Context, state model.AppState) (repository.SaveResult, error)
	IsRemoteMode() bool
}

// StateUsecase memegang AppState di memori. Semua mutasi lewat Update, yang
// sekaligus memicu penyimpanan.
type StateUsecase struct {
	gw  Persister
	log *zap.Logger
	now func() time.Time

	mu    sync.RWMutex
	state model.AppState
}

func NewStateUsecase(gw Persister, log *zap.Logger) *StateUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &StateUsecase{gw: gw, log: log, now: time.Now, state: model.EmptyState()}
}

// Init memuat dokumen lalu mengisi default untuk koleksi yang masih kosong.
// Default tidak langsung disimpan; tersimpan pada mutasi pertama.
func (u *StateUsecase) Init(ctx context.Context) {
	state := u.gw.LoadAll(ctx)
	now := u.now()

	if len(state.OPDs) == 0 {
		state.OPDs = database.SeedOPDs()
	}
	if len(state.Users) == 0 {
		state.Users = model.DefaultUsers()
	}
	if len(state.Progress) == 0 {
		state.EnsureProgress(now)
	}

	u.mu.Lock()
	u.state = state
	u.mu.Unlock()

	u.log.Info("State dimuat",
		zap.Bool("remote_mode", u.gw.IsRemoteMode()),
		zap.Int("opd", len(state.OPDs)),
		zap.Int("progress", len(state.Progress)),
		zap.Int("news", len(state.News)),
		zap.Int("users", len(state.Users)))
}

func (u *StateUsecase) IsRemoteMode() bool {
	return u.gw.IsRemoteMode()
}

// Snapshot mengembalikan salinan; aman dipakai tanpa lock.
func (u *StateUsecase) Snapshot() model.AppState {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.state.Clone()
}

// Update menerapkan fn pada salinan state. Jika fn gagal, state tidak berubah.
// Snapshot hasil disimpan di luar lock sehingga edit berikutnya tidak menunggu remote.
func (u *StateUsecase) Update(ctx context.Context, fn func(s *model.AppState) error) (repository.SaveResult, error) {
	u.mu.Lock()
	next := u.state.Clone()
	if err := fn(&next); err != nil {
		u.mu.Unlock()
		return repository.SaveResult{}, err
	}
	u.state = next
	snapshot := next.Clone()
	u.mu.Unlock()

	res, err := u.gw.SaveAll(ctx, snapshot)
	if err != nil {
		return res, fmt.Errorf("gagal menyimpan data: %w", err)
	}
	return res, nil
}

func (u *StateUsecase) timestamp() string {
	return u.now().UTC().Format(time.RFC3339Nano)
}

// --- Progres ---

// ProgressPatch: field nil tidak diubah. Angka dibaca longgar: teks angka diterima,
// nilai tak valid menjadi 0, paket dipotong ke bilangan bulat.
type ProgressPatch struct {
	PaguTarget     *model.Number `json:"paguTarget"`
	PrevPercent    *model.Number `json:"prevPercent"`
	PenyediaPaket  *model.Number `json:"todayPenyediaPaket"`
	PenyediaPagu   *model.Number `json:"todayPenyediaPagu"`
	SwakelolaPaket *model.Number `json:"todaySwakelolaPaket"`
	SwakelolaPagu  *model.Number `json:"todaySwakelolaPagu"`
	PdSPaket       *model.Number `json:"todayPdSPaket"`
	PdSPagu        *model.Number `json:"todayPdSPagu"`
}

func (p ProgressPatch) apply(r *model.ProgressRecord) {
	setF := func(dst *float64, v *model.Number) {
		if v != nil {
			*dst = float64(*v)
		}
	}
	setI := func(dst *int, v *model.Number) {
		if v != nil {
			*dst = v.Int()
		}
	}
	setF(&r.PaguTarget, p.PaguTarget)
	setF(&r.PrevPercent, p.PrevPercent)
	setI(&r.PenyediaPaket, p.PenyediaPaket)
	setF(&r.PenyediaPagu, p.PenyediaPagu)
	setI(&r.SwakelolaPaket, p.SwakelolaPaket)
	setF(&r.SwakelolaPagu, p.SwakelolaPagu)
	setI(&r.PdSPaket, p.PdSPaket)
	setF(&r.PdSPagu, p.PdSPagu)
}

// UpdateProgress hanya mengubah record yang sudah ada.
func (u *StateUsecase) UpdateProgress(ctx context.Context, opdID string, patch ProgressPatch) (model.ProgressRecord, repository.SaveResult, error) {
	var updated model.ProgressRecord
	res, err := u.Update(ctx, func(s *model.AppState) error {
		idx, ok := s.FindProgress(opdID)
		if !ok {
			return fmt.Errorf("progres OPD %s: %w", opdID, ErrNotFound)
		}
		rec := s.Progress[idx]
		patch.apply(&rec)
		rec.UpdatedAt = u.timestamp()
		s.Progress[idx] = rec
		updated = rec
		return nil
	})
	return updated, res, err
}

// BulkReplaceProgress mengganti sekaligus record yang cocok; record lain tetap.
func (u *StateUsecase) BulkReplaceProgress(ctx context.Context, records []model.ProgressRecord) (repository.SaveResult, error) {
	return u.Update(ctx, func(s *model.AppState) error {
		s.Progress = bulk.MergeProgress(s.Progress, records)
		return nil
	})
}

// ImportCSV mengembalikan jumlah OPD yang berhasil diperbarui.
func (u *StateUsecase) ImportCSV(ctx context.Context, r io.Reader) (int, repository.SaveResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, repository.SaveResult{}, fmt.Errorf("%w: %v", bulk.ErrUnreadableFile, err)
	}

	count := 0
	res, err := u.Update(ctx, func(s *model.AppState) error {
		records, err := bulk.ImportCSV(bytes.NewReader(raw), s.Progress, u.now())
		if err != nil {
			return err
		}
		s.Progress = bulk.MergeProgress(s.Progress, records)
		count = len(records)
		return nil
	})
	if err == nil {
		u.log.Info("Impor CSV progres", zap.Int("opd", count))
	}
	return count, res, err
}

func (u *StateUsecase) ExportCSV(w io.Writer) error {
	s := u.Snapshot()
	return bulk.ExportCSV(w, s.Progress, s.OPDs)
}

// --- OPD ---

// UpsertOPD menambah atau mengubah OPD. OPD baru langsung mendapat record progres kosong.
func (u *StateUsecase) UpsertOPD(ctx context.Context, opd model.OPD) (model.OPD, repository.SaveResult, error) {
	opd.Name = strings.TrimSpace(opd.Name)
	if opd.Name == "" {
		return model.OPD{}, repository.SaveResult{}, fmt.Errorf("nama OPD wajib diisi: %w", ErrInvalidInput)
	}
	if opd.ID == "" {
		opd.ID = uuid.NewString()
	}

	res, err := u.Update(ctx, func(s *model.AppState) error {
		for i := range s.OPDs {
			if s.OPDs[i].ID == opd.ID {
				s.OPDs[i] = opd
				return nil
			}
		}
		s.OPDs = append(s.OPDs, opd)
		if _, ok := s.FindProgress(opd.ID); !ok {
			s.Progress = append(s.Progress, model.NewProgressRecord(opd, u.now()))
		}
		return nil
	})
	return opd, res, err
}

// DeleteOPD tidak menghapus record progres milik OPD tersebut.
func (u *StateUsecase) DeleteOPD(ctx context.Context, id string) (repository.SaveResult, error) {
	return u.Update(ctx, func(s *model.AppState) error {
		for i, o := range s.OPDs {
			if o.ID == id {
				s.OPDs = append(s.OPDs[:i], s.OPDs[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("OPD %s: %w", id, ErrNotFound)
	})
}

// --- Berita ---

// UpsertNews: berita baru diletakkan paling atas.
func (u *StateUsecase) UpsertNews(ctx context.Context, n model.NewsItem) (model.NewsItem, repository.SaveResult, error) {
	n.Title = strings.TrimSpace(n.Title)
	if n.Title == "" {
		return model.NewsItem{}, repository.SaveResult{}, fmt.Errorf("judul berita wajib diisi: %w", ErrInvalidInput)
	}
	if n.Tag == "" {
		n.Tag = model.TagUpdate
	}
	if strings.TrimSpace(n.Date) == "" {
		n.Date = format.LongDate(u.now())
	}
	if !model.ValidTag(n.Tag) {
		return model.NewsItem{}, repository.SaveResult{}, fmt.Errorf("tag %q: %w", n.Tag, ErrInvalidInput)
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	res, err := u.Update(ctx, func(s *model.AppState) error {
		for i := range s.News {
			if s.News[i].ID == n.ID {
				s.News[i] = n
				return nil
			}
		}
		s.News = append([]model.NewsItem{n}, s.News...)
		return nil
	})
	return n, res, err
}

func (u *StateUsecase) DeleteNews(ctx context.Context, id string) (repository.SaveResult, error) {
	return u.Update(ctx, func(s *model.AppState) error {
		for i, n := range s.News {
			if n.ID == id {
				s.News = append(s.News[:i], s.News[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("berita %s: %w", id, ErrNotFound)
	})
}

// --- User ---

func (u *StateUsecase) UpsertUser(ctx context.Context, user model.User) (model.User, repository.SaveResult, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" || strings.TrimSpace(user.Name) == "" {
		return model.User{}, repository.SaveResult{}, fmt.Errorf("nama dan username wajib diisi: %w", ErrInvalidInput)
	}
	if !model.ValidRole(user.Role) {
		return model.User{}, repository.SaveResult{}, fmt.Errorf("role %q: %w", user.Role, ErrInvalidInput)
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	res, err := u.Update(ctx, func(s *model.AppState) error {
		for _, existing := range s.Users {
			if existing.Username == user.Username && existing.ID != user.ID {
				return fmt.Errorf("username %s: %w", user.Username, ErrDuplicate)
			}
		}
		for i := range s.Users {
			if s.Users[i].ID == user.ID {
				s.Users[i] = user
				return nil
			}
		}
		s.Users = append(s.Users, user)
		return nil
	})
	return user, res, err
}

func (u *StateUsecase) DeleteUser(ctx context.Context, id string) (repository.SaveResult, error) {
	return u.Update(ctx, func(s *model.AppState) error {
		for i, usr := range s.Users {
			if usr.ID == id {
				s.Users = append(s.Users[:i], s.Users[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	})
}

// --- Pengaturan & backup ---

func (u *StateUsecase) UpdateSettings(ctx context.Context, settings model.SystemSettings) (repository.SaveResult, error) {
	return u.Update(ctx, func(s *model.AppState) error {
		s.Settings = settings
		return nil
	})
}

func (u *StateUsecase) Backup(w io.Writer) error {
	return bulk.ExportBackup(w, u.Snapshot())
}

// Restore menimpa seluruh state dengan isi file backup. Dokumen tidak valid ditolak
// tanpa mengubah apa pun.
func (u *StateUsecase) Restore(ctx context.Context, r io.Reader) (repository.SaveResult, error) {
	restored, err := bulk.RestoreBackup(r)
	if err != nil {
		return repository.SaveResult{}, err
	}
	res, err := u.Update(ctx, func(s *model.AppState) error {
		*s = restored
		return nil
	})
	if err == nil {
		u.log.Info("Restore backup",
			zap.Int("opd", len(restored.OPDs)),
			zap.Int("progress", len(restored.Progress)))
	}
	return res, err
}
