package database

import (
	"context"
	"time"

	"sirup-monitor/internal/model"
	"sirup-monitor/internal/repository"

	"go.uber.org/zap"
)

// SeedOPDs adalah daftar OPD awal Pemprov NTB. Pagu dalam juta rupiah.
func SeedOPDs() []model.OPD {
	return []model.OPD{
		{ID: "setda", Name: "Sekretariat Daerah", PaguMurni: 185250},
		{ID: "setwan", Name: "Sekretariat DPRD", PaguMurni: 142780},
		{ID: "dikbud", Name: "Dinas Pendidikan dan Kebudayaan", PaguMurni: 1250400},
		{ID: "dinkes", Name: "Dinas Kesehatan", PaguMurni: 412600},
		{ID: "pupr", Name: "Dinas Pekerjaan Umum dan Penataan Ruang", PaguMurni: 530150},
		{ID: "perkim", Name: "Dinas Perumahan dan Permukiman", PaguMurni: 98320},
		{ID: "dishub", Name: "Dinas Perhubungan", PaguMurni: 76540},
		{ID: "kominfotik", Name: "Dinas Komunikasi, Informatika dan Statistik", PaguMurni: 45210},
		{ID: "distanbun", Name: "Dinas Pertanian dan Perkebunan", PaguMurni: 88760},
		{ID: "dkp", Name: "Dinas Kelautan dan Perikanan", PaguMurni: 61430},
		{ID: "dispar", Name: "Dinas Pariwisata", PaguMurni: 39870},
		{ID: "dlhk", Name: "Dinas Lingkungan Hidup dan Kehutanan", PaguMurni: 112900},
		{ID: "bappeda", Name: "Badan Perencanaan Pembangunan Daerah", PaguMurni: 35640},
		{ID: "bpkad", Name: "Badan Pengelolaan Keuangan dan Aset Daerah", PaguMurni: 67280},
		{ID: "bkd", Name: "Badan Kepegawaian Daerah", PaguMurni: 28950},
		{ID: "rsud", Name: "RSUD Provinsi NTB", PaguMurni: 356700},
	}
}

// DefaultState adalah state awal lengkap: OPD seed, user default, satu record kosong per OPD.
func DefaultState(now time.Time) model.AppState {
	state := model.EmptyState()
	state.OPDs = SeedOPDs()
	state.Users = model.DefaultUsers()
	state.EnsureProgress(now)
	return state
}

// SeedAll menimpa seluruh dokumen dengan state awal.
func SeedAll(ctx context.Context, gw *repository.Gateway, log *zap.Logger) error {
	state := DefaultState(time.Now())
	res, err := gw.SaveAll(ctx, state)
	if err != nil {
		return err
	}
	log.Info("Seeding selesai",
		zap.Int("opd", len(state.OPDs)),
		zap.Int("users", len(state.Users)),
		zap.Bool("remote_synced", res.RemoteSynced))
	return nil
}
