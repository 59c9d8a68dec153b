package handler

import (
	"sirup-monitor/internal/aggregate"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	state *usecase.StateUsecase
}

func NewDashboardHandler(state *usecase.StateUsecase) *DashboardHandler {
	return &DashboardHandler{state: state}
}

// GetStatus dipakai indikator "Cloud Server Aktif" / "Mode Lokal".
func (h *DashboardHandler) GetStatus(c *fiber.Ctx) error {
	remote := h.state.IsRemoteMode()
	label := "Mode Lokal"
	if remote {
		label = "Cloud Server Aktif"
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"remote_mode": remote, "label": label}})
}

// Grafik batang menampilkan 10 OPD teratas kecuali ?top diisi (0 = semua).
const defaultTopBars = 10

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	s := h.state.Snapshot()
	summary := aggregate.Summarize(s.OPDs, s.Progress)
	ranked := aggregate.Top(aggregate.Rank(s.Progress, s.OPDs), c.QueryInt("top", defaultTopBars))

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data": fiber.Map{
			"summary": summary,
			"pie":     aggregate.PieSeries(summary.Counts),
			"bars":    ranked,
		},
	})
}

// GetPublicRekap adalah rekap publik di halaman depan: statistik + tabel berhalaman.
func (h *DashboardHandler) GetPublicRekap(c *fiber.Ctx) error {
	s := h.state.Snapshot()
	rep := aggregate.BuildReport(s.OPDs, s.Progress, reportQuery(c))

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"summary": aggregate.Summarize(s.OPDs, s.Progress),
			"report":  formatReport(rep),
		},
	})
}

func reportQuery(c *fiber.Ctx) aggregate.ReportQuery {
	return aggregate.ReportQuery{
		Search:   c.Query("search"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", aggregate.DefaultPageSize),
	}
}
