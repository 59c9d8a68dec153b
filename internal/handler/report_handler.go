package handler

import (
	"time"

	"sirup-monitor/internal/aggregate"
	"sirup-monitor/internal/format"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	state *usecase.StateUsecase
}

func NewReportHandler(state *usecase.StateUsecase) *ReportHandler {
	return &ReportHandler{state: state}
}

// Sel laporan yang sudah diformat id-ID, siap dicetak.
type formattedCategory struct {
	Paket string `json:"paket"`
	Pagu  string `json:"pagu"`
}

type formattedRow struct {
	aggregate.ReportRow
	Cells struct {
		PaguTarget  string            `json:"paguTarget"`
		PrevPercent string            `json:"prevPercent"`
		Penyedia    formattedCategory `json:"penyedia"`
		Swakelola   formattedCategory `json:"swakelola"`
		PdS         formattedCategory `json:"pds"`
		Total       formattedCategory `json:"total"`
		Percent     string            `json:"percent"`
	} `json:"cells"`
	Color string `json:"color"`
}

type formattedTotals struct {
	aggregate.ReportTotals
	Cells struct {
		PaguTarget string            `json:"paguTarget"`
		Penyedia   formattedCategory `json:"penyedia"`
		Swakelola  formattedCategory `json:"swakelola"`
		PdS        formattedCategory `json:"pds"`
		Total      formattedCategory `json:"total"`
		Percent    string            `json:"percent"`
	} `json:"cells"`
	Color string `json:"color"`
}

type formattedReport struct {
	Rows         []formattedRow  `json:"rows"`
	Totals       formattedTotals `json:"totals"`
	Page         int             `json:"page"`
	PageSize     int             `json:"pageSize"`
	TotalEntries int             `json:"totalEntries"`
	TotalPages   int             `json:"totalPages"`
	StartEntry   int             `json:"startEntry"`
	EndEntry     int             `json:"endEntry"`
	Pages        []int           `json:"pages"`
}

type legendItem struct {
	Status aggregate.Status `json:"status"`
	Label  string           `json:"label"`
	Color  string           `json:"color"`
}

func category(c aggregate.CategoryTotal) formattedCategory {
	return formattedCategory{Paket: format.ReportNumber(float64(c.Paket)), Pagu: format.ReportNumber(c.Pagu)}
}

func formatReport(rep aggregate.Report) formattedReport {
	out := formattedReport{
		Rows:         make([]formattedRow, 0, len(rep.Rows)),
		Page:         rep.Page,
		PageSize:     rep.PageSize,
		TotalEntries: rep.TotalEntries,
		TotalPages:   rep.TotalPages,
		StartEntry:   rep.StartEntry,
		EndEntry:     rep.EndEntry,
		Pages:        rep.Pages,
	}

	for _, r := range rep.Rows {
		fr := formattedRow{ReportRow: r, Color: r.Status.Color()}
		fr.Cells.PaguTarget = format.ReportNumber(r.PaguTarget)
		fr.Cells.PrevPercent = format.ReportDecimal(r.PrevPercent)
		fr.Cells.Penyedia = category(r.Penyedia)
		fr.Cells.Swakelola = category(r.Swakelola)
		fr.Cells.PdS = category(r.PdS)
		fr.Cells.Total = category(r.Total)
		fr.Cells.Percent = format.ReportDecimal(r.Percent)
		out.Rows = append(out.Rows, fr)
	}

	t := rep.Totals
	out.Totals = formattedTotals{ReportTotals: t, Color: t.Status.Color()}
	out.Totals.Cells.PaguTarget = format.ReportNumber(t.PaguTarget)
	out.Totals.Cells.Penyedia = category(t.Penyedia)
	out.Totals.Cells.Swakelola = category(t.Swakelola)
	out.Totals.Cells.PdS = category(t.PdS)
	out.Totals.Cells.Total = category(t.Total)
	out.Totals.Cells.Percent = format.ReportDecimal(t.Percent)
	return out
}

func legend() []legendItem {
	statuses := []aggregate.Status{aggregate.StatusCritical, aggregate.StatusWarning, aggregate.StatusSuccess, aggregate.StatusOver}
	out := make([]legendItem, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, legendItem{Status: s, Label: s.Label(), Color: s.Color()})
	}
	return out
}

// GetOfficialReport menyediakan data untuk laporan resmi (cetak) beserta blok tanda tangan.
// page_size=0 mengembalikan seluruh baris untuk dicetak.
func (h *ReportHandler) GetOfficialReport(c *fiber.Ctx) error {
	s := h.state.Snapshot()
	q := reportQuery(c)
	if c.Query("page_size") == "0" {
		q.PageSize = len(s.Progress)
		q.Page = 1
	}
	rep := aggregate.BuildReport(s.OPDs, s.Progress, q)

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"title":     "LAPORAN PROGRES INPUT SIRUP TA " + s.Settings.TA,
			"timestamp": format.Timestamp(time.Now()),
			"report":    formatReport(rep),
			"legend":    legend(),
			"settings":  s.Settings,
		},
	})
}
