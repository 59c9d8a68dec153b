package aggregate

import (
	"strings"

	"sirup-monitor/internal/model"
)

const (
	DefaultPageSize = 10
	maxVisiblePages = 5
)

type ReportQuery struct {
	Search   string
	Page     int
	PageSize int // <= 0 memakai DefaultPageSize
}

type CategoryTotal struct {
	Paket int     `json:"paket"`
	Pagu  float64 `json:"pagu"`
}

type ReportRow struct {
	No          int           `json:"no"`
	OpdID       string        `json:"opdId"`
	Name        string        `json:"name"`
	PaguTarget  float64       `json:"paguTarget"`
	PrevPercent float64       `json:"prevPercent"`
	Penyedia    CategoryTotal `json:"penyedia"`
	Swakelola   CategoryTotal `json:"swakelola"`
	PdS         CategoryTotal `json:"pds"`
	Total       CategoryTotal `json:"total"`
	Percent     float64       `json:"percent"`
	Rounded     int           `json:"rounded"`
	Status      Status        `json:"status"`
}

type ReportTotals struct {
	PaguTarget float64       `json:"paguTarget"`
	Penyedia   CategoryTotal `json:"penyedia"`
	Swakelola  CategoryTotal `json:"swakelola"`
	PdS        CategoryTotal `json:"pds"`
	Total      CategoryTotal `json:"total"`
	Percent    float64       `json:"percent"`
	Rounded    int           `json:"rounded"`
	Status     Status        `json:"status"`
}

// Report adalah tabel laporan resmi: baris halaman aktif dan total seluruh hasil filter.
type Report struct {
	Rows         []ReportRow  `json:"rows"`
	Totals       ReportTotals `json:"totals"`
	Page         int          `json:"page"`
	PageSize     int          `json:"pageSize"`
	TotalEntries int          `json:"totalEntries"`
	TotalPages   int          `json:"totalPages"`
	StartEntry   int          `json:"startEntry"`
	EndEntry     int          `json:"endEntry"`
	Pages        []int        `json:"pages"`
}

// FilterByName mencocokkan substring nama OPD tanpa membedakan huruf besar/kecil.
// Record yatim dicocokkan dengan nama pengganti.
func FilterByName(records []model.ProgressRecord, opds []model.OPD, search string) []model.ProgressRecord {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]model.ProgressRecord, 0, len(records))
	for _, r := range records {
		if needle == "" || strings.Contains(strings.ToLower(model.OPDName(opds, r.OpdID)), needle) {
			out = append(out, r)
		}
	}
	return out
}

func BuildReport(opds []model.OPD, records []model.ProgressRecord, q ReportQuery) Report {
	filtered := FilterByName(records, opds, q.Search)

	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(filtered)
	totalPages := total / size
	if total%size != 0 {
		totalPages++
	}

	page := q.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := 0
	if page > 1 {
		start = (page - 1) * size
	}
	if start > total {
		start = total
	}
	end := total
	if size < total-start {
		end = start + size
	}

	rep := Report{
		Rows:         make([]ReportRow, 0, end-start),
		Totals:       reportTotals(filtered),
		Page:         page,
		PageSize:     size,
		TotalEntries: total,
		TotalPages:   totalPages,
		EndEntry:     end,
		Pages:        pageWindow(page, totalPages),
	}
	if total > 0 {
		rep.StartEntry = start + 1
	}

	for i, r := range filtered[start:end] {
		rep.Rows = append(rep.Rows, reportRow(start+i+1, r, opds))
	}
	return rep
}

func reportRow(no int, r model.ProgressRecord, opds []model.OPD) ReportRow {
	pct := RowPercent(r)
	rounded := Round(pct)
	return ReportRow{
		No:          no,
		OpdID:       r.OpdID,
		Name:        model.OPDName(opds, r.OpdID),
		PaguTarget:  r.PaguTarget,
		PrevPercent: r.PrevPercent,
		Penyedia:    CategoryTotal{Paket: r.PenyediaPaket, Pagu: r.PenyediaPagu},
		Swakelola:   CategoryTotal{Paket: r.SwakelolaPaket, Pagu: r.SwakelolaPagu},
		PdS:         CategoryTotal{Paket: r.PdSPaket, Pagu: r.PdSPagu},
		Total:       CategoryTotal{Paket: r.TotalPaket(), Pagu: r.TotalPagu()},
		Percent:     pct,
		Rounded:     rounded,
		Status:      Classify(rounded),
	}
}

func reportTotals(records []model.ProgressRecord) ReportTotals {
	var t ReportTotals
	for _, r := range records {
		t.PaguTarget += r.PaguTarget
		t.Penyedia.Paket += r.PenyediaPaket
		t.Penyedia.Pagu += r.PenyediaPagu
		t.Swakelola.Paket += r.SwakelolaPaket
		t.Swakelola.Pagu += r.SwakelolaPagu
		t.PdS.Paket += r.PdSPaket
		t.PdS.Pagu += r.PdSPagu
	}
	t.Total.Paket = t.Penyedia.Paket + t.Swakelola.Paket + t.PdS.Paket
	t.Total.Pagu = t.Penyedia.Pagu + t.Swakelola.Pagu + t.PdS.Pagu
	t.Percent = ProvincialPercent(t.Total.Pagu, t.PaguTarget)
	t.Rounded = Round(t.Percent)
	t.Status = Classify(t.Rounded)
	return t
}

// pageWindow mengembalikan maksimal 5 nomor halaman di sekitar halaman aktif.
func pageWindow(current, totalPages int) []int {
	pages := []int{}
	if totalPages == 0 {
		return pages
	}
	start := current - 2
	if start < 1 {
		start = 1
	}
	end := start + maxVisiblePages - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start+1 < maxVisiblePages {
		start = end - maxVisiblePages + 1
		if start < 1 {
			start = 1
		}
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
