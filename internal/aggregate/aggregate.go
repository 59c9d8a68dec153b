// Package aggregate menghitung total, persentase, dan status progres input SiRUP.
// Semua fungsi murni; tidak ada state turunan yang disimpan.
package aggregate

import (
	"math"
	"sort"

	"sirup-monitor/internal/model"
)

func TotalPaguTarget(opds []model.OPD) float64 {
	var total float64
	for _, o := range opds {
		total += o.PaguMurni
	}
	return total
}

func TotalPaguInput(records []model.ProgressRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.TotalPagu()
	}
	return total
}

func TotalPaketInput(records []model.ProgressRecord) int {
	total := 0
	for _, r := range records {
		total += r.TotalPaket()
	}
	return total
}

// ProvincialPercent bernilai 0 jika target tidak positif.
func ProvincialPercent(totalInput, totalTarget float64) float64 {
	if totalTarget > 0 {
		return totalInput / totalTarget * 100
	}
	return 0
}

// RowPercent memakai pembagi minimal 1 saat paguTarget nol, negatif, atau kosong.
// Berbeda dengan ProvincialPercent yang langsung mengembalikan 0.
func RowPercent(r model.ProgressRecord) float64 {
	target := r.PaguTarget
	if !(target > 0) {
		target = 1
	}
	return r.TotalPagu() / target * 100
}

// Round membulatkan setengah menjauhi nol. Satu-satunya aturan pembulatan
// untuk tampilan maupun klasifikasi.
func Round(p float64) int {
	if math.IsNaN(p) {
		return 0
	}
	r := math.Round(p)
	switch {
	case r >= float64(math.MaxInt):
		return math.MaxInt
	case r <= float64(math.MinInt):
		return math.MinInt
	}
	return int(r)
}

type RankedRow struct {
	OpdID   string               `json:"opdId"`
	Name    string               `json:"name"`
	Percent float64              `json:"percent"`
	Rounded int                  `json:"rounded"`
	Status  Status               `json:"status"`
	Record  model.ProgressRecord `json:"-"`
}

func newRankedRow(r model.ProgressRecord, opds []model.OPD) RankedRow {
	pct := RowPercent(r)
	rounded := Round(pct)
	return RankedRow{
		OpdID:   r.OpdID,
		Name:    model.OPDName(opds, r.OpdID),
		Percent: pct,
		Rounded: rounded,
		Status:  Classify(rounded),
		Record:  r,
	}
}

// Rank mengurutkan menurun berdasarkan persentase bulat; urutan input dipertahankan
// untuk nilai sama. Pemotongan top-N menjadi tanggung jawab pemanggil.
func Rank(records []model.ProgressRecord, opds []model.OPD) []RankedRow {
	rows := make([]RankedRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, newRankedRow(r, opds))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Rounded > rows[j].Rounded
	})
	return rows
}

type Counts struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Success  int `json:"success"`
	Over     int `json:"over"`
}

func (c Counts) Total() int {
	return c.Critical + c.Warning + c.Success + c.Over
}

func (c Counts) Of(s Status) int {
	switch s {
	case StatusWarning:
		return c.Warning
	case StatusSuccess:
		return c.Success
	case StatusOver:
		return c.Over
	default:
		return c.Critical
	}
}

func BucketCounts(records []model.ProgressRecord) Counts {
	var c Counts
	for _, r := range records {
		switch ClassifyPercent(RowPercent(r)) {
		case StatusCritical:
			c.Critical++
		case StatusWarning:
			c.Warning++
		case StatusSuccess:
			c.Success++
		case StatusOver:
			c.Over++
		}
	}
	return c
}

type PieSlice struct {
	Status Status `json:"status"`
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Color  string `json:"color"`
}

func PieSeries(c Counts) []PieSlice {
	statuses := []Status{StatusCritical, StatusWarning, StatusSuccess, StatusOver}
	out := make([]PieSlice, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, PieSlice{Status: s, Name: s.Label(), Value: c.Of(s), Color: s.ChartColor()})
	}
	return out
}

// Summary adalah blok statistik dashboard dan rekap publik.
type Summary struct {
	TotalPaguTarget float64 `json:"totalPaguTarget"`
	TotalPaguInput  float64 `json:"totalPaguInput"`
	TotalPaket      int     `json:"totalPaket"`
	Percent         float64 `json:"percent"`
	RoundedPercent  int     `json:"roundedPercent"`
	Status          Status  `json:"status"`
	Counts          Counts  `json:"counts"`
	TotalOPD        int     `json:"totalOpd"`
}

func Summarize(opds []model.OPD, records []model.ProgressRecord) Summary {
	target := TotalPaguTarget(opds)
	input := TotalPaguInput(records)
	pct := ProvincialPercent(input, target)
	rounded := Round(pct)
	return Summary{
		TotalPaguTarget: target,
		TotalPaguInput:  input,
		TotalPaket:      TotalPaketInput(records),
		Percent:         pct,
		RoundedPercent:  rounded,
		Status:          Classify(rounded),
		Counts:          BucketCounts(records),
		TotalOPD:        len(opds),
	}
}

// Top memotong hasil Rank menjadi n baris pertama; n <= 0 berarti semua.
func Top(rows []RankedRow, n int) []RankedRow {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
