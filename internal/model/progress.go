package model

import (
	"encoding/json"
	"time"
)

// ProgressRecord menyimpan input harian satu OPD. Satu OPD maksimal satu record aktif.
type ProgressRecord struct {
	OpdID       string  `json:"opdId"`
	PaguTarget  float64 `json:"paguTarget"`
	PrevPercent float64 `json:"prevPercent"`

	PenyediaPaket  int     `json:"todayPenyediaPaket"`
	PenyediaPagu   float64 `json:"todayPenyediaPagu"`
	SwakelolaPaket int     `json:"todaySwakelolaPaket"`
	SwakelolaPagu  float64 `json:"todaySwakelolaPagu"`
	PdSPaket       int     `json:"todayPdSPaket"` // Penyedia dalam Swakelola
	PdSPagu        float64 `json:"todayPdSPagu"`

	UpdatedAt string `json:"updatedAt"`
}

// NewProgressRecord membuat record kosong untuk OPD, target diambil dari pagu murni.
func NewProgressRecord(opd OPD, now time.Time) ProgressRecord {
	return ProgressRecord{
		OpdID:      opd.ID,
		PaguTarget: opd.PaguMurni,
		UpdatedAt:  now.UTC().Format(time.RFC3339Nano),
	}
}

func (p ProgressRecord) TotalPagu() float64 {
	return p.PenyediaPagu + p.SwakelolaPagu + p.PdSPagu
}

func (p ProgressRecord) TotalPaket() int {
	return p.PenyediaPaket + p.SwakelolaPaket + p.PdSPaket
}

type progressWire struct {
	OpdID          string `json:"opdId"`
	PaguTarget     Number `json:"paguTarget"`
	PrevPercent    Number `json:"prevPercent"`
	PenyediaPaket  Number `json:"todayPenyediaPaket"`
	PenyediaPagu   Number `json:"todayPenyediaPagu"`
	SwakelolaPaket Number `json:"todaySwakelolaPaket"`
	SwakelolaPagu  Number `json:"todaySwakelolaPagu"`
	PdSPaket       Number `json:"todayPdSPaket"`
	PdSPagu        Number `json:"todayPdSPagu"`
	UpdatedAt      string `json:"updatedAt"`
}

// UnmarshalJSON menerima field yang hilang, null, atau bukan angka sebagai 0.
func (p *ProgressRecord) UnmarshalJSON(data []byte) error {
	var w progressWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = ProgressRecord{
		OpdID:          w.OpdID,
		PaguTarget:     float64(w.PaguTarget),
		PrevPercent:    float64(w.PrevPercent),
		PenyediaPaket:  w.PenyediaPaket.Int(),
		PenyediaPagu:   float64(w.PenyediaPagu),
		SwakelolaPaket: w.SwakelolaPaket.Int(),
		SwakelolaPagu:  float64(w.SwakelolaPagu),
		PdSPaket:       w.PdSPaket.Int(),
		PdSPagu:        float64(w.PdSPagu),
		UpdatedAt:      w.UpdatedAt,
	}
	return nil
}
