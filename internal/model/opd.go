package model

import "encoding/json"

// OPD (Organisasi Perangkat Daerah). PaguMurni dalam satuan juta rupiah.
type OPD struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	PaguMurni float64 `json:"paguMurni"`
}

// MissingOPDName dipakai saat record progres merujuk OPD yang sudah dihapus.
const MissingOPDName = "(OPD tidak ditemukan)"

func (o *OPD) UnmarshalJSON(data []byte) error {
	var w struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		PaguMurni Number `json:"paguMurni"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*o = OPD{ID: w.ID, Name: w.Name, PaguMurni: float64(w.PaguMurni)}
	return nil
}
