package model

import (
	"encoding/json"
	"time"
)

// AppState adalah satu dokumen utuh yang selalu dibaca dan ditulis bersamaan.
type AppState struct {
	OPDs     []OPD            `json:"orgUnits"`
	Progress []ProgressRecord `json:"progressRecords"`
	News     []NewsItem       `json:"news"`
	Users    []User           `json:"users"`
	Settings SystemSettings   `json:"settings"`
}

// Key dokumen. Versi lama aplikasi memakai "opds" dan "progress".
const (
	KeyOPDs           = "orgUnits"
	KeyProgress       = "progressRecords"
	KeyNews           = "news"
	KeyUsers          = "users"
	KeySettings       = "settings"
	LegacyKeyOPDs     = "opds"
	LegacyKeyProgress = "progress"
)

func EmptyState() AppState {
	return AppState{
		OPDs:     []OPD{},
		Progress: []ProgressRecord{},
		News:     []NewsItem{},
		Users:    []User{},
		Settings: DefaultSettings(),
	}
}

type stateWire struct {
	OPDs           []OPD            `json:"orgUnits"`
	Progress       []ProgressRecord `json:"progressRecords"`
	LegacyOPDs     []OPD            `json:"opds"`
	LegacyProgress []ProgressRecord `json:"progress"`
	News           []NewsItem       `json:"news"`
	Users          []User           `json:"users"`
	Settings       *SystemSettings  `json:"settings"`
}

// UnmarshalJSON mengisi koleksi yang hilang dengan slice kosong dan settings default.
func (s *AppState) UnmarshalJSON(data []byte) error {
	var w stateWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	st := EmptyState()
	switch {
	case w.OPDs != nil:
		st.OPDs = w.OPDs
	case w.LegacyOPDs != nil:
		st.OPDs = w.LegacyOPDs
	}
	switch {
	case w.Progress != nil:
		st.Progress = w.Progress
	case w.LegacyProgress != nil:
		st.Progress = w.LegacyProgress
	}
	if w.News != nil {
		st.News = w.News
	}
	if w.Users != nil {
		st.Users = w.Users
	}
	if w.Settings != nil {
		st.Settings = *w.Settings
	}

	*s = st
	return nil
}

// Clone menyalin seluruh koleksi supaya snapshot tidak berbagi backing array.
func (s AppState) Clone() AppState {
	return AppState{
		OPDs:     append([]OPD{}, s.OPDs...),
		Progress: append([]ProgressRecord{}, s.Progress...),
		News:     append([]NewsItem{}, s.News...),
		Users:    append([]User{}, s.Users...),
		Settings: s.Settings,
	}
}

func (s AppState) FindOPD(id string) (OPD, bool) {
	for _, o := range s.OPDs {
		if o.ID == id {
			return o, true
		}
	}
	return OPD{}, false
}

// FindProgress mengembalikan index record untuk opdID.
func (s AppState) FindProgress(opdID string) (int, bool) {
	for i, p := range s.Progress {
		if p.OpdID == opdID {
			return i, true
		}
	}
	return -1, false
}

func (s AppState) FindUserByUsername(username string) (User, bool) {
	for _, u := range s.Users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

// OPDName mencari nama OPD, record yatim mendapat nama pengganti.
func OPDName(opds []OPD, id string) string {
	for _, o := range opds {
		if o.ID == id {
			return o.Name
		}
	}
	return MissingOPDName
}

// EnsureProgress menambahkan record kosong untuk setiap OPD yang belum punya record.
func (s *AppState) EnsureProgress(now time.Time) {
	for _, o := range s.OPDs {
		if _, ok := s.FindProgress(o.ID); !ok {
			s.Progress = append(s.Progress, NewProgressRecord(o, now))
		}
	}
}
