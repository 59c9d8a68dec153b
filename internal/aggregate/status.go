package aggregate

import "fmt"

// Status adalah kategori warna progres, ditentukan dari persentase yang sudah dibulatkan.
type Status int

const (
	StatusCritical Status = iota // <= 50
	StatusWarning                // 51 - 99
	StatusSuccess                // 100
	StatusOver                   // > 100
)

// Classify berlaku untuk seluruh rentang int, nilai negatif masuk Critical.
func Classify(rounded int) Status {
	switch {
	case rounded <= 50:
		return StatusCritical
	case rounded < 100:
		return StatusWarning
	case rounded == 100:
		return StatusSuccess
	default:
		return StatusOver
	}
}

// ClassifyPercent membulatkan satu kali lalu mengklasifikasi.
func ClassifyPercent(p float64) Status {
	return Classify(Round(p))
}

var statusNames = [...]string{"critical", "warning", "success", "over"}

func (s Status) String() string {
	if s < StatusCritical || s > StatusOver {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Label dipakai di legenda dashboard dan laporan.
func (s Status) Label() string {
	switch s {
	case StatusWarning:
		return "Belum Lengkap (51-99%)"
	case StatusSuccess:
		return "Sudah Sesuai (100%)"
	case StatusOver:
		return "Melebihi (>100%)"
	default:
		return "Terumumkan (0-50%)"
	}
}

// Color adalah warna sel di laporan resmi (cetak).
func (s Status) Color() string {
	switch s {
	case StatusWarning:
		return "#FFFF00"
	case StatusSuccess:
		return "#00B050"
	case StatusOver:
		return "#00B0F0"
	default:
		return "#FF0000"
	}
}

// ChartColor adalah warna segmen grafik dashboard.
func (s Status) ChartColor() string {
	switch s {
	case StatusWarning:
		return "#F59E0B"
	case StatusSuccess:
		return "#22C55E"
	case StatusOver:
		return "#3B82F6"
	default:
		return "#EF4444"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for i, n := range statusNames {
		if n == string(b) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("status tidak dikenal: %q", string(b))
}
