package model

type NewsTag string

const (
	TagPenting  NewsTag = "Penting"
	TagKegiatan NewsTag = "Kegiatan"
	TagUpdate   NewsTag = "Update"
	TagPanduan  NewsTag = "Panduan"
)

func ValidTag(t NewsTag) bool {
	switch t {
	case TagPenting, TagKegiatan, TagUpdate, TagPanduan:
		return true
	}
	return false
}

type NewsItem struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Date    string  `json:"date"` // teks bebas, format lokal
	Excerpt string  `json:"excerpt"`
	Tag     NewsTag `json:"tag"`
}

// SystemSettings diisikan ke blok tanda tangan laporan resmi.
type SystemSettings struct {
	PejabatNama    string `json:"pejabatNama"`
	PejabatNip     string `json:"pejabatNip"`
	PejabatJabatan string `json:"pejabatJabatan"`
	TA             string `json:"ta"`
}

func DefaultSettings() SystemSettings {
	return SystemSettings{
		PejabatNama:    "Nama Pejabat",
		PejabatNip:     "19700101 199001 1 001",
		PejabatJabatan: "Kepala Biro Pengadaan Barang dan Jasa",
		TA:             "2026",
	}
}
