// Package bulk berisi codec impor/ekspor massal: CSV progres per OPD dan backup JSON penuh.
package bulk

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"sirup-monitor/internal/model"
)

// MinFields adalah jumlah kolom minimal agar satu baris CSV diterima.
const MinFields = 8

var csvHeader = []string{
	"ID OPD", "Nama Satuan Kerja",
	"Paket Penyedia", "Pagu Penyedia",
	"Paket Swakelola", "Pagu Swakelola",
	"Paket PdS", "Pagu PdS",
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportCSV menulis satu baris per record, nama OPD selalu dikutip.
func ExportCSV(w io.Writer, records []model.ProgressRecord, opds []model.OPD) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(csvHeader, ",")); err != nil {
		return err
	}
	for _, p := range records {
		fields := []string{
			p.OpdID,
			quote(model.OPDName(opds, p.OpdID)),
			strconv.Itoa(p.PenyediaPaket), num(p.PenyediaPagu),
			strconv.Itoa(p.SwakelolaPaket), num(p.SwakelolaPagu),
			strconv.Itoa(p.PdSPaket), num(p.PdSPagu),
		}
		if _, err := bw.WriteString("\n" + strings.Join(fields, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SplitLine memecah baris berdasarkan koma; field dalam tanda kutip tetap satu token
// walaupun berisi koma. Tanda kutip pembungkus dibuang, "" dibaca sebagai ".
func SplitLine(line string) []string {
	var (
		fields  []string
		cur     strings.Builder
		inQuote bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && inQuote && i+1 < len(line) && line[i+1] == '"':
			cur.WriteByte('"')
			i++
		case c == '"':
			inQuote = !inQuote
		case c == ',' && !inQuote:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return append(fields, strings.TrimSpace(cur.String()))
}

// ImportCSV membaca file template dan mengembalikan record yang cocok dengan existing,
// urut sesuai baris file. Baris pertama selalu header. Baris dengan kolom kurang dari
// MinFields dan ID yang tidak dikenal dilewati tanpa error. Jika tidak ada satu pun
// baris yang cocok, ErrNoValidData dikembalikan.
func ImportCSV(r io.Reader, existing []model.ProgressRecord, now time.Time) ([]model.ProgressRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	byID := make(map[string]model.ProgressRecord, len(existing))
	for _, p := range existing {
		if _, dup := byID[p.OpdID]; !dup {
			byID[p.OpdID] = p
		}
	}

	updatedAt := now.UTC().Format(time.RFC3339Nano)
	out := []model.ProgressRecord{}
	pos := map[string]int{}

	lines := strings.Split(string(raw), "\n")
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		parts := SplitLine(line)
		if len(parts) < MinFields {
			continue
		}
		base, ok := byID[parts[0]]
		if !ok {
			continue
		}

		base.PenyediaPaket = model.ParseInt(parts[2])
		base.PenyediaPagu = model.ParseFloat(parts[3])
		base.SwakelolaPaket = model.ParseInt(parts[4])
		base.SwakelolaPagu = model.ParseFloat(parts[5])
		base.PdSPaket = model.ParseInt(parts[6])
		base.PdSPagu = model.ParseFloat(parts[7])
		base.UpdatedAt = updatedAt

		// baris ganda untuk OPD yang sama: baris terakhir menang
		if idx, seen := pos[base.OpdID]; seen {
			out[idx] = base
			continue
		}
		pos[base.OpdID] = len(out)
		out = append(out, base)
	}

	if len(out) == 0 {
		return nil, ErrNoValidData
	}
	return out, nil
}

// MergeProgress mengganti record yang opdId-nya ada di updates; record lain tetap.
func MergeProgress(current, updates []model.ProgressRecord) []model.ProgressRecord {
	byID := make(map[string]model.ProgressRecord, len(updates))
	for _, u := range updates {
		byID[u.OpdID] = u
	}
	merged := make([]model.ProgressRecord, 0, len(current))
	for _, p := range current {
		if u, ok := byID[p.OpdID]; ok {
			merged = append(merged, u)
			continue
		}
		merged = append(merged, p)
	}
	return merged
}
