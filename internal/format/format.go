// Package format menyiapkan angka dan tanggal untuk tampilan laporan (locale id-ID).
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"sirup-monitor/internal/aggregate"
)

const TemplateFileName = "TEMPLATE_INPUT_SIRUP_2026.csv"

// WITA (UTC+8), zona waktu laporan.
var WITA = time.FixedZone("WITA", 8*60*60)

var printer = message.NewPrinter(language.Indonesian)

var bulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func integer(v float64) string {
	return printer.Sprintf("%v", number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
}

// ReportNumber menampilkan "-" untuk nol, selain itu bilangan bulat dengan pemisah ribuan.
func ReportNumber(v float64) string {
	if v == 0 {
		return "-"
	}
	return integer(v)
}

func CurrencyMillions(v float64) string {
	return integer(v)
}

// ReportDecimal membulatkan ke bilangan bulat lalu menampilkan dua desimal (99,98 -> 100,00).
func ReportDecimal(v float64) string {
	rounded := float64(aggregate.Round(v))
	return printer.Sprintf("%v", number.Decimal(rounded, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func Percent(v float64) string {
	return ReportDecimal(v) + "%"
}

// Timestamp: "UPDATE 14 OKTOBER 2026 - JAM : 10.30 WITA".
func Timestamp(t time.Time) string {
	w := t.In(WITA)
	date := fmt.Sprintf("%02d %s %d", w.Day(), bulan[w.Month()-1], w.Year())
	clock := fmt.Sprintf("%02d.%02d", w.Hour(), w.Minute())
	return strings.ToUpper(fmt.Sprintf("UPDATE %s - JAM : %s WITA", date, clock))
}

// LongDate: tanggal panjang id-ID, mis. "05 Januari 2026".
func LongDate(t time.Time) string {
	w := t.In(WITA)
	return fmt.Sprintf("%02d %s %d", w.Day(), bulan[w.Month()-1], w.Year())
}

func BackupFileName(t time.Time) string {
	return fmt.Sprintf("BACKUP_SIRUP_NTB_FULL_%s.json", t.UTC().Format("2006-01-02"))
}
