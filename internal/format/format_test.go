package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportNumber(t *testing.T) {
	assert.Equal(t, "-", ReportNumber(0))
	assert.Equal(t, "1.234.567", ReportNumber(1234567))
	assert.Equal(t, "999", ReportNumber(999.4))
	assert.Equal(t, "0", CurrencyMillions(0))
}

func TestReportDecimalRoundsFirst(t *testing.T) {
	assert.Equal(t, "100,00", ReportDecimal(99.98))
	assert.Equal(t, "50,00", ReportDecimal(49.5))
	assert.Equal(t, "0,00", ReportDecimal(0))
	assert.Equal(t, "5.000,00%", Percent(5000))
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "05 Januari 2026", LongDate(time.Date(2026, time.January, 5, 2, 0, 0, 0, time.UTC)))
	// 20:00 UTC sudah berganti hari di WITA
	assert.Equal(t, "01 Maret 2026", LongDate(time.Date(2026, time.February, 28, 20, 0, 0, 0, time.UTC)))
}

func TestTimestampInWITA(t *testing.T) {
	ts := time.Date(2026, time.October, 14, 2, 30, 0, 0, time.UTC)
	assert.Equal(t, "UPDATE 14 OKTOBER 2026 - JAM : 10.30 WITA", Timestamp(ts))
}

func TestBackupFileName(t *testing.T) {
	ts := time.Date(2026, time.February, 3, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "BACKUP_SIRUP_NTB_FULL_2026-02-03.json", BackupFileName(ts))
}
