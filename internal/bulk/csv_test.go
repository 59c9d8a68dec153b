package bulk

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sirup-monitor/internal/model"
)

var importTime = time.Date(2026, time.October, 14, 8, 0, 0, 0, time.UTC)

func fixture() ([]model.OPD, []model.ProgressRecord) {
	opds := []model.OPD{
		{ID: "dikbud", Name: "Dinas Pendidikan dan Kebudayaan", PaguMurni: 1500},
		{ID: "pupr", Name: "Dinas PUPR, Bidang Bina Marga", PaguMurni: 2200.75},
	}
	records := []model.ProgressRecord{
		{OpdID: "dikbud", PaguTarget: 1500, PrevPercent: 42.5, PenyediaPaket: 3, PenyediaPagu: 120.25, SwakelolaPaket: 1, SwakelolaPagu: 30, PdSPaket: 2, PdSPagu: 0.5, UpdatedAt: "2026-01-01T00:00:00Z"},
		{OpdID: "pupr", PaguTarget: 2000, PrevPercent: 10, PenyediaPaket: 7, PenyediaPagu: 999.999, UpdatedAt: "2026-01-01T00:00:00Z"},
	}
	return opds, records
}

func TestExportCSVFormat(t *testing.T) {
	opds, records := fixture()
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, records, opds))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID OPD,Nama Satuan Kerja,Paket Penyedia,Pagu Penyedia,Paket Swakelola,Pagu Swakelola,Paket PdS,Pagu PdS", lines[0])
	assert.Equal(t, `dikbud,"Dinas Pendidikan dan Kebudayaan",3,120.25,1,30,2,0.5`, lines[1])
	assert.Equal(t, `pupr,"Dinas PUPR, Bidang Bina Marga",7,999.999,0,0,0,0`, lines[2])
}

func TestExportImportRoundTrip(t *testing.T) {
	opds, records := fixture()
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, records, opds))

	got, err := ImportCSV(&buf, records, importTime)
	require.NoError(t, err)
	require.Len(t, got, len(records))

	for i, want := range records {
		assert.Equal(t, want.OpdID, got[i].OpdID)
		assert.Equal(t, want.PenyediaPaket, got[i].PenyediaPaket)
		assert.Equal(t, want.PenyediaPagu, got[i].PenyediaPagu)
		assert.Equal(t, want.SwakelolaPaket, got[i].SwakelolaPaket)
		assert.Equal(t, want.SwakelolaPagu, got[i].SwakelolaPagu)
		assert.Equal(t, want.PdSPaket, got[i].PdSPaket)
		assert.Equal(t, want.PdSPagu, got[i].PdSPagu)
		assert.Equal(t, want.PaguTarget, got[i].PaguTarget)
		assert.Equal(t, want.PrevPercent, got[i].PrevPercent)
		assert.Equal(t, "2026-10-14T08:00:00Z", got[i].UpdatedAt)
	}
}

func TestImportCSVSkipsAndDefaults(t *testing.T) {
	_, records := fixture()
	input := strings.Join([]string{
		"ID OPD,Nama,...",
		"",
		"dikbud,short,row",
		`unknown,"Dinas Hantu",1,1,1,1,1,1`,
		`"pupr","Dinas PUPR, Bidang Bina Marga",x,abc,4,12.5,,7.25`,
	}, "\r\n")

	got, err := ImportCSV(strings.NewReader(input), records, importTime)
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, "pupr", p.OpdID)
	assert.Equal(t, 0, p.PenyediaPaket)
	assert.Equal(t, 0.0, p.PenyediaPagu)
	assert.Equal(t, 4, p.SwakelolaPaket)
	assert.Equal(t, 12.5, p.SwakelolaPagu)
	assert.Equal(t, 0, p.PdSPaket)
	assert.Equal(t, 7.25, p.PdSPagu)
	assert.Equal(t, 2000.0, p.PaguTarget)
}

func TestImportCSVUnknownOnly(t *testing.T) {
	_, records := fixture()
	input := "header\nghost,\"Dinas Hantu\",1,2,3,4,5,6\n"

	got, err := ImportCSV(strings.NewReader(input), records, importTime)
	assert.ErrorIs(t, err, ErrNoValidData)
	assert.Nil(t, got)
}

func TestImportCSVHeaderOnly(t *testing.T) {
	_, records := fixture()
	_, err := ImportCSV(strings.NewReader("ID OPD,Nama\n"), records, importTime)
	assert.ErrorIs(t, err, ErrNoValidData)
}

func TestImportCSVDuplicateLastWins(t *testing.T) {
	_, records := fixture()
	input := "h\ndikbud,\"a\",1,1,1,1,1,1\ndikbud,\"a\",2,2,2,2,2,2\n"

	got, err := ImportCSV(strings.NewReader(input), records, importTime)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].PenyediaPaket)
}

func TestSplitLine(t *testing.T) {
	assert.Equal(t, []string{"a", "b, c", "d"}, SplitLine(`a,"b, c",d`))
	assert.Equal(t, []string{"a", "", "c"}, SplitLine("a,,c"))
	assert.Equal(t, []string{`say "hi"`, "x"}, SplitLine(`"say ""hi""",x`))
	assert.Equal(t, []string{""}, SplitLine(""))
}

func TestMergeProgressKeepsOthers(t *testing.T) {
	_, records := fixture()
	updated := records[1]
	updated.PenyediaPaket = 99

	merged := MergeProgress(records, []model.ProgressRecord{updated})
	require.Len(t, merged, 2)
	assert.Equal(t, records[0], merged[0])
	assert.Equal(t, 99, merged[1].PenyediaPaket)
}
