package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRecordDecodeDefaults(t *testing.T) {
	raw := `{
		"opdId": "dikbud",
		"paguTarget": "1500.5",
		"todayPenyediaPaket": 12.9,
		"todayPenyediaPagu": null,
		"todaySwakelolaPagu": "abc",
		"todayPdSPaket": "7"
	}`

	var p ProgressRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "dikbud", p.OpdID)
	assert.Equal(t, 1500.5, p.PaguTarget)
	assert.Equal(t, 0.0, p.PrevPercent)
	assert.Equal(t, 12, p.PenyediaPaket)
	assert.Equal(t, 0.0, p.PenyediaPagu)
	assert.Equal(t, 0.0, p.SwakelolaPagu)
	assert.Equal(t, 7, p.PdSPaket)
	assert.Equal(t, 0.0, p.PdSPagu)
}

func TestAppStateDecodeMissingCollections(t *testing.T) {
	var s AppState
	require.NoError(t, json.Unmarshal([]byte(`{"orgUnits":[{"id":"a","name":"Dinas A","paguMurni":100}]}`), &s))

	require.Len(t, s.OPDs, 1)
	assert.NotNil(t, s.Progress)
	assert.NotNil(t, s.News)
	assert.NotNil(t, s.Users)
	assert.Empty(t, s.Progress)
	assert.Equal(t, DefaultSettings(), s.Settings)
}

func TestAppStateDecodeLegacyKeys(t *testing.T) {
	raw := `{
		"opds": [{"id":"a","name":"Dinas A","paguMurni":100}],
		"progress": [{"opdId":"a","paguTarget":100,"todayPenyediaPagu":40}],
		"settings": {"pejabatNama":"Budi","pejabatNip":"1","pejabatJabatan":"Kepala","ta":"2026"}
	}`

	var s AppState
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	require.Len(t, s.OPDs, 1)
	require.Len(t, s.Progress, 1)
	assert.Equal(t, 40.0, s.Progress[0].PenyediaPagu)
	assert.Equal(t, "Budi", s.Settings.PejabatNama)
}

func TestCloneIsIndependent(t *testing.T) {
	s := EmptyState()
	s.OPDs = append(s.OPDs, OPD{ID: "a", Name: "A"})
	s.Progress = append(s.Progress, ProgressRecord{OpdID: "a"})

	c := s.Clone()
	c.OPDs[0].Name = "changed"
	c.Progress[0].PenyediaPaket = 9

	assert.Equal(t, "A", s.OPDs[0].Name)
	assert.Equal(t, 0, s.Progress[0].PenyediaPaket)
}

func TestOPDNameOrphan(t *testing.T) {
	opds := []OPD{{ID: "a", Name: "Dinas A"}}
	assert.Equal(t, "Dinas A", OPDName(opds, "a"))
	assert.Equal(t, MissingOPDName, OPDName(opds, "deleted"))
}

func TestParseNumbers(t *testing.T) {
	assert.Equal(t, 0.0, ParseFloat(""))
	assert.Equal(t, 0.0, ParseFloat("NaN"))
	assert.Equal(t, 12.5, ParseFloat(" 12.5 "))
	assert.Equal(t, 12, ParseInt("12.7"))
	assert.Equal(t, 0, ParseInt("x"))
}
