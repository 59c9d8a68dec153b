package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sirup-monitor/internal/model"
)

func record(opdID string, target, penyedia, swakelola, pds float64) model.ProgressRecord {
	return model.ProgressRecord{
		OpdID:         opdID,
		PaguTarget:    target,
		PenyediaPagu:  penyedia,
		SwakelolaPagu: swakelola,
		PdSPagu:       pds,
	}
}

func TestRowPercentExamples(t *testing.T) {
	cases := []struct {
		name    string
		rec     model.ProgressRecord
		pct     float64
		rounded int
		status  Status
	}{
		{"half is critical", record("a", 1000, 300, 200, 0), 50, 50, StatusCritical},
		{"full is success", record("a", 1000, 500, 300, 200), 100, 100, StatusSuccess},
		{"rounds down to success", record("a", 1000, 1001, 0, 0), 100.1, 100, StatusSuccess},
		{"zero target floors at one", record("a", 0, 50, 0, 0), 5000, 5000, StatusOver},
		{"99.6 rounds to success", record("a", 1000, 996, 0, 0), 99.6, 100, StatusSuccess},
		{"50.5 rounds to warning", record("a", 1000, 505, 0, 0), 50.5, 51, StatusWarning},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pct := RowPercent(tc.rec)
			assert.InDelta(t, tc.pct, pct, 1e-9)
			assert.Equal(t, tc.rounded, Round(pct))
			assert.Equal(t, tc.status, ClassifyPercent(pct))
		})
	}
}

func TestRowPercentZeroTargetSameAsOne(t *testing.T) {
	for _, target := range []float64{0, -10} {
		zero := record("a", target, 3, 4, 5)
		one := record("a", 1, 3, 4, 5)
		assert.Equal(t, RowPercent(one), RowPercent(zero))
	}
}

func TestProvincialPercentGuard(t *testing.T) {
	assert.Equal(t, 0.0, ProvincialPercent(500, 0))
	assert.Equal(t, 0.0, ProvincialPercent(500, -1))
	assert.InDelta(t, 25.0, ProvincialPercent(250, 1000), 1e-9)
}

func TestClassifyBoundaries(t *testing.T) {
	cases := map[int]Status{
		-5000: StatusCritical,
		-1:    StatusCritical,
		0:     StatusCritical,
		50:    StatusCritical,
		51:    StatusWarning,
		99:    StatusWarning,
		100:   StatusSuccess,
		101:   StatusOver,
		1e6:   StatusOver,
	}
	for in, want := range cases {
		assert.Equal(t, want, Classify(in), "input %d", in)
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 50, Round(49.5))
	assert.Equal(t, 49, Round(49.49))
	assert.Equal(t, -3, Round(-2.5))
	assert.Equal(t, 0, Round(0.4))
}

func TestRoundLargeValues(t *testing.T) {
	assert.Equal(t, 3000000000, Round(3e9))
	assert.Equal(t, StatusOver, Classify(Round(3e9)))
	assert.Equal(t, math.MaxInt, Round(1e300))
	assert.Equal(t, math.MinInt, Round(-1e300))
	assert.Equal(t, 0, Round(math.NaN()))
}

func TestBucketCountsPartition(t *testing.T) {
	records := []model.ProgressRecord{
		record("a", 1000, 0, 0, 0),
		record("b", 1000, 500, 0, 0),
		record("c", 1000, 700, 0, 0),
		record("d", 1000, 1000, 0, 0),
		record("e", 1000, 1004, 0, 0),
		record("f", 1000, 1500, 0, 0),
		record("g", 0, 0, 0, 0),
		record("h", 0, 1, 0, 0),
	}

	c := BucketCounts(records)
	assert.Equal(t, len(records), c.Total())
	// h: target 0 dibagi 1, pagu 1 -> 100%
	assert.Equal(t, Counts{Critical: 3, Warning: 1, Success: 3, Over: 1}, c)
}

func TestTotals(t *testing.T) {
	opds := []model.OPD{{ID: "a", PaguMurni: 1000}, {ID: "b", PaguMurni: 500.5}}
	records := []model.ProgressRecord{
		{OpdID: "a", PenyediaPaket: 2, PenyediaPagu: 100, SwakelolaPaket: 1, SwakelolaPagu: 50, PdSPaket: 3, PdSPagu: 25},
		{OpdID: "b", PenyediaPaket: 1, PenyediaPagu: 10},
	}

	assert.Equal(t, 1500.5, TotalPaguTarget(opds))
	assert.Equal(t, 185.0, TotalPaguInput(records))
	assert.Equal(t, 7, TotalPaketInput(records))
}

func TestRankStableDescending(t *testing.T) {
	opds := []model.OPD{{ID: "a", Name: "Dinas A"}, {ID: "b", Name: "Dinas B"}, {ID: "c", Name: "Dinas C"}}
	records := []model.ProgressRecord{
		record("a", 100, 50, 0, 0),
		record("b", 100, 80, 0, 0),
		record("c", 100, 50.2, 0, 0),
		record("gone", 100, 90, 0, 0),
	}

	rows := Rank(records, opds)
	require.Len(t, rows, 4)
	assert.Equal(t, "gone", rows[0].OpdID)
	assert.Equal(t, model.MissingOPDName, rows[0].Name)
	assert.Equal(t, "b", rows[1].OpdID)
	// a dan c sama-sama 50 setelah dibulatkan, urutan input dipertahankan
	assert.Equal(t, "a", rows[2].OpdID)
	assert.Equal(t, "c", rows[3].OpdID)

	assert.Len(t, Top(rows, 2), 2)
	assert.Len(t, Top(rows, 0), 4)
}

func TestSummarize(t *testing.T) {
	opds := []model.OPD{{ID: "a", PaguMurni: 1000}, {ID: "b", PaguMurni: 1000}}
	records := []model.ProgressRecord{record("a", 1000, 1000, 0, 0), record("b", 1000, 0, 0, 0)}

	s := Summarize(opds, records)
	assert.Equal(t, 2000.0, s.TotalPaguTarget)
	assert.Equal(t, 1000.0, s.TotalPaguInput)
	assert.Equal(t, 50, s.RoundedPercent)
	assert.Equal(t, StatusCritical, s.Status)
	assert.Equal(t, 1, s.Counts.Success)
	assert.Equal(t, 1, s.Counts.Critical)

	pie := PieSeries(s.Counts)
	require.Len(t, pie, 4)
	assert.Equal(t, "#EF4444", pie[0].Color)
	assert.Equal(t, 1, pie[2].Value)
}

func TestStatusText(t *testing.T) {
	b, err := StatusOver.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "over", string(b))

	var s Status
	require.NoError(t, s.UnmarshalText([]byte("warning")))
	assert.Equal(t, StatusWarning, s)
	assert.Error(t, s.UnmarshalText([]byte("unknown")))

	assert.Equal(t, "#00B050", StatusSuccess.Color())
}
