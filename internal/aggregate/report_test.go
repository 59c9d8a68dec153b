package aggregate

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sirup-monitor/internal/model"
)

func reportFixture(n int) ([]model.OPD, []model.ProgressRecord) {
	opds := make([]model.OPD, 0, n)
	records := make([]model.ProgressRecord, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("opd-%02d", i)
		opds = append(opds, model.OPD{ID: id, Name: fmt.Sprintf("Dinas %02d", i), PaguMurni: 100})
		records = append(records, model.ProgressRecord{
			OpdID: id, PaguTarget: 100,
			PenyediaPaket: 1, PenyediaPagu: float64(i),
			SwakelolaPaket: 2, SwakelolaPagu: 1,
		})
	}
	return opds, records
}

func TestBuildReportPagination(t *testing.T) {
	opds, records := reportFixture(23)

	rep := BuildReport(opds, records, ReportQuery{Page: 3})
	assert.Equal(t, 23, rep.TotalEntries)
	assert.Equal(t, 3, rep.TotalPages)
	assert.Equal(t, 10, rep.PageSize)
	assert.Equal(t, 21, rep.StartEntry)
	assert.Equal(t, 23, rep.EndEntry)
	require.Len(t, rep.Rows, 3)
	assert.Equal(t, 21, rep.Rows[0].No)
	assert.Equal(t, []int{1, 2, 3}, rep.Pages)

	rep = BuildReport(opds, records, ReportQuery{Page: 99})
	assert.Equal(t, 3, rep.Page)
}

func TestBuildReportHugePageSize(t *testing.T) {
	opds, records := reportFixture(3)

	rep := BuildReport(opds, records, ReportQuery{Page: 2, PageSize: math.MaxInt})
	assert.Equal(t, 1, rep.TotalPages)
	assert.Equal(t, 1, rep.Page)
	assert.Equal(t, 1, rep.StartEntry)
	assert.Equal(t, 3, rep.EndEntry)
	assert.Len(t, rep.Rows, 3)
	assert.Equal(t, []int{1}, rep.Pages)
}

func TestBuildReportTotalsCoverFilteredSet(t *testing.T) {
	opds, records := reportFixture(12)

	rep := BuildReport(opds, records, ReportQuery{PageSize: 5})
	assert.Len(t, rep.Rows, 5)
	assert.Equal(t, 1200.0, rep.Totals.PaguTarget)
	assert.Equal(t, 12, rep.Totals.Penyedia.Paket)
	assert.Equal(t, 24, rep.Totals.Swakelola.Paket)
	assert.Equal(t, 36, rep.Totals.Total.Paket)
	// 1+2+...+12 = 78 penyedia, 12 swakelola
	assert.Equal(t, 90.0, rep.Totals.Total.Pagu)
	assert.InDelta(t, 7.5, rep.Totals.Percent, 1e-9)
	assert.Equal(t, 8, rep.Totals.Rounded)
}

func TestBuildReportSearch(t *testing.T) {
	opds, records := reportFixture(12)
	records = append(records, model.ProgressRecord{OpdID: "removed"})

	rep := BuildReport(opds, records, ReportQuery{Search: "dinas 1"})
	assert.Equal(t, 3, rep.TotalEntries) // 10, 11, 12

	rep = BuildReport(opds, records, ReportQuery{Search: "TIDAK DITEMUKAN"})
	require.Equal(t, 1, rep.TotalEntries)
	assert.Equal(t, model.MissingOPDName, rep.Rows[0].Name)

	rep = BuildReport(opds, records, ReportQuery{Search: "zzz"})
	assert.Equal(t, 0, rep.TotalEntries)
	assert.Equal(t, 0, rep.StartEntry)
	assert.Empty(t, rep.Rows)
	assert.Empty(t, rep.Pages)
}

func TestBuildReportRowPercentUnified(t *testing.T) {
	opds := []model.OPD{{ID: "a", Name: "A"}}
	records := []model.ProgressRecord{{OpdID: "a", PaguTarget: 0, PenyediaPagu: 2}}

	rep := BuildReport(opds, records, ReportQuery{})
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, RowPercent(records[0]), rep.Rows[0].Percent)
	assert.Equal(t, StatusOver, rep.Rows[0].Status)
	assert.Equal(t, 0.0, rep.Totals.Percent)
}

func TestPageWindow(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pageWindow(1, 10))
	assert.Equal(t, []int{3, 4, 5, 6, 7}, pageWindow(5, 10))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, pageWindow(10, 10))
	assert.Equal(t, []int{1, 2}, pageWindow(2, 2))
}
