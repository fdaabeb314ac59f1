package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kpiToday() time.Time {
	return time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
}

func caseAt(y int, m time.Month, typ, status string, fee int) CaseRow {
	return CaseRow{
		CaseID:    uuid.New(),
		Type:      typ,
		Status:    status,
		FeeIDR:    fee,
		CreatedAt: time.Date(y, m, 5, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildKPIEmptyWindow(t *testing.T) {
	// Tanpa pengajuan: deret waktu tetap penuh, semua nol.
	rep := BuildKPI(nil, 3, kpiToday())
	require.Len(t, rep.Months, 3)

	assert.Equal(t, 1, rep.Months[0].Month) // Jan
	assert.Equal(t, 3, rep.Months[2].Month) // Mar (bulan berjalan)
	for _, p := range rep.Months {
		assert.Equal(t, 2024, p.Year)
		assert.Zero(t, p.SubmittedCount)
		assert.Zero(t, p.FeeTotalIDR)
	}
	assert.Zero(t, rep.TotalCases)
}

func TestBuildKPIWindowSpansYearBoundary(t *testing.T) {
	rep := BuildKPI(nil, 5, kpiToday())
	require.Len(t, rep.Months, 5)
	assert.Equal(t, 11, rep.Months[0].Month)
	assert.Equal(t, 2023, rep.Months[0].Year)
	assert.Equal(t, 3, rep.Months[4].Month)
	assert.Equal(t, 2024, rep.Months[4].Year)
}

func TestBuildKPIBuckets(t *testing.T) {
	cases := []CaseRow{
		caseAt(2024, time.January, "nikah", "completed", 500),
		caseAt(2024, time.January, "janazah", "submitted", 0),
		caseAt(2024, time.February, "aqiqah", "completed", 300),
		caseAt(2024, time.March, "nikah", "scheduled", 500),
	}

	rep := BuildKPI(cases, 3, kpiToday())
	require.Len(t, rep.Months, 3)

	jan := rep.Months[0]
	assert.Equal(t, 2, jan.SubmittedCount)
	assert.Equal(t, 1, jan.CompletedCount)
	assert.Equal(t, int64(500), jan.FeeTotalIDR)

	feb := rep.Months[1]
	assert.Equal(t, 1, feb.SubmittedCount)
	assert.Equal(t, int64(300), feb.FeeTotalIDR)

	assert.Equal(t, 2, rep.ByType["nikah"])
	assert.Equal(t, 2, rep.ByStatus["completed"])
	assert.Equal(t, 4, rep.TotalCases)
	assert.Equal(t, int64(800), rep.TotalFeeIDR)
}

func TestBuildKPIOutsideWindowStillCounted(t *testing.T) {
	// Pengajuan lama tidak masuk deret waktu tapi tetap masuk distribusi.
	old := caseAt(2023, time.June, "qurban", "completed", 700)

	rep := BuildKPI([]CaseRow{old}, 3, kpiToday())
	for _, p := range rep.Months {
		assert.Zero(t, p.SubmittedCount)
	}
	assert.Equal(t, 1, rep.ByType["qurban"])
	assert.Equal(t, 1, rep.TotalCases)
	assert.Equal(t, int64(700), rep.TotalFeeIDR)
}

func TestBuildKPIMinimumWindow(t *testing.T) {
	rep := BuildKPI(nil, 0, kpiToday())
	require.Len(t, rep.Months, 1)
	assert.Equal(t, 3, rep.Months[0].Month)
	assert.Equal(t, 1, rep.WindowMonths)
}
