// file: internals/features/layanan/kpi/service/kpi.go
//
// KPI layanan: deret waktu bulanan + distribusi jenis/status dari
// pengajuan layanan satu tenant. Pure seperti rekonsiliasi SPP:
// tanpa I/O dan "today" dioper eksplisit.
package service

import (
	"time"

	"github.com/google/uuid"
)

type CaseRow struct {
	CaseID    uuid.UUID
	Type      string
	Status    string
	FeeIDR    int
	CreatedAt time.Time
}

// Satu titik deret waktu; bucket berdasarkan bulan pembuatan.
type MonthlyPoint struct {
	Month          int   `json:"month"`
	Year           int   `json:"year"`
	SubmittedCount int   `json:"submitted_count"`
	CompletedCount int   `json:"completed_count"`
	FeeTotalIDR    int64 `json:"fee_total_idr"`
}

type KPIReport struct {
	Months       []MonthlyPoint `json:"months"`
	ByType       map[string]int `json:"by_type"`
	ByStatus     map[string]int `json:"by_status"`
	TotalCases   int            `json:"total_cases"`
	TotalFeeIDR  int64          `json:"total_fee_idr"`
	WindowMonths int            `json:"window_months"`
}

type monthKey struct {
	Month int
	Year  int
}

// BuildKPI menghitung KPI untuk jendela `months` bulan terakhir yang
// berakhir di bulan berjalan (inklusif). Pengajuan di luar jendela
// tidak masuk deret waktu tapi tetap masuk distribusi jenis/status.
func BuildKPI(cases []CaseRow, months int, today time.Time) KPIReport {
	if months < 1 {
		months = 1
	}

	// Bucket kosong dibuat dulu supaya bulan tanpa pengajuan tetap tampil
	endMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	startMonth := endMonth.AddDate(0, -(months - 1), 0)

	points := make([]MonthlyPoint, 0, months)
	index := make(map[monthKey]int, months)
	for cur := startMonth; !cur.After(endMonth); cur = cur.AddDate(0, 1, 0) {
		index[monthKey{int(cur.Month()), cur.Year()}] = len(points)
		points = append(points, MonthlyPoint{Month: int(cur.Month()), Year: cur.Year()})
	}

	byType := make(map[string]int)
	byStatus := make(map[string]int)
	var totalFee int64

	for _, cs := range cases {
		byType[cs.Type]++
		byStatus[cs.Status]++
		if cs.Status == "completed" {
			totalFee += int64(cs.FeeIDR)
		}

		k := monthKey{int(cs.CreatedAt.Month()), cs.CreatedAt.Year()}
		i, in := index[k]
		if !in {
			continue
		}
		points[i].SubmittedCount++
		if cs.Status == "completed" {
			points[i].CompletedCount++
			points[i].FeeTotalIDR += int64(cs.FeeIDR)
		}
	}

	return KPIReport{
		Months:       points,
		ByType:       byType,
		ByStatus:     byStatus,
		TotalCases:   len(cases),
		TotalFeeIDR:  totalFee,
		WindowMonths: months,
	}
}
