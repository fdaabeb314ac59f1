// file: internals/features/finance/spp/service/reconcile.go
//
// Rekonsiliasi SPP: memperluas rentang enrollment menjadi periode bulanan,
// mencocokkan dengan pembayaran tercatat, mengklasifikasi umur tagihan,
// lalu mengagregasi total outstanding/terkumpul.
//
// Semua fungsi di sini pure: tanpa I/O, tanpa error, dan "today" dioper
// eksplisit sekali per perhitungan supaya klasifikasi konsisten satu pass.
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

/* ===================== Mode & status ===================== */

type ReconcileMode string

const (
	ModeOutstanding ReconcileMode = "outstanding"
	ModeCollected   ReconcileMode = "collected"
)

type PeriodStatus string

const (
	PeriodPaid    PeriodStatus = "paid"
	PeriodOverdue PeriodStatus = "overdue"
	PeriodUnpaid  PeriodStatus = "unpaid"
)

/* ===================== Input rows ===================== */

// EnrollmentRow adalah baris enrollment yang sudah di-join nama siswa.
// MonthlyFeeIDR = tarif efektif (override ?? tarif kelas).
type EnrollmentRow struct {
	EnrollmentID  uuid.UUID
	StudentName   string
	MonthlyFeeIDR int
	StartDate     *time.Time
	EndDate       *time.Time
}

// PaymentRow adalah pembayaran tercatat untuk satu periode.
type PaymentRow struct {
	EnrollmentID  uuid.UUID
	Month         int
	Year          int
	AmountDueIDR  int
	AmountPaidIDR int
	Status        string // unpaid|partial|paid
	PaidAt        *time.Time
}

/* ===================== Derived period ===================== */

// PaymentPeriod adalah turunan per bulan; dibuat fresh tiap request,
// tidak pernah dipersist.
type PaymentPeriod struct {
	EnrollmentID   uuid.UUID    `json:"enrollment_id"`
	StudentName    string       `json:"student_name"`
	Month          int          `json:"month"`
	Year           int          `json:"year"`
	AmountDueIDR   int          `json:"amount_due_idr"`
	AmountPaidIDR  int          `json:"amount_paid_idr"`
	OutstandingIDR int          `json:"outstanding_idr"`
	Status         PeriodStatus `json:"status"`
	IsPast         bool         `json:"is_past"`
	IsFuture       bool         `json:"is_future"`
	HasRecorded    bool         `json:"has_recorded"`
	RecordedStatus string       `json:"recorded_status,omitempty"`
}

type Report struct {
	Mode     ReconcileMode   `json:"mode"`
	Periods  []PaymentPeriod `json:"periods"`
	TotalIDR int64           `json:"total_idr"`
	Count    int             `json:"count"`
}

type monthYear struct {
	Month int
	Year  int
}

/* ===================== Span expander ===================== */

// ExpandSpan menghasilkan pasangan (bulan, tahun) terurut dari bulan mulai
// sampai batas akhir:
//   - outstanding: min(bulan selesai, bulan berjalan) — bulan depan tidak pernah dibuat
//   - collected:   bulan selesai (boleh di masa depan)
//
// Enrollment tanpa tanggal mulai ATAU selesai tidak menghasilkan periode
// sintetis sama sekali (jalur bypass: hanya baris tercatat yang tampil).
func ExpandSpan(e EnrollmentRow, mode ReconcileMode, today time.Time) []monthYear {
	if e.StartDate == nil || e.EndDate == nil {
		return nil
	}

	cur := time.Date(e.StartDate.Year(), e.StartDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(e.EndDate.Year(), e.EndDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	if mode == ModeOutstanding {
		nowMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		if nowMonth.Before(end) {
			end = nowMonth
		}
	}

	var out []monthYear
	for !cur.After(end) {
		out = append(out, monthYear{Month: int(cur.Month()), Year: cur.Year()})
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}

/* ===================== Matcher + classifier ===================== */

type periodKey struct {
	Month int
	Year  int
}

// BuildPeriods mencocokkan hasil expand dengan pembayaran tercatat dan
// mengklasifikasi tiap periode terhadap "today". Duplikat key: match
// pertama yang menang (urutan payments menentukan; tidak ada merge).
//
// Enrollment tanpa rentang tanggal dinormalisasi lewat konstruktor yang
// sama: tiap baris tercatat jadi satu periode, supaya sorting/aging
// melihat satu bentuk input apa pun asalnya.
func BuildPeriods(e EnrollmentRow, payments []PaymentRow, mode ReconcileMode, today time.Time) []PaymentPeriod {
	byKey := make(map[periodKey]PaymentRow, len(payments))
	for _, p := range payments {
		if p.EnrollmentID != e.EnrollmentID {
			continue
		}
		k := periodKey{Month: p.Month, Year: p.Year}
		if _, dup := byKey[k]; !dup {
			byKey[k] = p
		}
	}

	// Jalur bypass hanya untuk enrollment tanpa rentang tanggal. Rentang
	// yang ada tapi span-nya kosong (mis. mulai di masa depan pada mode
	// outstanding) tetap berarti nol periode — baris tercatat di luar
	// rentang tidak boleh ikut muncul.
	if e.StartDate == nil || e.EndDate == nil {
		// Hanya baris tercatat, urut kronologis
		keys := make([]periodKey, 0, len(byKey))
		for k := range byKey {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].Year != keys[j].Year {
				return keys[i].Year < keys[j].Year
			}
			return keys[i].Month < keys[j].Month
		})
		out := make([]PaymentPeriod, 0, len(keys))
		for _, k := range keys {
			p := byKey[k]
			out = append(out, newPeriod(e, k.Month, k.Year, &p, today))
		}
		return out
	}

	span := ExpandSpan(e, mode, today)
	out := make([]PaymentPeriod, 0, len(span))
	for _, my := range span {
		var rec *PaymentRow
		if p, ok := byKey[periodKey{Month: my.Month, Year: my.Year}]; ok {
			rec = &p
		}
		out = append(out, newPeriod(e, my.Month, my.Year, rec, today))
	}
	return out
}

// newPeriod adalah satu-satunya konstruktor PaymentPeriod: jalur generate
// dan jalur bypass dua-duanya lewat sini.
func newPeriod(e EnrollmentRow, month, year int, rec *PaymentRow, today time.Time) PaymentPeriod {
	due := e.MonthlyFeeIDR
	paid := 0
	hasRec := false
	recStatus := ""
	if rec != nil {
		due = rec.AmountDueIDR
		paid = rec.AmountPaidIDR
		hasRec = true
		recStatus = rec.Status
	}

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	isPast := lastDay.Before(todayDate)
	isFuture := firstDay.After(todayDate)

	var status PeriodStatus
	switch {
	case paid >= due:
		status = PeriodPaid
	case isPast:
		status = PeriodOverdue
	default:
		status = PeriodUnpaid
	}

	outstanding := due - paid
	if outstanding < 0 {
		outstanding = 0
	}

	return PaymentPeriod{
		EnrollmentID:   e.EnrollmentID,
		StudentName:    e.StudentName,
		Month:          month,
		Year:           year,
		AmountDueIDR:   due,
		AmountPaidIDR:  paid,
		OutstandingIDR: outstanding,
		Status:         status,
		IsPast:         isPast,
		IsFuture:       isFuture,
		HasRecorded:    hasRec,
		RecordedStatus: recStatus,
	}
}

/* ===================== Retention filter ===================== */

// FilterPeriods menerapkan aturan retensi per mode:
//   - outstanding: hanya yang kurang bayar DAN sudah lewat bulan
//     (kekurangan bulan berjalan/masa depan tidak dihitung outstanding)
//   - collected: hanya yang punya baris tercatat berstatus paid,
//     apa pun posisi waktunya
func FilterPeriods(periods []PaymentPeriod, mode ReconcileMode) []PaymentPeriod {
	out := make([]PaymentPeriod, 0, len(periods))
	for _, p := range periods {
		switch mode {
		case ModeOutstanding:
			if p.AmountPaidIDR < p.AmountDueIDR && p.IsPast {
				out = append(out, p)
			}
		case ModeCollected:
			if p.HasRecorded && p.RecordedStatus == string(PeriodPaid) {
				out = append(out, p)
			}
		}
	}
	return out
}

/* ===================== Sorter + aggregator ===================== */

// SortPeriods: paling menunggak dulu (is_past desc), lalu tahun desc,
// lalu bulan desc — tunggakan terbaru di atas.
func SortPeriods(periods []PaymentPeriod) {
	sort.SliceStable(periods, func(i, j int) bool {
		a, b := periods[i], periods[j]
		if a.IsPast != b.IsPast {
			return a.IsPast
		}
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Month > b.Month
	})
}

// Reconcile menjalankan seluruh pipeline untuk satu tenant:
// expand → match/classify → filter → sort → total.
func Reconcile(enrollments []EnrollmentRow, payments []PaymentRow, mode ReconcileMode, today time.Time) Report {
	var retained []PaymentPeriod
	for _, e := range enrollments {
		built := BuildPeriods(e, payments, mode, today)
		retained = append(retained, FilterPeriods(built, mode)...)
	}

	SortPeriods(retained)

	var total int64
	for _, p := range retained {
		if mode == ModeCollected {
			total += int64(p.AmountPaidIDR)
		} else {
			total += int64(p.OutstandingIDR)
		}
	}

	if retained == nil {
		retained = []PaymentPeriod{}
	}

	return Report{
		Mode:     mode,
		Periods:  retained,
		TotalIDR: total,
		Count:    len(retained),
	}
}
