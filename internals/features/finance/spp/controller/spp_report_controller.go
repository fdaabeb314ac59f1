package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "lembagaku_backend/internals/features/finance/spp/service"
	helper "lembagaku_backend/internals/helpers"
)

type SppReportController struct {
	DB *gorm.DB
}

func NewSppReportController(db *gorm.DB) *SppReportController {
	return &SppReportController{DB: db}
}

// Baris hasil join enrollment → user & kelas (tarif efektif dihitung di SQL)
type enrollmentJoinRow struct {
	EnrollmentID  uuid.UUID  `gorm:"column:enrollment_id"`
	StudentName   string     `gorm:"column:student_name"`
	MonthlyFeeIDR int        `gorm:"column:monthly_fee_idr"`
	StartDate     *time.Time `gorm:"column:start_date"`
	EndDate       *time.Time `gorm:"column:end_date"`
}

type paymentJoinRow struct {
	EnrollmentID  uuid.UUID  `gorm:"column:enrollment_id"`
	Month         int        `gorm:"column:month"`
	Year          int        `gorm:"column:year"`
	AmountDueIDR  int        `gorm:"column:amount_due_idr"`
	AmountPaidIDR int        `gorm:"column:amount_paid_idr"`
	Status        string     `gorm:"column:status"`
	PaidAt        *time.Time `gorm:"column:paid_at"`
}

/* ======================== REPORT ======================== */
// GET /api/a/spp-reports?type=outstanding|collected&class_id=
//
// Dua fetch berurutan (enrollments lalu payments), lalu satu pass
// perhitungan pure. Gagal fetch → hasil kosong, tidak pernah setengah jadi.
func (h *SppReportController) Report(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	mode := service.ReconcileMode(strings.TrimSpace(c.Query("type")))
	if mode != service.ModeOutstanding && mode != service.ModeCollected {
		return fiber.NewError(fiber.StatusBadRequest, "type wajib outstanding atau collected")
	}

	// "today" diambil SEKALI lalu dioper ke seluruh pipeline
	today := time.Now()

	// --- Fetch 1: enrollments aktif + nama siswa + tarif efektif ---
	q := h.DB.Table("enrollments").
		Select(`enrollments.enrollment_id AS enrollment_id,
			users.user_name AS student_name,
			COALESCE(enrollments.enrollment_fee_override_monthly_idr, classes.class_fee_monthly_idr, 0) AS monthly_fee_idr,
			enrollments.enrollment_started_at AS start_date,
			enrollments.enrollment_ended_at AS end_date`).
		Joins("JOIN users ON users.id = enrollments.enrollment_user_id").
		Joins("JOIN classes ON classes.class_id = enrollments.enrollment_class_id").
		Where("enrollments.enrollment_lembaga_id = ?", lembagaID).
		Where("enrollments.enrollment_deleted_at IS NULL")

	if cid := strings.TrimSpace(c.Query("class_id")); cid != "" {
		q = q.Where("enrollments.enrollment_class_id = ?", cid)
	}

	var enrRows []enrollmentJoinRow
	if err := q.Scan(&enrRows).Error; err != nil {
		log.Printf("[ERROR] gagal fetch enrollments untuk laporan SPP: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data enrollment")
	}

	// --- Fetch 2: pembayaran tercatat (urut created_at → duplikat deterministik) ---
	var payRows []paymentJoinRow
	if err := h.DB.Table("spp_payments").
		Select(`spp_payment_enrollment_id AS enrollment_id,
			spp_payment_month AS month,
			spp_payment_year AS year,
			spp_payment_amount_due_idr AS amount_due_idr,
			spp_payment_amount_paid_idr AS amount_paid_idr,
			spp_payment_status AS status,
			spp_payment_paid_at AS paid_at`).
		Where("spp_payment_lembaga_id = ?", lembagaID).
		Where("spp_payment_deleted_at IS NULL").
		Order("spp_payment_created_at ASC").
		Scan(&payRows).Error; err != nil {
		// Tabel pembayaran belum ada → perlakukan sebagai "belum ada pembayaran"
		if strings.Contains(err.Error(), "42P01") || strings.Contains(strings.ToLower(err.Error()), "does not exist") {
			log.Printf("[WARN] tabel spp_payments belum ada, laporan lanjut tanpa pembayaran")
			payRows = nil
		} else {
			log.Printf("[ERROR] gagal fetch pembayaran untuk laporan SPP: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
		}
	}

	enrollments := make([]service.EnrollmentRow, 0, len(enrRows))
	for _, r := range enrRows {
		enrollments = append(enrollments, service.EnrollmentRow{
			EnrollmentID:  r.EnrollmentID,
			StudentName:   r.StudentName,
			MonthlyFeeIDR: r.MonthlyFeeIDR,
			StartDate:     r.StartDate,
			EndDate:       r.EndDate,
		})
	}

	payments := make([]service.PaymentRow, 0, len(payRows))
	for _, r := range payRows {
		payments = append(payments, service.PaymentRow{
			EnrollmentID:  r.EnrollmentID,
			Month:         r.Month,
			Year:          r.Year,
			AmountDueIDR:  r.AmountDueIDR,
			AmountPaidIDR: r.AmountPaidIDR,
			Status:        r.Status,
			PaidAt:        r.PaidAt,
		})
	}

	report := service.Reconcile(enrollments, payments, mode, today)

	return helper.JsonOK(c, "OK", report)
}
