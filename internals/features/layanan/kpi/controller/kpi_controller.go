package controller

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	kpiService "lembagaku_backend/internals/features/layanan/kpi/service"
	helper "lembagaku_backend/internals/helpers"
)

type KPIController struct {
	DB *gorm.DB
}

func NewKPIController(db *gorm.DB) *KPIController {
	return &KPIController{DB: db}
}

type kpiCaseRow struct {
	CaseID    uuid.UUID `gorm:"column:case_id"`
	Type      string    `gorm:"column:case_type"`
	Status    string    `gorm:"column:case_status"`
	FeeIDR    int       `gorm:"column:case_fee_idr"`
	CreatedAt time.Time `gorm:"column:case_created_at"`
}

/* ===================== KPI ===================== */
// GET /api/a/layanan-kpi?months=N (default 6, max 24)
func (h *KPIController) Report(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	months := 6
	if raw := strings.TrimSpace(c.Query("months")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "months harus bilangan positif")
		}
		months = n
	}
	if months > 24 {
		months = 24
	}

	today := time.Now()

	var rows []kpiCaseRow
	if err := h.DB.Table("layanan_cases").
		Select("case_id, case_type, case_status, case_fee_idr, case_created_at").
		Where("case_lembaga_id = ?", lembagaID).
		Where("case_deleted_at IS NULL").
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] gagal fetch pengajuan untuk KPI: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data layanan")
	}

	cases := make([]kpiService.CaseRow, 0, len(rows))
	for _, r := range rows {
		cases = append(cases, kpiService.CaseRow{
			CaseID:    r.CaseID,
			Type:      r.Type,
			Status:    r.Status,
			FeeIDR:    r.FeeIDR,
			CreatedAt: r.CreatedAt,
		})
	}

	return helper.JsonOK(c, "OK", kpiService.BuildKPI(cases, months, today))
}
