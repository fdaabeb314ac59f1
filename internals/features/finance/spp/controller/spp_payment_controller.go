package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "lembagaku_backend/internals/features/finance/spp/dto"
	model "lembagaku_backend/internals/features/finance/spp/model"
	enrollModel "lembagaku_backend/internals/features/school/enrollments/model"
	helper "lembagaku_backend/internals/helpers"
)

type SppPaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSppPaymentController(db *gorm.DB) *SppPaymentController {
	return &SppPaymentController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/a/spp-payments
func (h *SppPaymentController) Create(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSppPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	// Wajibkan tenant dari token
	req.SppPaymentLembagaID = &lembagaID

	if err := h.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Enrollment harus milik tenant yang sama
	var enr enrollModel.EnrollmentModel
	if err := h.DB.
		Where("enrollment_id = ? AND enrollment_lembaga_id = ?", req.SppPaymentEnrollmentID, lembagaID).
		First(&enr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Enrollment tidak ditemukan di lembaga ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Pembayaran untuk periode tersebut sudah tercatat")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat pembayaran")
	}

	return helper.JsonCreated(c, "Pembayaran SPP berhasil dicatat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/spp-payments?enrollment_id=&month=&year=&status=&page=&per_page=
func (h *SppPaymentController) List(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.SppPaymentModel{}).
		Where("spp_payment_lembaga_id = ?", lembagaID)

	if eid := strings.TrimSpace(c.Query("enrollment_id")); eid != "" {
		base = base.Where("spp_payment_enrollment_id = ?", eid)
	}
	if mth := strings.TrimSpace(c.Query("month")); mth != "" {
		base = base.Where("spp_payment_month = ?", mth)
	}
	if yr := strings.TrimSpace(c.Query("year")); yr != "" {
		base = base.Where("spp_payment_year = ?", yr)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		base = base.Where("spp_payment_status = ?", st)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.SppPaymentModel
	if err := base.
		Order("spp_payment_year DESC, spp_payment_month DESC, spp_payment_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/spp-payments/:id
func (h *SppPaymentController) GetByID(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.SppPaymentModel
	if err := h.DB.
		Where("spp_payment_id = ? AND spp_payment_lembaga_id = ?", id, lembagaID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE ======================== */
// PATCH /api/a/spp-payments/:id
func (h *SppPaymentController) Update(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.SppPaymentModel
	if err := h.DB.
		Where("spp_payment_id = ? AND spp_payment_lembaga_id = ?", id, lembagaID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateSppPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)

	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui pembayaran")
	}

	return helper.JsonUpdated(c, "Pembayaran berhasil diperbarui", dto.FromModel(row))
}

/* ======================== DELETE (soft) ======================== */
// DELETE /api/a/spp-payments/:id
func (h *SppPaymentController) Delete(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	res := h.DB.
		Where("spp_payment_id = ? AND spp_payment_lembaga_id = ?", id, lembagaID).
		Delete(&model.SppPaymentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pembayaran berhasil dihapus", fiber.Map{"spp_payment_id": id})
}

/* ======================== LIST MINE (user) ======================== */
// GET /api/u/spp-payments/me
func (h *SppPaymentController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.SppPaymentModel
	if err := h.DB.
		Joins("JOIN enrollments ON enrollments.enrollment_id = spp_payments.spp_payment_enrollment_id").
		Where("enrollments.enrollment_user_id = ?", userID).
		Order("spp_payment_year DESC, spp_payment_month DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}
