package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "lembagaku_backend/internals/features/school/classes/model"
	dto "lembagaku_backend/internals/features/school/enrollments/dto"
	model "lembagaku_backend/internals/features/school/enrollments/model"
	helper "lembagaku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/a/enrollments
func (h *EnrollmentController) Create(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	// Wajibkan tenant dari token
	req.EnrollmentLembagaID = &lembagaID

	if err := h.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Rentang tanggal harus masuk akal kalau keduanya diisi
	if req.EnrollmentStartedAt != nil && req.EnrollmentEndedAt != nil &&
		req.EnrollmentEndedAt.Before(*req.EnrollmentStartedAt) {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal selesai tidak boleh sebelum tanggal mulai")
	}

	// Kelas harus milik tenant yang sama
	var cls classModel.ClassModel
	if err := h.DB.
		Where("class_id = ? AND class_lembaga_id = ?", req.EnrollmentClassID, lembagaID).
		First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Kelas tidak ditemukan di lembaga ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Siswa sudah terdaftar di kelas tersebut")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat enrollment")
	}

	return helper.JsonCreated(c, "Enrollment berhasil dibuat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/enrollments?class_id=&user_id=&status=&page=&per_page=
func (h *EnrollmentController) List(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_lembaga_id = ?", lembagaID)

	if cid := strings.TrimSpace(c.Query("class_id")); cid != "" {
		base = base.Where("enrollment_class_id = ?", cid)
	}
	if uid := strings.TrimSpace(c.Query("user_id")); uid != "" {
		base = base.Where("enrollment_user_id = ?", uid)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		base = base.Where("enrollment_status = ?", st)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EnrollmentModel
	if err := base.
		Order("enrollment_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/enrollments/:id
func (h *EnrollmentController) GetByID(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.EnrollmentModel
	if err := h.DB.
		Where("enrollment_id = ? AND enrollment_lembaga_id = ?", id, lembagaID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE ======================== */
// PATCH /api/a/enrollments/:id
func (h *EnrollmentController) Update(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.EnrollmentModel
	if err := h.DB.
		Where("enrollment_id = ? AND enrollment_lembaga_id = ?", id, lembagaID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)

	if row.EnrollmentStartedAt != nil && row.EnrollmentEndedAt != nil &&
		row.EnrollmentEndedAt.Before(*row.EnrollmentStartedAt) {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal selesai tidak boleh sebelum tanggal mulai")
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui enrollment")
	}

	return helper.JsonUpdated(c, "Enrollment berhasil diperbarui", dto.FromModel(row))
}

/* ======================== DELETE (soft) ======================== */
// DELETE /api/a/enrollments/:id
func (h *EnrollmentController) Delete(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	res := h.DB.
		Where("enrollment_id = ? AND enrollment_lembaga_id = ?", id, lembagaID).
		Delete(&model.EnrollmentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Enrollment berhasil dihapus", fiber.Map{"enrollment_id": id})
}

/* ======================== LIST MINE (user) ======================== */
// GET /api/u/enrollments/me
func (h *EnrollmentController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.EnrollmentModel
	if err := h.DB.
		Where("enrollment_user_id = ?", userID).
		Order("enrollment_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}
