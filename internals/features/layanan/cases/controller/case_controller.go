package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "lembagaku_backend/internals/features/layanan/cases/dto"
	model "lembagaku_backend/internals/features/layanan/cases/model"
	helper "lembagaku_backend/internals/helpers"
)

type CaseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCaseController(db *gorm.DB) *CaseController {
	return &CaseController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE (user) ===================== */
// POST /api/u/layanan-cases
func (h *CaseController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var exists int64
	if err := h.DB.Table("lembagas").
		Where("lembaga_id = ? AND lembaga_is_active = TRUE AND lembaga_deleted_at IS NULL", req.CaseLembagaID).
		Count(&exists).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if exists == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Lembaga tidak ditemukan atau nonaktif")
	}

	m := req.ToModel(userID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pengajuan layanan")
	}

	return helper.JsonCreated(c, "Pengajuan layanan berhasil dikirim", dto.FromModel(*m))
}

/* ===================== LIST MINE (user) ===================== */
// GET /api/u/layanan-cases/me
func (h *CaseController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.CaseModel
	if err := h.DB.
		Where("case_user_id = ?", userID).
		Order("case_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

/* ===================== LIST (admin) ===================== */
// GET /api/a/layanan-cases?type=&status=&q=&page=&per_page=
func (h *CaseController) List(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.CaseModel{}).
		Where("case_lembaga_id = ?", lembagaID)

	if ct := strings.TrimSpace(c.Query("type")); ct != "" {
		if !model.ValidCaseType(model.CaseType(ct)) {
			return fiber.NewError(fiber.StatusBadRequest, "type tidak dikenal")
		}
		base = base.Where("case_type = ?", ct)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		if !model.ValidCaseStatus(model.CaseStatus(st)) {
			return fiber.NewError(fiber.StatusBadRequest, "status tidak dikenal")
		}
		base = base.Where("case_status = ?", st)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		base = base.Where("case_title ILIKE ?", "%"+q+"%")
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		base = base.Where("? = ANY(case_tags)", tag)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CaseModel
	if err := base.
		Order("case_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ===================== GET BY ID (admin) ===================== */
// GET /api/a/layanan-cases/:id
func (h *CaseController) GetByID(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.CaseModel
	if err := h.DB.
		Where("case_id = ? AND case_lembaga_id = ?", id, lembagaID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pengajuan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ===================== UPDATE (admin) ===================== */
// PATCH /api/a/layanan-cases/:id
//
// Penjadwalan wajib menyertakan waktu; status scheduled tanpa
// case_scheduled_at ditolak.
func (h *CaseController) Update(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.CaseModel
	if err := h.DB.
		Where("case_id = ? AND case_lembaga_id = ?", id, lembagaID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pengajuan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)

	if row.CaseStatus == model.CaseScheduled && row.CaseScheduledAt == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Status scheduled membutuhkan case_scheduled_at")
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui pengajuan")
	}

	return helper.JsonUpdated(c, "Pengajuan berhasil diperbarui", dto.FromModel(row))
}

/* ===================== DELETE (admin, soft) ===================== */
// DELETE /api/a/layanan-cases/:id
func (h *CaseController) Delete(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	res := h.DB.
		Where("case_id = ? AND case_lembaga_id = ?", id, lembagaID).
		Delete(&model.CaseModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pengajuan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pengajuan berhasil dihapus", fiber.Map{"case_id": id})
}
