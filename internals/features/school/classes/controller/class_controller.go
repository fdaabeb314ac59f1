package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "lembagaku_backend/internals/features/school/classes/dto"
	model "lembagaku_backend/internals/features/school/classes/model"
	helper "lembagaku_backend/internals/helpers"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/a/classes
func (h *ClassController) Create(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	// Wajibkan tenant dari token
	req.ClassLembagaID = &lembagaID

	if err := h.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()

	base := helper.GenerateSlug(req.ClassName)
	slug, err := helper.EnsureUniqueSlug(h.DB, base, "classes", "class_slug")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slug kelas")
	}
	m.ClassSlug = slug

	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/classes?q=&active=&page=&per_page=
func (h *ClassController) List(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.ClassModel{}).
		Where("class_lembaga_id = ?", lembagaID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		base = base.Where("LOWER(class_name) LIKE ?", like)
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		base = base.Where("class_is_active = ?", act == "true")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ClassModel
	if err := base.
		Order("class_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/classes/:id
func (h *ClassController) GetByID(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.ClassModel
	if err := h.DB.
		Where("class_id = ? AND class_lembaga_id = ?", id, lembagaID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE ======================== */
// PATCH /api/a/classes/:id
func (h *ClassController) Update(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.ClassModel
	if err := h.DB.
		Where("class_id = ? AND class_lembaga_id = ?", id, lembagaID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)

	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}

	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.FromModel(row))
}

/* ======================== DELETE (soft) ======================== */
// DELETE /api/a/classes/:id
func (h *ClassController) Delete(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	res := h.DB.
		Where("class_id = ? AND class_lembaga_id = ?", id, lembagaID).
		Delete(&model.ClassModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": id})
}

/* ======================== LIST PUBLIC ======================== */
// GET /api/public/lembagas/:lembaga_id/classes
func (h *ClassController) ListPublicByLembaga(c *fiber.Ctx) error {
	lembagaID := strings.TrimSpace(c.Params("lembaga_id"))
	if lembagaID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "lembaga_id tidak boleh kosong")
	}

	var rows []model.ClassModel
	if err := h.DB.
		Where("class_lembaga_id = ? AND class_is_active = TRUE", lembagaID).
		Order("class_name ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}
