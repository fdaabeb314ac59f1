package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "lembagaku_backend/internals/features/lembaga/lembagas/dto"
	model "lembagaku_backend/internals/features/lembaga/lembagas/model"
	helper "lembagaku_backend/internals/helpers"
)

type LembagaController struct {
	DB *gorm.DB
}

func NewLembagaController(db *gorm.DB) *LembagaController {
	return &LembagaController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE (owner) ======================= */
// POST /api/o/lembagas
func (h *LembagaController) Create(c *fiber.Ctx) error {
	var req dto.CreateLembagaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()

	// Slug unik dari nama
	base := helper.GenerateSlug(req.LembagaName)
	slug, err := helper.EnsureUniqueSlug(h.DB, base, "lembagas", "lembaga_slug")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.LembagaSlug = slug

	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Lembaga dengan slug tersebut sudah ada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat lembaga")
	}

	return helper.JsonCreated(c, "Lembaga berhasil dibuat", dto.FromModel(*m))
}

/* ======================== GET BY SLUG (public) ======================== */
// GET /api/public/lembagas/:slug
func (h *LembagaController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Slug tidak boleh kosong")
	}

	var row model.LembagaModel
	if err := h.DB.
		Where("lembaga_slug = ? AND lembaga_is_active = TRUE", slug).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Lembaga tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST (owner) ======================== */
// GET /api/o/lembagas?q=&active=&page=&per_page=
func (h *LembagaController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.LembagaModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		base = base.Where("LOWER(lembaga_name) LIKE ? OR lembaga_slug LIKE ?", like, like)
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		base = base.Where("lembaga_is_active = ?", act == "true")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.LembagaModel
	if err := base.
		Order("lembaga_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== UPDATE (owner) ======================== */
// PATCH /api/o/lembagas/:id
func (h *LembagaController) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.LembagaModel
	if err := h.DB.Where("lembaga_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Lembaga tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateLembagaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Nama berubah → slug ikut berubah (tetap unik)
	if req.LembagaName != nil && *req.LembagaName != row.LembagaName {
		base := helper.GenerateSlug(*req.LembagaName)
		slug, err := helper.EnsureUniqueSlug(h.DB, base, "lembagas", "lembaga_slug")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui slug")
		}
		row.LembagaSlug = slug
	}

	req.ApplyTo(&row)

	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui lembaga")
	}

	return helper.JsonUpdated(c, "Lembaga berhasil diperbarui", dto.FromModel(row))
}

/* ======================== DELETE (owner, soft) ======================== */
// DELETE /api/o/lembagas/:id
func (h *LembagaController) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	res := h.DB.Where("lembaga_id = ?", id).Delete(&model.LembagaModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Lembaga tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Lembaga berhasil dihapus", fiber.Map{"lembaga_id": id})
}
