package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "lembagaku_backend/internals/features/lembaga/users/dto"
	model "lembagaku_backend/internals/features/lembaga/users/model"
	helper "lembagaku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE (owner) ======================= */
// POST /api/o/users
func (h *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := &model.UserModel{
		UserName:  req.UserName,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Role:      req.Role,
		LembagaID: req.LembagaID,
		IsActive:  true,
	}
	if err := m.SetPassword(req.Password); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromModel(*m))
}

/* ======================== LIST (owner) ======================== */
// GET /api/o/users?lembaga_id=&role=&q=&page=&per_page=
func (h *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.UserModel{})

	if lid := strings.TrimSpace(c.Query("lembaga_id")); lid != "" {
		base = base.Where("lembaga_id = ?", lid)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		base = base.Where("role = ?", role)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		base = base.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.UserModel
	if err := base.
		Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID (owner) ======================== */
// GET /api/o/users/:id
func (h *UserController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.UserModel
	if err := h.DB.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (owner) ======================== */
// PATCH /api/o/users/:id
func (h *UserController) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.UserModel
	if err := h.DB.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&row)

	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui user")
	}

	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.FromModel(row))
}

/* ======================== DELETE (owner, soft) ======================== */
// DELETE /api/o/users/:id
func (h *UserController) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	res := h.DB.Where("id = ?", id).Delete(&model.UserModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": id})
}
