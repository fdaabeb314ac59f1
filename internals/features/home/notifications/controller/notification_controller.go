package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/home/notifications/dto"
	"lembagaku_backend/internals/features/home/notifications/model"
	helper "lembagaku_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE + BROADCAST (admin) ===================== */
// POST /api/a/notifications
//
// Notifikasi dibuat untuk lembaga admin, lalu langsung di-fan-out ke
// semua user aktif lembaga tersebut (batch insert).
func (ctrl *NotificationController) CreateAndBroadcast(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	notif := req.ToModel(&lembagaID)
	if err := ctrl.DB.Create(notif).Error; err != nil {
		log.Printf("[ERROR] gagal menyimpan notifikasi: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan notifikasi")
	}

	// Fan-out ke semua user aktif di lembaga
	var userIDs []uuid.UUID
	if err := ctrl.DB.Table("users").
		Where("lembaga_id = ? AND is_active = TRUE AND deleted_at IS NULL", lembagaID).
		Pluck("id", &userIDs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	if len(userIDs) > 0 {
		now := time.Now()
		rows := make([]model.NotificationUserModel, 0, len(userIDs))
		for _, uid := range userIDs {
			rows = append(rows, model.NotificationUserModel{
				NotificationUserNotificationID: notif.NotificationID,
				NotificationUserUserID:         uid,
				NotificationUserSentAt:         now,
			})
		}
		if err := ctrl.DB.CreateInBatches(&rows, 1000).Error; err != nil {
			log.Printf("[ERROR] gagal fan-out notifikasi: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengirim notifikasi massal")
		}
	}

	return helper.JsonCreated(c, "Notifikasi berhasil dikirim", fiber.Map{
		"notification_id": notif.NotificationID,
		"jumlah_user":     len(userIDs),
	})
}

/* ===================== LIST (admin) ===================== */
// GET /api/a/notifications?page=&per_page=
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_lembaga_id = ?", lembagaID)

	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		base = base.Where("? = ANY(notification_tags)", tag)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.NotificationModel
	if err := base.
		Order("notification_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ===================== DELETE (admin) ===================== */
// DELETE /api/a/notifications/:id
func (ctrl *NotificationController) Delete(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	// Hapus status baca dulu supaya tidak ada baris yatim
	if err := ctrl.DB.
		Where("notification_user_notification_id = ?", id).
		Delete(&model.NotificationUserModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := ctrl.DB.
		Where("notification_id = ? AND notification_lembaga_id = ?", id, lembagaID).
		Delete(&model.NotificationModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Notifikasi berhasil dihapus", fiber.Map{"notification_id": id})
}
