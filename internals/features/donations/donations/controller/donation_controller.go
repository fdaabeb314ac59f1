package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/donations/donations/dto"
	"lembagaku_backend/internals/features/donations/donations/model"
	donationService "lembagaku_backend/internals/features/donations/donations/service"
	helper "lembagaku_backend/internals/helpers"
)

type DonationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/public/donations
//
// Bisa tanpa login (guest) maupun dengan login; kalau token ada,
// user_id diambil dari locals.
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var userUUID *uuid.UUID
	if raw, ok := c.Locals(helper.LocUserID).(string); ok && raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			userUUID = &parsed
		}
	}

	// Lembaga tujuan harus ada dan aktif
	var exists int64
	if err := ctrl.DB.Table("lembagas").
		Where("lembaga_id = ? AND lembaga_is_active = TRUE AND lembaga_deleted_at IS NULL", body.LembagaID).
		Count(&exists).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if exists == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Lembaga tidak ditemukan atau nonaktif")
	}

	donation := model.Donation{
		DonationLembagaID: body.LembagaID,
		DonationUserID:    userUUID,
		DonationName:      body.Name,
		DonationAmountIDR: body.AmountIDR,
		DonationMessage:   body.Message,
		DonationStatus:    model.DonationPending,
		DonationOrderID:   fmt.Sprintf("donation-%s", uuid.New().String()),
	}

	if err := ctrl.DB.Create(&donation).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	token, err := donationService.GenerateSnapToken(donation, body.Name, body.Email)
	if err != nil {
		log.Println("[ERROR] gagal membuat snap token donasi:", err)
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}

	donation.DonationPaymentToken = token
	if err := ctrl.DB.Save(&donation).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan token pembayaran")
	}

	return helper.JsonCreated(c, "Donasi berhasil dibuat. Silakan lanjutkan pembayaran.", fiber.Map{
		"donation_id": donation.DonationID,
		"order_id":    donation.DonationOrderID,
		"snap_token":  token,
	})
}

/* ===================== WEBHOOK ===================== */
// POST /api/public/webhooks/midtrans/donations
func (ctrl *DonationController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	orderID, _ := body["order_id"].(string)
	txStatus, _ := body["transaction_status"].(string)
	if orderID == "" || txStatus == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var donation model.Donation
	if err := ctrl.DB.Where("donation_order_id = ?", orderID).First(&donation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[WARN] webhook donasi untuk order tidak dikenal:", orderID)
			return c.SendStatus(fiber.StatusOK)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	switch txStatus {
	case "settlement", "capture":
		now := time.Now()
		donation.DonationStatus = model.DonationCompleted
		donation.DonationPaidAt = &now
	case "expire", "cancel", "deny", "failure":
		donation.DonationStatus = model.DonationFailed
	default:
		return c.SendStatus(fiber.StatusOK)
	}

	if err := ctrl.DB.Save(&donation).Error; err != nil {
		log.Println("[ERROR] gagal memperbarui status donasi:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}

/* ===================== LIST (admin) ===================== */
// GET /api/a/donations?status=&page=&per_page=
func (ctrl *DonationController) ListByLembaga(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.Donation{}).
		Where("donation_lembaga_id = ?", lembagaID)

	if st := strings.TrimSpace(c.Query("status")); st != "" {
		base = base.Where("donation_status = ?", st)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Donation
	if err := base.
		Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ===================== TOTALS (admin) ===================== */
// GET /api/a/donations/totals
func (ctrl *DonationController) Totals(c *fiber.Ctx) error {
	lembagaID, err := helper.GetLembagaIDFromToken(c)
	if err != nil {
		return err
	}

	out := dto.DonationTotalsResponse{LembagaID: lembagaID}

	row := ctrl.DB.Model(&model.Donation{}).
		Select("COALESCE(SUM(donation_amount_idr), 0) AS total, COUNT(*) AS cnt").
		Where("donation_lembaga_id = ? AND donation_status = ?", lembagaID, model.DonationCompleted)

	var agg struct {
		Total int64
		Cnt   int64
	}
	if err := row.Scan(&agg).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	out.TotalCompletedIDR = agg.Total
	out.CountCompleted = agg.Cnt

	if err := ctrl.DB.Model(&model.Donation{}).
		Where("donation_lembaga_id = ? AND donation_status = ?", lembagaID, model.DonationPending).
		Count(&out.CountPending).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", out)
}

/* ===================== MINE (user) ===================== */
// GET /api/u/donations/me
func (ctrl *DonationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.Donation
	if err := ctrl.DB.
		Where("donation_user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", rows)
}
