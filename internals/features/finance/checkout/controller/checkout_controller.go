package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	checkoutService "lembagaku_backend/internals/features/finance/checkout/service"
	sppModel "lembagaku_backend/internals/features/finance/spp/model"
	userModel "lembagaku_backend/internals/features/lembaga/users/model"
	helper "lembagaku_backend/internals/helpers"
)

type CheckoutController struct {
	DB *gorm.DB
}

func NewCheckoutController(db *gorm.DB) *CheckoutController {
	return &CheckoutController{DB: db}
}

type checkoutRequest struct {
	SppPaymentID uuid.UUID `json:"spp_payment_id"`
}

/* ===================== CHECKOUT ===================== */
// POST /api/u/spp-checkout
//
// User login membayar tagihan SPP miliknya lewat Midtrans Snap.
// Order id dibuat sekali dan dipakai ulang selama tagihan belum lunas.
func (ctrl *CheckoutController) CreateCheckout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body checkoutRequest
	if err := c.BodyParser(&body); err != nil || body.SppPaymentID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "spp_payment_id wajib diisi")
	}

	// Tagihan harus milik enrollment user login
	var pay sppModel.SppPaymentModel
	if err := ctrl.DB.
		Joins("JOIN enrollments ON enrollments.enrollment_id = spp_payments.spp_payment_enrollment_id").
		Where("spp_payments.spp_payment_id = ? AND enrollments.enrollment_user_id = ?", body.SppPaymentID, userID).
		First(&pay).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if pay.SppPaymentStatus == sppModel.SppPaid {
		return fiber.NewError(fiber.StatusConflict, "Tagihan sudah lunas")
	}

	remaining := pay.SppPaymentAmountDueIDR - pay.SppPaymentAmountPaidIDR
	if remaining <= 0 {
		return fiber.NewError(fiber.StatusConflict, "Tidak ada sisa tagihan")
	}

	var usr userModel.UserModel
	if err := ctrl.DB.Where("id = ?", userID).First(&usr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	// Order id dibuat sekali; retry checkout memakai order id yang sama
	if pay.SppPaymentOrderID == nil || *pay.SppPaymentOrderID == "" {
		orderID := checkoutService.NewSppOrderID()
		pay.SppPaymentOrderID = &orderID
	}

	token, redirectURL, err := checkoutService.GenerateSnapToken(checkoutService.CheckoutInput{
		OrderID:     *pay.SppPaymentOrderID,
		AmountIDR:   remaining,
		PayerName:   usr.UserName,
		PayerEmail:  usr.Email,
		Description: fmt.Sprintf("SPP %02d/%d", pay.SppPaymentMonth, pay.SppPaymentYear),
	})
	if err != nil {
		log.Println("[ERROR] gagal membuat snap token:", err)
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}

	method := "midtrans"
	pay.SppPaymentMethod = &method
	if err := ctrl.DB.Save(&pay).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data checkout")
	}

	return helper.JsonOK(c, "Silakan lanjutkan pembayaran", fiber.Map{
		"order_id":     *pay.SppPaymentOrderID,
		"amount_idr":   remaining,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

/* ===================== WEBHOOK ===================== */
// POST /api/public/webhooks/midtrans/spp
//
// Notifikasi Midtrans: settlement/capture → lunas, expire/cancel/deny →
// kembali unpaid/partial (status dihitung ulang dari nominal).
func (ctrl *CheckoutController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	orderID, _ := body["order_id"].(string)
	txStatus, _ := body["transaction_status"].(string)
	if orderID == "" || txStatus == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	log.Printf("[INFO] webhook midtrans SPP: order_id=%s status=%s", orderID, txStatus)

	var pay sppModel.SppPaymentModel
	if err := ctrl.DB.Where("spp_payment_order_id = ?", orderID).First(&pay).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Order tak dikenal: balas 200 supaya Midtrans berhenti retry
			log.Println("[WARN] webhook untuk order tidak dikenal:", orderID)
			return c.SendStatus(fiber.StatusOK)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	switch txStatus {
	case "settlement", "capture":
		now := time.Now()
		pay.SppPaymentAmountPaidIDR = pay.SppPaymentAmountDueIDR
		pay.SppPaymentPaidAt = &now
	case "expire", "cancel", "deny", "failure":
		// Nominal tidak berubah; order id dilepas agar checkout ulang
		// membuat transaksi baru
		pay.SppPaymentOrderID = nil
	default:
		// pending dan status lain: tidak ada perubahan
		return c.SendStatus(fiber.StatusOK)
	}

	pay.RecomputeStatus()
	if err := ctrl.DB.Save(&pay).Error; err != nil {
		log.Println("[ERROR] gagal memperbarui status pembayaran:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}
