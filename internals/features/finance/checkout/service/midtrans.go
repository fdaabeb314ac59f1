package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

// NewSppOrderID membuat order id unik untuk tagihan SPP.
func NewSppOrderID() string {
	return fmt.Sprintf("spp-%s", uuid.New().String())
}

/* =========================================================
   Generate Snap Token
========================================================= */

type CheckoutInput struct {
	OrderID     string
	AmountIDR   int
	PayerName   string
	PayerEmail  string
	Description string // contoh: "SPP Januari 2026"
}

func GenerateSnapToken(in CheckoutInput) (string, string, error) {
	if in.AmountIDR <= 0 {
		return "", "", errors.New("invalid amount_idr")
	}
	if in.OrderID == "" {
		return "", "", errors.New("order_id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: int64(in.AmountIDR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: in.PayerName,
			Email: in.PayerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       in.OrderID,
				Price:    int64(in.AmountIDR),
				Qty:      1,
				Name:     truncate(firstNonEmpty(in.Description, "SPP Payment"), 50),
				Category: "SPP",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

/* =========================================================
   Utils
========================================================= */

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

func firstNonEmpty(s string, def string) string {
	if s != "" {
		return s
	}
	return def
}
