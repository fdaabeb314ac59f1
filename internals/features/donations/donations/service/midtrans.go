package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	checkoutService "lembagaku_backend/internals/features/finance/checkout/service"
	"lembagaku_backend/internals/features/donations/donations/model"
)

// GenerateSnapToken membuat token Snap Midtrans untuk sebuah donasi.
// Memakai SnapClient yang sama dengan checkout SPP (satu init saat bootstrap).
func GenerateSnapToken(d model.Donation, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  d.DonationOrderID,
			GrossAmt: int64(d.DonationAmountIDR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       d.DonationOrderID,
				Price:    int64(d.DonationAmountIDR),
				Qty:      1,
				Name:     "Donasi",
				Category: "Donation",
			},
		},
	}

	resp, err := checkoutService.SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
