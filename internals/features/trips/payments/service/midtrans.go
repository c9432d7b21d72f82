package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"weonamission_backend/internals/configs"
)

/* =========================================================
   Midtrans client
========================================================= */

var (
	SnapClient snap.Client
	serverKey  string
)

// InitMidtrans must be called once at bootstrap. Environment selection
// follows MIDTRANS_ENV ("production" switches off the sandbox).
func InitMidtrans(key string) {
	serverKey = strings.TrimSpace(key)
	if serverKey == "" {
		return // checkout endpoints will refuse until configured
	}
	env := midtrans.Sandbox
	if strings.EqualFold(configs.GetEnv("MIDTRANS_ENV", "sandbox"), "production") {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

func midtransReady() bool { return serverKey != "" }

/* =========================================================
   Snap token
========================================================= */

type CheckoutInput struct {
	OrderID     string
	Amount      int64
	PayerName   string
	PayerEmail  string
	PayerPhone  string
	StudentName string
}

// GenerateSnapToken creates a hosted-checkout session for a trip payment.
func GenerateSnapToken(in CheckoutInput) (string, string, error) {
	if !midtransReady() {
		return "", "", errors.New("payment gateway is not configured")
	}
	if in.Amount <= 0 {
		return "", "", errors.New("invalid amount")
	}
	if in.OrderID == "" {
		return "", "", errors.New("order id is required")
	}

	first, last := splitName(in.PayerName)
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: in.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: first,
			LName: last,
			Email: in.PayerEmail,
			Phone: in.PayerPhone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       in.OrderID,
				Price:    in.Amount,
				Qty:      1,
				Name:     itemName(in.StudentName),
				Category: "MissionTrip",
			},
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

/* =========================================================
   Notification verification
========================================================= */

// VerifySignature checks the sha512 signature Midtrans attaches to every
// HTTP notification: sha512(order_id + status_code + gross_amount + server_key).
func VerifySignature(orderID, statusCode, grossAmount, signature string) bool {
	if !midtransReady() {
		return false
	}
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == strings.ToLower(strings.TrimSpace(signature))
}

// IsSettled reports whether a transaction status means money has landed.
func IsSettled(transactionStatus, fraudStatus string) bool {
	switch transactionStatus {
	case "settlement":
		return true
	case "capture":
		return fraudStatus == "" || fraudStatus == "accept"
	default:
		return false
	}
}

// IsTerminalFailure reports statuses after which the intent will never settle.
func IsTerminalFailure(transactionStatus string) bool {
	switch transactionStatus {
	case "deny", "cancel", "expire", "failure":
		return true
	default:
		return false
	}
}

/* =========================================================
   Utils
========================================================= */

func splitName(full string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(full))
	if len(parts) == 0 {
		return "Guest", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func itemName(studentName string) string {
	if studentName == "" {
		return "Mission trip payment"
	}
	return fmt.Sprintf("Mission trip payment - %s", studentName)
}
