package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	churchModel "weonamission_backend/internals/features/churches/churches/model"
	"weonamission_backend/internals/features/trips/payments/dto"
	"weonamission_backend/internals/features/trips/payments/model"
	paymentService "weonamission_backend/internals/features/trips/payments/service"
	studentModel "weonamission_backend/internals/features/trips/students/model"
	helper "weonamission_backend/internals/helpers"
	helperAuth "weonamission_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validate: validator.New()}
}

/* ==========================
   Shared lookups
========================== */

func (pc *PaymentController) findScopedStudent(c *fiber.Ctx, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}
	var s studentModel.StudentModel
	if err := pc.DB.
		Where("student_id = ? AND student_church_id = ?", studentID, churchID).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return &s, nil
}

func ownsStudent(c *fiber.Ctx, s *studentModel.StudentModel) bool {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return false
	}
	return s.StudentParentUserID == userID
}

/* ==========================
   Admin: record offline payment
========================== */

// POST /api/a/payments — append a cash/check payment. No update or delete
// endpoints exist; corrections are made with an offsetting entry.
func (pc *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := pc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, ferr := pc.findScopedStudent(c, req.StudentID)
	if ferr != nil {
		return ferr
	}
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	payment := model.PaymentModel{
		PaymentChurchID:   student.StudentChurchID,
		PaymentStudentID:  student.StudentID,
		PaymentAmount:     req.Amount,
		PaymentDate:       req.Date,
		PaymentMethod:     req.Method,
		PaymentNotes:      req.Notes,
		PaymentRecordedBy: &adminID,
	}
	if err := pc.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Payment recorded", dto.ToPaymentResponse(payment))
}

/* ==========================
   Listing & totals
========================== */

// GET /api/u/payments?student_id= — parents see their own students' ledgers,
// admins the whole church.
func (pc *PaymentController) ListPayments(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}

	p := helper.ParsePage(c, "date", "desc")
	order, err := p.SafeOrderClause(map[string]string{
		"date":   "payment_date",
		"amount": "payment_amount",
	}, "date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := pc.DB.Model(&model.PaymentModel{}).Where("payment_church_id = ?", churchID)

	if raw := c.Query("student_id"); raw != "" {
		studentID, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		student, ferr := pc.findScopedStudent(c, studentID)
		if ferr != nil {
			return ferr
		}
		if !helper.IsAdmin(c) && !ownsStudent(c, student) {
			return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own students' payments")
		}
		q = q.Where("payment_student_id = ?", studentID)
	} else if !helper.IsAdmin(c) {
		userID, uerr := helper.GetUserIDFromToken(c)
		if uerr != nil {
			return uerr
		}
		q = q.Where("payment_student_id IN (?)",
			pc.DB.Model(&studentModel.StudentModel{}).
				Select("student_id").
				Where("student_parent_user_id = ?", userID))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	var rows []model.PaymentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonSuccess(c, "OK", fiber.Map{
		"payments":   dto.ToPaymentResponses(rows),
		"pagination": helper.BuildPageMeta(total, p),
	})
}

// GET /api/u/payments/totals/:student_id — running balance against trip cost.
func (pc *PaymentController) GetStudentTotals(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	student, ferr := pc.findScopedStudent(c, studentID)
	if ferr != nil {
		return ferr
	}
	if !helper.IsAdmin(c) && !ownsStudent(c, student) {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own students' totals")
	}

	var paid int64
	if err := pc.DB.Model(&model.PaymentModel{}).
		Where("payment_student_id = ?", studentID).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&paid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var church churchModel.ChurchModel
	if err := pc.DB.First(&church, "church_id = ?", student.StudentChurchID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	cost := int64(church.ChurchTripCost)

	return helper.JsonSuccess(c, "OK", dto.StudentTotals{
		StudentID: studentID,
		Paid:      paid,
		TripCost:  cost,
		Remaining: max64(cost-paid, 0),
	})
}

// GET /api/a/payments/totals — church-wide aggregate for the admin dashboard.
func (pc *PaymentController) GetChurchTotals(c *fiber.Ctx) error {
	churchID, err := helperAuth.GetActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Church context missing")
	}

	var paid int64
	if err := pc.DB.Model(&model.PaymentModel{}).
		Where("payment_church_id = ?", churchID).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&paid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	var studentCount int64
	if err := pc.DB.Model(&studentModel.StudentModel{}).
		Where("student_church_id = ?", churchID).
		Count(&studentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	var church churchModel.ChurchModel
	if err := pc.DB.First(&church, "church_id = ?", churchID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	cost := int64(church.ChurchTripCost)
	expected := cost * studentCount
	return helper.JsonSuccess(c, "OK", dto.ChurchTotals{
		ChurchID:     churchID,
		Paid:         paid,
		StudentCount: studentCount,
		TripCost:     cost,
		Expected:     expected,
		Remaining:    max64(expected-paid, 0),
	})
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

/* ==========================
   Checkout (hosted gateway)
========================== */

// POST /api/u/payments/checkout — parent starts an online payment for one of
// their students. The payment row itself only lands via the webhook.
func (pc *PaymentController) CreateCheckout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := pc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, ferr := pc.findScopedStudent(c, req.StudentID)
	if ferr != nil {
		return ferr
	}
	if !helper.IsAdmin(c) && !ownsStudent(c, student) {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only pay for your own students")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	orderID := fmt.Sprintf("woam-%s", uuid.NewString())
	intent := model.PaymentIntentModel{
		IntentOrderID:   orderID,
		IntentChurchID:  student.StudentChurchID,
		IntentStudentID: student.StudentID,
		IntentUserID:    userID,
		IntentAmount:    req.Amount,
		IntentStatus:    model.IntentStatusPending,
	}
	if err := pc.DB.Create(&intent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to open checkout")
	}

	userName, _ := c.Locals("userName").(string)
	token, redirectURL, err := paymentService.GenerateSnapToken(paymentService.CheckoutInput{
		OrderID:     orderID,
		Amount:      req.Amount,
		PayerName:   userName,
		StudentName: student.StudentName,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway error: "+err.Error())
	}

	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Checkout created", fiber.Map{
		"order_id":     orderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

/* ==========================
   Gateway webhook
========================== */

type gatewayNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}

// POST /api/payments/notification — unauthenticated gateway callback. The
// sha512 signature is the only trust anchor here.
func (pc *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var n gatewayNotification
	if err := c.BodyParser(&n); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification body")
	}
	if !paymentService.VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount, n.SignatureKey) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Bad signature")
	}

	var intent model.PaymentIntentModel
	if err := pc.DB.First(&intent, "intent_order_id = ?", n.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unknown order")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	switch {
	case paymentService.IsSettled(n.TransactionStatus, n.FraudStatus):
		if intent.IntentStatus == model.IntentStatusSettled {
			return helper.JsonSuccess(c, "Already processed", nil)
		}
		orderID := intent.IntentOrderID
		payment := model.PaymentModel{
			PaymentChurchID:  intent.IntentChurchID,
			PaymentStudentID: intent.IntentStudentID,
			PaymentAmount:    intent.IntentAmount,
			PaymentDate:      time.Now().UTC(),
			PaymentMethod:    "online",
			PaymentNotes:     "Gateway settlement (" + n.PaymentType + ")",
			PaymentOrderID:   &orderID,
		}
		err := pc.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			return tx.Model(&model.PaymentIntentModel{}).
				Where("intent_order_id = ?", orderID).
				Update("intent_status", model.IntentStatusSettled).Error
		})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record settlement")
		}
		return helper.JsonSuccess(c, "Settlement recorded", nil)

	case paymentService.IsTerminalFailure(n.TransactionStatus):
		if err := pc.DB.Model(&model.PaymentIntentModel{}).
			Where("intent_order_id = ?", intent.IntentOrderID).
			Update("intent_status", model.IntentStatusFailed).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		return helper.JsonSuccess(c, "Intent closed", nil)

	default:
		// pending / challenge states: acknowledge, wait for the next callback
		return helper.JsonSuccess(c, "Acknowledged", nil)
	}
}
