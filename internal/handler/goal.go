package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/templui/goalfund/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

type createGoalRequest struct {
	Title         string           `json:"title" validate:"required,max=200"`
	RecipientName string           `json:"recipient_name" validate:"required,max=200"`
	TargetAmount  *decimal.Decimal `json:"target_amount" validate:"required"`
	Currency      string           `json:"currency" validate:"omitempty,len=3"`
	DueDate       string           `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type addContributorRequest struct {
	Name            string           `json:"name" validate:"required,max=200"`
	Email           *string          `json:"email" validate:"omitempty,max=254"`
	Phone           *string          `json:"phone" validate:"omitempty,max=32"`
	CommittedAmount *decimal.Decimal `json:"committed_amount"`
}

type recordPaymentRequest struct {
	ContributorID *string          `json:"contributor_id"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
	Method        *string          `json:"method" validate:"omitempty,max=50"`
	Notes         *string          `json:"notes" validate:"omitempty,max=1000"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if !decode(w, r, &req) {
		return
	}

	// The datetime tag already checked the format
	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, _ := time.Parse("2006-01-02", req.DueDate)
		dueDate = &parsed
	}

	goal, err := h.goalService.Create(r.Context(), service.CreateGoalInput{
		Title:         req.Title,
		RecipientName: req.RecipientName,
		TargetAmount:  *req.TargetAmount,
		Currency:      req.Currency,
		DueDate:       dueDate,
	})
	if err != nil {
		writeServiceError(w, r, err, "create goal")
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Show(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	view, err := h.goalService.Goal(r.Context(), goalID)
	if err != nil {
		writeServiceError(w, r, err, "get goal", "goal_id", goalID)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *GoalHandler) ShowByReference(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	view, err := h.goalService.GoalByReferenceCode(r.Context(), code)
	if err != nil {
		writeServiceError(w, r, err, "get goal by reference", "reference_code", code)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *GoalHandler) AddContributor(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	var req addContributorRequest
	if !decode(w, r, &req) {
		return
	}

	in := service.AddContributorInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if req.CommittedAmount != nil {
		in.CommittedAmount = decimal.NewNullDecimal(*req.CommittedAmount)
	}

	contributor, err := h.goalService.AddContributor(r.Context(), goalID, in)
	if err != nil {
		writeServiceError(w, r, err, "add contributor", "goal_id", goalID)
		return
	}

	writeJSON(w, http.StatusOK, contributor)
}

func (h *GoalHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	var req recordPaymentRequest
	if !decode(w, r, &req) {
		return
	}

	receipt, err := h.goalService.RecordPayment(r.Context(), goalID, service.RecordPaymentInput{
		ContributorID: req.ContributorID,
		Amount:        *req.Amount,
		Method:        req.Method,
		Notes:         req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err, "record payment", "goal_id", goalID)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}
