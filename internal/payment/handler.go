package payment

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"payguard/internal/validation"
	dErrors "payguard/pkg/domain-errors"
	"payguard/pkg/platform/httputil"
)

// Handler wires the payment submission endpoint to the payment service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the payment endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/payments", h.HandleSubmit)
}

type submitRequest struct {
	RecipientName      string `json:"recipientName"`
	PayeeAccountNumber string `json:"payeeAccountNumber"`
	SwiftCode          string `json:"swiftCode"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	Memo               string `json:"memo"`
}

type submitResponse struct {
	Message     string       `json:"message"`
	Transaction *Transaction `json:"transaction"`
}

// HandleSubmit handles POST /api/payments. Every declared field is validated
// and the response carries the complete error map, never just the first
// failure.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	res := validation.Validate(map[string]string{
		"recipientName":      req.RecipientName,
		"payeeAccountNumber": req.PayeeAccountNumber,
		"swiftCode":          req.SwiftCode,
		"amount":             req.Amount,
		"currency":           req.Currency,
		"memo":               req.Memo,
	}, Rules())
	if !res.Accepted {
		httputil.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":  string(dErrors.CodeValidationFailed),
			"errors": res.Errors,
		})
		return
	}

	tx, err := h.service.Submit(r.Context(), res.Normalized)
	if err != nil {
		h.logger.Error("payment submission failed", "error", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, submitResponse{
		Message:     "Payment submitted for processing.",
		Transaction: tx,
	})
}
