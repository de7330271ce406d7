package handler

import (
	"net/http"

	"github.com/osse101/wagerengine/internal/domain"
	"github.com/osse101/wagerengine/internal/ledger"
)

// LedgerHandler serves balance reads and admin deposits
type LedgerHandler struct {
	service ledger.Service
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(service ledger.Service) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// BalanceResponse is a balance derived from the ledger
type BalanceResponse struct {
	PlayerID string `json:"player_id"`
	Balance  int64  `json:"balance"`
}

// TransactionsResponse lists ledger transactions newest first
type TransactionsResponse struct {
	Transactions []domain.LedgerTransaction `json:"transactions"`
}

// DepositRequest funds a player's ledger
type DepositRequest struct {
	PlayerID string `json:"player_id" validate:"required,identifier,max=128"`
	Amount   int64  `json:"amount" validate:"gt=0"`
	Source   string `json:"source" validate:"omitempty,max=64"`
}

// HandleGetBalance returns the authenticated player's balance
// @Summary Current balance
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BalanceResponse
// @Router /api/v1/balance [get]
func (h *LedgerHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	balance, err := h.service.Balance(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, LogMsgBalanceFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{PlayerID: playerID, Balance: balance})
}

// HandleGetTransactions lists the authenticated player's ledger history
// @Summary Ledger history
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows"
// @Success 200 {object} TransactionsResponse
// @Router /api/v1/transactions [get]
func (h *LedgerHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(r, w, "limit", ledger.DefaultHistoryLimit)
	if !ok {
		return
	}

	txs, err := h.service.History(r.Context(), playerID, limit)
	if err != nil {
		respondServiceError(w, r, LogMsgHistoryFailed, err)
		return
	}
	if txs == nil {
		txs = []domain.LedgerTransaction{}
	}

	respondJSON(w, http.StatusOK, TransactionsResponse{Transactions: txs})
}

// HandleDeposit credits a player through the ledger
// @Summary Deposit coins
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DepositRequest true "Deposit"
// @Success 201 {object} domain.LedgerTransaction
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/ledger/deposit [post]
func (h *LedgerHandler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	var req DepositRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Deposit"); err != nil {
		return
	}

	txn, err := h.service.Deposit(r.Context(), req.PlayerID, req.Amount, req.Source)
	if err != nil {
		respondServiceError(w, r, LogMsgDepositFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, txn)
}
