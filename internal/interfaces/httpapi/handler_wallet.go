package httpapi

import (
	"net/http"
)

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBalance")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	balance, err := h.walletService.Balance(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get wallet balance failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, balanceDTO{UserID: principal.UserID, Balance: formatMoney(balance)})
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransactions")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	txs, err := h.walletService.ListTransactions(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list wallet transactions failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]transactionDTO, 0, len(txs))
	for _, tx := range txs {
		items = append(items, transactionToDTO(tx))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AddMoney(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMoney")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addMoneyRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	tx, err := h.walletService.AddMoney(ctx, principal.UserID, req.Amount)
	if err != nil {
		h.logger.WarnContext(ctx, "add money failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	balance, err := h.walletService.Balance(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "read balance after add money failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, addMoneyDTO{
		Transaction: transactionToDTO(tx),
		Balance:     formatMoney(balance),
	})
}
