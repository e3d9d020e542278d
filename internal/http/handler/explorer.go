package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"txlens/internal/core"
	"txlens/internal/feed"
	"txlens/internal/http/handler/middleware"
	"txlens/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Authenticate           = "POST /api/v1/authenticate"
	GetTransactions        = "GET /api/v1/transactions"
	GetAddressTransactions = "GET /api/v1/addresses/{hash}/transactions"
	GetDecodedInput        = "GET /api/v1/transactions/{hash}/decoded-input"
	Metrics                = "GET /metrics"
)

const authTokenHeader = "AUTH_TOKEN"

type ExplorerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	explorer         TransactionService
}

func NewExplorerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, transactionService TransactionService) *ExplorerHandler {
	return &ExplorerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		explorer:         transactionService,
	}
}

func (h *ExplorerHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err == nil {
		err = payload.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.explorer.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

// HandleGetTransactions returns the requested transactions, fetching the ones
// the explorer has not indexed yet from the node.
func (h *ExplorerHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", GetTransactions, "request_id", requestId)
		return
	}

	userID, err := h.explorer.ValidateToken(authToken)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "invalid or expired token",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to validate token",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetTransactions, "request_id", requestId)
		return
	}

	txRequest := payload.TransactionsRequest{
		Transactions: values["transactionHashes"],
	}
	if err := txRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transactions request received",
		"count", len(txRequest.Transactions),
		"user_id", userID,
		"handler", GetTransactions,
		"request_id", requestId)

	transactions, err := h.explorer.GetTransactions(r.Context(), txRequest.Hashes())
	if err != nil {
		if len(transactions) == 0 {
			h.respond(w, Response{
				Message: "Could not retrieve transactions",
				Error:   "unexpected error occurred",
			}, http.StatusInternalServerError,
				requestId)
			h.logs.Errorw("failed to get transactions",
				"error", err,
				"handler", GetTransactions,
				"request_id", requestId)
			return
		}
		h.logs.Warnw("transactions retrieved with errors",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
	}

	views := make([]transactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, newTransactionView(tx))
	}

	resp := map[string][]transactionView{
		"transactions": views,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

// HandleGetAddressTransactions returns one page of the transaction feed of an address.
func (h *ExplorerHandler) HandleGetAddressTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	feedRequest := payload.NewAddressFeedRequest(r.PathValue("hash"), r.URL.Query())
	err := feedRequest.Validate()
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request parameters",
			"error", err,
			"handler", GetAddressTransactions,
			"request_id", requestId)
		return
	}

	address, opts, err := feedRequest.ToOptions()
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid feed options",
			"error", err,
			"handler", GetAddressTransactions,
			"request_id", requestId)
		return
	}

	page, err := h.explorer.AddressTransactions(r.Context(), address, opts)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve address transactions",
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, feed.ErrInvalidCursor), errors.Is(err, feed.ErrInvalidOptions):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, feed.ErrTimeout):
			httpCode = http.StatusGatewayTimeout
			resp.Error = "feed query timed out"
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get address transactions",
			"error", err,
			"address", address.Hex(),
			"handler", GetAddressTransactions,
			"request_id", requestId)
		return
	}

	h.respond(w, newFeedView(page), http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetDecodedInput(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	param := payload.TransactionHashParam{Hash: r.PathValue("hash")}
	if err := param.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate transaction hash: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate transaction hash",
			"error", err,
			"handler", GetDecodedInput,
			"request_id", requestId)
		return
	}

	outcome, err := h.explorer.DecodeTransactionInput(r.Context(), param.ToHash())
	if err != nil {
		resp := Response{
			Message: "Could not decode transaction input",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrTransactionNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to decode transaction input",
			"error", err,
			"tx_hash", param.Hash,
			"handler", GetDecodedInput,
			"request_id", requestId)
		return
	}

	h.respond(w, newDecodedInputView(outcome), http.StatusOK, requestId)
}

func (h *ExplorerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestId
}
