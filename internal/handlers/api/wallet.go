package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gabapcia/recoverywallet/internal/pkg/validator"
	"github.com/gabapcia/recoverywallet/internal/recovery"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/mux"
	"github.com/holiman/uint256"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type idResponse struct {
	ID uint64 `json:"id"`
}

type submitChangeRequestRequest struct {
	NewSpender string `json:"newSpender" validate:"required,eth_addr"`
}

type submitTransactionRequest struct {
	Destination string        `json:"destination" validate:"required,eth_addr"`
	Amount      string        `json:"amount" validate:"omitempty,amount"`
	Payload     hexutil.Bytes `json:"payload"`
}

type depositRequest struct {
	From   string `json:"from" validate:"required,eth_addr"`
	Amount string `json:"amount" validate:"required,amount"`
}

type walletResponse struct {
	Spender            common.Address  `json:"spender"`
	Balance            *uint256.Int    `json:"balance"`
	ChangeRequestCount uint64          `json:"changeRequestCount"`
	TransactionCount   uint64          `json:"transactionCount"`
	Policy             recovery.Policy `json:"policy"`
}

// decode reads a JSON body into v and validates it.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", fmt.Errorf("decoding body: %w", err))
		return false
	}

	if err := validator.Validate(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", err)
		return false
	}

	return true
}

// pathID parses the {id} route variable.
func pathID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", fmt.Errorf("invalid id: %w", err))
		return 0, false
	}
	return id, true
}

func (h *handler) submitChangeRequest(w http.ResponseWriter, r *http.Request) {
	var req submitChangeRequestRequest
	if !decode(w, r, &req) {
		return
	}

	caller, _ := callerFrom(r.Context())
	id, err := h.svc.SubmitChangeRequest(r.Context(), caller, common.HexToAddress(req.NewSpender))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, idResponse{ID: id})
}

// confirmChangeRequest answers with the request after the confirmation, so the
// caller can tell whether it rotated the spender.
func (h *handler) confirmChangeRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	caller, _ := callerFrom(r.Context())
	if err := h.svc.ConfirmChangeRequest(r.Context(), caller, id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeChangeRequest(w, r, id)
}

func (h *handler) getChangeRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	h.writeChangeRequest(w, r, id)
}

func (h *handler) writeChangeRequest(w http.ResponseWriter, r *http.Request, id uint64) {
	req, err := h.svc.ChangeRequest(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, req)
}

func (h *handler) submitTransaction(w http.ResponseWriter, r *http.Request) {
	var req submitTransactionRequest
	if !decode(w, r, &req) {
		return
	}

	amount := new(uint256.Int)
	if req.Amount != "" {
		var err error
		if amount, err = recovery.ParseAmount(req.Amount); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid_request", err)
			return
		}
	}

	caller, _ := callerFrom(r.Context())
	id, err := h.svc.SubmitTransaction(r.Context(), caller, common.HexToAddress(req.Destination), amount, req.Payload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, idResponse{ID: id})
}

func (h *handler) confirmTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	caller, _ := callerFrom(r.Context())
	if err := h.svc.ConfirmTransaction(r.Context(), caller, id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeTransaction(w, r, id)
}

// executeTransaction answers with the executed transaction, which carries the
// reference of the outbound call.
func (h *handler) executeTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	caller, _ := callerFrom(r.Context())
	if err := h.svc.ExecuteTransaction(r.Context(), caller, id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeTransaction(w, r, id)
}

func (h *handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	h.writeTransaction(w, r, id)
}

func (h *handler) writeTransaction(w http.ResponseWriter, r *http.Request, id uint64) {
	tx, err := h.svc.Transaction(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, tx)
}

func (h *handler) deposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if !decode(w, r, &req) {
		return
	}

	amount, err := recovery.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if err := h.svc.Receive(r.Context(), common.HexToAddress(req.From), amount); err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.getWallet(w, r)
}

func (h *handler) getWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	writeJSON(w, r, http.StatusOK, walletResponse{
		Spender:            h.svc.CurrentSpender(ctx),
		Balance:            h.svc.Balance(ctx),
		ChangeRequestCount: h.svc.ChangeRequestCount(ctx),
		TransactionCount:   h.svc.TransactionCount(ctx),
		Policy:             h.svc.Policy(ctx),
	})
}
