package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/service"
)

// MembershipRequestHandler exposes the approval workflow over HTTP.
type MembershipRequestHandler struct {
	svc service.ApprovalService
}

func NewMembershipRequestHandler(svc service.ApprovalService) *MembershipRequestHandler {
	return &MembershipRequestHandler{svc: svc}
}

func pathID(r *http.Request, name string) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	return int32(id), err
}

type submitRequestBody struct {
	OrgID      int32  `json:"org_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Motivation string `json:"motivation"`
	Policy     string `json:"policy"`
}

// Submit is the public application endpoint. The response includes the
// access token the applicant uses to check the outcome later.
func (h *MembershipRequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if body.OrgID == 0 || body.Name == "" || body.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "org_id, name and email are required"})
		return
	}

	req := &domain.MembershipRequest{
		OrgID:      body.OrgID,
		Name:       body.Name,
		Email:      body.Email,
		Phone:      body.Phone,
		Address:    body.Address,
		Motivation: body.Motivation,
		Policy:     domain.ApprovalPolicy(body.Policy),
	}
	if err := h.svc.SubmitRequest(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":           req.ID,
		"sequence_no":  req.SequenceNo,
		"status":       req.Status,
		"access_token": req.AccessToken,
	})
}

func (h *MembershipRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, err := strconv.ParseInt(r.URL.Query().Get("org_id"), 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "org_id is required"})
		return
	}
	status := domain.RequestStatus(r.URL.Query().Get("status"))
	reqs, err := h.svc.ListRequests(r.Context(), int32(orgID), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": reqs})
}

// Get returns the request with its votes, live tally and audit trail.
func (h *MembershipRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request id"})
		return
	}
	req, votes, tally, audit, err := h.svc.GetRequest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"request": req,
		"votes":   votes,
		"tally":   tally,
		"audit":   audit,
	})
}

// Status is the public outcome endpoint, keyed by the access token
// issued at submission.
func (h *MembershipRequestHandler) Status(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.GetRequestByAccessToken(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sequence_no": req.SequenceNo,
		"status":      req.Status,
	})
}

type castVoteBody struct {
	Choice string `json:"choice"`
	Notes  string `json:"notes"`
}

func (h *MembershipRequestHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request id"})
		return
	}
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthenticated"})
		return
	}

	var body castVoteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	choice := domain.VoteChoice(body.Choice)
	switch choice {
	case domain.VoteChoiceApprove, domain.VoteChoiceReject, domain.VoteChoiceAbstain:
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "choice must be APPROVE, REJECT or ABSTAIN"})
		return
	}

	vote, outcome, err := h.svc.CastVote(r.Context(), id, claims.UserID, choice, body.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"vote":    vote,
		"outcome": outcome,
	})
}

func (h *MembershipRequestHandler) PendingVoters(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request id"})
		return
	}
	voters, err := h.svc.PendingVoters(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pending_voters": voters})
}

type overrideBody struct {
	Notes  string `json:"notes"`
	Reason string `json:"reason"`
}

func (h *MembershipRequestHandler) OverrideApprove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request id"})
		return
	}
	claims, _ := ClaimsFromContext(r.Context())
	var body overrideBody
	_ = json.NewDecoder(r.Body).Decode(&body)

	if err := h.svc.OverrideApprove(r.Context(), id, claims.UserID, body.Notes); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": domain.RequestStatusApproved})
}

func (h *MembershipRequestHandler) OverrideReject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request id"})
		return
	}
	claims, _ := ClaimsFromContext(r.Context())
	var body overrideBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Reason == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "reason is required"})
		return
	}

	if err := h.svc.OverrideReject(r.Context(), id, claims.UserID, body.Reason); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": domain.RequestStatusRejected})
}

type updateStatusBody struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *MembershipRequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request id"})
		return
	}
	claims, _ := ClaimsFromContext(r.Context())
	var body updateStatusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "status is required"})
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, claims.UserID, domain.RequestStatus(body.Status), body.Notes); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": body.Status})
}

// Withdraw is applicant-initiated, keyed by the access token.
func (h *MembershipRequestHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Withdraw(r.Context(), mux.Vars(r)["token"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": domain.RequestStatusWithdrawn})
}

func (h *MembershipRequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request id"})
		return
	}
	if err := h.svc.DeleteRequest(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
