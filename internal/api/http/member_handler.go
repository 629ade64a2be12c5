package http

import (
	"net/http"
	"strconv"

	"communityhub-backend/internal/service"
)

type MemberHandler struct {
	registry service.MemberRegistry
}

func NewMemberHandler(registry service.MemberRegistry) *MemberHandler {
	return &MemberHandler{registry: registry}
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, err := strconv.ParseInt(r.URL.Query().Get("org_id"), 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "org_id is required"})
		return
	}
	members, err := h.registry.ListMembers(r.Context(), int32(orgID))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": members})
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid member id"})
		return
	}
	member, err := h.registry.GetMember(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}
