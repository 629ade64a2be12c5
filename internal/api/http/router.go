package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/security"
)

// NewRouter wires all handlers. Public routes serve the applicant;
// everything under /api requires a token; overrides and deletes are
// admin only.
func NewRouter(
	tokens security.TokenManager,
	authHandler *AuthHandler,
	requestHandler *MembershipRequestHandler,
	memberHandler *MemberHandler,
	notificationHandler *NotificationHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Public
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/membership-requests", requestHandler.Submit).Methods(http.MethodPost)
	r.HandleFunc("/membership-requests/status/{token}", requestHandler.Status).Methods(http.MethodGet)
	r.HandleFunc("/membership-requests/status/{token}/withdraw", requestHandler.Withdraw).Methods(http.MethodPost)

	// Board and admin
	api := r.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(tokens))

	board := api.NewRoute().Subrouter()
	board.Use(RequireRole(domain.UserOrgRoleAdmin, domain.UserOrgRoleBoard))
	board.HandleFunc("/membership-requests", requestHandler.List).Methods(http.MethodGet)
	board.HandleFunc("/membership-requests/{id}", requestHandler.Get).Methods(http.MethodGet)
	board.HandleFunc("/membership-requests/{id}/votes", requestHandler.CastVote).Methods(http.MethodPost)
	board.HandleFunc("/membership-requests/{id}/pending-voters", requestHandler.PendingVoters).Methods(http.MethodGet)
	board.HandleFunc("/membership-requests/{id}/status", requestHandler.UpdateStatus).Methods(http.MethodPut)
	board.HandleFunc("/members", memberHandler.List).Methods(http.MethodGet)
	board.HandleFunc("/members/{id}", memberHandler.Get).Methods(http.MethodGet)

	admin := api.NewRoute().Subrouter()
	admin.Use(RequireRole(domain.UserOrgRoleAdmin))
	admin.HandleFunc("/membership-requests/{id}/override-approve", requestHandler.OverrideApprove).Methods(http.MethodPost)
	admin.HandleFunc("/membership-requests/{id}/override-reject", requestHandler.OverrideReject).Methods(http.MethodPost)
	admin.HandleFunc("/membership-requests/{id}", requestHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	return r
}
