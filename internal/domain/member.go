package domain

// Member is a registry record created exactly once from an approved
// membership request.
type Member struct {
	ID        int32  `json:"id"`
	OrgID     int32  `json:"org_id"`
	RequestID int32  `json:"request_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	JoinedOn  string `json:"joined_on"`
}
