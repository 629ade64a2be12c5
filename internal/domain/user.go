package domain

type User struct {
	ID           int32  `json:"id"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Locale       string `json:"locale"`
	CreatedOn    string `json:"created_on"`
}

type UserOrgStatus string

const (
	UserOrgStatusActive  UserOrgStatus = "ACTIVE"
	UserOrgStatusSuspend UserOrgStatus = "SUSPEND"
)

type UserOrgRole string

const (
	UserOrgRoleAdmin  UserOrgRole = "ADMIN"
	UserOrgRoleBoard  UserOrgRole = "BOARD"
	UserOrgRoleMember UserOrgRole = "MEMBER"
)

// CanVote reports whether the role sits on the board for voting
// purposes. Admins vote too; they are board members with extra powers.
func (r UserOrgRole) CanVote() bool {
	return r == UserOrgRoleAdmin || r == UserOrgRoleBoard
}

type UserOrg struct {
	UserID   int32         `json:"user_id"`
	OrgID    int32         `json:"org_id"`
	JoinedOn string        `json:"joined_on"`
	Status   UserOrgStatus `json:"status"`
	Role     UserOrgRole   `json:"role"`
}
