package domain

type Organization struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Locale      string `json:"locale"` // default UI/email language, e.g. "de", "en"
	AdminEmail  string `json:"admin_email"`
	BoardPolicy string `json:"board_policy"` // threshold kind used for MULTI_BOARD requests
	CreatedOn   string `json:"created_on"`
}
