package response

import (
	"giftsafer/internal/usecase/queries"
)

type AdminLoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type CheckLogListResponse struct {
	Logs       []*queries.CheckLogView `json:"logs"`
	NextCursor string                  `json:"next_cursor,omitempty"`
	Total      int64                   `json:"total"`
}

type UsedCodeListResponse struct {
	UsedCodes  []*queries.UsedCodeView `json:"used_codes"`
	NextCursor string                  `json:"next_cursor,omitempty"`
	Total      int64                   `json:"total"`
}
