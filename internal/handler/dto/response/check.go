package response

import (
	"time"

	"giftsafer/internal/usecase/commands"
)

type CheckResponse struct {
	Ok        bool   `json:"ok"`
	Status    string `json:"status"`
	Label     string `json:"label"`
	Message   string `json:"message"`
	CardType  string `json:"card_type,omitempty"`
	Balance   int64  `json:"balance,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Reference string `json:"reference"`
	CheckedAt string `json:"checked_at"`
}

func FromCheckResult(result *commands.CheckResult) CheckResponse {
	return CheckResponse{
		Ok:        result.Ok,
		Status:    result.Status.String(),
		Label:     result.Label,
		Message:   result.Message,
		CardType:  result.CardType,
		Balance:   result.Balance,
		Currency:  result.Currency,
		Reference: result.Reference,
		CheckedAt: result.CheckedAt.UTC().Truncate(time.Second).Format(time.RFC3339),
	}
}

type InquiryResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}
