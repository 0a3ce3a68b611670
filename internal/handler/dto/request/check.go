package request

type CheckRequest struct {
	CardType string `json:"card_type"`
	Code     string `json:"code"`
}
