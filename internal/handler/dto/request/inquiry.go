package request

type VerifyRequestRequest struct {
	Brand string `json:"brand"`
	Code  string `json:"code"`
	Email string `json:"email"`
}

type ScanUploadRequest struct {
	Brand string `json:"brand"`
	Email string `json:"email"`
	Front string `json:"front"`
	Back  string `json:"back"`
	Mode  string `json:"mode"`
}
