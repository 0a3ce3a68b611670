//go:build e2e

package inquiry_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"giftsafer/internal/handler/dto/response"
	"giftsafer/tests/common/httptest"
	"giftsafer/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	verifyRequestURL = "/api/verify-request"
	scanUploadURL    = "/api/scan-upload"
)

type InquirySuite struct {
	e2e.SharedSuite
}

func TestInquirySuite(t *testing.T) {
	suite.Run(t, new(InquirySuite))
}

func (s *InquirySuite) TestVerifyRequest() {
	s.Run("Normal case: request lands in the operations inbox", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyRequestURL, map[string]any{
			"brand": "MockFlix",
			"code":  "MF-AB12-CD35",
			"email": "buyer@example.com",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var body response.InquiryResponse
		err := httptest.DecodeResponseBody(t, w.Body, &body)
		require.NoError(t, err)
		require.True(t, body.Ok)

		require.Len(t, s.Notifier.Sent, 1)
		mail := s.Notifier.Sent[0]
		require.Equal(t, "Gift Safer Verification Request - MockFlix", mail.Subject)
		require.Contains(t, mail.Body, "Code: MF-AB12-CD35")
		require.Contains(t, mail.Body, "Customer Email: buyer@example.com")
	})

	s.Run("Error case: missing email returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyRequestURL, map[string]any{
			"brand": "MockFlix",
			"code":  "MF-AB12-CD35",
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body response.InquiryResponse
		err := httptest.DecodeResponseBody(t, w.Body, &body)
		require.NoError(t, err)
		require.Equal(t, "Missing brand, code, or email.", body.Message)
		require.Empty(t, s.Notifier.Sent)
	})

	s.Run("Error case: mail outage surfaces as 502", func() {
		t := s.T()
		s.Notifier.Fail = true

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyRequestURL, map[string]any{
			"brand": "MockFlix",
			"code":  "MF-AB12-CD35",
			"email": "buyer@example.com",
		}, "")
		require.Equal(t, http.StatusBadGateway, w.Code)

		var body response.InquiryResponse
		err := httptest.DecodeResponseBody(t, w.Body, &body)
		require.NoError(t, err)
		require.Equal(t, "Email send failed.", body.Message)
	})
}

func (s *InquirySuite) TestScanUpload() {
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("front-bytes"))

	s.Run("Normal case: both scans are attached to the mail", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanUploadURL, map[string]any{
			"brand": "Sample Tunes",
			"email": "buyer@example.com",
			"front": dataURL,
			"back":  dataURL,
			"mode":  "upload",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)

		require.Len(t, s.Notifier.Sent, 1)
		mail := s.Notifier.Sent[0]
		require.Equal(t, "Gift Safer Upload Upload - Sample Tunes", mail.Subject)
		require.Len(t, mail.Attachments, 2)
		require.Equal(t, "sample_tunes_front.jpg", mail.Attachments[0].Filename)
		require.Equal(t, "sample_tunes_back.jpg", mail.Attachments[1].Filename)
	})

	s.Run("Error case: junk image data returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanUploadURL, map[string]any{
			"brand": "Sample Tunes",
			"email": "buyer@example.com",
			"front": "junk",
			"back":  "junk",
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body response.InquiryResponse
		err := httptest.DecodeResponseBody(t, w.Body, &body)
		require.NoError(t, err)
		require.Equal(t, "Invalid image data.", body.Message)
		require.Empty(t, s.Notifier.Sent)
	})
}
