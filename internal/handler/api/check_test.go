//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"giftsafer/internal/domain/card"
	"giftsafer/internal/handler/api"
	resdto "giftsafer/internal/handler/dto/response"
	"giftsafer/internal/infra/metrics"
	"giftsafer/internal/usecase/commands"
	"giftsafer/tests/common/httptest"
	commandsmock "giftsafer/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckCommands
	handler      *api.CheckHandler
}

func (s *CheckHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckCommands(s.mockCtrl)
	s.handler = api.NewCheckHandler(s.mockCommands, metrics.New())

	s.router.POST("/api/check", s.handler.Check)
}

func (s *CheckHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckHandlerTestSuite))
}

func (s *CheckHandlerTestSuite) TestCheck() {
	url := "/api/check"
	checkedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.Run("success: returns 200 OK with card details for a valid code", func() {
		s.mockCommands.EXPECT().
			Check(gomock.Any(), commands.CheckInput{
				ClientIP: "192.0.2.1",
				CardType: "DemoCard",
				Code:     "DEMO-1234-5678-9010",
			}).
			Return(&commands.CheckResult{
				Outcome:   commands.OutcomeValid,
				Ok:        true,
				Status:    card.StatusValid,
				Label:     "Verified",
				Message:   "Verification completed.",
				Reference: "AB12CD34EF",
				CheckedAt: checkedAt,
				CardType:  "DemoCard",
				Balance:   12345,
				Currency:  "NGN",
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"card_type": "DemoCard",
			"code":      "DEMO-1234-5678-9010",
		}, "")

		s.Equal(http.StatusOK, w.Code)

		var body resdto.CheckResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &body)
		s.True(body.Ok)
		s.Equal("valid", body.Status)
		s.Equal("Verified", body.Label)
		s.Equal("DemoCard", body.CardType)
		s.Equal(int64(12345), body.Balance)
		s.Equal("NGN", body.Currency)
		s.Equal("AB12CD34EF", body.Reference)
		s.Equal("2025-06-01T12:00:00Z", body.CheckedAt)
	})

	s.Run("success: used code stays 200 OK", func() {
		s.mockCommands.EXPECT().
			Check(gomock.Any(), gomock.Any()).
			Return(&commands.CheckResult{
				Outcome:   commands.OutcomeUsed,
				Ok:        true,
				Status:    card.StatusUsed,
				Label:     "Used",
				Message:   "This code has already been checked and marked as used.",
				Reference: "AB12CD34EF",
				CheckedAt: checkedAt,
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"card_type": "DemoCard",
			"code":      "DEMO-1234-5678-9010",
		}, "")

		s.Equal(http.StatusOK, w.Code)

		var body resdto.CheckResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &body)
		s.True(body.Ok)
		s.Equal("used", body.Status)
		s.Empty(body.CardType)
		s.Zero(body.Balance)
	})

	s.Run("rate limited: returns 429 Too Many Requests", func() {
		s.mockCommands.EXPECT().
			Check(gomock.Any(), gomock.Any()).
			Return(&commands.CheckResult{
				Outcome:   commands.OutcomeRateLimited,
				Ok:        false,
				Status:    card.StatusRateLimited,
				Label:     "Too many requests",
				Message:   "Rate limit: max 10 checks per 30s.",
				Reference: "AB12CD34EF",
				CheckedAt: checkedAt,
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"card_type": "DemoCard",
			"code":      "DEMO-1234-5678-9010",
		}, "")

		s.Equal(http.StatusTooManyRequests, w.Code)

		var body resdto.CheckResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &body)
		s.False(body.Ok)
		s.Equal("rate_limited", body.Status)
	})

	s.Run("unknown card type: returns 400 Bad Request", func() {
		s.mockCommands.EXPECT().
			Check(gomock.Any(), gomock.Any()).
			Return(&commands.CheckResult{
				Outcome:   commands.OutcomeUnknownCardType,
				Ok:        false,
				Status:    card.StatusInvalid,
				Label:     "Invalid request",
				Message:   "Choose a valid card type.",
				Reference: "AB12CD34EF",
				CheckedAt: checkedAt,
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"card_type": "AmazonCard",
			"code":      "DEMO-1234-5678-9010",
		}, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("malformed JSON still runs the pipeline with empty fields", func() {
		s.mockCommands.EXPECT().
			Check(gomock.Any(), commands.CheckInput{ClientIP: "192.0.2.1"}).
			Return(&commands.CheckResult{
				Outcome:   commands.OutcomeUnknownCardType,
				Ok:        false,
				Status:    card.StatusInvalid,
				Label:     "Invalid request",
				Message:   "Choose a valid card type.",
				Reference: "AB12CD34EF",
				CheckedAt: checkedAt,
			}, nil).Times(1)

		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "{not json")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("error: usecase failure returns 500", func() {
		s.mockCommands.EXPECT().
			Check(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrAuditWriteFailed).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"card_type": "DemoCard",
			"code":      "DEMO-1234-5678-9010",
		}, "")

		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
