//go:build unit

package commands_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"giftsafer/internal/domain/card"
	"giftsafer/internal/pkg/clock"
	"giftsafer/internal/usecase/commands"
	commandsmock "giftsafer/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockLimiter *commandsmock.MockRateLimiter
	mockLedger  *commandsmock.MockUsedCodeRepository
	mockAudit   *commandsmock.MockCheckLogRepository
	clock       *clock.MockClock
	useCase     commands.CheckCommands
}

func (s *CheckUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLimiter = commandsmock.NewMockRateLimiter(s.mockCtrl)
	s.mockLedger = commandsmock.NewMockUsedCodeRepository(s.mockCtrl)
	s.mockAudit = commandsmock.NewMockCheckLogRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.useCase = commands.NewCheckUseCase(s.mockLimiter, s.mockLedger, s.mockAudit, s.clock)
}

func (s *CheckUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CheckUseCaseTestSuite))
}

var referencePattern = regexp.MustCompile(`^[0-9A-F]{10}$`)

func (s *CheckUseCaseTestSuite) allowLimiter() {
	s.mockLimiter.EXPECT().Allow(gomock.Any(), "1.2.3.4").Return(true)
}

func (s *CheckUseCaseTestSuite) expectAudit(status card.Status, masked string) {
	s.mockAudit.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry commands.CheckLogEntry) error {
			s.Equal(status, entry.Status)
			s.Equal(masked, entry.CodeMasked)
			s.Equal("1.2.3.4", entry.ClientIP)
			s.Regexp(referencePattern, entry.Reference)
			return nil
		})
}

func (s *CheckUseCaseTestSuite) TestRateLimited() {
	s.mockLimiter.EXPECT().Allow(gomock.Any(), "1.2.3.4").Return(false)
	s.mockLimiter.EXPECT().Window().Return(10, 30)
	s.expectAudit(card.StatusRateLimited, "***************9010")

	result, err := s.useCase.Check(context.Background(), commands.CheckInput{
		ClientIP: "1.2.3.4",
		CardType: "DemoCard",
		Code:     "DEMO-1234-5678-9010",
	})

	s.Require().NoError(err)
	s.Equal(commands.OutcomeRateLimited, result.Outcome)
	s.False(result.Ok)
	s.Equal(card.StatusRateLimited, result.Status)
	s.Equal("Too many requests", result.Label)
	s.Equal("Rate limit: max 10 checks per 30s.", result.Message)
}

func (s *CheckUseCaseTestSuite) TestUnknownCardType() {
	s.allowLimiter()
	s.expectAudit(card.StatusInvalid, "***************9010")

	result, err := s.useCase.Check(context.Background(), commands.CheckInput{
		ClientIP: "1.2.3.4",
		CardType: "AmazonCard",
		Code:     "DEMO-1234-5678-9010",
	})

	s.Require().NoError(err)
	s.Equal(commands.OutcomeUnknownCardType, result.Outcome)
	s.False(result.Ok)
	s.Equal("Choose a valid card type.", result.Message)
}

func (s *CheckUseCaseTestSuite) TestEmptyCode() {
	s.allowLimiter()
	s.expectAudit(card.StatusInvalid, "")

	result, err := s.useCase.Check(context.Background(), commands.CheckInput{
		ClientIP: "1.2.3.4",
		CardType: "DemoCard",
		Code:     "   ",
	})

	s.Require().NoError(err)
	s.Equal(commands.OutcomeEmptyCode, result.Outcome)
	s.False(result.Ok)
	s.Equal("Enter a code.", result.Message)
}

func (s *CheckUseCaseTestSuite) TestFormatMismatchIsSoftReject() {
	s.allowLimiter()
	s.expectAudit(card.StatusInvalid, "*****5678")

	result, err := s.useCase.Check(context.Background(), commands.CheckInput{
		ClientIP: "1.2.3.4",
		CardType: "DemoCard",
		Code:     "DEMO-5678",
	})

	s.Require().NoError(err)
	s.Equal(commands.OutcomeFormatInvalid, result.Outcome)
	s.True(result.Ok)
	s.Equal(card.StatusInvalid, result.Status)
	s.Equal("Code format not recognized for this card type.", result.Message)
}

func (s *CheckUseCaseTestSuite) TestAlreadyUsed() {
	s.allowLimiter()
	s.mockLedger.EXPECT().IsUsed(gomock.Any(), card.Code("DEMO-1234-5678-9010")).Return(true, nil)
	s.expectAudit(card.StatusUsed, "***************9010")

	result, err := s.useCase.Check(context.Background(), commands.CheckInput{
		ClientIP: "1.2.3.4",
		CardType: "DemoCard",
		Code:     "DEMO-1234-5678-9010",
	})

	s.Require().NoError(err)
	s.Equal(commands.OutcomeUsed, result.Outcome)
	s.True(result.Ok)
	s.Equal("Used", result.Label)
	s.Equal("This code has already been checked and marked as used.", result.Message)
}

func (s *CheckUseCaseTestSuite) TestValidClaimsCode() {
	code := card.Code("DEMO-1234-5678-9010")
	s.allowLimiter()
	s.mockLedger.EXPECT().IsUsed(gomock.Any(), code).Return(false, nil)
	s.mockLedger.EXPECT().
		MarkUsed(gomock.Any(), card.TypeDemoCard, code, gomock.Any(), s.clock.Now().UTC()).
		Return(true, nil)
	s.expectAudit(card.StatusValid, "***************9010")

	result, err := s.useCase.Check(context.Background(), commands.CheckInput{
		ClientIP: "1.2.3.4",
		CardType: "DemoCard",
		Code:     "demo-1234-5678-9010",
	})

	s.Require().NoError(err)
	s.Equal(commands.OutcomeValid, result.Outcome)
	s.True(result.Ok)
	s.Equal("Verified", result.Label)
	s.Equal("Verification completed.", result.Message)
	s.Equal("DemoCard", result.CardType)
	s.Equal("NGN", result.Currency)
	s.Equal(card.StableBalance(code), result.Balance)
	s.Regexp(referencePattern, result.Reference)
}

func (s *CheckUseCaseTestSuite) TestLostClaimRaceReportsUsed() {
	code := card.Code("DEMO-1234-5678-9010")
	s.allowLimiter()
	s.mockLedger.EXPECT().IsUsed(gomock.Any(), code).Return(false, nil)
	s.mockLedger.EXPECT().
		MarkUsed(gomock.Any(), card.TypeDemoCard, code, gomock.Any(), gomock.Any()).
		Return(false, nil)
	s.expectAudit(card.StatusUsed, "***************9010")

	result, err := s.useCase.Check(context.Background(), commands.CheckInput{
		ClientIP: "1.2.3.4",
		CardType: "DemoCard",
		Code:     "DEMO-1234-5678-9010",
	})

	s.Require().NoError(err)
	s.Equal(commands.OutcomeUsed, result.Outcome)
	s.True(result.Ok)
}

func (s *CheckUseCaseTestSuite) TestRuleReject() {
	code := card.Code("DEMO-1234-5678-9011")
	s.allowLimiter()
	s.mockLedger.EXPECT().IsUsed(gomock.Any(), code).Return(false, nil)
	s.expectAudit(card.StatusInvalid, "***************9011")

	result, err := s.useCase.Check(context.Background(), commands.CheckInput{
		ClientIP: "1.2.3.4",
		CardType: "DemoCard",
		Code:     "DEMO-1234-5678-9011",
	})

	s.Require().NoError(err)
	s.Equal(commands.OutcomeInvalid, result.Outcome)
	s.True(result.Ok)
	s.Equal("Not recognized by rules.", result.Message)
}

func (s *CheckUseCaseTestSuite) TestLedgerLookupErrorPropagates() {
	s.allowLimiter()
	s.mockLedger.EXPECT().
		IsUsed(gomock.Any(), gomock.Any()).
		Return(false, errors.New("database connection error"))

	_, err := s.useCase.Check(context.Background(), commands.CheckInput{
		ClientIP: "1.2.3.4",
		CardType: "DemoCard",
		Code:     "DEMO-1234-5678-9010",
	})

	s.Require().Error(err)
}

func (s *CheckUseCaseTestSuite) TestAuditFailureIsAnError() {
	s.allowLimiter()
	s.mockLedger.EXPECT().IsUsed(gomock.Any(), gomock.Any()).Return(true, nil)
	s.mockAudit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("database connection error"))

	_, err := s.useCase.Check(context.Background(), commands.CheckInput{
		ClientIP: "1.2.3.4",
		CardType: "DemoCard",
		Code:     "DEMO-1234-5678-9010",
	})

	s.Require().Error(err)
	s.ErrorIs(err, commands.ErrAuditWriteFailed)
}
