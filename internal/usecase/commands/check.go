package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"giftsafer/internal/domain/card"
	"giftsafer/internal/pkg/clock"
	"giftsafer/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAuditWriteFailed = errs.New("audit write failed")

const Currency = "NGN"

// Outcome is the pipeline verdict for a single check attempt. It is
// deliberately distinct from card.Status: several outcomes share the
// audit status "invalid" but map to different HTTP responses.
type Outcome int

const (
	OutcomeRateLimited Outcome = iota
	OutcomeUnknownCardType
	OutcomeEmptyCode
	OutcomeFormatInvalid
	OutcomeUsed
	OutcomeValid
	OutcomeInvalid
)

type CheckInput struct {
	ClientIP string
	CardType string
	Code     string
}

type CheckResult struct {
	Outcome   Outcome
	Ok        bool
	Status    card.Status
	Label     string
	Message   string
	Reference string
	CheckedAt time.Time

	// Set only for OutcomeValid.
	CardType string
	Balance  int64
	Currency string
}

type CheckLogEntry struct {
	ClientIP   string
	CardType   string
	CodeMasked string
	Status     card.Status
	CheckedAt  time.Time
	Reference  string
}

type RateLimiter interface {
	Allow(ctx context.Context, identity string) bool
	Window() (max int, seconds int)
}

type UsedCodeRepository interface {
	IsUsed(ctx context.Context, code card.Code) (bool, error)
	MarkUsed(ctx context.Context, cardType card.Type, code card.Code, reference string, usedAt time.Time) (bool, error)
}

type CheckLogRepository interface {
	Append(ctx context.Context, entry CheckLogEntry) error
}

type CheckCommands interface {
	Check(ctx context.Context, input CheckInput) (*CheckResult, error)
}

type checkUseCaseImpl struct {
	limiter      RateLimiter
	usedCodeRepo UsedCodeRepository
	checkLogRepo CheckLogRepository
	clock        clock.Clock
}

func NewCheckUseCase(
	limiter RateLimiter,
	usedCodeRepo UsedCodeRepository,
	checkLogRepo CheckLogRepository,
	clock clock.Clock,
) CheckCommands {
	return &checkUseCaseImpl{
		limiter:      limiter,
		usedCodeRepo: usedCodeRepo,
		checkLogRepo: checkLogRepo,
		clock:        clock,
	}
}

// Check runs the full verification pipeline: rate limit, type and
// format validation, ledger lookup, deterministic decision, ledger
// claim, audit append. Every attempt that reaches the pipeline is
// audited, including rejected ones.
func (c *checkUseCaseImpl) Check(ctx context.Context, input CheckInput) (*CheckResult, error) {
	now := c.clock.Now().UTC()
	reference := newReference()

	if !c.limiter.Allow(ctx, input.ClientIP) {
		maxChecks, seconds := c.limiter.Window()
		result := &CheckResult{
			Outcome:   OutcomeRateLimited,
			Ok:        false,
			Status:    card.StatusRateLimited,
			Label:     "Too many requests",
			Message:   rateLimitMessage(maxChecks, seconds),
			Reference: reference,
			CheckedAt: now,
		}
		return c.finish(ctx, input, card.NewCode(input.Code), result)
	}

	cardType, err := card.ParseType(input.CardType)
	if err != nil {
		result := &CheckResult{
			Outcome:   OutcomeUnknownCardType,
			Ok:        false,
			Status:    card.StatusInvalid,
			Label:     "Invalid",
			Message:   "Choose a valid card type.",
			Reference: reference,
			CheckedAt: now,
		}
		return c.finish(ctx, input, card.NewCode(input.Code), result)
	}

	code := card.NewCode(input.Code)
	if code.IsEmpty() {
		result := &CheckResult{
			Outcome:   OutcomeEmptyCode,
			Ok:        false,
			Status:    card.StatusInvalid,
			Label:     "Invalid",
			Message:   "Enter a code.",
			Reference: reference,
			CheckedAt: now,
		}
		return c.finish(ctx, input, code, result)
	}

	if !card.MatchesFormat(cardType, code) {
		result := &CheckResult{
			Outcome:   OutcomeFormatInvalid,
			Ok:        true,
			Status:    card.StatusInvalid,
			Label:     "Invalid",
			Message:   "Code format not recognized for this card type.",
			Reference: reference,
			CheckedAt: now,
		}
		return c.finish(ctx, input, code, result)
	}

	used, err := c.usedCodeRepo.IsUsed(ctx, code)
	if err != nil {
		return nil, errs.Wrap(err, "failed to look up code in ledger")
	}

	if !used && card.Classify(code) {
		inserted, err := c.usedCodeRepo.MarkUsed(ctx, cardType, code, reference, now)
		if err != nil {
			return nil, errs.Wrap(err, "failed to claim code in ledger")
		}
		if inserted {
			result := &CheckResult{
				Outcome:   OutcomeValid,
				Ok:        true,
				Status:    card.StatusValid,
				Label:     "Verified",
				Message:   "Verification completed.",
				Reference: reference,
				CheckedAt: now,
				CardType:  cardType.String(),
				Balance:   card.StableBalance(code),
				Currency:  Currency,
			}
			return c.finish(ctx, input, code, result)
		}
		// Lost the insert race: someone else claimed the code between
		// the lookup and the claim. Report it as used.
		used = true
	}

	if used {
		result := &CheckResult{
			Outcome:   OutcomeUsed,
			Ok:        true,
			Status:    card.StatusUsed,
			Label:     "Used",
			Message:   "This code has already been checked and marked as used.",
			Reference: reference,
			CheckedAt: now,
		}
		return c.finish(ctx, input, code, result)
	}

	result := &CheckResult{
		Outcome:   OutcomeInvalid,
		Ok:        true,
		Status:    card.StatusInvalid,
		Label:     "Invalid",
		Message:   "Not recognized by rules.",
		Reference: reference,
		CheckedAt: now,
	}
	return c.finish(ctx, input, code, result)
}

// finish appends the audit entry for a decided attempt. The audit row
// is written outside any transaction with the ledger: a verdict that
// was produced must be recorded even if the ledger claim it reports on
// was a no-op.
func (c *checkUseCaseImpl) finish(ctx context.Context, input CheckInput, code card.Code, result *CheckResult) (*CheckResult, error) {
	entry := CheckLogEntry{
		ClientIP:   input.ClientIP,
		CardType:   input.CardType,
		CodeMasked: code.Masked(),
		Status:     result.Status,
		CheckedAt:  result.CheckedAt,
		Reference:  result.Reference,
	}

	if err := c.checkLogRepo.Append(ctx, entry); err != nil {
		slog.Error("failed to append check log",
			slog.String("reference", result.Reference),
			slog.String("status", result.Status.String()),
		)
		return nil, errs.Mark(err, ErrAuditWriteFailed)
	}

	return result, nil
}

func rateLimitMessage(maxChecks, seconds int) string {
	return fmt.Sprintf("Rate limit: max %d checks per %ds.", maxChecks, seconds)
}

// newReference derives a short opaque receipt ID from a random UUID.
func newReference() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:])[:10])
}
