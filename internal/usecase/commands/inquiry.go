package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"giftsafer/internal/pkg/clock"
	"giftsafer/internal/pkg/datauri"
	"giftsafer/internal/pkg/errs"
)

var (
	ErrMissingInquiryField = errs.New("missing inquiry field")
	ErrInvalidImageData    = errs.New("invalid image data")
	ErrDispatchFailed      = errs.New("mail dispatch failed")
)

type Attachment struct {
	Filename string
	MIMEType string
	Data     []byte
}

type Notifier interface {
	Send(ctx context.Context, subject, body string, attachments []Attachment) error
}

type VerifyRequestInput struct {
	Brand string
	Code  string
	Email string
}

type ScanUploadInput struct {
	Brand string
	Email string
	Front string
	Back  string
	Mode  string
}

type InquiryCommands interface {
	RequestManualVerification(ctx context.Context, input VerifyRequestInput) error
	SubmitScan(ctx context.Context, input ScanUploadInput) error
}

type inquiryUseCaseImpl struct {
	notifier Notifier
	clock    clock.Clock
}

func NewInquiryUseCase(notifier Notifier, clock clock.Clock) InquiryCommands {
	return &inquiryUseCaseImpl{
		notifier: notifier,
		clock:    clock,
	}
}

// RequestManualVerification forwards a card the automated rules could
// not settle to the operations inbox. The code is sent unmasked: the
// operator needs it to check manually.
func (u *inquiryUseCaseImpl) RequestManualVerification(ctx context.Context, input VerifyRequestInput) error {
	brand := strings.TrimSpace(input.Brand)
	code := strings.TrimSpace(input.Code)
	email := strings.TrimSpace(input.Email)
	if brand == "" || code == "" || email == "" {
		return ErrMissingInquiryField
	}

	subject := fmt.Sprintf("Gift Safer Verification Request - %s", brand)
	body := fmt.Sprintf(
		"Verification request received.\n\nBrand: %s\nCode: %s\nCustomer Email: %s\nReceived At: %s\n",
		brand,
		code,
		email,
		u.receivedAt(),
	)

	if err := u.notifier.Send(ctx, subject, body, nil); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to dispatch verification request"), ErrDispatchFailed)
	}
	return nil
}

// SubmitScan forwards front/back card photos as attachments.
func (u *inquiryUseCaseImpl) SubmitScan(ctx context.Context, input ScanUploadInput) error {
	brand := strings.TrimSpace(input.Brand)
	email := strings.TrimSpace(input.Email)
	mode := strings.TrimSpace(input.Mode)
	if mode == "" {
		mode = "scan"
	}
	if brand == "" || email == "" || input.Front == "" || input.Back == "" {
		return ErrMissingInquiryField
	}

	front, err := datauri.ParseImage(input.Front)
	if err != nil {
		return errs.Mark(err, ErrInvalidImageData)
	}
	back, err := datauri.ParseImage(input.Back)
	if err != nil {
		return errs.Mark(err, ErrInvalidImageData)
	}

	subject := fmt.Sprintf("Gift Safer %s Upload - %s", capitalize(mode), brand)
	body := fmt.Sprintf(
		"Scan upload received.\n\nMode: %s\nBrand: %s\nCustomer Email: %s\nReceived At: %s\n",
		mode,
		brand,
		email,
		u.receivedAt(),
	)

	prefix := strings.ReplaceAll(strings.ToLower(brand), " ", "_")
	attachments := []Attachment{
		{Filename: prefix + "_front." + front.Ext(), MIMEType: front.MIMEType, Data: front.Data},
		{Filename: prefix + "_back." + back.Ext(), MIMEType: back.MIMEType, Data: back.Data},
	}

	if err := u.notifier.Send(ctx, subject, body, attachments); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to dispatch scan upload"), ErrDispatchFailed)
	}
	return nil
}

func (u *inquiryUseCaseImpl) receivedAt() string {
	return u.clock.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
