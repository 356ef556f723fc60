package service

import (
	"context"
	"fmt"
	"strings"

	"foodcart/order-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

// InquiryService stores contact messages and job applications under the same
// write policy as orders.
type InquiryService struct {
	repository InquiryRepository
	strict     bool
	log        logrus.FieldLogger
}

func NewInquiryService(repository InquiryRepository, strict bool, log logrus.FieldLogger) *InquiryService {
	return &InquiryService{repository: repository, strict: strict, log: log}
}

func (s *InquiryService) SubmitContact(ctx context.Context, msg domain.ContactMessage) (domain.SubmitResult, error) {
	if err := requireFields(map[string]string{
		"name":    msg.Name,
		"email":   msg.Email,
		"message": msg.Message,
	}, "name", "email", "message"); err != nil {
		return domain.SubmitResult{}, err
	}
	if s.repository == nil {
		return domain.SubmitResult{Success: true, Demo: true}, nil
	}
	return s.result(ctx, "contact message", s.repository.InsertContactMessage(ctx, msg))
}

func (s *InquiryService) SubmitJobApplication(ctx context.Context, app domain.JobApplication) (domain.SubmitResult, error) {
	if err := requireFields(map[string]string{
		"name":     app.Name,
		"email":    app.Email,
		"position": app.Position,
	}, "name", "email", "position"); err != nil {
		return domain.SubmitResult{}, err
	}
	if s.repository == nil {
		return domain.SubmitResult{Success: true, Demo: true}, nil
	}
	return s.result(ctx, "job application", s.repository.InsertJobApplication(ctx, app))
}

func (s *InquiryService) result(ctx context.Context, kind string, err error) (domain.SubmitResult, error) {
	if err == nil {
		return domain.SubmitResult{Success: true}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.SubmitResult{}, ctxErr
	}
	if s.strict {
		return domain.SubmitResult{}, fmt.Errorf("%w: %s: %v", ErrSubmitFailed, kind, err)
	}
	s.log.WithError(err).Warnf("%s insert failed, reporting demo success", kind)
	return domain.SubmitResult{Success: true, Demo: true}, nil
}

// requireFields checks fields in the given order so the first missing one is
// reported.
func requireFields(values map[string]string, order ...string) error {
	for _, field := range order {
		if strings.TrimSpace(values[field]) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
		}
	}
	if email, ok := values["email"]; ok && !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}
	return nil
}
