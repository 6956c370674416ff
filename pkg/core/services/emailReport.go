package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/roomies/pkg/clients/gmailclient"
	"github.com/jakechorley/roomies/pkg/core/solver"
	"github.com/jakechorley/roomies/pkg/report"
)

// EmailSender sends a single email
type EmailSender interface {
	SendEmail(ctx context.Context, email gmailclient.Email) error
}

// EmailOptions addresses the report email
type EmailOptions struct {
	From        string
	To          []string
	EventName   string
	GeneratedAt time.Time
}

// EmailSubject is the subject line for a report email
func EmailSubject(eventName string) string {
	if eventName == "" {
		return "Room assignments"
	}
	return eventName + ": room assignments"
}

// EmailReport renders the HTML report and sends it to the recipients
func EmailReport(ctx context.Context, sender EmailSender, logger *zap.Logger, result *solver.SolveResult, opts EmailOptions) error {
	if len(opts.To) == 0 {
		return errors.New("no email recipients configured")
	}

	body, err := report.HTML(result, report.Options{EventName: opts.EventName, GeneratedAt: opts.GeneratedAt})
	if err != nil {
		return err
	}

	email := gmailclient.Email{
		From:     opts.From,
		To:       opts.To,
		Subject:  EmailSubject(opts.EventName),
		HTMLBody: string(body),
	}

	logger.Debug("Sending report email", zap.Strings("to", opts.To), zap.String("subject", email.Subject))
	if err := sender.SendEmail(ctx, email); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}

	logger.Info("Sent report email", zap.Int("recipients", len(opts.To)))
	return nil
}
