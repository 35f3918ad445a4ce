// Package worker runs the periodic maintenance sweep of the ledger.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-tracker/ledger/internal/application/usecase/recurring"
	"github.com/finance-tracker/ledger/internal/application/usecase/sweep"
)

// SweepConfig holds configuration for the sweep worker.
type SweepConfig struct {
	Interval      time.Duration
	BatchSize     int
	ChargeEnabled bool // Bill due recurring expenses on each run
}

// DefaultSweepConfig returns the default sweep configuration.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Interval:      time.Hour,
		BatchSize:     100,
		ChargeEnabled: true,
	}
}

// SweepWorker periodically flags overdue items, charges due recurring expenses and
// sends overdue reminders.
type SweepWorker struct {
	refreshOverdue *sweep.RefreshOverdueUseCase
	chargeDue      *recurring.ChargeDueExpensesUseCase
	sendReminders  *sweep.SendRemindersUseCase // nil when email is disabled
	config         SweepConfig
}

// NewSweepWorker creates a new sweep worker. sendReminders may be nil.
func NewSweepWorker(
	refreshOverdue *sweep.RefreshOverdueUseCase,
	chargeDue *recurring.ChargeDueExpensesUseCase,
	sendReminders *sweep.SendRemindersUseCase,
	config SweepConfig,
) *SweepWorker {
	return &SweepWorker{
		refreshOverdue: refreshOverdue,
		chargeDue:      chargeDue,
		sendReminders:  sendReminders,
		config:         config,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *SweepWorker) Start(ctx context.Context) {
	slog.Info("Sweep worker started",
		"interval", w.config.Interval,
		"batch_size", w.config.BatchSize,
		"charge_enabled", w.config.ChargeEnabled,
		"reminders_enabled", w.sendReminders != nil,
	)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Sweep worker shutting down")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep. A failing step is logged and does not stop the
// steps after it.
func (w *SweepWorker) RunOnce(ctx context.Context) {
	if w.config.ChargeEnabled && w.chargeDue != nil {
		output, err := w.chargeDue.Execute(ctx, recurring.ChargeDueExpensesInput{
			BatchSize: w.config.BatchSize,
		})
		if err != nil {
			slog.Error("Failed to charge due recurring expenses", "error", err)
		} else if output.Charged > 0 || output.Failed > 0 {
			slog.Info("Charged recurring expenses", "charged", output.Charged, "failed", output.Failed)
		}
	}

	if ctx.Err() != nil {
		return
	}

	refreshed, err := w.refreshOverdue.Execute(ctx, sweep.RefreshOverdueInput{
		BatchSize: w.config.BatchSize,
	})
	if err != nil {
		slog.Error("Failed to refresh overdue items", "error", err)
	} else if refreshed.PendingPayments+refreshed.Debts+refreshed.Loans > 0 {
		slog.Info("Flagged overdue items",
			"pending_payments", refreshed.PendingPayments,
			"debts", refreshed.Debts,
			"loans", refreshed.Loans,
		)
	}

	if w.sendReminders == nil || ctx.Err() != nil {
		return
	}

	reminders, err := w.sendReminders.Execute(ctx, sweep.SendRemindersInput{
		BatchSize: w.config.BatchSize,
	})
	if err != nil {
		slog.Error("Failed to send overdue reminders", "error", err)
		return
	}
	if reminders.Sent+reminders.Dropped+reminders.Retried > 0 {
		slog.Info("Processed overdue reminders",
			"sent", reminders.Sent,
			"dropped", reminders.Dropped,
			"retried", reminders.Retried,
		)
	}
}
