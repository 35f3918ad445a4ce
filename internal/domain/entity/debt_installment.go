package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// Installment count limits.
const (
	MinInstallments = 1
	MaxInstallments = 360
)

// DebtInstallment is one scheduled slice of a debt.
type DebtInstallment struct {
	ID         uuid.UUID
	DebtID     uuid.UUID
	Number     int
	Amount     decimal.Decimal
	PaidAmount decimal.Decimal
	DueDate    time.Time
	PaidAt     *time.Time
}

// IsPaid reports whether the installment is fully covered.
func (i *DebtInstallment) IsPaid() bool {
	return i.PaidAmount.GreaterThanOrEqual(i.Amount)
}

// Outstanding returns what is left to pay on the installment.
func (i *DebtInstallment) Outstanding() decimal.Decimal {
	return valueobject.ClampNonNegative(i.Amount.Sub(i.PaidAmount))
}

// BuildInstallments splits total into count monthly installments starting one month after
// start. Amounts are rounded down to cents and the last installment absorbs the remainder.
func BuildInstallments(debtID uuid.UUID, total decimal.Decimal, count int, start time.Time) []*DebtInstallment {
	if count < MinInstallments {
		return nil
	}

	share := total.Div(decimal.NewFromInt(int64(count))).RoundDown(2)
	installments := make([]*DebtInstallment, 0, count)
	allocated := decimal.Zero

	for n := 1; n <= count; n++ {
		amount := share
		if n == count {
			amount = total.Sub(allocated)
		}
		allocated = allocated.Add(amount)

		installments = append(installments, &DebtInstallment{
			ID:         uuid.New(),
			DebtID:     debtID,
			Number:     n,
			Amount:     amount,
			PaidAmount: decimal.Zero,
			DueDate:    valueobject.AddMonths(TruncateToDay(start), n),
		})
	}

	return installments
}

// AllocateToInstallments spreads amount over unpaid installments in order and returns the
// installments that changed. Installments must be sorted by Number.
func AllocateToInstallments(installments []*DebtInstallment, amount decimal.Decimal, paidAt time.Time) []*DebtInstallment {
	changed := make([]*DebtInstallment, 0)
	left := amount

	for _, inst := range installments {
		if !left.IsPositive() {
			break
		}
		outstanding := inst.Outstanding()
		if !outstanding.IsPositive() {
			continue
		}

		portion := decimal.Min(left, outstanding)
		inst.PaidAmount = inst.PaidAmount.Add(portion)
		left = left.Sub(portion)

		if inst.IsPaid() && inst.PaidAt == nil {
			at := paidAt.UTC()
			inst.PaidAt = &at
		}
		changed = append(changed, inst)
	}

	return changed
}

// DeallocateFromInstallments removes amount from installments starting with the latest
// paid one and returns the installments that changed.
func DeallocateFromInstallments(installments []*DebtInstallment, amount decimal.Decimal) []*DebtInstallment {
	changed := make([]*DebtInstallment, 0)
	left := amount

	for i := len(installments) - 1; i >= 0 && left.IsPositive(); i-- {
		inst := installments[i]
		if !inst.PaidAmount.IsPositive() {
			continue
		}

		portion := decimal.Min(left, inst.PaidAmount)
		inst.PaidAmount = inst.PaidAmount.Sub(portion)
		left = left.Sub(portion)

		if !inst.IsPaid() {
			inst.PaidAt = nil
		}
		changed = append(changed, inst)
	}

	return changed
}

// InstallmentSummary holds installment statistics for a debt.
type InstallmentSummary struct {
	Total       int
	Paid        int
	NextNumber  *int
	NextDueDate *time.Time
	NextAmount  decimal.Decimal
}

// SummarizeInstallments computes statistics over installments sorted by Number.
func SummarizeInstallments(installments []*DebtInstallment) InstallmentSummary {
	summary := InstallmentSummary{
		Total:      len(installments),
		NextAmount: decimal.Zero,
	}

	for _, inst := range installments {
		if inst.IsPaid() {
			summary.Paid++
			continue
		}
		if summary.NextDueDate == nil {
			number := inst.Number
			due := inst.DueDate
			summary.NextNumber = &number
			summary.NextDueDate = &due
			summary.NextAmount = inst.Outstanding()
		}
	}

	return summary
}
