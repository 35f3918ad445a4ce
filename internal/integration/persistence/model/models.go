package model

// All returns every model managed by auto-migration.
func All() []any {
	return []any{
		&AccountModel{},
		&CategoryModel{},
		&TransactionModel{},
		&DebtModel{},
		&DebtInstallmentModel{},
		&LoanModel{},
		&SavingGoalModel{},
		&RecurringExpenseModel{},
		&PendingPaymentModel{},
	}
}
