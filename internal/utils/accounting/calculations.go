package accounting

import (
	"fmt"

	"github.com/contalibre/contalibre_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum debit/credit discrepancy accepted for a
// synthesized entry. The downstream ledger stores amounts with two decimals,
// so anything beyond a rounding cent is a synthesis bug.
var BalanceTolerance = decimal.RequireFromString("0.01")

// SumDebits returns the sum of all debit amounts across the entry's lines.
func SumDebits(lines []domain.JournalDetailLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Debit)
	}
	return sum
}

// SumCredits returns the sum of all credit amounts across the entry's lines.
func SumCredits(lines []domain.JournalDetailLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Credit)
	}
	return sum
}

// BalanceDiscrepancy returns abs(sum(debits) - sum(credits)) for an entry.
func BalanceDiscrepancy(entry domain.JournalEntry) decimal.Decimal {
	return SumDebits(entry.Lines).Sub(SumCredits(entry.Lines)).Abs()
}

// AuditBalance checks the double-entry invariant for a synthesized entry.
// Lines must each carry exactly one non-negative side, and the debit and
// credit totals must agree within BalanceTolerance.
func AuditBalance(entry domain.JournalEntry) error {
	for i, line := range entry.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("line %d of entry %s has a negative amount", i+1, entry.ReferenceCode)
		}
		if !line.Debit.IsZero() && !line.Credit.IsZero() {
			return fmt.Errorf("line %d of entry %s carries both a debit and a credit", i+1, entry.ReferenceCode)
		}
		if line.Debit.IsZero() && line.Credit.IsZero() {
			return fmt.Errorf("line %d of entry %s is a zero-amount line", i+1, entry.ReferenceCode)
		}
	}

	debits := SumDebits(entry.Lines)
	credits := SumCredits(entry.Lines)
	if debits.Sub(credits).Abs().GreaterThan(BalanceTolerance) {
		return fmt.Errorf("entry %s does not balance: debits sum is %s and credits sum is %s",
			entry.ReferenceCode, debits.String(), credits.String())
	}
	return nil
}
