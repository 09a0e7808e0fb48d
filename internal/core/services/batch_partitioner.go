package services

import (
	"github.com/contalibre/contalibre_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Per-transaction detail-line cost estimates used for partitioning. These
// are deliberate conservative constants: batches must be computed before
// account grouping is known, so the partitioner never tries to predict the
// exact emitted line count.
const (
	aggregatedLineCost = 2 // operational + counterparty share of one txn
	detailedLineCost   = 3 // operational, tax, counterparty
)

// BatchPartitioner splits an ordered transaction list into batches that
// respect the downstream ledger's size limits. It is a first-fit streaming
// partition, not an optimal bin-packing: determinism and O(n) cost matter
// more than pack density, and batch order equals input order.
type BatchPartitioner struct{}

// NewBatchPartitioner creates a BatchPartitioner.
func NewBatchPartitioner() *BatchPartitioner {
	return &BatchPartitioner{}
}

// Partition performs a single forward pass over txns. Before a transaction
// is added to the current batch the three limits are checked; if any would
// be exceeded the batch is closed and the transaction opens the next one.
// A non-positive limit means unbounded. The final non-empty batch is always
// flushed; no batch is ever empty.
func (p *BatchPartitioner) Partition(txns []domain.SourceTransaction, limits domain.BatchLimits, detailed bool) [][]domain.SourceTransaction {
	if len(txns) == 0 {
		return nil
	}

	lineCost := aggregatedLineCost
	if detailed {
		lineCost = detailedLineCost
	}

	var batches [][]domain.SourceTransaction
	var current []domain.SourceTransaction
	lines := 0
	amount := decimal.Zero

	for _, txn := range txns {
		if len(current) > 0 && p.wouldExceed(limits, len(current), lines, amount, lineCost, txn.TotalAmount) {
			batches = append(batches, current)
			current = nil
			lines = 0
			amount = decimal.Zero
		}
		current = append(current, txn)
		lines += lineCost
		amount = amount.Add(txn.TotalAmount)
	}
	return append(batches, current)
}

func (p *BatchPartitioner) wouldExceed(limits domain.BatchLimits, count, lines int, amount decimal.Decimal, lineCost int, txnAmount decimal.Decimal) bool {
	if limits.MaxTransactions > 0 && count+1 > limits.MaxTransactions {
		return true
	}
	if limits.MaxDetailLines > 0 && lines+lineCost > limits.MaxDetailLines {
		return true
	}
	if limits.MaxAmount.IsPositive() && amount.Add(txnAmount).GreaterThan(limits.MaxAmount) {
		return true
	}
	return false
}
