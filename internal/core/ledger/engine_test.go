package ledger_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const investorID = "inv_123"

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 10, 0, 0, 0, time.UTC)
}

func txn(id string, txType domain.TransactionType, amount int64, date time.Time, seq int64) domain.Transaction {
	return domain.Transaction{
		TransactionID:   id,
		InvestorID:      investorID,
		TransactionType: txType,
		Amount:          decimal.NewFromInt(amount),
		Date:            date,
		Sequence:        seq,
	}
}

func assertDecimal(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(got), "want %d, got %s %v", want, got.String(), msgAndArgs)
}

func scenario() []domain.Transaction {
	return []domain.Transaction{
		txn("t1", domain.Credit, 5000, day(1), 1),
		txn("t2", domain.Debit, 2000, day(5), 2),
		txn("t3", domain.Credit, 1000, day(10), 3),
	}
}

func TestComputeBalance_Scenario(t *testing.T) {
	balance, err := ledger.ComputeBalance(scenario())
	require.NoError(t, err)

	assertDecimal(t, 6000, balance.CreditTotal)
	assertDecimal(t, 2000, balance.DebitTotal)
	assertDecimal(t, 4000, balance.NetBalance)
}

func TestComputeBalance_Empty(t *testing.T) {
	for _, input := range [][]domain.Transaction{nil, {}} {
		balance, err := ledger.ComputeBalance(input)
		require.NoError(t, err)
		assertDecimal(t, 0, balance.CreditTotal)
		assertDecimal(t, 0, balance.DebitTotal)
		assertDecimal(t, 0, balance.NetBalance)
	}
}

func TestComputeBalance_MixedInvestors(t *testing.T) {
	txns := scenario()
	txns[1].InvestorID = "someone_else"

	_, err := ledger.ComputeBalance(txns)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = ledger.ProjectStatement(txns)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestComputeBalance_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		txns := randomLedger(rng, 1+rng.Intn(40))
		want, err := ledger.ComputeBalance(txns)
		require.NoError(t, err)

		shuffled := make([]domain.Transaction, len(txns))
		copy(shuffled, txns)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got, err := ledger.ComputeBalance(shuffled)
		require.NoError(t, err)
		assert.True(t, want.NetBalance.Equal(got.NetBalance), "round %d", round)
		assert.True(t, want.CreditTotal.Equal(got.CreditTotal), "round %d", round)
		assert.True(t, want.DebitTotal.Equal(got.DebitTotal), "round %d", round)
	}
}

func TestComputeBalance_Idempotent(t *testing.T) {
	txns := scenario()
	first, err := ledger.ComputeBalance(txns)
	require.NoError(t, err)
	second, err := ledger.ComputeBalance(txns)
	require.NoError(t, err)
	assert.True(t, first.NetBalance.Equal(second.NetBalance))
}

func TestProjectStatement_Scenario(t *testing.T) {
	rows, err := ledger.ProjectStatement(scenario())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "t1", rows[0].TransactionID)
	assertDecimal(t, 5000, rows[0].CrAmount)
	assertDecimal(t, 0, rows[0].DrAmount)

	assert.Equal(t, "t2", rows[1].TransactionID)
	assertDecimal(t, 0, rows[1].CrAmount)
	assertDecimal(t, 2000, rows[1].DrAmount)

	assert.Equal(t, "t3", rows[2].TransactionID)
	assertDecimal(t, 1000, rows[2].CrAmount)
	assertDecimal(t, 0, rows[2].DrAmount)
}

func TestProjectStatement_SortsByDateThenInsertion(t *testing.T) {
	txns := []domain.Transaction{
		txn("late", domain.Credit, 10, day(9), 1),
		txn("tie-b", domain.Credit, 20, day(3), 5),
		txn("tie-a", domain.Debit, 5, day(3), 4),
		txn("early", domain.Credit, 30, day(1), 9),
	}

	rows, err := ledger.ProjectStatement(txns)
	require.NoError(t, err)

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.TransactionID
	}
	assert.Equal(t, []string{"early", "tie-a", "tie-b", "late"}, ids)
	// input untouched
	assert.Equal(t, "late", txns[0].TransactionID)
}

func TestProjectStatement_StableForUnsequencedTies(t *testing.T) {
	txns := []domain.Transaction{
		txn("first", domain.Credit, 10, day(2), 0),
		txn("second", domain.Credit, 20, day(2), 0),
		txn("third", domain.Debit, 5, day(2), 0),
	}

	rows, err := ledger.ProjectStatement(txns)
	require.NoError(t, err)
	assert.Equal(t, "first", rows[0].TransactionID)
	assert.Equal(t, "second", rows[1].TransactionID)
	assert.Equal(t, "third", rows[2].TransactionID)
}

func TestProjectStatement_Empty(t *testing.T) {
	rows, err := ledger.ProjectStatement(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestProjectStatement_UnknownType(t *testing.T) {
	txns := []domain.Transaction{txn("t1", domain.TransactionType("refund"), 10, day(1), 1)}

	_, err := ledger.ProjectStatement(txns)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestComputeBalance_UnknownType(t *testing.T) {
	txns := []domain.Transaction{
		txn("t1", domain.Credit, 100, day(1), 1),
		txn("t2", domain.TransactionType("refund"), 10, day(2), 2),
	}

	_, err := ledger.ComputeBalance(txns)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	// Both engine operations reject the same input.
	_, err = ledger.ProjectStatement(txns)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestLastSequence(t *testing.T) {
	assert.Equal(t, int64(0), ledger.LastSequence(nil))

	txns := []domain.Transaction{
		txn("t1", domain.Credit, 100, day(3), 7),
		txn("t2", domain.Debit, 50, day(1), 9),
		txn("t3", domain.Credit, 10, day(2), 8),
	}
	assert.Equal(t, int64(9), ledger.LastSequence(txns))
}

func TestProjectStatement_ColumnsMatchBalance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		txns := randomLedger(rng, rng.Intn(30))

		balance, err := ledger.ComputeBalance(txns)
		require.NoError(t, err)
		rows, err := ledger.ProjectStatement(txns)
		require.NoError(t, err)
		require.Len(t, rows, len(txns))

		cr, dr := decimal.Zero, decimal.Zero
		for _, row := range rows {
			// exactly one side is populated
			assert.True(t, row.CrAmount.IsZero() != row.DrAmount.IsZero(), "round %d row %s", round, row.TransactionID)
			cr = cr.Add(row.CrAmount)
			dr = dr.Add(row.DrAmount)
		}
		assert.True(t, cr.Equal(balance.CreditTotal), "round %d", round)
		assert.True(t, dr.Equal(balance.DebitTotal), "round %d", round)
	}
}

func TestApplyDelta_MatchesRecompute(t *testing.T) {
	txns := scenario()
	incremental := domain.ZeroBalance()
	for _, tx := range txns {
		incremental = ledger.ApplyDelta(incremental, tx)
	}

	full, err := ledger.ComputeBalance(txns)
	require.NoError(t, err)
	assert.True(t, full.NetBalance.Equal(incremental.NetBalance))
	assert.True(t, full.CreditTotal.Equal(incremental.CreditTotal))
	assert.True(t, full.DebitTotal.Equal(incremental.DebitTotal))
}

func TestChronological_DoesNotAlias(t *testing.T) {
	txns := scenario()
	ordered := ledger.Chronological(txns)
	ordered[0].Notes = "changed"
	assert.Empty(t, txns[0].Notes)
}

// randomLedger builds a plausible history: debits never exceed the running balance.
func randomLedger(rng *rand.Rand, n int) []domain.Transaction {
	txns := make([]domain.Transaction, 0, n)
	net := int64(0)
	for i := 0; i < n; i++ {
		date := day(1).Add(time.Duration(rng.Intn(72)) * time.Hour)
		if net > 0 && rng.Intn(3) == 0 {
			amount := 1 + rng.Int63n(net)
			net -= amount
			txns = append(txns, txn("d"+string(rune('a'+i%26)), domain.Debit, amount, date, int64(i+1)))
			continue
		}
		amount := 1 + rng.Int63n(10000)
		net += amount
		txns = append(txns, txn("c"+string(rune('a'+i%26)), domain.Credit, amount, date, int64(i+1)))
	}
	return txns
}
