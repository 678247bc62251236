package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/SscSPs/share_registry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	"github.com/SscSPs/share_registry_app/internal/models"
	"github.com/SscSPs/share_registry_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
	shareholderRepo portsrepo.ShareholderLedgerFacade
}

// newPgxTransactionRepository creates a new repository for the share ledger.
// It needs the shareholder facade to lock and mutate balances inside its own
// transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool, shareholderRepo portsrepo.ShareholderLedgerFacade) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository:  BaseRepository{Pool: pool},
		shareholderRepo: shareholderRepo,
	}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.ShareTransaction) models.ShareTransaction {
	return models.ShareTransaction{
		TransactionID:   d.TransactionID,
		TransactionDate: d.TransactionDate,
		SellerTaxID:     d.SellerTaxID,
		BuyerTaxID:      d.BuyerTaxID,
		Amount:          d.Amount,
		Reason:          d.Reason,
		Status:          models.TransactionStatus(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainTransaction(m models.ShareTransaction) domain.ShareTransaction {
	return domain.ShareTransaction{
		TransactionID:   m.TransactionID,
		TransactionDate: m.TransactionDate,
		SellerTaxID:     m.SellerTaxID,
		BuyerTaxID:      m.BuyerTaxID,
		Amount:          m.Amount,
		Reason:          m.Reason,
		Status:          domain.TransactionStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const transactionColumns = `transaction_id, transaction_date, seller_tax_id, buyer_tax_id, amount, reason, status, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.ShareTransaction, error) {
	var m models.ShareTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.TransactionDate,
		&m.SellerTaxID,
		&m.BuyerTaxID,
		&m.Amount,
		&m.Reason,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertTransaction(ctx context.Context, db execer, m models.ShareTransaction) error {
	query := `
		INSERT INTO share_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := db.Exec(ctx, query,
		m.TransactionID,
		m.TransactionDate,
		m.SellerTaxID,
		m.BuyerTaxID,
		m.Amount,
		m.Reason,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// AppendIntent inserts a PENDING ledger row. No balances are touched here;
// a crash after this point leaves a row the recovery sweep will abandon.
func (r *PgxTransactionRepository) AppendIntent(ctx context.Context, txn domain.ShareTransaction) error {
	m := toModelTransaction(txn)
	m.Status = models.TxnPending
	return withRetry(ctx, func(ctx context.Context) error {
		return insertTransaction(ctx, r.Pool, m)
	})
}

// ApplyTransfer runs the commit phase of the intent/commit protocol. Seller
// and buyer rows are locked in a deterministic order, the seller balance is
// re-validated under the lock, both deltas are applied and the ledger row
// flips to COMMITTED, all in one database transaction.
func (r *PgxTransactionRepository) ApplyTransfer(ctx context.Context, transactionID, sellerTaxID, buyerTaxID string, amount int64, actor string, now time.Time) error {
	return withRetry(ctx, func(ctx context.Context) error {
		tx, err := r.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = r.Rollback(ctx, tx) }()

		// Sorted lock order keeps concurrent transfers between the same
		// pair from deadlocking.
		lockIDs := []string{sellerTaxID, buyerTaxID}
		sort.Strings(lockIDs)

		holders, err := r.shareholderRepo.FindShareholdersForUpdate(ctx, tx, lockIDs)
		if err != nil {
			return err
		}

		seller := holders[sellerTaxID]
		if seller.SharesHeld < amount {
			return fmt.Errorf("%w: seller %s holds %d, transfer needs %d",
				apperrors.ErrInsufficientShares, sellerTaxID, seller.SharesHeld, amount)
		}

		deltas := map[string]int64{
			sellerTaxID: -amount,
			buyerTaxID:  amount,
		}
		if err := r.shareholderRepo.ApplyShareDeltasInTx(ctx, tx, deltas, actor, now); err != nil {
			return err
		}

		ct, err := tx.Exec(ctx, `
			UPDATE share_transactions
			SET status = $2, last_updated_at = $3, last_updated_by = $4
			WHERE transaction_id = $1 AND status = $5;
		`, transactionID, models.TxnCommitted, now, actor, models.TxnPending)
		if err != nil {
			return fmt.Errorf("failed to commit transaction %s: %w", transactionID, err)
		}
		if ct.RowsAffected() == 0 {
			// The intent is gone or already resolved; applying deltas on top
			// of it would double-move shares.
			return fmt.Errorf("%w: transaction %s is not pending", apperrors.ErrInconsistent, transactionID)
		}

		return r.Commit(ctx, tx)
	})
}

// SaveIssuance atomically credits the buyer and appends a COMMITTED issuance
// row in a single database transaction.
func (r *PgxTransactionRepository) SaveIssuance(ctx context.Context, txn domain.ShareTransaction) error {
	m := toModelTransaction(txn)
	m.Status = models.TxnCommitted

	return withRetry(ctx, func(ctx context.Context) error {
		tx, err := r.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = r.Rollback(ctx, tx) }()

		if _, err := r.shareholderRepo.FindShareholdersForUpdate(ctx, tx, []string{txn.BuyerTaxID}); err != nil {
			return err
		}
		deltas := map[string]int64{txn.BuyerTaxID: txn.Amount}
		if err := r.shareholderRepo.ApplyShareDeltasInTx(ctx, tx, deltas, txn.CreatedBy, txn.CreatedAt); err != nil {
			return err
		}
		if err := insertTransaction(ctx, tx, m); err != nil {
			return err
		}

		return r.Commit(ctx, tx)
	})
}

// MarkTransactionFailed abandons an intent. Only PENDING rows transition;
// terminal rows are left untouched.
func (r *PgxTransactionRepository) MarkTransactionFailed(ctx context.Context, transactionID, actor string, now time.Time) error {
	ct, err := r.Pool.Exec(ctx, `
		UPDATE share_transactions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1 AND status = $5;
	`, transactionID, models.TxnFailed, now, actor, models.TxnPending)
	if err != nil {
		return fmt.Errorf("failed to mark transaction %s failed: %w", transactionID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: pending transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

// FindTransactionByID retrieves one ledger row regardless of status.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.ShareTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM share_transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	d := toDomainTransaction(m)
	return &d, nil
}

// ListCommittedTransactions pages through the visible ledger history, newest
// first, using a keyset cursor over (transaction_date, created_at).
func (r *PgxTransactionRepository) ListCommittedTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.ShareTransaction, *string, error) {
	args := []any{models.TxnCommitted, limit + 1}
	query := `
		SELECT ` + transactionColumns + `
		FROM share_transactions
		WHERE status = $1
	`
	if nextToken != nil && *nextToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (transaction_date, created_at) < ($3, $4)`
		args = append(args, txnDate, createdAt)
	}
	query += `
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var result []domain.ShareTransaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		result = append(result, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newToken *string
	if len(result) > limit {
		result = result[:limit]
		last := result[len(result)-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		newToken = &token
	}
	return result, newToken, nil
}

// MarkStalePendingFailed flips PENDING intents older than the cutoff to
// FAILED and returns how many were repaired.
func (r *PgxTransactionRepository) MarkStalePendingFailed(ctx context.Context, cutoff time.Time, actor string, now time.Time) (int64, error) {
	ct, err := r.Pool.Exec(ctx, `
		UPDATE share_transactions
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE status = $4 AND created_at < $5;
	`, models.TxnFailed, now, actor, models.TxnPending, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep stale pending transactions: %w", err)
	}
	return ct.RowsAffected(), nil
}
