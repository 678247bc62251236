package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/SscSPs/share_registry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	"github.com/SscSPs/share_registry_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransferRequestRepository struct {
	BaseRepository
	shareholderRepo portsrepo.ShareholderLedgerFacade
}

// newPgxTransferRequestRepository creates a new repository for transfer
// requests. The shareholder facade supplies the row lock for strict
// reservation checks.
func newPgxTransferRequestRepository(pool *pgxpool.Pool, shareholderRepo portsrepo.ShareholderLedgerFacade) portsrepo.TransferRequestRepository {
	return &PgxTransferRequestRepository{
		BaseRepository:  BaseRepository{Pool: pool},
		shareholderRepo: shareholderRepo,
	}
}

var _ portsrepo.TransferRequestRepository = (*PgxTransferRequestRepository)(nil)

func toModelRequest(d domain.TransferRequest) models.TransferRequest {
	return models.TransferRequest{
		RequestID:      d.RequestID,
		RequestDate:    d.RequestDate,
		ApplicantTaxID: d.ApplicantTaxID,
		TargetTaxID:    d.TargetTaxID,
		Amount:         d.Amount,
		Status:         models.RequestStatus(d.Status),
		Reason:         d.Reason,
		RejectReason:   d.RejectReason,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainRequest(m models.TransferRequest) domain.TransferRequest {
	return domain.TransferRequest{
		RequestID:      m.RequestID,
		RequestDate:    m.RequestDate,
		ApplicantTaxID: m.ApplicantTaxID,
		TargetTaxID:    m.TargetTaxID,
		Amount:         m.Amount,
		Status:         domain.RequestStatus(m.Status),
		Reason:         m.Reason,
		RejectReason:   m.RejectReason,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const requestColumns = `request_id, request_date, applicant_tax_id, target_tax_id, amount, status, reason, reject_reason, created_at, created_by, last_updated_at, last_updated_by`

func scanRequest(row pgx.Row) (models.TransferRequest, error) {
	var m models.TransferRequest
	err := row.Scan(
		&m.RequestID,
		&m.RequestDate,
		&m.ApplicantTaxID,
		&m.TargetTaxID,
		&m.Amount,
		&m.Status,
		&m.Reason,
		&m.RejectReason,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// CreatePendingWithReservation inserts a Pending request after re-aggregating
// the applicant's already reserved amounts inside one database transaction.
// With strict on, the applicant row is locked first so concurrent submissions
// from the same account serialize and cannot both pass the check.
func (r *PgxTransferRequestRepository) CreatePendingWithReservation(ctx context.Context, req domain.TransferRequest, strict bool) (*portsrepo.ReservationResult, error) {
	var result *portsrepo.ReservationResult

	err := withRetry(ctx, func(ctx context.Context) error {
		tx, err := r.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = r.Rollback(ctx, tx) }()

		var current int64
		if strict {
			holders, err := r.shareholderRepo.FindShareholdersForUpdate(ctx, tx, []string{req.ApplicantTaxID})
			if err != nil {
				return err
			}
			current = holders[req.ApplicantTaxID].SharesHeld
		} else {
			err := tx.QueryRow(ctx, `SELECT shares_held FROM shareholders WHERE tax_id = $1;`, req.ApplicantTaxID).Scan(&current)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("%w: shareholder %s", apperrors.ErrNotFound, req.ApplicantTaxID)
				}
				return fmt.Errorf("failed to read applicant balance: %w", err)
			}
		}

		var reserved int64
		err = tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(amount), 0)
			FROM transfer_requests
			WHERE applicant_tax_id = $1 AND status = $2;
		`, req.ApplicantTaxID, models.RequestPending).Scan(&reserved)
		if err != nil {
			return fmt.Errorf("failed to aggregate reserved amounts: %w", err)
		}

		available := current - reserved
		result = &portsrepo.ReservationResult{Current: current, Reserved: reserved, Available: available}

		if available < req.Amount {
			return fmt.Errorf("%w: %d available (%d held, %d reserved), request needs %d",
				apperrors.ErrInsufficientAvailable, available, current, reserved, req.Amount)
		}

		m := toModelRequest(req)
		m.Status = models.RequestPending
		_, err = tx.Exec(ctx, `
			INSERT INTO transfer_requests (`+requestColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
		`,
			m.RequestID,
			m.RequestDate,
			m.ApplicantTaxID,
			m.TargetTaxID,
			m.Amount,
			m.Status,
			m.Reason,
			m.RejectReason,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transfer request %s: %w", m.RequestID, err)
		}

		return r.Commit(ctx, tx)
	})

	return result, err
}

// FindRequestByID retrieves one request.
func (r *PgxTransferRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.TransferRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM transfer_requests WHERE request_id = $1;`

	m, err := scanRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transfer request %s", apperrors.ErrNotFound, requestID)
		}
		return nil, fmt.Errorf("failed to find transfer request %s: %w", requestID, err)
	}

	d := toDomainRequest(m)
	return &d, nil
}

// ListRequests retrieves requests, newest first, optionally filtered by
// applicant and/or status.
func (r *PgxTransferRequestRepository) ListRequests(ctx context.Context, applicantTaxID string, status *domain.RequestStatus, limit, offset int) ([]domain.TransferRequest, error) {
	var statusFilter string
	if status != nil {
		statusFilter = string(*status)
	}

	query := `
		SELECT ` + requestColumns + `
		FROM transfer_requests
		WHERE ($1 = '' OR applicant_tax_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, applicantTaxID, statusFilter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfer requests: %w", err)
	}
	defer rows.Close()

	var result []domain.TransferRequest
	for rows.Next() {
		m, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer request row: %w", err)
		}
		result = append(result, toDomainRequest(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer request rows: %w", err)
	}
	return result, nil
}

// DecideRequest moves a Pending request to a terminal status. The guard on
// status makes a second decision attempt a no-op at the SQL level, surfaced
// as ErrAlreadyDecided.
func (r *PgxTransferRequestRepository) DecideRequest(ctx context.Context, requestID string, status domain.RequestStatus, targetTaxID, rejectReason, actor string, now time.Time) error {
	ct, err := r.Pool.Exec(ctx, `
		UPDATE transfer_requests
		SET status = $2, target_tax_id = $3, reject_reason = $4, last_updated_at = $5, last_updated_by = $6
		WHERE request_id = $1 AND status = $7;
	`, requestID, models.RequestStatus(status), targetTaxID, rejectReason, now, actor, models.RequestPending)
	if err != nil {
		return fmt.Errorf("failed to decide transfer request %s: %w", requestID, err)
	}
	if ct.RowsAffected() == 0 {
		if _, findErr := r.FindRequestByID(ctx, requestID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: transfer request %s", apperrors.ErrAlreadyDecided, requestID)
	}
	return nil
}

// DeleteRequest physically removes a Pending request. Decided requests stay
// on record and fail with ErrNotCancellable.
func (r *PgxTransferRequestRepository) DeleteRequest(ctx context.Context, requestID string) error {
	ct, err := r.Pool.Exec(ctx, `
		DELETE FROM transfer_requests
		WHERE request_id = $1 AND status = $2;
	`, requestID, models.RequestPending)
	if err != nil {
		return fmt.Errorf("failed to delete transfer request %s: %w", requestID, err)
	}
	if ct.RowsAffected() == 0 {
		if _, findErr := r.FindRequestByID(ctx, requestID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: transfer request %s is already decided", apperrors.ErrNotCancellable, requestID)
	}
	return nil
}
