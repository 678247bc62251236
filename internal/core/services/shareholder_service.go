package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/SscSPs/share_registry_app/internal/core/domain"
	portsrepo "github.com/SscSPs/share_registry_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/share_registry_app/internal/core/ports/services"
	"github.com/SscSPs/share_registry_app/internal/dto"
	"github.com/google/uuid"
)

type ShareholderService struct {
	BaseService
	shareholderRepo portsrepo.ShareholderRepository
	changeLogRepo   portsrepo.ChangeLogRepository
}

func NewShareholderService(shareholderRepo portsrepo.ShareholderRepository, changeLogRepo portsrepo.ChangeLogRepository) *ShareholderService {
	return &ShareholderService{
		shareholderRepo: shareholderRepo,
		changeLogRepo:   changeLogRepo,
	}
}

var _ portssvc.ShareholderSvcFacade = (*ShareholderService)(nil)

// CreateShareholder registers a new entry with zero shares and no credential.
func (s *ShareholderService) CreateShareholder(ctx context.Context, principal domain.Principal, req dto.UpsertShareholderRequest) (*domain.Shareholder, error) {
	now := time.Now()
	holder := domain.Shareholder{
		TaxID:          req.TaxID,
		Name:           req.Name,
		HolderType:     domain.HolderType(req.HolderType),
		Representative: req.Representative,
		Address:        req.Address,
		Email:          req.Email,
		Phone:          req.Phone,
		PasswordHint:   req.PasswordHint,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.ID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.ID,
		},
	}

	if err := s.shareholderRepo.SaveShareholder(ctx, holder); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Shareholder created", "tax_id", holder.TaxID)
	return &holder, nil
}

// UpdateShareholder updates administrative profile fields of an entry.
func (s *ShareholderService) UpdateShareholder(ctx context.Context, principal domain.Principal, taxID string, req dto.UpsertShareholderRequest) (*domain.Shareholder, error) {
	if req.TaxID != "" && req.TaxID != taxID {
		return nil, fmt.Errorf("%w: tax ID is immutable", apperrors.ErrValidation)
	}

	existing, err := s.shareholderRepo.FindShareholderByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = req.Name
	updated.HolderType = domain.HolderType(req.HolderType)
	updated.Representative = req.Representative
	updated.Address = req.Address
	updated.Email = req.Email
	updated.Phone = req.Phone
	updated.PasswordHint = req.PasswordHint
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = principal.ID

	if err := s.shareholderRepo.UpdateShareholder(ctx, updated); err != nil {
		return nil, err
	}

	if err := s.appendFieldChanges(ctx, principal.ID, existing, &updated); err != nil {
		// Audit failure must not roll back an already applied edit.
		s.LogError(ctx, err, "Failed to append change log", "tax_id", taxID)
	}

	return &updated, nil
}

// UpdateOwnProfile lets a shareholder edit their own contact fields. Nil
// pointers leave the current values alone.
func (s *ShareholderService) UpdateOwnProfile(ctx context.Context, principal domain.Principal, req dto.UpdateProfileRequest) (*domain.Shareholder, error) {
	existing, err := s.shareholderRepo.FindShareholderByTaxID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Representative != nil {
		updated.Representative = *req.Representative
	}
	if req.Address != nil {
		updated.Address = *req.Address
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	if req.Phone != nil {
		updated.Phone = *req.Phone
	}
	if req.IDImageURL != nil {
		updated.IDImageURL = *req.IDImageURL
	}
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = principal.ID

	if err := s.shareholderRepo.UpdateShareholder(ctx, updated); err != nil {
		return nil, err
	}

	if err := s.appendFieldChanges(ctx, principal.ID, existing, &updated); err != nil {
		s.LogError(ctx, err, "Failed to append change log", "tax_id", principal.ID)
	}

	return &updated, nil
}

// appendFieldChanges writes one change-log entry per changed profile field.
func (s *ShareholderService) appendFieldChanges(ctx context.Context, editor string, before, after *domain.Shareholder) error {
	now := time.Now()
	fields := []struct {
		name     string
		old, new string
	}{
		{"name", before.Name, after.Name},
		{"holder_type", string(before.HolderType), string(after.HolderType)},
		{"representative", before.Representative, after.Representative},
		{"address", before.Address, after.Address},
		{"email", before.Email, after.Email},
		{"phone", before.Phone, after.Phone},
		{"password_hint", before.PasswordHint, after.PasswordHint},
		{"id_image_url", before.IDImageURL, after.IDImageURL},
	}

	var entries []domain.ChangeLogEntry
	for _, f := range fields {
		if f.old == f.new {
			continue
		}
		entries = append(entries, domain.ChangeLogEntry{
			EntryID:     uuid.NewString(),
			ChangedAt:   now,
			Editor:      editor,
			TargetTaxID: after.TaxID,
			FieldName:   f.name,
			OldValue:    f.old,
			NewValue:    f.new,
		})
	}
	return s.changeLogRepo.AppendEntries(ctx, entries)
}

// GetShareholder fetches one entry. Shareholders may only fetch themselves.
func (s *ShareholderService) GetShareholder(ctx context.Context, principal domain.Principal, taxID string) (*domain.Shareholder, error) {
	if !principal.IsAdmin() && principal.ID != taxID {
		return nil, fmt.Errorf("%w: shareholders may only view their own record", apperrors.ErrForbidden)
	}
	return s.shareholderRepo.FindShareholderByTaxID(ctx, taxID)
}

// ListShareholders pages through the register with an optional search.
func (s *ShareholderService) ListShareholders(ctx context.Context, search string, limit, offset int) ([]domain.Shareholder, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.shareholderRepo.ListShareholders(ctx, search, limit, offset)
}

// DeleteShareholder removes one entry.
func (s *ShareholderService) DeleteShareholder(ctx context.Context, taxID string) error {
	if err := s.shareholderRepo.DeleteShareholder(ctx, taxID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Shareholder deleted", "tax_id", taxID)
	return nil
}

// BatchDeleteShareholders removes a batch of entries and reports the count.
func (s *ShareholderService) BatchDeleteShareholders(ctx context.Context, taxIDs []string) (int64, error) {
	deleted, err := s.shareholderRepo.DeleteShareholders(ctx, taxIDs)
	if err != nil {
		return 0, err
	}
	s.LogInfo(ctx, "Shareholders batch deleted", "requested", len(taxIDs), "deleted", deleted)
	return deleted, nil
}

// BulkImport upserts rows from an uploaded register snapshot. Rows are
// processed independently; one bad row does not abort the batch.
func (s *ShareholderService) BulkImport(ctx context.Context, principal domain.Principal, req dto.BulkImportRequest) (*dto.BulkImportResponse, error) {
	resp := &dto.BulkImportResponse{}
	now := time.Now()

	for _, row := range req.Rows {
		if err := s.importRow(ctx, principal, row, req.ReplaceShares, now); err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", row.TaxID, err))
			continue
		}
		resp.Imported++
	}

	s.LogInfo(ctx, "Bulk import finished", "imported", resp.Imported, "failed", resp.Failed)
	return resp, nil
}

func (s *ShareholderService) importRow(ctx context.Context, principal domain.Principal, row dto.ImportRow, replaceShares bool, now time.Time) error {
	existing, err := s.shareholderRepo.FindShareholderByTaxID(ctx, row.TaxID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if existing == nil {
		holder := domain.Shareholder{
			TaxID:          row.TaxID,
			Name:           row.Name,
			HolderType:     domain.HolderType(row.HolderType),
			Representative: row.Representative,
			Address:        row.Address,
			Email:          row.Email,
			PasswordHint:   row.PasswordHint,
			SharesHeld:     row.Shares,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     principal.ID,
				LastUpdatedAt: now,
				LastUpdatedBy: principal.ID,
			},
		}
		return s.shareholderRepo.SaveShareholder(ctx, holder)
	}

	updated := *existing
	updated.Name = row.Name
	updated.HolderType = domain.HolderType(row.HolderType)
	updated.Representative = row.Representative
	updated.Address = row.Address
	updated.Email = row.Email
	updated.PasswordHint = row.PasswordHint
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = principal.ID
	if err := s.shareholderRepo.UpdateShareholder(ctx, updated); err != nil {
		return err
	}

	shares := row.Shares
	if !replaceShares {
		shares = existing.SharesHeld + row.Shares
	}
	if shares != existing.SharesHeld {
		return s.shareholderRepo.SetShareCount(ctx, row.TaxID, shares, principal.ID, now)
	}
	return nil
}

// RegistrySummary returns headcount and total outstanding shares.
func (s *ShareholderService) RegistrySummary(ctx context.Context) (*dto.RegistrySummaryResponse, error) {
	count, total, err := s.shareholderRepo.CountAndTotalShares(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.RegistrySummaryResponse{ShareholderCount: count, TotalShares: total}, nil
}

// GetChangeLog pages through one entry's profile-edit audit trail.
func (s *ShareholderService) GetChangeLog(ctx context.Context, principal domain.Principal, taxID string, limit, offset int) ([]domain.ChangeLogEntry, error) {
	if !principal.IsAdmin() && principal.ID != taxID {
		return nil, fmt.Errorf("%w: shareholders may only view their own history", apperrors.ErrForbidden)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.changeLogRepo.ListEntriesByTarget(ctx, taxID, limit, offset)
}
