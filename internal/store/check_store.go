package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"firstaidcheck/internal/domain"
)

// CheckStore persists check aggregates. A check row and its item rows are
// always written or deleted together in a single transaction; readers never
// observe a check without its items or items without their check.
type CheckStore struct {
	db *sql.DB
}

func NewCheckStore(db *sql.DB) *CheckStore {
	return &CheckStore{db: db}
}

// Save inserts a new check when check.ID is zero, otherwise updates the
// existing row, then replaces all item rows for the check with items. The
// check write and the delete-then-reinsert of items are one atomic unit:
// on any failure the transaction rolls back and the pre-call state is kept.
// Returns the check id.
func (s *CheckStore) Save(ctx context.Context, check *domain.Check, items []*domain.CheckItem) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	id := check.ID
	if id == 0 {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO first_aid_checks (box_name, check_date, general_notes)
			VALUES (?, ?, ?)
		`, check.BoxName, check.CheckDate, check.GeneralNotes)
		if err != nil {
			return 0, saveFailed(err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return 0, saveFailed(err)
		}
	} else {
		result, err := tx.ExecContext(ctx, `
			UPDATE first_aid_checks
			SET box_name = ?, check_date = ?, general_notes = ?
			WHERE id = ?
		`, check.BoxName, check.CheckDate, check.GeneralNotes, id)
		if err != nil {
			return 0, saveFailed(err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return 0, saveFailed(err)
		}
		if rowsAffected == 0 {
			return 0, domain.ErrNotFound
		}
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM check_items WHERE check_id = ?
	`, id); err != nil {
		return 0, saveFailed(err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO check_items (check_id, item_name, standard_quantity, current_quantity, expiry_date, item_notes)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, item.Name, item.StandardQuantity, item.CurrentQuantity, item.ExpiryDate, item.Notes); err != nil {
			return 0, saveFailed(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, saveFailed(err)
	}
	return id, nil
}

// Load fetches a check and its item rows ordered by item name ascending.
// Returns domain.ErrNotFound if no check has that id.
func (s *CheckStore) Load(ctx context.Context, id int64) (*domain.Check, []*domain.CheckItem, error) {
	check := &domain.Check{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, box_name, check_date, general_notes, created_at
		FROM first_aid_checks WHERE id = ?
	`, id).Scan(&check.ID, &check.BoxName, &check.CheckDate, &check.GeneralNotes, &check.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get check: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, check_id, item_name, standard_quantity, current_quantity, expiry_date, item_notes
		FROM check_items WHERE check_id = ?
		ORDER BY item_name ASC
	`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list check items: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var items []*domain.CheckItem
	for rows.Next() {
		item := &domain.CheckItem{}
		if err := rows.Scan(&item.ID, &item.CheckID, &item.Name, &item.StandardQuantity,
			&item.CurrentQuantity, &item.ExpiryDate, &item.Notes); err != nil {
			return nil, nil, fmt.Errorf("failed to scan check item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating check items: %w", err)
	}

	return check, items, nil
}

// Delete removes a check and all its item rows in one transaction. Returns
// domain.ErrNotFound if the check does not exist; a repeated delete of the
// same id is therefore NotFound, so callers must not blindly retry.
func (s *CheckStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM check_items WHERE check_id = ?
	`, id); err != nil {
		return saveFailed(err)
	}

	result, err := tx.ExecContext(ctx, `
		DELETE FROM first_aid_checks WHERE id = ?
	`, id)
	if err != nil {
		return saveFailed(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return saveFailed(err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return saveFailed(err)
	}
	return nil
}

// ListAll returns every check ordered by check date descending, most recent
// first, ties broken by insertion order.
func (s *CheckStore) ListAll(ctx context.Context) ([]*domain.Check, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, box_name, check_date, general_notes, created_at
		FROM first_aid_checks
		ORDER BY check_date DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var checks []*domain.Check
	for rows.Next() {
		check := &domain.Check{}
		if err := rows.Scan(&check.ID, &check.BoxName, &check.CheckDate, &check.GeneralNotes, &check.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		checks = append(checks, check)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checks: %w", err)
	}

	return checks, nil
}

func saveFailed(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
}
