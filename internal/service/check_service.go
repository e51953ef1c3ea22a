package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"firstaidcheck/internal/advisor"
	"firstaidcheck/internal/catalog"
	"firstaidcheck/internal/domain"
	"firstaidcheck/internal/reconcile"
	"firstaidcheck/internal/status"
	"firstaidcheck/internal/validate"
)

// ErrAdvisorDisabled is returned by SuggestRestock when no advisor is
// configured.
var ErrAdvisorDisabled = errors.New("restock advisor is not configured")

// checkRepository is the subset of store.CheckStore that CheckService
// requires.
type checkRepository interface {
	Save(ctx context.Context, check *domain.Check, items []*domain.CheckItem) (int64, error)
	Load(ctx context.Context, id int64) (*domain.Check, []*domain.CheckItem, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]*domain.Check, error)
}

type CheckService struct {
	checks  checkRepository
	advisor advisor.RestockAdvisor // nil when disabled
	logger  *slog.Logger
	now     func() time.Time
}

func NewCheckService(checks checkRepository, adv advisor.RestockAdvisor, logger *slog.Logger) *CheckService {
	return &CheckService{
		checks:  checks,
		advisor: adv,
		logger:  logger,
		now:     time.Now,
	}
}

// AnnotatedItem bundles a check item with its derived statuses for display.
type AnnotatedItem struct {
	*domain.CheckItem
	StockStatus  domain.StockStatus  `json:"stock_status"`
	ExpiryStatus domain.ExpiryStatus `json:"expiry_status"`
}

// ItemInput carries the raw field values the caller collected for one item.
type ItemInput struct {
	Name       string `json:"item_name"`
	Quantity   string `json:"quantity"`
	ExpiryDate string `json:"expiry_date"`
	Notes      string `json:"item_notes"`
}

// CheckInput is one submitted check. ID zero means a new check; a non-zero
// ID updates the existing check in place.
type CheckInput struct {
	ID           int64       `json:"id"`
	BoxName      string      `json:"box_name"`
	CheckDate    string      `json:"check_date"`
	GeneralNotes string      `json:"general_notes"`
	Items        []ItemInput `json:"items"`
}

// ReconcileForDisplay returns one annotated entry per catalog item, in
// catalog order. With a nil checkID it seeds a blank form (zero quantities,
// empty expiry and notes); with a checkID it seeds an edit form from the
// persisted rows, carrying the catalog's current standard quantities.
func (s *CheckService) ReconcileForDisplay(ctx context.Context, checkID *int64) ([]*AnnotatedItem, error) {
	var existing []*domain.CheckItem
	if checkID != nil {
		_, items, err := s.checks.Load(ctx, *checkID)
		if err != nil {
			return nil, err
		}
		existing = items
	}

	merged := reconcile.Merge(catalog.Entries(), existing)
	return s.annotate(merged), nil
}

// SubmitCheck validates the raw inputs and persists the check with its full
// item set as one atomic unit. Validation runs before any storage call; on
// a validation or storage error nothing is written and the caller's input
// can be corrected and resubmitted unchanged.
func (s *CheckService) SubmitCheck(ctx context.Context, in CheckInput) (int64, error) {
	if err := validate.Box(in.BoxName); err != nil {
		return 0, err
	}
	checkDate, err := validate.CheckDate(in.CheckDate, s.now())
	if err != nil {
		return 0, err
	}

	items := make([]*domain.CheckItem, 0, len(in.Items))
	for _, raw := range in.Items {
		qty, err := validate.Quantity(raw.Name, raw.Quantity)
		if err != nil {
			return 0, err
		}
		expiry, err := validate.ExpiryDate(raw.Name, raw.ExpiryDate)
		if err != nil {
			return 0, err
		}
		items = append(items, &domain.CheckItem{
			Name: raw.Name,
			// Snapshot of the catalog value at save time; kept on the row so
			// the check stays interpretable if the catalog changes later.
			StandardQuantity: catalog.StandardQuantity(raw.Name),
			CurrentQuantity:  qty,
			ExpiryDate:       expiry,
			Notes:            raw.Notes,
		})
	}

	check := &domain.Check{
		ID:           in.ID,
		BoxName:      in.BoxName,
		CheckDate:    checkDate,
		GeneralNotes: in.GeneralNotes,
	}
	id, err := s.checks.Save(ctx, check, items)
	if err != nil {
		return 0, err
	}

	s.logger.Info("check saved", "check_id", id, "box", in.BoxName, "items", len(items))
	return id, nil
}

// GetCheckDetails returns a check with its stored item rows annotated for
// review. The rows keep their saved standard quantity snapshots; no
// reconciliation against the live catalog happens here.
func (s *CheckService) GetCheckDetails(ctx context.Context, checkID int64) (*domain.Check, []*AnnotatedItem, error) {
	check, items, err := s.checks.Load(ctx, checkID)
	if err != nil {
		return nil, nil, err
	}
	return check, s.annotate(items), nil
}

// ListChecks returns all check summaries, most recent check date first.
func (s *CheckService) ListChecks(ctx context.Context) ([]*domain.Check, error) {
	return s.checks.ListAll(ctx)
}

// DeleteCheck removes a check and all its item rows.
func (s *CheckService) DeleteCheck(ctx context.Context, checkID int64) error {
	if err := s.checks.Delete(ctx, checkID); err != nil {
		return err
	}
	s.logger.Info("check deleted", "check_id", checkID)
	return nil
}

// SuggestRestock asks the configured advisor for restock actions based on
// the check's annotated items.
func (s *CheckService) SuggestRestock(ctx context.Context, checkID int64) (*advisor.Advice, error) {
	if s.advisor == nil {
		return nil, ErrAdvisorDisabled
	}

	check, items, err := s.GetCheckDetails(ctx, checkID)
	if err != nil {
		return nil, err
	}

	findings := make([]advisor.Finding, 0, len(items))
	for _, item := range items {
		findings = append(findings, advisor.Finding{
			Name:             item.Name,
			StandardQuantity: item.StandardQuantity,
			CurrentQuantity:  item.CurrentQuantity,
			ExpiryDate:       item.ExpiryDate,
			StockStatus:      item.StockStatus,
			ExpiryStatus:     item.ExpiryStatus,
		})
	}

	advice, err := s.advisor.Advise(ctx, check, findings)
	if err != nil {
		return nil, err
	}
	s.logger.Info("restock advice generated", "check_id", checkID, "suggestions", len(advice.Suggestions))
	return advice, nil
}

func (s *CheckService) annotate(items []*domain.CheckItem) []*AnnotatedItem {
	today := s.now()
	out := make([]*AnnotatedItem, 0, len(items))
	for _, item := range items {
		out = append(out, &AnnotatedItem{
			CheckItem:    item,
			StockStatus:  status.Stock(item.StandardQuantity, item.CurrentQuantity),
			ExpiryStatus: status.Expiry(item.ExpiryDate, today),
		})
	}
	return out
}
