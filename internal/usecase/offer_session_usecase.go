package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"webquote/internal/domain/catalog"
	"webquote/internal/domain/draft"
	"webquote/internal/domain/entities"
	"webquote/internal/domain/pricing"
	"webquote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidSessionID     = errors.New("invalid session id")
	ErrPackageNotFound      = errors.New("package not found")
	ErrOptionNotFound       = errors.New("option not found")
	ErrNotMaintenanceOption = errors.New("option is not a maintenance option")
	ErrInvalidLineItem      = errors.New("invalid line item")
	ErrLineItemNotFound     = errors.New("line item not found")
)

// OfferSummary is what every operation returns: the current serialized state
// plus the freshly computed money breakdown. The breakdown is recomputed on
// every read; the calculator is pure and cheap.
type OfferSummary struct {
	SessionID string
	IsValid   bool
	Snapshot  draft.Snapshot
	Breakdown pricing.Breakdown
	Restored  bool
}

// IOfferSessionUseCase exposes the offer configuration operations, one per
// mutator, plus the session lifecycle. All catalog references arrive as ids
// and are resolved against the injected catalog before the mutator runs.
type IOfferSessionUseCase interface {
	StartSession(ctx context.Context, sessionID string) (OfferSummary, error)
	GetSummary(ctx context.Context, sessionID string) (OfferSummary, error)
	EndSession(ctx context.Context, sessionID string) error
	FlushDraft(ctx context.Context, sessionID string) error

	SetPackage(ctx context.Context, sessionID, packageID string) (OfferSummary, error)
	ToggleOption(ctx context.Context, sessionID, optionID string) (OfferSummary, error)
	SetCustomPrice(ctx context.Context, sessionID, optionID string, amount float64) (OfferSummary, error)
	SetOptionNote(ctx context.Context, sessionID, optionID, note string) (OfferSummary, error)
	SetQuantities(ctx context.Context, sessionID string, extraPages, contentPages *int) (OfferSummary, error)
	SetMaintenance(ctx context.Context, sessionID, optionID string) (OfferSummary, error)
	AddCustomLineItem(ctx context.Context, sessionID, name string, price float64) (OfferSummary, error)
	RemoveCustomLineItem(ctx context.Context, sessionID, itemID string) (OfferSummary, error)
	SetDiscount(ctx context.Context, sessionID, discountType string, value float64) (OfferSummary, error)
	SetPaymentSchedule(ctx context.Context, sessionID, schedule string) (OfferSummary, error)
	SetDetails(ctx context.Context, sessionID string, scopeDescription, timeline *string) (OfferSummary, error)
}

// offerSession is one in-progress editing session. The mutex gives the
// single-writer discipline: one logical actor mutates the configuration, and
// the autosaver reads it under the same lock when serializing.
type offerSession struct {
	id       string
	mu       sync.Mutex
	cfg      *entities.OfferConfiguration
	saver    *autosaver
	restored bool
}

type OfferSessionUseCase struct {
	catalog  *catalog.Catalog
	repo     interfaces.IDraftRepository
	interval time.Duration

	mu       sync.RWMutex
	sessions map[string]*offerSession
}

var _ IOfferSessionUseCase = (*OfferSessionUseCase)(nil)

func NewOfferSessionUseCase(cat *catalog.Catalog, repo interfaces.IDraftRepository, autosaveInterval time.Duration) *OfferSessionUseCase {
	return &OfferSessionUseCase{
		catalog:  cat,
		repo:     repo,
		interval: autosaveInterval,
		sessions: make(map[string]*offerSession),
	}
}

// StartSession creates or resumes a session. A prior draft is loaded and
// decoded strictly before any mutator can run, so a user edit can never be
// overwritten by a slower-arriving restore. A failed load falls back to an
// empty configuration instead of blocking the session.
func (u *OfferSessionUseCase) StartSession(ctx context.Context, sessionID string) (OfferSummary, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	u.mu.Lock()
	if s, ok := u.sessions[sessionID]; ok {
		u.mu.Unlock()
		return u.summarize(s), nil
	}
	// Reserve the slot before the (possibly slow) load so concurrent starts
	// for the same key cannot race to two configurations.
	s := &offerSession{id: sessionID, cfg: entities.NewOfferConfiguration()}
	s.saver = newAutosaver(u.interval, u.saveFunc(s))
	u.sessions[sessionID] = s
	u.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, found, err := u.repo.Load(ctx, sessionID)
	switch {
	case err != nil:
		log.Printf("[offer][session] draft load failed, starting empty session_id=%s err=%v", sessionID, err)
	case found:
		cfg, report := draft.Decode(snapshot, u.catalog)
		if !report.Clean() {
			log.Printf("[offer][session] stale draft references dropped session_id=%s dropped_package=%q dropped_options=%v dropped_line_items=%v discount_corrected=%t schedule_corrected=%t",
				sessionID, report.DroppedPackageID, report.DroppedOptionIDs, report.DroppedLineItemIDs, report.CorrectedDiscount, report.CorrectedSchedule)
		}
		s.cfg = cfg
		s.restored = true
	}
	return u.summarizeLocked(s), nil
}

func (u *OfferSessionUseCase) GetSummary(ctx context.Context, sessionID string) (OfferSummary, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return OfferSummary{}, err
	}
	return u.summarize(s), nil
}

// EndSession flushes the settled state once and stops scheduling further
// saves. A failed final save is logged, not returned: the session is gone
// either way and the draft store keeps the last successful save.
func (u *OfferSessionUseCase) EndSession(ctx context.Context, sessionID string) error {
	s, err := u.session(sessionID)
	if err != nil {
		return err
	}
	if err := s.saver.Flush(ctx); err != nil {
		log.Printf("[offer][session] final save failed session_id=%s err=%v", sessionID, err)
	}
	s.saver.Stop()

	u.mu.Lock()
	delete(u.sessions, sessionID)
	u.mu.Unlock()
	return nil
}

// FlushDraft persists the current state immediately, bypassing the debounce.
func (u *OfferSessionUseCase) FlushDraft(ctx context.Context, sessionID string) error {
	s, err := u.session(sessionID)
	if err != nil {
		return err
	}
	return s.saver.Flush(ctx)
}

func (u *OfferSessionUseCase) SetPackage(ctx context.Context, sessionID, packageID string) (OfferSummary, error) {
	var pkg *entities.Package
	if packageID != "" {
		p, ok := u.catalog.GetPackage(packageID)
		if !ok {
			return OfferSummary{}, ErrPackageNotFound
		}
		pkg = &p
	}
	return u.mutate(sessionID, func(cfg *entities.OfferConfiguration) error {
		cfg.SetPackage(pkg)
		return nil
	})
}

func (u *OfferSessionUseCase) ToggleOption(ctx context.Context, sessionID, optionID string) (OfferSummary, error) {
	opt, ok := u.catalog.GetOption(optionID)
	if !ok {
		return OfferSummary{}, ErrOptionNotFound
	}
	return u.mutate(sessionID, func(cfg *entities.OfferConfiguration) error {
		cfg.ToggleOption(opt)
		return nil
	})
}

func (u *OfferSessionUseCase) SetCustomPrice(ctx context.Context, sessionID, optionID string, amount float64) (OfferSummary, error) {
	if _, ok := u.catalog.GetOption(optionID); !ok {
		return OfferSummary{}, ErrOptionNotFound
	}
	return u.mutate(sessionID, func(cfg *entities.OfferConfiguration) error {
		cfg.SetCustomPrice(optionID, amount)
		return nil
	})
}

func (u *OfferSessionUseCase) SetOptionNote(ctx context.Context, sessionID, optionID, note string) (OfferSummary, error) {
	if _, ok := u.catalog.GetOption(optionID); !ok {
		return OfferSummary{}, ErrOptionNotFound
	}
	return u.mutate(sessionID, func(cfg *entities.OfferConfiguration) error {
		cfg.SetOptionNote(optionID, note)
		return nil
	})
}

// SetQuantities updates one or both quantity counters; nil means "leave as is".
func (u *OfferSessionUseCase) SetQuantities(ctx context.Context, sessionID string, extraPages, contentPages *int) (OfferSummary, error) {
	return u.mutate(sessionID, func(cfg *entities.OfferConfiguration) error {
		if extraPages != nil {
			if opt, ok := u.catalog.GetOption(entities.OptionIDExtraPages); ok {
				cfg.SetExtraPages(opt, *extraPages)
			}
		}
		if contentPages != nil {
			if opt, ok := u.catalog.GetOption(entities.OptionIDContentPages); ok {
				cfg.SetContentPages(opt, *contentPages)
			}
		}
		return nil
	})
}

func (u *OfferSessionUseCase) SetMaintenance(ctx context.Context, sessionID, optionID string) (OfferSummary, error) {
	var opt *entities.Option
	if optionID != "" {
		o, ok := u.catalog.GetOption(optionID)
		if !ok {
			return OfferSummary{}, ErrOptionNotFound
		}
		if o.Category != entities.OptionCategoryMaintenance {
			return OfferSummary{}, ErrNotMaintenanceOption
		}
		opt = &o
	}
	return u.mutate(sessionID, func(cfg *entities.OfferConfiguration) error {
		cfg.SetMaintenance(opt)
		return nil
	})
}

func (u *OfferSessionUseCase) AddCustomLineItem(ctx context.Context, sessionID, name string, price float64) (OfferSummary, error) {
	item := entities.CustomLineItem{ID: uuid.NewString(), Name: strings.TrimSpace(name), Price: price}
	return u.mutate(sessionID, func(cfg *entities.OfferConfiguration) error {
		if !cfg.AddCustomLineItem(item) {
			return ErrInvalidLineItem
		}
		return nil
	})
}

func (u *OfferSessionUseCase) RemoveCustomLineItem(ctx context.Context, sessionID, itemID string) (OfferSummary, error) {
	return u.mutate(sessionID, func(cfg *entities.OfferConfiguration) error {
		if !cfg.RemoveCustomLineItem(itemID) {
			return ErrLineItemNotFound
		}
		return nil
	})
}

func (u *OfferSessionUseCase) SetDiscount(ctx context.Context, sessionID, discountType string, value float64) (OfferSummary, error) {
	return u.mutate(sessionID, func(cfg *entities.OfferConfiguration) error {
		cfg.SetDiscount(entities.DiscountType(discountType), value)
		return nil
	})
}

func (u *OfferSessionUseCase) SetPaymentSchedule(ctx context.Context, sessionID, schedule string) (OfferSummary, error) {
	return u.mutate(sessionID, func(cfg *entities.OfferConfiguration) error {
		cfg.SetPaymentSchedule(entities.PaymentSchedule(schedule))
		return nil
	})
}

func (u *OfferSessionUseCase) SetDetails(ctx context.Context, sessionID string, scopeDescription, timeline *string) (OfferSummary, error) {
	return u.mutate(sessionID, func(cfg *entities.OfferConfiguration) error {
		if scopeDescription != nil {
			cfg.SetScopeDescription(*scopeDescription)
		}
		if timeline != nil {
			cfg.SetTimeline(*timeline)
		}
		return nil
	})
}

func (u *OfferSessionUseCase) session(sessionID string) (*offerSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	u.mu.RLock()
	s, ok := u.sessions[sessionID]
	u.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// mutate runs fn under the session lock, schedules a debounced save and
// returns the fresh summary. Mutators themselves never fail; fn only returns
// an error for catalog/id resolution problems surfaced to the caller.
func (u *OfferSessionUseCase) mutate(sessionID string, fn func(cfg *entities.OfferConfiguration) error) (OfferSummary, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return OfferSummary{}, err
	}
	s.mu.Lock()
	if err := fn(s.cfg); err != nil {
		s.mu.Unlock()
		return OfferSummary{}, err
	}
	summary := u.summarizeLocked(s)
	s.mu.Unlock()

	s.saver.Schedule()
	return summary, nil
}

func (u *OfferSessionUseCase) summarize(s *offerSession) OfferSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return u.summarizeLocked(s)
}

func (u *OfferSessionUseCase) summarizeLocked(s *offerSession) OfferSummary {
	return OfferSummary{
		SessionID: s.id,
		IsValid:   s.cfg.IsValid(),
		Snapshot:  draft.Encode(s.cfg),
		Breakdown: pricing.Calculate(s.cfg),
		Restored:  s.restored,
	}
}

// saveFunc serializes under the session lock at save time, so a debounced save
// always writes the latest settled state.
func (u *OfferSessionUseCase) saveFunc(s *offerSession) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		s.mu.Lock()
		snapshot := draft.Encode(s.cfg)
		s.mu.Unlock()
		return u.repo.Save(ctx, s.id, snapshot)
	}
}
