package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/sarf/internal/application/port"
	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// UUIDGenerator returns random UUID strings.
func UUIDGenerator() IDGenerator {
	return uuid.NewString
}

// closeConcurrency bounds parallel surface shutdown in CloseAll.
const closeConcurrency = 8

// ManageTabsUseCase owns the tab list and the content surface of every tab.
// It is not safe for concurrent use: all calls come from the UI goroutine.
type ManageTabsUseCase struct {
	factory     port.SurfaceFactory
	idGenerator IDGenerator

	tabs     *entity.TabList
	surfaces map[entity.TabID]port.ContentSurface
	pending  map[entity.TabID]string // requested tab -> initial URL
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(factory port.SurfaceFactory, idGenerator IDGenerator) *ManageTabsUseCase {
	if idGenerator == nil {
		idGenerator = UUIDGenerator()
	}
	return &ManageTabsUseCase{
		factory:     factory,
		idGenerator: idGenerator,
		tabs:        entity.NewTabList(),
		surfaces:    make(map[entity.TabID]port.ContentSurface),
		pending:     make(map[entity.TabID]string),
	}
}

// Tabs returns the tab list. Callers must not mutate it.
func (uc *ManageTabsUseCase) Tabs() *entity.TabList {
	return uc.tabs
}

// Surface returns the surface owned by tab id.
func (uc *ManageTabsUseCase) Surface(id entity.TabID) (port.ContentSurface, bool) {
	s, ok := uc.surfaces[id]
	return s, ok
}

// ActiveSurface returns the surface of the active tab, or nil.
func (uc *ManageTabsUseCase) ActiveSurface() port.ContentSurface {
	return uc.surfaces[uc.tabs.ActiveTabID]
}

// IsPending reports whether a surface for id has been requested but not
// yet adopted or failed.
func (uc *ManageTabsUseCase) IsPending(id entity.TabID) bool {
	_, ok := uc.pending[id]
	return ok
}

// PendingCount returns the number of outstanding surface requests.
func (uc *ManageTabsUseCase) PendingCount() int {
	return len(uc.pending)
}

// Request allocates a tab ID and asks the factory for a surface. The tab
// only appears once the surface is adopted.
func (uc *ManageTabsUseCase) Request(ctx context.Context, initialURL string, events port.SurfaceEvents) entity.TabID {
	id := entity.TabID(uc.idGenerator())
	uc.pending[id] = initialURL

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(id)).
		Str("initial_url", initialURL).
		Msg("requesting content surface")

	uc.factory.Create(ctx, id, events)
	return id
}

// AdoptResult describes a tab created from an adopted surface.
type AdoptResult struct {
	Tab        *entity.Tab
	Index      int
	InitialURL string
}

// Adopt turns a pending request into a tab owning surface. Surfaces for
// unknown IDs are closed and discarded.
func (uc *ManageTabsUseCase) Adopt(ctx context.Context, id entity.TabID, surface port.ContentSurface) (AdoptResult, bool) {
	log := logging.FromContext(ctx)

	initialURL, ok := uc.pending[id]
	if !ok {
		log.Debug().Str("tab_id", string(id)).Msg("discarding surface for unknown tab")
		if surface != nil {
			if err := surface.Close(); err != nil {
				log.Warn().Err(err).Str("tab_id", string(id)).Msg("failed to close orphan surface")
			}
		}
		return AdoptResult{}, false
	}
	delete(uc.pending, id)

	tab := entity.NewTab(id)
	index := uc.tabs.Add(tab)
	uc.surfaces[id] = surface
	surface.SetVisible(false)

	log.Info().
		Str("tab_id", string(id)).
		Int("position", index).
		Msg("tab created")

	return AdoptResult{Tab: tab, Index: index, InitialURL: initialURL}, true
}

// Fail drops a pending request whose surface could not be created.
// Returns false when id was not pending.
func (uc *ManageTabsUseCase) Fail(ctx context.Context, id entity.TabID, cause error) bool {
	if _, ok := uc.pending[id]; !ok {
		return false
	}
	delete(uc.pending, id)

	logging.FromContext(ctx).Warn().
		Err(cause).
		Str("tab_id", string(id)).
		Int("tab_count", uc.tabs.Count()).
		Msg("content surface creation failed, no tab created")
	return true
}

// Activation is the outcome of switching the active tab.
type Activation struct {
	Tab   *entity.Tab
	Index int
	// URL is the surface's current URL, for the address display.
	URL string
	// Fullscreen is the target surface's fullscreen intent, re-read now.
	Fullscreen bool
}

// Activate makes the tab at index the active one and hides every other
// surface. The target stays hidden until ShowActive. It is a no-op when
// index is out of range or already active.
func (uc *ManageTabsUseCase) Activate(ctx context.Context, index int) (Activation, bool) {
	if index == uc.tabs.ActiveIndex() {
		return Activation{}, false
	}
	return uc.activate(ctx, index)
}

func (uc *ManageTabsUseCase) activate(ctx context.Context, index int) (Activation, bool) {
	target := uc.tabs.At(index)
	if target == nil {
		return Activation{}, false
	}

	for _, tab := range uc.tabs.Tabs {
		if tab.ID == target.ID {
			continue
		}
		if s := uc.surfaces[tab.ID]; s != nil {
			s.SetVisible(false)
		}
	}

	uc.tabs.ActiveTabID = target.ID
	act := Activation{Tab: target, Index: index}
	if s := uc.surfaces[target.ID]; s != nil {
		target.FullscreenRequested = s.FullscreenRequested()
		act.URL = s.CurrentURL()
	}
	act.Fullscreen = target.FullscreenRequested

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(target.ID)).
		Int("index", index).
		Bool("fullscreen", act.Fullscreen).
		Msg("tab activated")

	return act, true
}

// ShowActive reveals the active tab's surface. Activation only hides the
// others, so callers show the target once its bounds are applied.
func (uc *ManageTabsUseCase) ShowActive() {
	if s := uc.ActiveSurface(); s != nil {
		s.SetVisible(true)
	}
}

// CloseResult describes the outcome of closing a tab.
type CloseResult struct {
	Tab   *entity.Tab
	Index int
	// WasLast is set when the registry became empty.
	WasLast bool
	// Activation is set when the closed tab was active and another tab
	// took its place.
	Activation *Activation
}

// Close destroys the tab at index and its surface. Out of range is a no-op.
func (uc *ManageTabsUseCase) Close(ctx context.Context, index int) (CloseResult, bool) {
	tab := uc.tabs.At(index)
	if tab == nil {
		return CloseResult{}, false
	}
	log := logging.FromContext(ctx)

	wasActive := uc.tabs.IsActive(tab.ID)
	if s := uc.surfaces[tab.ID]; s != nil {
		if err := s.Close(); err != nil {
			log.Warn().Err(err).Str("tab_id", string(tab.ID)).Msg("failed to close surface")
		}
	}
	delete(uc.surfaces, tab.ID)
	uc.tabs.Remove(tab.ID)

	result := CloseResult{Tab: tab, Index: index, WasLast: uc.tabs.Count() == 0}
	log.Info().
		Str("tab_id", string(tab.ID)).
		Int("index", index).
		Int("remaining", uc.tabs.Count()).
		Msg("tab closed")

	if result.WasLast || !wasActive {
		return result, true
	}

	next := min(index, uc.tabs.Count()-1)
	if act, ok := uc.activate(ctx, next); ok {
		result.Activation = &act
	}
	return result, true
}

// CloseAll closes every surface concurrently and empties the registry.
// Pending requests are forgotten, so late surfaces are discarded on Adopt.
func (uc *ManageTabsUseCase) CloseAll(ctx context.Context) error {
	surfaces := make(map[entity.TabID]port.ContentSurface, len(uc.surfaces))
	for id, s := range uc.surfaces {
		surfaces[id] = s
	}
	uc.surfaces = make(map[entity.TabID]port.ContentSurface)
	uc.pending = make(map[entity.TabID]string)
	uc.tabs = entity.NewTabList()

	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)
	g.SetLimit(closeConcurrency)
	for id, s := range surfaces {
		g.Go(func() error {
			if err := s.Close(); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("close surface %s: %w", id, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	logging.FromContext(ctx).Debug().
		Int("surfaces", len(surfaces)).
		Int("errors", len(errs)).
		Msg("all surfaces closed")

	return errors.Join(errs...)
}
