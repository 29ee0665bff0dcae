// Package notebook runs one notebook instance: the ingested catalog, the
// champion builds, the component inventory, and the view state the user
// moves between.
package notebook

//go:generate mockgen -destination=mock/mock_service.go -package=notebookmock github.com/KirkDiggler/tft-notebook/internal/orchestrators/notebook Service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/tft-notebook/internal/assets"
	"github.com/KirkDiggler/tft-notebook/internal/builds"
	"github.com/KirkDiggler/tft-notebook/internal/clients/cdragon"
	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
	"github.com/KirkDiggler/tft-notebook/internal/ingest"
	"github.com/KirkDiggler/tft-notebook/internal/inventory"
	"github.com/KirkDiggler/tft-notebook/internal/pkg/clock"
	"github.com/KirkDiggler/tft-notebook/internal/pkg/idgen"
	"github.com/KirkDiggler/tft-notebook/internal/ranking"
	"github.com/KirkDiggler/tft-notebook/internal/repositories/buildstate"
)

// Service is the action set of a running notebook. It is not safe for
// concurrent use.
type Service interface {
	SelectChampion(ctx context.Context, input *SelectChampionInput) (*SelectChampionOutput, error)
	AssignItem(ctx context.Context, input *AssignItemInput) (*AssignItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	ClearItems(ctx context.Context, input *ClearItemsInput) (*ClearItemsOutput, error)
	AdjustComponent(ctx context.Context, input *AdjustComponentInput) (*AdjustComponentOutput, error)
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	SwitchScreen(ctx context.Context, input *SwitchScreenInput) (*SwitchScreenOutput, error)
	SetSortOrder(ctx context.Context, input *SetSortOrderInput) (*SetSortOrderOutput, error)
	WarmIcons(ctx context.Context) (*WarmIconsOutput, error)

	// Champions lists every champion with its score, in the active sort order
	Champions() []ranking.Result
	// Ranked lists every champion by descending score
	Ranked() []ranking.Result
	Items() []tft.Item
	Components() []tft.ComponentState
	Focused() (tft.ChampionState, bool)
	Screen() Screen
	SortOrder() SortOrder
	SetName() string
}

// IconResolver fetches an asset into local storage
type IconResolver interface {
	Resolve(ctx context.Context, assetPath string) (assets.Handle, error)
}

// Config holds the dependencies for the notebook orchestrator
type Config struct {
	Client      cdragon.Client
	Repository  buildstate.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator
	// Icons is optional; without it WarmIcons is a no-op
	Icons    IconResolver
	Profile  string
	SetIndex int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	errors.ValidateNonNegative("SetIndex", c.SetIndex, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.IDGenerator == nil {
		c.IDGenerator = idgen.NewUUID("snap")
	}
	if c.Profile == "" {
		c.Profile = buildstate.DefaultProfile
	}
	return nil
}

type orchestrator struct {
	repo    buildstate.Repository
	clock   clock.Clock
	idGen   idgen.Generator
	icons   IconResolver
	profile string

	catalog *ingest.Catalog
	store   *builds.Store
	inv     *inventory.Inventory

	focused string
	screen  Screen
	order   SortOrder
}

// Bootstrap fetches and ingests the game data, restores the saved builds of
// the configured profile, and returns a notebook ready for actions
func Bootstrap(ctx context.Context, cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	doc, err := cfg.Client.FetchDocument(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch game data")
	}

	catalog, err := ingest.Filter(doc, cfg.SetIndex)
	if err != nil {
		return nil, err
	}

	o := &orchestrator{
		repo:    cfg.Repository,
		clock:   cfg.Clock,
		idGen:   cfg.IDGenerator,
		icons:   cfg.Icons,
		profile: cfg.Profile,
		catalog: catalog,
		inv:     inventory.New(catalog.Components),
		screen:  ScreenDeterminer,
		order:   SortRoster,
	}

	persisted := o.loadPersisted(ctx)
	o.store = builds.Attach(catalog.Champions, persisted)

	slog.InfoContext(ctx, "notebook ready",
		"set", catalog.SetName,
		"champions", len(catalog.Champions),
		"items", len(catalog.Items),
		"components", len(catalog.Components),
		"saved_champions", len(persisted))

	return o, nil
}

// loadPersisted never fails: a missing or unreadable save starts empty
func (o *orchestrator) loadPersisted(ctx context.Context) []tft.ChampionState {
	out, err := o.repo.Load(ctx, buildstate.LoadInput{Profile: o.profile})
	if err != nil {
		if errors.IsNotFound(err) {
			slog.DebugContext(ctx, "no saved builds", "profile", o.profile)
		} else {
			slog.WarnContext(ctx, "saved builds unreadable, starting empty",
				"profile", o.profile,
				"error", err)
		}
		return nil
	}
	if out == nil || out.Snapshot == nil {
		return nil
	}
	return out.Snapshot.Champions
}

func (o *orchestrator) SelectChampion(ctx context.Context, input *SelectChampionInput) (*SelectChampionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name, err := o.resolveChampion(input.Champion)
	if err != nil {
		return nil, err
	}
	state, err := o.store.Get(name)
	if err != nil {
		return nil, err
	}

	o.focused = name
	slog.DebugContext(ctx, "champion selected", "champion", name)
	return &SelectChampionOutput{State: state}, nil
}

func (o *orchestrator) AssignItem(ctx context.Context, input *AssignItemInput) (*AssignItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.focused == "" {
		return nil, errors.FailedPrecondition("no champion selected")
	}

	item, err := o.resolveItem(input.Item)
	if err != nil {
		return nil, err
	}
	if err := o.store.Assign(o.focused, item); err != nil {
		return nil, err
	}

	state, err := o.store.Get(o.focused)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "item assigned", "champion", o.focused, "item", item.Name)
	return &AssignItemOutput{State: state}, nil
}

func (o *orchestrator) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	champion, err := o.targetChampion(input.Champion)
	if err != nil {
		return nil, err
	}

	// Persisted builds may hold items the current catalog no longer has, so
	// an unresolved reference is matched by its raw text.
	itemName := input.Item
	if item, err := o.resolveItem(input.Item); err == nil {
		itemName = item.Name
	}

	removed, err := o.store.Unassign(champion, itemName)
	if err != nil {
		return nil, err
	}
	state, err := o.store.Get(champion)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "item removed", "champion", champion, "item", itemName, "removed", removed)
	return &RemoveItemOutput{State: state, Removed: removed}, nil
}

func (o *orchestrator) ClearItems(ctx context.Context, input *ClearItemsInput) (*ClearItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	champion, err := o.targetChampion(input.Champion)
	if err != nil {
		return nil, err
	}
	if err := o.store.Clear(champion); err != nil {
		return nil, err
	}
	state, err := o.store.Get(champion)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "items cleared", "champion", champion)
	return &ClearItemsOutput{State: state}, nil
}

func (o *orchestrator) AdjustComponent(ctx context.Context, input *AdjustComponentInput) (*AdjustComponentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	component, err := o.resolveComponent(input.Component)
	if err != nil {
		return nil, err
	}

	var count int
	switch input.Delta {
	case 1:
		count, err = o.inv.Increment(component.APIName)
	case -1:
		count, err = o.inv.Decrement(component.APIName)
	default:
		return nil, errors.InvalidArgumentf("component delta must be +1 or -1, got %d", input.Delta)
	}
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "component adjusted", "component", component.APIName, "count", count)
	return &AdjustComponentOutput{State: tft.ComponentState{Component: component, Count: count}}, nil
}

func (o *orchestrator) Save(ctx context.Context, _ *SaveInput) (*SaveOutput, error) {
	snapshot := &buildstate.Snapshot{
		ID:        o.idGen.Generate(),
		SavedAt:   o.clock.Now(),
		SetName:   o.catalog.SetName,
		Champions: o.store.Serialize(),
	}

	out, err := o.repo.Save(ctx, buildstate.SaveInput{Profile: o.profile, Snapshot: snapshot})
	if err != nil {
		if errors.IsPersistence(err) {
			return nil, err
		}
		return nil, errors.Persistence(err, "failed to save builds")
	}

	slog.InfoContext(ctx, "builds saved",
		"profile", o.profile,
		"snapshot_id", snapshot.ID,
		"location", out.Location)

	return &SaveOutput{
		SnapshotID: snapshot.ID,
		Location:   out.Location,
		Champions:  len(snapshot.Champions),
	}, nil
}

func (o *orchestrator) SwitchScreen(_ context.Context, input *SwitchScreenInput) (*SwitchScreenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	screen, err := ParseScreen(string(input.Screen))
	if err != nil {
		return nil, err
	}
	o.screen = screen
	return &SwitchScreenOutput{Screen: screen}, nil
}

func (o *orchestrator) SetSortOrder(_ context.Context, input *SetSortOrderInput) (*SetSortOrderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	order, err := ParseSortOrder(string(input.Order))
	if err != nil {
		return nil, err
	}
	o.order = order
	return &SetSortOrderOutput{Order: order}, nil
}

// WarmIcons downloads every champion and item icon not yet cached. A failed
// icon is logged and counted, never fatal.
func (o *orchestrator) WarmIcons(ctx context.Context) (*WarmIconsOutput, error) {
	out := &WarmIconsOutput{}
	if o.icons == nil {
		return out, nil
	}

	paths := make([]string, 0, len(o.catalog.Champions)+len(o.catalog.Items)+len(o.catalog.Components))
	for _, champ := range o.catalog.Champions {
		paths = append(paths, champ.SquareIcon)
	}
	for _, item := range o.catalog.Items {
		paths = append(paths, item.Icon)
	}
	for _, component := range o.catalog.Components {
		paths = append(paths, component.Icon)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return out, errors.WrapWithCode(err, errors.CodeCanceled, "icon download canceled")
		}
		if _, err := o.icons.Resolve(ctx, p); err != nil {
			out.Failed++
			slog.WarnContext(ctx, "icon unavailable", "path", p, "error", err)
			continue
		}
		out.Resolved++
	}

	slog.InfoContext(ctx, "icons cached", "resolved", out.Resolved, "failed", out.Failed)
	return out, nil
}

func (o *orchestrator) Champions() []ranking.Result {
	results := o.scored()

	switch o.order {
	case SortName:
		sort.SliceStable(results, func(i, j int) bool {
			return strings.ToLower(results[i].State.Champion.Name) < strings.ToLower(results[j].State.Champion.Name)
		})
	case SortCost:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].State.Champion.Cost < results[j].State.Champion.Cost
		})
	case SortScore:
		return o.Ranked()
	}
	return results
}

func (o *orchestrator) Ranked() []ranking.Result {
	return ranking.Rank(o.store.States(), o.inv)
}

// scored pairs each champion with its score in roster order
func (o *orchestrator) scored() []ranking.Result {
	owned := o.inv.Counts()
	states := o.store.States()

	results := make([]ranking.Result, len(states))
	for i, state := range states {
		results[i] = ranking.Result{State: state, Score: ranking.Score(state, owned)}
	}
	return results
}

func (o *orchestrator) Items() []tft.Item {
	items := make([]tft.Item, len(o.catalog.Items))
	for i, item := range o.catalog.Items {
		items[i] = item.Clone()
	}
	return items
}

func (o *orchestrator) Components() []tft.ComponentState {
	return o.inv.States()
}

func (o *orchestrator) Focused() (tft.ChampionState, bool) {
	if o.focused == "" {
		return tft.ChampionState{}, false
	}
	state, err := o.store.Get(o.focused)
	if err != nil {
		return tft.ChampionState{}, false
	}
	return state, true
}

func (o *orchestrator) Screen() Screen {
	return o.screen
}

func (o *orchestrator) SortOrder() SortOrder {
	return o.order
}

func (o *orchestrator) SetName() string {
	return o.catalog.SetName
}

// targetChampion resolves ref, falling back to the focused champion
func (o *orchestrator) targetChampion(ref string) (string, error) {
	if ref == "" {
		if o.focused == "" {
			return "", errors.FailedPrecondition("no champion selected")
		}
		return o.focused, nil
	}
	return o.resolveChampion(ref)
}

// resolveChampion maps a user reference onto a roster display name. Exact
// names win over case-insensitive ones, and identifiers are accepted too.
func (o *orchestrator) resolveChampion(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.InvalidArgument("champion is required")
	}

	if champ, err := o.catalog.Champion(ref); err == nil {
		return champ.Name, nil
	}
	for _, champ := range o.catalog.Champions {
		if strings.EqualFold(champ.Name, ref) || strings.EqualFold(champ.APIName, ref) {
			return champ.Name, nil
		}
	}
	return "", errors.NotFoundf("champion %s not found", ref).WithMeta("champion", ref)
}

func (o *orchestrator) resolveItem(ref string) (tft.Item, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return tft.Item{}, errors.InvalidArgument("item is required")
	}

	if item, err := o.catalog.Item(ref); err == nil {
		return item, nil
	}
	if item, ok := findItem(o.catalog.Items, ref); ok {
		return item, nil
	}
	return tft.Item{}, errors.NotFoundf("item %s not found", ref).WithMeta("item", ref)
}

func (o *orchestrator) resolveComponent(ref string) (tft.Item, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return tft.Item{}, errors.InvalidArgument("component is required")
	}

	if component, err := o.catalog.Component(ref); err == nil {
		return component, nil
	}
	if component, ok := findItem(o.catalog.Components, ref); ok {
		return component, nil
	}
	return tft.Item{}, errors.NotFoundf("component %s not found", ref).WithMeta("component", ref)
}

func findItem(items []tft.Item, ref string) (tft.Item, bool) {
	for _, item := range items {
		if strings.EqualFold(item.Name, ref) || strings.EqualFold(item.APIName, ref) {
			return item, true
		}
	}
	return tft.Item{}, false
}

// ParseScreen validates a screen name
func ParseScreen(s string) (Screen, error) {
	for _, screen := range Screens {
		if strings.EqualFold(s, string(screen)) {
			return screen, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown screen %q (want builder or determiner)", s)
}

// ParseSortOrder validates a sort order name
func ParseSortOrder(s string) (SortOrder, error) {
	for _, order := range SortOrders {
		if strings.EqualFold(s, string(order)) {
			return order, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown sort order %q (want roster, name, cost or score)", s)
}
