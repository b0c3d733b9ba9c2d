/*
Package controller holds the UI-selection state and routes user actions to
the catalog, rating, and comparison logic.

All state lives in one explicit Controller value rather than ambient globals,
so the pure functions it dispatches to stay testable in isolation. Every
action completes synchronously; displayed lists are re-derived on demand
rather than cached, since the catalog is small and static.
*/
package controller

import (
	"fmt"
	"log"
	"strings"

	"github.com/khanglvm/tool-advisor/internal/catalog"
	"github.com/khanglvm/tool-advisor/internal/compare"
	"github.com/khanglvm/tool-advisor/internal/rating"
	"github.com/khanglvm/tool-advisor/internal/storage"
)

// View identifies the active screen.
type View string

const (
	// ViewSearch is the intent search screen.
	ViewSearch View = "search"

	// ViewCatalog is the category/platform browse screen.
	ViewCatalog View = "catalog"

	// ViewCompare is the side-by-side comparison screen.
	ViewCompare View = "compare"
)

// Controller owns the transient UI state: active view, intent query, filter
// selection, and comparison set. The catalog store and rating ledger are
// long-lived collaborators it dispatches to.
type Controller struct {
	store  *catalog.Store
	ledger *rating.Ledger
	kv     storage.KV

	view           View
	query          string
	querySubmitted bool
	selection      catalog.FilterSelection
	comparison     *compare.Set
	workspaceURL   string
}

// New creates a controller on the search view with empty filters and an
// empty comparison set. The last-submitted workspace resource, if any, is
// recovered from the key-value store.
func New(store *catalog.Store, ledger *rating.Ledger, kv storage.KV) *Controller {
	c := &Controller{
		store:      store,
		ledger:     ledger,
		kv:         kv,
		view:       ViewSearch,
		selection:  catalog.NewFilterSelection(),
		comparison: compare.NewSet(),
	}

	if data, ok, err := kv.Get(storage.KeyWorkspaceResource); err == nil && ok {
		c.workspaceURL = string(data)
	}

	return c
}

// View returns the active view tag.
func (c *Controller) View() View {
	return c.view
}

// SwitchView changes the active view.
func (c *Controller) SwitchView(v View) {
	c.view = v
}

// SubmitQuery records an intent query and switches to the search view.
func (c *Controller) SubmitQuery(query string) {
	c.query = query
	c.querySubmitted = true
	c.view = ViewSearch
}

// Query returns the current intent query.
func (c *Controller) Query() string {
	return c.query
}

// QuerySubmitted reports whether any query was ever submitted. The search
// view shows "enter a query" before the first submission and "no results"
// after an unsuccessful one.
func (c *Controller) QuerySubmitted() bool {
	return c.querySubmitted
}

// Results derives the intent search results from the current query.
func (c *Controller) Results() []catalog.ToolRecord {
	return c.store.Match(c.query)
}

// OpenRelated navigates a related-tool reference: the name becomes the new
// intent query and the search view becomes active. This is a convenience
// navigation, not a data-model operation.
func (c *Controller) OpenRelated(name string) {
	c.SubmitQuery(name)
}

// SetCatalogSearch updates the browse view's free-text filter.
func (c *Controller) SetCatalogSearch(search string) {
	c.selection.Search = search
}

// ToggleCategory flips a category filter chip.
func (c *Controller) ToggleCategory(category string) {
	if c.selection.Categories[category] {
		delete(c.selection.Categories, category)
	} else {
		c.selection.Categories[category] = true
	}
}

// TogglePlatform flips a platform filter chip.
func (c *Controller) TogglePlatform(platform string) {
	if c.selection.Platforms[platform] {
		delete(c.selection.Platforms, platform)
	} else {
		c.selection.Platforms[platform] = true
	}
}

// Selection returns the current filter selection.
func (c *Controller) Selection() catalog.FilterSelection {
	return c.selection
}

// Filtered derives the browse view's record list from the current filters.
func (c *Controller) Filtered() []catalog.ToolRecord {
	return c.store.Filter(c.selection)
}

// Groups derives the browse view's category groups from the current filters.
func (c *Controller) Groups() []catalog.Group {
	return catalog.GroupByCategory(c.Filtered())
}

// ToggleCompare flips a tool's comparison-set membership. Returns true when
// the tool is queued for comparison afterwards.
func (c *Controller) ToggleCompare(name string) (bool, error) {
	if _, ok := c.store.Get(name); !ok {
		return false, fmt.Errorf("unknown tool: %q", name)
	}
	return c.comparison.Toggle(name), nil
}

// ClearComparison empties the comparison set.
func (c *Controller) ClearComparison() {
	c.comparison.Clear()
}

// Comparison returns the queued tool names in insertion order.
func (c *Controller) Comparison() []string {
	return c.comparison.Members()
}

// ComparisonTable derives the comparison table. The second return value is
// false when the set has fewer than two members and the view should show a
// prompt instead.
func (c *Controller) ComparisonTable() (compare.Table, bool) {
	if c.comparison.Len() < compare.MinTableMembers {
		return compare.Table{}, false
	}
	return compare.BuildTable(c.comparison.Members(), c.store, c.ledger.Average), true
}

// Rate records the local user's stars for a tool and returns the updated
// aggregate.
func (c *Controller) Rate(name string, stars int) (rating.Aggregate, error) {
	if _, ok := c.store.Get(name); !ok {
		return rating.Aggregate{}, fmt.Errorf("unknown tool: %q", name)
	}
	return c.ledger.Rate(name, stars)
}

// Average returns a tool's average stars, if it has ever been rated.
func (c *Controller) Average(name string) (float64, bool) {
	return c.ledger.Average(name)
}

// SubmitResource stores a workspace resource link. The link is trimmed and
// must be non-empty; only the last submission is kept.
func (c *Controller) SubmitResource(link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return fmt.Errorf("resource link must not be empty")
	}

	c.workspaceURL = link
	if err := c.kv.Put(storage.KeyWorkspaceResource, []byte(link)); err != nil {
		log.Printf("Warning: failed to persist workspace resource: %v", err)
	}

	return nil
}

// WorkspaceResource returns the last-submitted resource link, if any.
func (c *Controller) WorkspaceResource() (string, bool) {
	if c.workspaceURL == "" {
		return "", false
	}
	return c.workspaceURL, true
}
