// ABOUTME: Stateful list controller: load/refresh cycle, debounced search,
// ABOUTME: sorting, pagination, selection and the dialog-driven CRUD flows.

package list

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"github.com/abmusica/maestro/internal/api"
	"github.com/abmusica/maestro/internal/dialog"
	"github.com/abmusica/maestro/internal/schema"
)

// State is the lifecycle of the row set.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Defaults of the list engine.
const (
	DefaultPageSize     = 5
	DefaultLoadDelay    = time.Second
	DefaultDebounce     = 300 * time.Millisecond
	CondensedBreakpoint = 600
)

// PageSizes are the offered page size choices.
var PageSizes = []int{5, 10, 20}

// Capabilities are the data operations a page wires into the controller.
// Absent operations disable the corresponding flow.
type Capabilities struct {
	List   func(ctx context.Context) ([]api.Doc, error)
	Create func(ctx context.Context, values api.Doc) error
	Update func(ctx context.Context, id int64, values api.Doc) error
	Delete func(ctx context.Context, id int64) error
}

// Hooks override the default dialog flows, the way the gallery page swaps
// the plain create form for its batch dialog.
type Hooks struct {
	OnAdd    func(ctx context.Context, c *Controller) error
	OnEdit   func(ctx context.Context, c *Controller, row api.Doc) error
	OnView   func(ctx context.Context, c *Controller, row api.Doc) error
	OnDelete func(ctx context.Context, c *Controller, row api.Doc) error
}

// Notifier surfaces operation outcomes to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type logNotifier struct{ logger *log.Logger }

func (n logNotifier) Success(msg string) { n.logger.Printf("ok: %s", msg) }
func (n logNotifier) Error(msg string)   { n.logger.Printf("erro: %s", msg) }

// Config declares one list page.
type Config struct {
	Title      string
	EntityName string
	Columns    []schema.Column

	FormFields   func(doc api.Doc) []schema.Field
	DetailFields func(doc api.Doc) []schema.DetailField
	// Derive adds synthetic display fields to each loaded row.
	Derive func(doc api.Doc)

	// LoadDelay throttles every load. Pages keep the default of one
	// second; tests set zero.
	LoadDelay time.Duration
	// Debounce is the search quiet window (default 300ms).
	Debounce time.Duration

	PageSize int
	Logger   *log.Logger
	Notifier Notifier
	Hooks    Hooks

	// OnSelection is invoked with the selected ids on every selection change.
	OnSelection func(ids []int64)
}

// Controller drives one entity list.
type Controller struct {
	cfg     Config
	caps    Capabilities
	dialogs dialog.Opener

	mu       sync.Mutex
	state    State
	loadErr  error
	all      []api.Doc
	search   string
	sortCol  string
	sortDesc bool
	page     int
	pageSize int
	width    int
	selected map[int64]bool

	refreshCh chan struct{}
	searchCh  chan string
	changes   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New builds a controller and starts its workers. The caller owns the
// controller and must Close it.
func New(cfg Config, caps Capabilities, dialogs dialog.Opener) *Controller {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Notifier == nil {
		cfg.Notifier = logNotifier{logger: cfg.Logger}
	}
	c := &Controller{
		cfg:       cfg,
		caps:      caps,
		dialogs:   dialogs,
		pageSize:  cfg.PageSize,
		selected:  make(map[int64]bool),
		refreshCh: make(chan struct{}, 1),
		searchCh:  make(chan string, 1),
		changes:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	c.wg.Add(2)
	go c.refreshWorker()
	go c.debounceWorker()
	return c
}

// Close stops the workers and releases the debounce timer.
func (c *Controller) Close() {
	c.closeOnce.Do(func() { close(c.done) })
	c.wg.Wait()
}

// Changes delivers a coalesced signal after every externally visible change.
func (c *Controller) Changes() <-chan struct{} { return c.changes }

func (c *Controller) notify() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

// Refresh requests a reload. Triggers coalesce; an in-flight load finishes
// first, so the response of the latest load always wins.
func (c *Controller) Refresh() {
	select {
	case c.refreshCh <- struct{}{}:
	case <-c.done:
	}
}

func (c *Controller) refreshWorker() {
	defer c.wg.Done()
	defer c.recoverPanic("refresh worker")
	for {
		select {
		case <-c.done:
			return
		case <-c.refreshCh:
			c.load()
		}
	}
}

func (c *Controller) recoverPanic(where string) {
	if r := recover(); r != nil {
		c.cfg.Logger.Printf("[%s] panic in %s: %v\n%s",
			time.Now().Format(time.RFC3339), where, r, debug.Stack())
	}
}

func (c *Controller) load() {
	c.mu.Lock()
	c.state = Loading
	c.mu.Unlock()
	c.notify()

	if c.cfg.LoadDelay > 0 {
		select {
		case <-time.After(c.cfg.LoadDelay):
		case <-c.done:
			return
		}
	}

	rows, err := c.caps.List(context.Background())

	c.mu.Lock()
	if err != nil {
		c.state = Failed
		c.loadErr = err
		c.all = nil
	} else {
		for _, row := range rows {
			if c.cfg.Derive != nil {
				c.cfg.Derive(row)
			}
		}
		c.state = Loaded
		c.loadErr = nil
		c.all = rows
		c.pruneSelection()
	}
	c.mu.Unlock()
	c.notify()

	if err != nil {
		c.cfg.Notifier.Error("Erro ao carregar dados")
	}
}

// pruneSelection drops selected ids that no longer exist. Callers hold mu.
func (c *Controller) pruneSelection() {
	if len(c.selected) == 0 {
		return
	}
	present := make(map[int64]bool, len(c.all))
	for _, row := range c.all {
		present[DocID(row)] = true
	}
	changed := false
	for id := range c.selected {
		if !present[id] {
			delete(c.selected, id)
			changed = true
		}
	}
	if changed {
		c.emitSelectionLocked()
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the last load error, nil unless State is Failed.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

// SetSearch feeds the debounced search input. The term is applied after the
// quiet window, and only when it actually changed.
func (c *Controller) SetSearch(term string) {
	select {
	case <-c.done:
		return
	default:
	}
	// Replace any pending term; only the latest value matters.
	for {
		select {
		case c.searchCh <- term:
			return
		case <-c.searchCh:
		}
	}
}

func (c *Controller) debounceWorker() {
	defer c.wg.Done()
	defer c.recoverPanic("debounce worker")
	var timer *time.Timer
	var timerC <-chan time.Time
	var pending string
	for {
		select {
		case <-c.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case term := <-c.searchCh:
			pending = term
			if timer == nil {
				timer = time.NewTimer(c.cfg.Debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(c.cfg.Debounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			c.applySearch(pending)
		}
	}
}

func (c *Controller) applySearch(term string) {
	c.mu.Lock()
	if term == c.search {
		c.mu.Unlock()
		return
	}
	c.search = term
	c.mu.Unlock()
	c.notify()
}

// Search returns the currently applied search term.
func (c *Controller) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

// SetSort activates sorting on a column, toggling the direction when the
// column is already active. Non-sortable columns are ignored.
func (c *Controller) SetSort(name string) {
	c.mu.Lock()
	col, ok := findColumn(c.cfg.Columns, name)
	if !ok || !col.IsSortable() {
		c.mu.Unlock()
		return
	}
	if c.sortCol == name {
		c.sortDesc = !c.sortDesc
	} else {
		c.sortCol = name
		c.sortDesc = false
	}
	c.mu.Unlock()
	c.notify()
}

// Sort returns the active sort column and direction.
func (c *Controller) Sort() (column string, descending bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortCol, c.sortDesc
}

// SetPage moves to a page; the value clamps on the next Rows call.
func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	if page < 0 {
		page = 0
	}
	c.page = page
	c.mu.Unlock()
	c.notify()
}

// SetPageSize switches the page size, keeping only offered sizes.
func (c *Controller) SetPageSize(size int) {
	valid := false
	for _, s := range PageSizes {
		if s == size {
			valid = true
			break
		}
	}
	if !valid {
		return
	}
	c.mu.Lock()
	c.pageSize = size
	c.page = 0
	c.mu.Unlock()
	c.notify()
}

// Page returns the current (clamped) page index and page size.
func (c *Controller) Page() (page, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page, c.pageSize
}

// SetViewportWidth records the viewport width driving the condensed layout.
func (c *Controller) SetViewportWidth(px int) {
	c.mu.Lock()
	c.width = px
	c.mu.Unlock()
	c.notify()
}

// Condensed reports whether the table should render its narrow layout. The
// row data is identical in both layouts.
func (c *Controller) Condensed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width > 0 && c.width < CondensedBreakpoint
}

// Rows returns the visible page: loaded rows filtered by the applied search,
// sorted by the active column and sliced to the current page. The page index
// clamps when the filtered set shrank.
func (c *Controller) Rows() []api.Doc {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows, page := Paginate(c.filteredLocked(), c.page, c.pageSize)
	c.page = page
	return rows
}

// FilteredCount returns the size of the filtered set across all pages.
func (c *Controller) FilteredCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.filteredLocked())
}

func (c *Controller) filteredLocked() []api.Doc {
	filtered := Filter(c.all, c.search, c.cfg.Columns)
	return Sort(filtered, c.cfg.Columns, c.sortCol, c.sortDesc)
}

func (c *Controller) rowByID(id int64) (api.Doc, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, row := range c.all {
		if DocID(row) == id {
			return row, true
		}
	}
	return nil, false
}

// ToggleSelect flips one row's selection.
func (c *Controller) ToggleSelect(id int64) {
	c.mu.Lock()
	if c.selected[id] {
		delete(c.selected, id)
	} else {
		c.selected[id] = true
	}
	c.emitSelectionLocked()
	c.mu.Unlock()
	c.notify()
}

// SelectAll selects the entire filtered set, not just the visible page.
func (c *Controller) SelectAll() {
	c.mu.Lock()
	for _, row := range c.filteredLocked() {
		c.selected[DocID(row)] = true
	}
	c.emitSelectionLocked()
	c.mu.Unlock()
	c.notify()
}

// ClearSelection deselects everything.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	c.selected = make(map[int64]bool)
	c.emitSelectionLocked()
	c.mu.Unlock()
	c.notify()
}

// Selected returns the selected ids in ascending order.
func (c *Controller) Selected() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedLocked()
}

func (c *Controller) selectedLocked() []int64 {
	ids := make([]int64, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c *Controller) emitSelectionLocked() {
	if c.cfg.OnSelection != nil {
		c.cfg.OnSelection(c.selectedLocked())
	}
}

// IsSelected reports one row's selection state.
func (c *Controller) IsSelected(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected[id]
}

// Add runs the create flow: form dialog, create call, refresh. A page hook
// replaces the whole flow.
func (c *Controller) Add(ctx context.Context) error {
	if c.cfg.Hooks.OnAdd != nil {
		return c.cfg.Hooks.OnAdd(ctx, c)
	}
	if c.caps.Create == nil || c.cfg.FormFields == nil {
		return nil
	}
	res := <-c.dialogs.OpenForm(dialog.FormRequest{
		Title:      "Adicionar " + c.cfg.EntityName,
		EntityName: c.cfg.EntityName,
		Fields:     c.cfg.FormFields(nil),
	}).AfterClosed()
	if !res.Submitted {
		return nil
	}
	if err := c.caps.Create(ctx, res.Values); err != nil {
		c.cfg.Notifier.Error(fmt.Sprintf("Erro ao criar %s", c.cfg.EntityName))
		return err
	}
	c.cfg.Notifier.Success(fmt.Sprintf("%s criado com sucesso", c.cfg.EntityName))
	c.Refresh()
	return nil
}

// Edit runs the update flow for one row.
func (c *Controller) Edit(ctx context.Context, id int64) error {
	row, ok := c.rowByID(id)
	if !ok {
		return fmt.Errorf("row %d not loaded", id)
	}
	if c.cfg.Hooks.OnEdit != nil {
		return c.cfg.Hooks.OnEdit(ctx, c, row)
	}
	if c.caps.Update == nil || c.cfg.FormFields == nil {
		return nil
	}
	res := <-c.dialogs.OpenForm(dialog.FormRequest{
		Title:      "Editar " + c.cfg.EntityName,
		EntityName: c.cfg.EntityName,
		Fields:     c.cfg.FormFields(row),
		Edit:       row,
	}).AfterClosed()
	if !res.Submitted {
		return nil
	}
	if err := c.caps.Update(ctx, id, res.Values); err != nil {
		c.cfg.Notifier.Error(fmt.Sprintf("Erro ao atualizar %s", c.cfg.EntityName))
		return err
	}
	c.cfg.Notifier.Success(fmt.Sprintf("%s atualizado com sucesso", c.cfg.EntityName))
	c.Refresh()
	return nil
}

// View opens the read-only detail dialog for one row and waits for it. When
// the dialog closes asking for edit, the edit flow opens immediately.
func (c *Controller) View(ctx context.Context, id int64) error {
	row, ok := c.rowByID(id)
	if !ok {
		return fmt.Errorf("row %d not loaded", id)
	}
	if c.cfg.Hooks.OnView != nil {
		return c.cfg.Hooks.OnView(ctx, c, row)
	}
	if c.cfg.DetailFields == nil {
		return nil
	}
	res := <-c.dialogs.OpenDetails(dialog.DetailsRequest{
		Title:  c.cfg.EntityName,
		Fields: c.cfg.DetailFields(row),
	}).AfterClosed()
	if res.Edit {
		return c.Edit(ctx, id)
	}
	return nil
}

// Delete runs the confirm-then-delete flow. A failed delete leaves the
// loaded rows untouched; only a confirmed successful delete refreshes.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	row, ok := c.rowByID(id)
	if !ok {
		return fmt.Errorf("row %d not loaded", id)
	}
	if c.cfg.Hooks.OnDelete != nil {
		return c.cfg.Hooks.OnDelete(ctx, c, row)
	}
	if c.caps.Delete == nil {
		return nil
	}
	confirmed := <-c.dialogs.OpenConfirm(dialog.ConfirmRequest{
		Title:      "Excluir " + c.cfg.EntityName,
		Message:    fmt.Sprintf("Tem certeza que deseja excluir este registro (#%d)?", id),
		EntityName: c.cfg.EntityName,
	}).AfterClosed()
	if !confirmed {
		return nil
	}
	if err := c.caps.Delete(ctx, id); err != nil {
		c.cfg.Notifier.Error(fmt.Sprintf("Erro ao excluir %s", c.cfg.EntityName))
		return err
	}
	c.cfg.Notifier.Success(fmt.Sprintf("%s excluído com sucesso", c.cfg.EntityName))
	c.Refresh()
	return nil
}
