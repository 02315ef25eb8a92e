// ABOUTME: Tests for the list controller: lifecycle, debounce, selection
// ABOUTME: and the dialog-driven CRUD flows.

package list

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abmusica/maestro/internal/api"
	"github.com/abmusica/maestro/internal/dialog"
	"github.com/abmusica/maestro/internal/schema"
)

func testConfig() Config {
	return Config{
		Title:      "Músicos",
		EntityName: "Músico",
		Columns:    testColumns,
		FormFields: func(doc api.Doc) []schema.Field { return nil },
		Logger:     log.New(io.Discard, "", 0),
		Debounce:   10 * time.Millisecond,
	}
}

func waitFor(t *testing.T, c *Controller, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if cond() {
			return
		}
		select {
		case <-c.Changes():
		case <-deadline:
			t.Fatal("condition not reached in time")
		}
	}
}

func staticList(rows []api.Doc) Capabilities {
	return Capabilities{
		List: func(ctx context.Context) ([]api.Doc, error) {
			out := make([]api.Doc, len(rows))
			for i, r := range rows {
				dup := api.Doc{}
				for k, v := range r {
					dup[k] = v
				}
				out[i] = dup
			}
			return out, nil
		},
	}
}

func TestLifecycle(t *testing.T) {
	caps := staticList(musicianRows())
	c := New(testConfig(), caps, &dialog.Script{})
	defer c.Close()

	if c.State() != Idle {
		t.Fatalf("initial state = %v, want idle", c.State())
	}
	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Loaded })
	if got := c.FilteredCount(); got != 3 {
		t.Errorf("filtered count = %d, want 3", got)
	}
}

func TestLoadErrorState(t *testing.T) {
	caps := Capabilities{
		List: func(ctx context.Context) ([]api.Doc, error) {
			return nil, fmt.Errorf("backend down")
		},
	}
	c := New(testConfig(), caps, &dialog.Script{})
	defer c.Close()

	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Failed })
	if c.Err() == nil {
		t.Error("Err() should carry the load error")
	}
	if len(c.Rows()) != 0 {
		t.Error("failed load should expose no rows")
	}
}

func TestLoadDelay(t *testing.T) {
	cfg := testConfig()
	cfg.LoadDelay = 50 * time.Millisecond
	c := New(cfg, staticList(musicianRows()), &dialog.Script{})
	defer c.Close()

	start := time.Now()
	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Loaded })
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("load finished in %v, want at least the configured delay", elapsed)
	}
}

func TestDebouncedSearch(t *testing.T) {
	c := New(testConfig(), staticList(musicianRows()), &dialog.Script{})
	defer c.Close()
	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Loaded })

	// Rapid keystrokes: only the final value is applied.
	c.SetSearch("a")
	c.SetSearch("an")
	c.SetSearch("ana")
	waitFor(t, c, func() bool { return c.Search() == "ana" })

	rows := c.Rows()
	if len(rows) != 1 || rows[0]["firstName"] != "ana" {
		t.Errorf("rows after search = %v", rows)
	}
}

func TestSortToggle(t *testing.T) {
	c := New(testConfig(), staticList(musicianRows()), &dialog.Script{})
	defer c.Close()
	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Loaded })

	c.SetSort("name")
	if col, desc := c.Sort(); col != "name" || desc {
		t.Errorf("sort = %s desc=%v, want name asc", col, desc)
	}
	if rows := c.Rows(); rows[0]["firstName"] != "ana" {
		t.Errorf("first row = %v", rows[0]["firstName"])
	}

	c.SetSort("name")
	if _, desc := c.Sort(); !desc {
		t.Error("second click should toggle to descending")
	}

	c.SetSort("phone")
	if col, _ := c.Sort(); col != "name" {
		t.Error("clicking a non-sortable column must not change the sort")
	}
}

func TestPageClampsWhenFilteredSetShrinks(t *testing.T) {
	rows := make([]api.Doc, 12)
	for i := range rows {
		rows[i] = api.Doc{"id": float64(i + 1), "email": fmt.Sprintf("m%d@banda.org", i+1), "name": fmt.Sprintf("m%d", i+1)}
	}
	c := New(testConfig(), staticList(rows), &dialog.Script{})
	defer c.Close()
	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Loaded })

	c.SetPage(2) // rows 11-12 with page size 5
	if got := c.Rows(); len(got) != 2 {
		t.Fatalf("page 2 rows = %d", len(got))
	}

	c.SetSearch("m1@")
	waitFor(t, c, func() bool { return c.Search() == "m1@" })
	got := c.Rows()
	page, _ := c.Page()
	if page != 0 || len(got) != 1 {
		t.Errorf("after shrink: page=%d rows=%d, want clamped to 0 with 1 row", page, len(got))
	}
}

func TestSetPageSize(t *testing.T) {
	c := New(testConfig(), staticList(musicianRows()), &dialog.Script{})
	defer c.Close()

	c.SetPageSize(10)
	if _, size := c.Page(); size != 10 {
		t.Errorf("size = %d, want 10", size)
	}
	c.SetPageSize(7)
	if _, size := c.Page(); size != 10 {
		t.Error("unsupported page size must be rejected")
	}
}

func TestSelectAllCoversFullFilteredSet(t *testing.T) {
	rows := make([]api.Doc, 12)
	for i := range rows {
		rows[i] = api.Doc{"id": float64(i + 1), "email": fmt.Sprintf("m%d@banda.org", i+1)}
	}
	var emitted atomic.Int32
	cfg := testConfig()
	cfg.OnSelection = func(ids []int64) { emitted.Add(1) }
	c := New(cfg, staticList(rows), &dialog.Script{})
	defer c.Close()
	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Loaded })

	c.SelectAll()
	if got := c.Selected(); len(got) != 12 {
		t.Errorf("selected = %d, want every filtered row, not just the visible page", len(got))
	}
	if emitted.Load() == 0 {
		t.Error("selection change must be emitted")
	}

	c.ClearSelection()
	c.ToggleSelect(3)
	c.ToggleSelect(5)
	c.ToggleSelect(3)
	if got := c.Selected(); len(got) != 1 || got[0] != 5 {
		t.Errorf("selected = %v, want [5]", got)
	}
}

func TestCondensedBreakpoint(t *testing.T) {
	c := New(testConfig(), staticList(nil), &dialog.Script{})
	defer c.Close()

	tests := []struct {
		width int
		want  bool
	}{
		{0, false},
		{599, true},
		{600, false},
		{1024, false},
	}
	for _, tt := range tests {
		c.SetViewportWidth(tt.width)
		if got := c.Condensed(); got != tt.want {
			t.Errorf("width %d: condensed = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestAddFlow(t *testing.T) {
	var created api.Doc
	caps := staticList(musicianRows())
	caps.Create = func(ctx context.Context, values api.Doc) error {
		created = values
		return nil
	}
	script := &dialog.Script{
		OnForm: func(req dialog.FormRequest) dialog.FormResult {
			return dialog.FormResult{Submitted: true, Values: api.Doc{"firstName": "Davi"}}
		},
	}
	cfg := testConfig()
	c := New(cfg, caps, script)
	defer c.Close()

	if err := c.Add(context.Background()); err != nil {
		t.Fatal(err)
	}
	if created == nil || created["firstName"] != "Davi" {
		t.Errorf("created = %v", created)
	}
	// The successful create triggers a refresh.
	waitFor(t, c, func() bool { return c.State() == Loaded })
}

func TestAddCancelledDoesNotCreate(t *testing.T) {
	var calls int
	caps := staticList(nil)
	caps.Create = func(ctx context.Context, values api.Doc) error {
		calls++
		return nil
	}
	c := New(testConfig(), caps, &dialog.Script{}) // zero Script cancels
	defer c.Close()

	if err := c.Add(context.Background()); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Error("cancelled dialog must not create")
	}
}

func TestDeleteFailureLeavesRowsUntouched(t *testing.T) {
	caps := staticList(musicianRows())
	caps.Delete = func(ctx context.Context, id int64) error {
		return fmt.Errorf("constraint violation")
	}
	script := &dialog.Script{
		OnConfirm: func(req dialog.ConfirmRequest) bool { return true },
	}
	c := New(testConfig(), caps, script)
	defer c.Close()
	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Loaded })

	before := c.FilteredCount()
	if err := c.Delete(context.Background(), 2); err == nil {
		t.Fatal("delete should propagate the failure")
	}
	if got := c.FilteredCount(); got != before {
		t.Errorf("rows changed after failed delete: %d -> %d", before, got)
	}
	if c.State() != Loaded {
		t.Errorf("state = %v, want still loaded", c.State())
	}
}

func TestDeleteDeclined(t *testing.T) {
	var calls int
	caps := staticList(musicianRows())
	caps.Delete = func(ctx context.Context, id int64) error {
		calls++
		return nil
	}
	c := New(testConfig(), caps, &dialog.Script{})
	defer c.Close()
	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Loaded })

	if err := c.Delete(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Error("declined confirmation must not delete")
	}
}

func TestHookOverridesAdd(t *testing.T) {
	var hooked bool
	cfg := testConfig()
	cfg.Hooks.OnAdd = func(ctx context.Context, c *Controller) error {
		hooked = true
		return nil
	}
	script := &dialog.Script{}
	c := New(cfg, staticList(nil), script)
	defer c.Close()

	if err := c.Add(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !hooked {
		t.Error("hook not invoked")
	}
	if opened := script.Opened(); len(opened) != 0 {
		t.Errorf("default form dialog opened despite hook: %v", opened)
	}
}

func TestViewOpensDetails(t *testing.T) {
	script := &dialog.Script{}
	cfg := testConfig()
	cfg.DetailFields = func(doc api.Doc) []schema.DetailField {
		return nil
	}
	c := New(cfg, staticList(musicianRows()), script)
	defer c.Close()
	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Loaded })

	if err := c.View(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if opened := script.Opened(); len(opened) != 1 || opened[0] != "details" {
		t.Errorf("opened = %v", opened)
	}
}

func TestViewChainsIntoEditOnRequest(t *testing.T) {
	var updated api.Doc
	caps := staticList(musicianRows())
	caps.Update = func(ctx context.Context, id int64, values api.Doc) error {
		updated = values
		return nil
	}
	script := &dialog.Script{
		OnDetails: func(req dialog.DetailsRequest) dialog.DetailsResult {
			return dialog.DetailsResult{Edit: true}
		},
		OnForm: func(req dialog.FormRequest) dialog.FormResult {
			return dialog.FormResult{Submitted: true, Values: api.Doc{"firstName": "Ana Clara"}}
		},
	}
	cfg := testConfig()
	cfg.DetailFields = func(doc api.Doc) []schema.DetailField { return nil }
	c := New(cfg, caps, script)
	defer c.Close()
	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Loaded })

	if err := c.View(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if opened := script.Opened(); len(opened) != 2 || opened[0] != "details" || opened[1] != "form" {
		t.Errorf("opened = %v, want details then form", opened)
	}
	if updated == nil || updated["firstName"] != "Ana Clara" {
		t.Errorf("updated = %v", updated)
	}
}

func TestViewClosedWithoutEditStaysPut(t *testing.T) {
	var updates int
	caps := staticList(musicianRows())
	caps.Update = func(ctx context.Context, id int64, values api.Doc) error {
		updates++
		return nil
	}
	script := &dialog.Script{}
	cfg := testConfig()
	cfg.DetailFields = func(doc api.Doc) []schema.DetailField { return nil }
	c := New(cfg, caps, script)
	defer c.Close()
	c.Refresh()
	waitFor(t, c, func() bool { return c.State() == Loaded })

	if err := c.View(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if opened := script.Opened(); len(opened) != 1 || opened[0] != "details" {
		t.Errorf("opened = %v, want only the detail dialog", opened)
	}
	if updates != 0 {
		t.Errorf("updates = %d, want none", updates)
	}
}
