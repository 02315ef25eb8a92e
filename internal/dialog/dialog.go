// ABOUTME: Dialog orchestration contracts: form, details and delete-confirm.
// ABOUTME: Handles deliver exactly one result on AfterClosed, then close.

package dialog

import "github.com/abmusica/maestro/internal/schema"

// FormRequest opens a create/edit dialog.
type FormRequest struct {
	Title      string
	EntityName string
	Fields     []schema.Field
	// Edit carries the record under edit; nil means create.
	Edit map[string]any
}

// FormResult is what a closed form dialog yields. A cancelled dialog has
// Submitted false and nil Values.
type FormResult struct {
	Submitted bool
	Values    map[string]any
}

// DetailsRequest opens a read-only detail dialog.
type DetailsRequest struct {
	Title  string
	Fields []schema.DetailField
}

// DetailsResult is what a closed detail dialog yields. Edit set means the
// user asked to switch into the edit flow.
type DetailsResult struct {
	Edit bool
}

// ConfirmRequest opens a delete confirmation.
type ConfirmRequest struct {
	Title      string
	Message    string
	EntityName string
}

// FormHandle is an open form dialog.
type FormHandle interface {
	AfterClosed() <-chan FormResult
}

// DetailsHandle is an open detail dialog.
type DetailsHandle interface {
	AfterClosed() <-chan DetailsResult
}

// ConfirmHandle is an open confirmation dialog.
type ConfirmHandle interface {
	AfterClosed() <-chan bool
}

// Opener opens the three dialog flavors. The list controller drives all of
// its add/edit/view/delete flows through this interface.
type Opener interface {
	OpenForm(req FormRequest) FormHandle
	OpenDetails(req DetailsRequest) DetailsHandle
	OpenConfirm(req ConfirmRequest) ConfirmHandle
}

type formHandle chan FormResult

func (h formHandle) AfterClosed() <-chan FormResult { return h }

type detailsHandle chan DetailsResult

func (h detailsHandle) AfterClosed() <-chan DetailsResult { return h }

type confirmHandle chan bool

func (h confirmHandle) AfterClosed() <-chan bool { return h }

func resolveForm(r FormResult) FormHandle {
	h := make(formHandle, 1)
	h <- r
	close(h)
	return h
}

func resolveDetails(r DetailsResult) DetailsHandle {
	h := make(detailsHandle, 1)
	h <- r
	close(h)
	return h
}

func resolveConfirm(v bool) ConfirmHandle {
	h := make(confirmHandle, 1)
	h <- v
	close(h)
	return h
}
