// ABOUTME: Scripted dialog opener: deterministic answers for tests and the CLI.

package dialog

import "sync"

// Script answers dialogs programmatically. Each Open* call resolves
// immediately with the scripted answer and is recorded in Opened. The zero
// value cancels every dialog.
type Script struct {
	// OnForm produces the form result; nil cancels.
	OnForm func(req FormRequest) FormResult
	// OnConfirm decides delete confirmations; nil declines.
	OnConfirm func(req ConfirmRequest) bool
	// OnDetails produces the details result; nil just closes the dialog.
	OnDetails func(req DetailsRequest) DetailsResult

	mu     sync.Mutex
	opened []string
}

// Opened returns the kinds of dialogs opened so far, in order
// ("form", "details", "confirm").
func (s *Script) Opened() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.opened...)
}

func (s *Script) record(kind string) {
	s.mu.Lock()
	s.opened = append(s.opened, kind)
	s.mu.Unlock()
}

func (s *Script) OpenForm(req FormRequest) FormHandle {
	s.record("form")
	if s.OnForm == nil {
		return resolveForm(FormResult{})
	}
	return resolveForm(s.OnForm(req))
}

func (s *Script) OpenDetails(req DetailsRequest) DetailsHandle {
	s.record("details")
	if s.OnDetails == nil {
		return resolveDetails(DetailsResult{})
	}
	return resolveDetails(s.OnDetails(req))
}

func (s *Script) OpenConfirm(req ConfirmRequest) ConfirmHandle {
	s.record("confirm")
	if s.OnConfirm == nil {
		return resolveConfirm(false)
	}
	return resolveConfirm(s.OnConfirm(req))
}

var _ Opener = (*Script)(nil)
