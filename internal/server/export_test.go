package server

import "time"

// SetNow overrides the handler clock for deterministic tests.
func (h *APIHandler) SetNow(now func() time.Time) {
	h.now = now
}
