package scope

import "unsafe"

// scopeAddr gives a stable, comparable identity for a *Scope without
// exposing the pointer type itself to callers that only need map keys.
func scopeAddr(s *Scope) uintptr {
	return uintptr(unsafe.Pointer(s))
}
