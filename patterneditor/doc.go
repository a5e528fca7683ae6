// Package patterneditor binds an editing surface to the Pattern field of a
// host-owned filter.Filter.
//
// The binding (Model) owns no filter state. It seeds the surface from the
// host's current filter when the surface mounts, and on every text change it
// hands the host a copy of the current filter with Pattern replaced. The
// surface is injected through a Factory; Flourish returns the default one,
// backed by the flourish editor component.
package patterneditor
