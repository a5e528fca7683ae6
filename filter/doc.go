// Package filter holds the traffic Filter value and a host-side state holder
// for it.
//
// A Filter is owned by the host application. Editors never mutate one in
// place: they derive a new value with WithPattern and hand it to a Setter.
package filter
