// Package events carries roster change notifications from the gradebook to
// whoever is interested (logging, a presentation layer) without the gradebook
// knowing who listens.
//
// The primary components are:
// - RosterEvent: describes one successful roster mutation
// - EventHandler: interface for components that react to events
// - EventEmitter: interface for components that publish events
package events
