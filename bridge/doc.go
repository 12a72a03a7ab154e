// Package bridge implements the Bridge pattern: the Shape abstraction is
// decoupled from the DrawAPI that renders it. A Circle holds its geometry
// and a reference to an injected DrawAPI; swapping the API changes how the
// circle is drawn without touching Circle.
//
// The abstraction contract is the Shape interface; there is no base type
// with a default Draw to forget to override.
package bridge
