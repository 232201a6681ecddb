// Package search is the example feature: a filterable list of superhero
// names served by a ports.Catalog.
//
// Interactor turns Actions into Domain mutations, Reducer projects a Domain
// into a ViewState, and Router maps navigation events onto a
// ports.Navigator. NewFeature wires the first two into a feature.Feature.
package search
