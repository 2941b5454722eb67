// Package services contains domain services that span aggregates.
// Its single responsibility today is the travel order authorization policy:
// pure predicates deciding whether a given actor may view, create, decide on,
// or self-cancel a given travel order.
package services
