// Package services holds domain services that span aggregates and roles.
//
// AccessPolicy is the single place that answers "may this role perform this
// status change" and "may this caller see this order". Command handlers and
// HTTP handlers consult it before touching an order.
package services
