// Package item provides the lost-and-found record type and its construction
// from a normalized sheet table.
//
// Columns are located by label, so the sheet's column order does not matter
// and a missing column only defaults the affected field. A row is kept only
// when its item number is non-empty. Pickup dates arrive in the gviz
// "Date(year,monthZeroBased,day)" encoding; anything else yields a nil date.
package item
