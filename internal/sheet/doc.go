// Package sheet provides HTTP fetching and response parsing for Google Sheets
// published through the Visualization (gviz) query endpoint.
//
// The sheet package requests a tab of a spreadsheet as gviz JSON, unwraps the
// JavaScript callback envelope the provider puts around it, and normalizes the
// result into a Table of labelled columns and typed cells. Transport failures
// (non-2xx statuses) are reported as *TransportError; payloads that cannot be
// unwrapped or decoded wrap ErrMalformedResponse. A table with zero rows is a
// valid result, not an error.
package sheet
