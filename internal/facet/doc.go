// Package facet derives the selectable filter options for a record collection.
//
// Period options come from the data: every distinct academic term key, newest
// first. Campus and location options come from static category metadata, with
// a synthetic "other" location appended for every real campus.
package facet
