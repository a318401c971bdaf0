// Package dto holds the API input and view types exchanged by the webapi
// layer, plus the list query parameter structs.
package dto

// Link is a single HATEOAS navigational link.
type Link struct {
	Href string `json:"href"`
}

// Links maps link relations ("self", "collection") to their targets.
type Links map[string]Link
