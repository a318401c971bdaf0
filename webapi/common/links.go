package common

import "github.com/corebanq/dbank/pkg/dto"

// ResourceLinks builds the hypermedia block for a single resource: a
// "self" link to the resource and a "collection" link to its listing.
func ResourceLinks(collection, id string) dto.Links {
	return dto.Links{
		"self":       dto.Link{Href: collection + "/" + id},
		"collection": dto.Link{Href: collection},
	}
}
