package rit

import (
	"context"

	"github.com/beevik/etree"
	"github.com/juju/errors"

	"github.com/sirosfoundation/go-rit/pkg/object"
)

// SearchCondition selects objects in searchTouristObjects
type SearchCondition struct {
	Language                  string            `xml:"language"`
	AllForDistributionChannel bool              `xml:"allForDistributionChannel"`
	ObjectIdentifier          *object.CatalogID `xml:"objectIdentifier,omitempty"`
}

// Search runs searchTouristObjects and returns the response body. An empty
// language is replaced with DefaultLanguage.
func (c *Client) Search(ctx context.Context, cond SearchCondition) (*etree.Element, error) {
	cond.Language = languageOrDefault(cond.Language)
	resp, err := c.invoke(ctx, OpSearchTouristObjects, GroupCollectTouristObjects, "searchCondition", cond)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// GetAllObjects returns every object of the distribution channel
func (c *Client) GetAllObjects(ctx context.Context, language string) (*etree.Element, error) {
	return c.Search(ctx, SearchCondition{
		Language:                  language,
		AllForDistributionChannel: true,
	})
}

// GetObjectByID returns one object by its catalog identifier
func (c *Client) GetObjectByID(ctx context.Context, id, language string) (*etree.Element, error) {
	if id == "" {
		return nil, errors.NotValidf("empty object identifier")
	}
	return c.Search(ctx, SearchCondition{
		Language:         language,
		ObjectIdentifier: &object.CatalogID{IdentifierRIT: id},
	})
}

// FoundObjects returns the touristObject elements of a search response
func FoundObjects(body *etree.Element) []*etree.Element {
	if body == nil {
		return nil
	}
	return body.FindElements(".//touristObject")
}
