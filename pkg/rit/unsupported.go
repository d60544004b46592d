package rit

import (
	"context"
	"time"

	"github.com/beevik/etree"
	"github.com/juju/errors"

	"github.com/sirosfoundation/go-rit/pkg/object"
)

// The operations below exist in the catalog's service description but are
// not implemented by this client. They always fail with errors.NotSupported
// and never contact the catalog.

// DeleteObject is not supported
func (c *Client) DeleteObject(ctx context.Context, id object.Identifier) error {
	return errors.NotSupportedf("DeleteObject")
}

// DeleteObjects is not supported
func (c *Client) DeleteObjects(ctx context.Context, ids []object.Identifier) error {
	return errors.NotSupportedf("DeleteObjects")
}

// SearchByAttributes is not supported
func (c *Client) SearchByAttributes(ctx context.Context, attributes []object.AttributeInput) (*etree.Element, error) {
	return nil, errors.NotSupportedf("SearchByAttributes")
}

// SearchByCategories is not supported
func (c *Client) SearchByCategories(ctx context.Context, categories []string) (*etree.Element, error) {
	return nil, errors.NotSupportedf("SearchByCategories")
}

// SearchByModificationDate is not supported
func (c *Client) SearchByModificationDate(ctx context.Context, from, to time.Time) (*etree.Element, error) {
	return nil, errors.NotSupportedf("SearchByModificationDate")
}

// GetFile is not supported
func (c *Client) GetFile(ctx context.Context, fileID string) ([]byte, error) {
	return nil, errors.NotSupportedf("GetFile")
}
