package rit

import (
	"context"

	"github.com/beevik/etree"
	"github.com/juju/errors"

	"github.com/sirosfoundation/go-rit/pkg/metadata"
)

// MetadataSource supplies indexed metadata for a language
type MetadataSource interface {
	Index(ctx context.Context, language string) (*metadata.Index, error)
}

// GetMetadata calls getMetadataOfRIT and returns the response body as sent
// by the catalog.
func (c *Client) GetMetadata(ctx context.Context, language string) (*etree.Element, error) {
	resp, err := c.invoke(ctx, OpGetMetadataOfRIT, GroupMetadataOfRIT, "language", languageOrDefault(language))
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// FetchIndex fetches, decodes and indexes the metadata. It always calls the
// catalog.
func (c *Client) FetchIndex(ctx context.Context, language string) (*metadata.Index, error) {
	body, err := c.GetMetadata(ctx, language)
	if err != nil {
		return nil, err
	}
	catalog, err := metadata.Decode(body)
	if err != nil {
		return nil, errors.Annotate(err, "decoding metadata")
	}
	return metadata.NewIndex(catalog)
}

// Metadata returns indexed metadata through the configured source
func (c *Client) Metadata(ctx context.Context, language string) (*metadata.Index, error) {
	language = languageOrDefault(language)
	if c.source != nil {
		return c.source.Index(ctx, language)
	}
	return c.FetchIndex(ctx, language)
}

// InvalidateMetadata drops cached metadata for language, or for every
// language when language is empty. It is a no-op without WithMetadataCache.
func (c *Client) InvalidateMetadata(language string) {
	if c.cache == nil {
		return
	}
	if language == "" {
		c.cache.InvalidateAll()
		return
	}
	c.cache.Invalidate(language)
}

// GetMetadataLastModificationDate returns the catalog's metadata version
func (c *Client) GetMetadataLastModificationDate(ctx context.Context, language string) (string, error) {
	idx, err := c.Metadata(ctx, language)
	if err != nil {
		return "", err
	}
	return idx.LastModificationDate(), nil
}

// GetAttributes returns every attribute definition by code
func (c *Client) GetAttributes(ctx context.Context, language string) (map[string]metadata.Attribute, error) {
	idx, err := c.Metadata(ctx, language)
	if err != nil {
		return nil, err
	}
	return idx.Attributes(), nil
}

// GetCategories returns every category definition by code
func (c *Client) GetCategories(ctx context.Context, language string) (map[string]metadata.Category, error) {
	idx, err := c.Metadata(ctx, language)
	if err != nil {
		return nil, err
	}
	return idx.Categories(), nil
}

// GetCategory looks up one category. With inherit set the attribute codes
// of all ancestors are appended after the category's own.
func (c *Client) GetCategory(ctx context.Context, code string, inherit bool, language string) (metadata.Category, bool, error) {
	idx, err := c.Metadata(ctx, language)
	if err != nil {
		return metadata.Category{}, false, err
	}
	cat, ok := idx.Category(code, inherit)
	return cat, ok, nil
}

// GetDictionaries returns every dictionary by code
func (c *Client) GetDictionaries(ctx context.Context, language string) (map[string]metadata.Dictionary, error) {
	idx, err := c.Metadata(ctx, language)
	if err != nil {
		return nil, err
	}
	return idx.Dictionaries(), nil
}

// GetDictionary looks up one dictionary
func (c *Client) GetDictionary(ctx context.Context, code, language string) (metadata.Dictionary, bool, error) {
	idx, err := c.Metadata(ctx, language)
	if err != nil {
		return metadata.Dictionary{}, false, err
	}
	d, ok := idx.Dictionary(code)
	return d, ok, nil
}

// GetDictionaryTitle returns the name of a dictionary
func (c *Client) GetDictionaryTitle(ctx context.Context, code, language string) (string, bool, error) {
	idx, err := c.Metadata(ctx, language)
	if err != nil {
		return "", false, err
	}
	title, ok := idx.DictionaryTitle(code)
	return title, ok, nil
}

// GetDictionaryValues returns the values of a dictionary in order
func (c *Client) GetDictionaryValues(ctx context.Context, code, language string) ([]string, bool, error) {
	idx, err := c.Metadata(ctx, language)
	if err != nil {
		return nil, false, err
	}
	values, ok := idx.DictionaryValues(code)
	return values, ok, nil
}

// GetLanguages returns the language tags the catalog accepts
func (c *Client) GetLanguages(ctx context.Context, language string) ([]string, error) {
	idx, err := c.Metadata(ctx, language)
	if err != nil {
		return nil, err
	}
	return idx.Languages(), nil
}

// IsTranslatable reports whether attribute code keeps per-language values
func (c *Client) IsTranslatable(ctx context.Context, code, language string) (bool, error) {
	idx, err := c.Metadata(ctx, language)
	if err != nil {
		return false, err
	}
	return idx.IsTranslatable(code), nil
}
