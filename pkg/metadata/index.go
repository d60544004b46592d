package metadata

import (
	"slices"

	"github.com/juju/errors"
)

// ErrMetadataIntegrity marks metadata that cannot be indexed consistently.
const ErrMetadataIntegrity = errors.ConstError("metadata integrity")

// Index provides keyed access to a Catalog. Lookups return copies, so an
// Index can be shared between callers.
type Index struct {
	catalog      *Catalog
	attributes   map[string]Attribute
	categories   map[string]Category
	dictionaries map[string]Dictionary
}

// NewIndex indexes c by code. Later duplicates of a code replace earlier ones.
// It fails if a category's parent chain loops back on itself.
func NewIndex(c *Catalog) (*Index, error) {
	if c == nil {
		return nil, errors.NotValidf("nil catalog")
	}

	idx := &Index{
		catalog:      c,
		attributes:   make(map[string]Attribute, len(c.Attributes)),
		categories:   make(map[string]Category, len(c.Categories)),
		dictionaries: make(map[string]Dictionary, len(c.Dictionaries)),
	}
	for _, a := range c.Attributes {
		idx.attributes[a.Code] = a
	}
	for _, cat := range c.Categories {
		idx.categories[cat.Code] = cat
	}
	for _, d := range c.Dictionaries {
		idx.dictionaries[d.Code] = d
	}

	for code := range idx.categories {
		if _, err := idx.ancestors(code); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// Catalog returns the indexed catalog. It is shared with the index and
// must not be modified.
func (idx *Index) Catalog() *Catalog {
	return idx.catalog
}

// LastModificationDate returns the metadata modification date.
func (idx *Index) LastModificationDate() string {
	return idx.catalog.LastModificationDate
}

// Attributes returns the attribute definitions keyed by code.
func (idx *Index) Attributes() map[string]Attribute {
	out := make(map[string]Attribute, len(idx.attributes))
	for k, v := range idx.attributes {
		out[k] = v
	}
	return out
}

// Attribute looks up an attribute definition.
func (idx *Index) Attribute(code string) (Attribute, bool) {
	a, ok := idx.attributes[code]
	return a, ok
}

// AttributeType returns the validator type of an attribute.
func (idx *Index) AttributeType(code string) (ValidatorType, bool) {
	a, ok := idx.attributes[code]
	return a.TypeValidator, ok
}

// Categories returns the category definitions keyed by code, without
// inherited attributes.
func (idx *Index) Categories() map[string]Category {
	out := make(map[string]Category, len(idx.categories))
	for k, v := range idx.categories {
		v.AttributeCodes = slices.Clone(v.AttributeCodes)
		out[k] = v
	}
	return out
}

// Category looks up a category. With inherit set, the attribute codes of all
// ancestors follow the category's own codes, duplicates removed. A parent
// code that names no known category ends the chain.
func (idx *Index) Category(code string, inherit bool) (Category, bool) {
	cat, ok := idx.categories[code]
	if !ok {
		return Category{}, false
	}

	codes := append([]string(nil), cat.AttributeCodes...)
	if inherit && cat.ParentCode != "" {
		// NewIndex has already rejected cycles.
		chain, _ := idx.ancestors(code)
		for _, parent := range chain {
			codes = append(codes, parent.AttributeCodes...)
		}
	}
	cat.AttributeCodes = dedupe(codes)
	return cat, true
}

// ancestors walks the parent chain of code, nearest parent first.
func (idx *Index) ancestors(code string) ([]Category, error) {
	visited := map[string]bool{code: true}
	var chain []Category

	cat := idx.categories[code]
	for cat.ParentCode != "" {
		if visited[cat.ParentCode] {
			return nil, errors.WithType(
				errors.Errorf("category %q has a cyclic parent chain through %q", code, cat.ParentCode),
				ErrMetadataIntegrity,
			)
		}
		visited[cat.ParentCode] = true

		parent, ok := idx.categories[cat.ParentCode]
		if !ok {
			break
		}
		chain = append(chain, parent)
		cat = parent
	}
	return chain, nil
}

// Dictionaries returns the dictionaries keyed by code.
func (idx *Index) Dictionaries() map[string]Dictionary {
	out := make(map[string]Dictionary, len(idx.dictionaries))
	for k, v := range idx.dictionaries {
		v.Values = slices.Clone(v.Values)
		out[k] = v
	}
	return out
}

// Dictionary looks up a dictionary.
func (idx *Index) Dictionary(code string) (Dictionary, bool) {
	d, ok := idx.dictionaries[code]
	d.Values = slices.Clone(d.Values)
	return d, ok
}

// DictionaryTitle returns the name of a dictionary.
func (idx *Index) DictionaryTitle(code string) (string, bool) {
	d, ok := idx.dictionaries[code]
	return d.Name, ok
}

// DictionaryValues returns the ordered values of a dictionary.
func (idx *Index) DictionaryValues(code string) ([]string, bool) {
	d, ok := idx.dictionaries[code]
	if !ok {
		return nil, false
	}
	return slices.Clone(d.Values), true
}

// Languages lists the catalog's language tags. The list does not depend on
// the language the metadata was requested in.
func (idx *Index) Languages() []string {
	values, _ := idx.DictionaryValues(LanguagesDictionary)
	return values
}

func dedupe(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
