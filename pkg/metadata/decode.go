package metadata

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/juju/errors"
)

// Decode reads a getMetadataOfRIT response body. The metadata elements may
// sit directly under body or under a single wrapper element.
func Decode(body *etree.Element) (*Catalog, error) {
	if body == nil {
		return nil, errors.NotValidf("empty metadata response")
	}
	root := container(body)

	c := &Catalog{
		LastModificationDate: childText(root, "lastModificationDate"),
	}

	for i, el := range root.SelectElements("ritAttribute") {
		attr := Attribute{
			Code:           childText(el, "code"),
			Name:           childText(el, "name"),
			TypeValidator:  validatorType(el),
			DictionaryCode: childText(el, "dictionaryCode"),
		}
		if attr.Code == "" {
			return nil, errors.NotValidf("ritAttribute %d without code", i)
		}
		c.Attributes = append(c.Attributes, attr)
	}

	for i, el := range root.SelectElements("ritCategory") {
		cat := Category{
			Code:           childText(el, "code"),
			Name:           childText(el, "name"),
			ParentCode:     childText(el, "parentCode"),
			AttributeCodes: attributeCodes(el),
		}
		if cat.Code == "" {
			return nil, errors.NotValidf("ritCategory %d without code", i)
		}
		c.Categories = append(c.Categories, cat)
	}

	for i, el := range root.SelectElements("ritDictionary") {
		dict := Dictionary{
			Code: childText(el, "code"),
			Name: childText(el, "name"),
		}
		if dict.Code == "" {
			return nil, errors.NotValidf("ritDictionary %d without code", i)
		}
		for _, v := range el.SelectElements("value") {
			dict.Values = append(dict.Values, strings.TrimSpace(v.Text()))
		}
		c.Dictionaries = append(c.Dictionaries, dict)
	}

	return c, nil
}

func container(el *etree.Element) *etree.Element {
	for depth := 0; depth < 3; depth++ {
		if isMetadata(el) {
			return el
		}
		children := el.ChildElements()
		if len(children) != 1 {
			return el
		}
		el = children[0]
	}
	return el
}

func isMetadata(el *etree.Element) bool {
	for _, tag := range []string{"lastModificationDate", "ritAttribute", "ritCategory", "ritDictionary"} {
		if el.SelectElement(tag) != nil {
			return true
		}
	}
	return false
}

func validatorType(el *etree.Element) ValidatorType {
	tv := el.SelectElement("typeValidator")
	if tv == nil {
		return ""
	}
	if s := strings.TrimSpace(tv.Text()); s != "" {
		return ValidatorType(s)
	}
	return ValidatorType(childText(tv, "type"))
}

// attributeCodes reads attributes/attribute, where each entry is either the
// code itself or an element with a code child.
func attributeCodes(el *etree.Element) []string {
	var codes []string
	for _, group := range el.SelectElements("attributes") {
		for _, a := range group.SelectElements("attribute") {
			code := childText(a, "code")
			if code == "" {
				code = strings.TrimSpace(a.Text())
			}
			if code != "" {
				codes = append(codes, code)
			}
		}
	}
	return codes
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
