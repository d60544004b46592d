package object

import (
	"github.com/juju/errors"
	"golang.org/x/text/language"
)

// Translatable reports whether an attribute may hold a different value per
// language. A nil Translatable treats every attribute as language invariant.
type Translatable func(code string) bool

// TouristObject is the wire form of an object sent to the catalog.
type TouristObject struct {
	IdentifierRIT   *CatalogID       `xml:"touristObjectIdentifierRIT,omitempty"`
	IdentifierSZ    *SZIdentifier    `xml:"touristObjectIdentifierSZ,omitempty"`
	Categories      Categories       `xml:"categories"`
	Attributes      Attributes       `xml:"attributes"`
	BinaryDocuments *BinaryDocuments `xml:"binaryDocuments,omitempty"`
}

// Categories lists the object's category codes.
type Categories struct {
	Category []Category `xml:"category"`
}

// Category references a catalog category.
type Category struct {
	Code string `xml:"code"`
}

// Attributes lists the object's attribute values.
type Attributes struct {
	Attribute []Attribute `xml:"attribute"`
}

// Attribute is one attribute with its language variants.
type Attribute struct {
	Code     string    `xml:"code,attr"`
	AttrVals []AttrVal `xml:"attrVals"`
}

// Spec is everything needed to build a TouristObject.
type Spec struct {
	Identifier   Identifier
	LastModified string
	Categories   []string
	Attributes   []AttributeInput
	Attachments  []Attachment
}

// BuildTouristObject assembles a TouristObject. Structured identifiers are
// wrapped with channel and spec.LastModified, a CatalogID is used as is.
//
// For attributes that translatable rejects only the first supplied value is
// kept and it is tagged LanguageAll; the remaining variants are dropped.
func BuildTouristObject(spec Spec, channel DistributionChannel, translatable Translatable) (*TouristObject, error) {
	obj := &TouristObject{}

	switch id := spec.Identifier.(type) {
	case nil:
		return nil, errors.NotValidf("missing object identifier")
	case CatalogID:
		obj.IdentifierRIT = &id
	case *CatalogID:
		obj.IdentifierRIT = id
	case StructuredID:
		if spec.LastModified == "" {
			return nil, errors.NotValidf("empty lastModified for structured identifier")
		}
		sz := id.sz()
		sz.DistributionChannel = channel
		sz.LastModified = spec.LastModified
		obj.IdentifierSZ = &sz
	default:
		return nil, errors.NotValidf("object identifier of type %T", id)
	}

	obj.Categories.Category = make([]Category, 0, len(spec.Categories))
	for i, code := range spec.Categories {
		if code == "" {
			return nil, errors.NotValidf("empty category code at position %d", i)
		}
		obj.Categories.Category = append(obj.Categories.Category, Category{Code: code})
	}

	obj.Attributes.Attribute = make([]Attribute, 0, len(spec.Attributes))
	for i, in := range spec.Attributes {
		attr, err := encodeAttribute(in, translatable)
		if err != nil {
			return nil, errors.Annotatef(err, "attribute at position %d", i)
		}
		obj.Attributes.Attribute = append(obj.Attributes.Attribute, attr)
	}

	obj.BinaryDocuments = groupAttachments(spec.Attachments)

	return obj, nil
}

func encodeAttribute(in AttributeInput, translatable Translatable) (Attribute, error) {
	if in.Code == "" {
		return Attribute{}, errors.NotValidf("empty attribute code")
	}
	if len(in.Values) == 0 {
		return Attribute{}, errors.NotValidf("attribute %s without values", in.Code)
	}

	for i, v := range in.Values {
		if v.Value.IsZero() {
			return Attribute{}, errors.NotValidf("attribute %s value %d is empty", in.Code, i)
		}
	}

	attr := Attribute{Code: in.Code}

	if translatable == nil || !translatable(in.Code) {
		attr.AttrVals = []AttrVal{{Language: LanguageAll, Value: in.Values[0].Value}}
		return attr, nil
	}

	attr.AttrVals = make([]AttrVal, 0, len(in.Values))
	for _, v := range in.Values {
		if err := validateLanguage(v.Language); err != nil {
			return Attribute{}, errors.Annotatef(err, "attribute %s", in.Code)
		}
		attr.AttrVals = append(attr.AttrVals, AttrVal{Language: v.Language, Value: v.Value})
	}
	return attr, nil
}

func validateLanguage(tag string) error {
	if tag == "" {
		return errors.NotValidf("empty language tag")
	}
	if tag == LanguageAll {
		return nil
	}
	if _, err := language.Parse(tag); err != nil {
		return errors.NotValidf("language tag %q", tag)
	}
	return nil
}
