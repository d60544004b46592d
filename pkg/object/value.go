package object

import (
	"encoding/xml"
	"strconv"
)

// LanguageAll tags a value that is the same in every language.
const LanguageAll = "all"

// Value is an attribute value: a single scalar or a list of scalars.
type Value struct {
	items []string
	list  bool
}

// Text returns a single text value.
func Text(s string) Value {
	return Value{items: []string{s}}
}

// Int returns a single numeric value.
func Int(n int64) Value {
	return Value{items: []string{strconv.FormatInt(n, 10)}}
}

// Bool returns a single boolean value.
func Bool(b bool) Value {
	return Value{items: []string{strconv.FormatBool(b)}}
}

// List returns a multi-valued value, as used by multi-select attributes.
func List(items ...string) Value {
	return Value{items: append([]string(nil), items...), list: true}
}

// Strings returns the scalar items of the value.
func (v Value) Strings() []string {
	return append([]string(nil), v.items...)
}

// IsList reports whether the value was built with List.
func (v Value) IsList() bool {
	return v.list
}

// IsZero reports whether the value carries nothing.
func (v Value) IsZero() bool {
	return len(v.items) == 0 && !v.list
}

// LanguageValue is one language variant of an attribute value.
type LanguageValue struct {
	Language string
	Value    Value
}

// In tags a value with a language.
func In(language string, v Value) LanguageValue {
	return LanguageValue{Language: language, Value: v}
}

// AttributeInput is the caller supplied content of one attribute. Values are
// kept in the order given.
type AttributeInput struct {
	Code   string
	Values []LanguageValue
}

// Attr builds an AttributeInput.
func Attr(code string, values ...LanguageValue) AttributeInput {
	return AttributeInput{Code: code, Values: values}
}

// AttrVal is the wire form of a language variant. A scalar is written as
// character data, a list as repeated value elements.
type AttrVal struct {
	Language string
	Value    Value
}

// MarshalXML implements xml.Marshaler.
func (v AttrVal) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "language"}, Value: v.Language})
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if v.Value.list {
		for _, item := range v.Value.items {
			if err := e.EncodeElement(item, xml.StartElement{Name: xml.Name{Local: "value"}}); err != nil {
				return err
			}
		}
	} else if len(v.Value.items) > 0 {
		if err := e.EncodeToken(xml.CharData(v.Value.items[0])); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}
