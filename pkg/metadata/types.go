package metadata

// ValidatorType is the type of value an attribute accepts.
type ValidatorType string

// Validator types known to the catalog.
const (
	ShortText        ValidatorType = "SHORT_TEXT"
	LongText         ValidatorType = "LONG_TEXT"
	MultiSelectList  ValidatorType = "MULTI_SELECT_LIST"
	SingleSelectList ValidatorType = "SINGLE_SELECT_LIST"
	Number           ValidatorType = "NUMBER"
	Boolean          ValidatorType = "BOOLEAN"
	Date             ValidatorType = "DATE"
	Complex          ValidatorType = "COMPLEX"
)

// LanguagesDictionary is the dictionary listing the catalog's languages.
const LanguagesDictionary = "L001"

// Catalog is the decoded metadata for one language.
type Catalog struct {
	LastModificationDate string
	Attributes           []Attribute
	Categories           []Category
	Dictionaries         []Dictionary
}

// Attribute describes one attribute of the catalog schema.
type Attribute struct {
	Code           string
	Name           string
	TypeValidator  ValidatorType
	DictionaryCode string
}

// Category describes a category and the attribute codes it accepts.
type Category struct {
	Code           string
	Name           string
	ParentCode     string
	AttributeCodes []string
}

// Dictionary is a named, ordered list of allowed values.
type Dictionary struct {
	Code   string
	Name   string
	Values []string
}
