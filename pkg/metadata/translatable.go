package metadata

// Geography attributes hold dictionary backed place names that the catalog
// stores once for all languages, whatever their declared type.
var geographyAttributes = map[string]bool{
	"A009": true, // voivodeship
	"A010": true, // county
	"A011": true, // commune
	"A012": true, // locality
}

var translatableTypes = map[ValidatorType]bool{
	ShortText:        true,
	LongText:         true,
	MultiSelectList:  true,
	SingleSelectList: true,
}

// IsGeography reports whether code is one of the fixed geography attributes.
func IsGeography(code string) bool {
	return geographyAttributes[code]
}

// IsTranslatable reports whether an attribute accepts one value per language.
// Geography attributes and unknown codes never do.
func (idx *Index) IsTranslatable(code string) bool {
	if geographyAttributes[code] {
		return false
	}
	t, ok := idx.AttributeType(code)
	if !ok {
		return false
	}
	return translatableTypes[t]
}
