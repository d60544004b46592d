package object

// Identifier types used in touristObjectIdentifierSZ.
const (
	IdentifierTypeRow       = "I1"
	IdentifierTypeTableRow  = "I2"
	IdentifierTypeUniqueKey = "I3"
)

// Identifier is one of SourceRowID, UniqueStringID or CatalogID.
type Identifier interface {
	isIdentifier()
}

// StructuredID is an identifier assigned by the distribution channel's own
// database. It is sent wrapped in touristObjectIdentifierSZ.
type StructuredID interface {
	Identifier
	sz() SZIdentifier
}

// SourceRowID references a row in the channel's source database.
type SourceRowID struct {
	IdentifierType       string `xml:"identifierType"`
	ArtificialIdentifier string `xml:"artificialIdentifier"`
	DatabaseTable        string `xml:"databaseTable,omitempty"`
}

// UniqueStringID is a unique key built by concatenating source fields.
type UniqueStringID struct {
	IdentifierType       string `xml:"identifierType"`
	ConcatenationOfField string `xml:"concatenationOfField"`
}

// CatalogID is the numeric identifier assigned by the catalog itself.
type CatalogID struct {
	IdentifierRIT string `xml:"identifierRIT"`
}

// DistributionChannel identifies the caller within the catalog.
type DistributionChannel struct {
	Name string `xml:"name"`
	Code string `xml:"code"`
}

// SZIdentifier is the wire form of a structured identifier.
type SZIdentifier struct {
	IdentifierType       string              `xml:"identifierType"`
	ArtificialIdentifier string              `xml:"artificialIdentifier,omitempty"`
	DatabaseTable        string              `xml:"databaseTable,omitempty"`
	ConcatenationOfField string              `xml:"concatenationOfField,omitempty"`
	DistributionChannel  DistributionChannel `xml:"distributionChannel"`
	LastModified         string              `xml:"lastModified"`
}

// EncodeSourceRowID encodes a source database row reference. The identifier
// type is I2 when tableName is set and I1 otherwise.
func EncodeSourceRowID(rowID, tableName string) SourceRowID {
	id := SourceRowID{
		IdentifierType:       IdentifierTypeRow,
		ArtificialIdentifier: rowID,
	}
	if tableName != "" {
		id.IdentifierType = IdentifierTypeTableRow
		id.DatabaseTable = tableName
	}
	return id
}

// NewUniqueStringID encodes a manual, string based reference (I3).
func NewUniqueStringID(uniqueID string) UniqueStringID {
	return UniqueStringID{
		IdentifierType:       IdentifierTypeUniqueKey,
		ConcatenationOfField: uniqueID,
	}
}

func (SourceRowID) isIdentifier()    {}
func (UniqueStringID) isIdentifier() {}
func (CatalogID) isIdentifier()      {}

func (id SourceRowID) sz() SZIdentifier {
	return SZIdentifier{
		IdentifierType:       id.IdentifierType,
		ArtificialIdentifier: id.ArtificialIdentifier,
		DatabaseTable:        id.DatabaseTable,
	}
}

func (id UniqueStringID) sz() SZIdentifier {
	return SZIdentifier{
		IdentifierType:       id.IdentifierType,
		ConcatenationOfField: id.ConcatenationOfField,
	}
}
