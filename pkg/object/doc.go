// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package object builds the tourist-object records sent to the RIT catalog.

A tourist object is assembled from an identifier, an ordered list of category
codes, an ordered list of attribute values and an optional set of binary
document references. The package has no network dependency: every decision
that depends on catalog metadata is injected through a [Translatable] function.

# Identifiers

Objects are identified in one of three ways:

	object.EncodeSourceRowID("12349", "my_test_table") // I2: row of a named table
	object.EncodeSourceRowID("12349", "")              // I1: row without a table
	object.NewUniqueStringID("hotel-warsaw-01")         // I3: caller-built unique string
	object.CatalogID{IdentifierRIT: "4711"}             // identifier assigned by the catalog

The first three are structured identifiers and are sent inside
touristObjectIdentifierSZ together with the distribution channel and the last
modification date. A [CatalogID] is sent as touristObjectIdentifierRIT.

# Attributes

Attribute values carry a language tag. Translatable attributes (free text and
list types) keep every language variant; all other attributes are reduced to a
single value tagged [LanguageAll]:

	obj, err := object.BuildTouristObject(object.Spec{
	    Identifier:   object.EncodeSourceRowID("12349", "objects"),
	    LastModified: "2024-05-01+02:00",
	    Categories:   []string{"C040"},
	    Attributes: []object.AttributeInput{
	        object.Attr("A001", object.In("pl-PL", object.Text("Nazwa")), object.In("en-GB", object.Text("Name"))),
	        object.Attr("A089", object.In("pl-PL", object.Int(123))),
	    },
	}, channel, index.IsTranslatable)

# Attachments

Binary documents are referenced by URL, by a path relative to the channel's
FTP directory, or inline as base64. See [NewAttachment] and [EncodeFile].
*/
package object
