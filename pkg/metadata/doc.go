// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package metadata decodes RIT catalog metadata and indexes it for lookups.

The catalog describes its schema in the getMetadataOfRIT response: attribute
definitions with a validator type, categories with the attribute codes they
accept and an optional parent category, and dictionaries of allowed values.

# Decoding

	catalog, err := metadata.Decode(responseBody)
	index, err := metadata.NewIndex(catalog)

[NewIndex] rejects a catalog whose category parent chain contains a cycle with
an error matching [ErrMetadataIntegrity].

# Lookups

Missing codes are reported through a boolean, never through an error:

	cat, ok := index.Category("C040", true) // inherited attribute codes included
	values, ok := index.DictionaryValues("D016")
	langs := index.Languages()             // dictionary L001

# Translatable attributes

[Index.IsTranslatable] decides whether an attribute keeps one value per
language. It is the policy handed to object.BuildTouristObject.
*/
package metadata
