// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package gorit is a Go client for RIT, the Polish national catalog of tourist
objects.

# Overview

RIT exposes its integration interface as SOAP 1.1 services over HTTPS.
Every caller is a distribution channel authenticated with a client
certificate. Channels read objects, upload new or modified objects (one at
a time or as bulk transactions), poll transaction reports, query events and
read the catalog metadata: attribute definitions, the category tree and the
dictionaries that constrain attribute values.

# Package Structure

	github.com/sirosfoundation/go-rit/pkg/rit         - Catalog client
	github.com/sirosfoundation/go-rit/pkg/object      - Tourist objects, identifiers, attachments
	github.com/sirosfoundation/go-rit/pkg/metadata    - Metadata decoding and indexing
	github.com/sirosfoundation/go-rit/pkg/envelope    - Metric header, SOAP envelopes and faults
	github.com/sirosfoundation/go-rit/pkg/transport   - HTTPS transport with client certificates
	github.com/sirosfoundation/go-rit/pkg/compression - gzip/deflate response decoding
	github.com/sirosfoundation/go-rit/cmd/ritctl      - Console client

# Quick Start

	client, err := rit.New(&rit.Config{
	    Channel:     "12345",
	    Secret:      os.Getenv("RIT_SECRET"),
	    Certificate: "client.pem",
	    Environment: rit.EnvironmentTest,
	    Compression: true,
	})
	if err != nil {
	    log.Fatal(err)
	}

	obj, err := client.CreateTouristObject(ctx, object.Spec{
	    Identifier:   object.EncodeSourceRowID("100", "hotels"),
	    LastModified: "2024-03-18",
	    Categories:   []string{"C040"},
	    Attributes: []object.AttributeInput{
	        object.Attr("A001",
	            object.In("pl-PL", object.Text("Hotel Testowy")),
	            object.In("en-GB", object.Text("Test Hotel"))),
	    },
	}, "pl-PL")
	if err != nil {
	    log.Fatal(err)
	}

	report, err := client.AddObject(ctx, obj)

# Identifiers

Objects are identified by the caller's own key or by the catalog's:

  - I1: a row id in the caller's database
  - I2: a row id qualified with its table name
  - I3: an arbitrary unique string
  - the numeric RIT identifier assigned by the catalog

# Languages

Attributes whose metadata type is textual or a selection list keep one
value per language. Every other attribute, and the geography attributes
A009 to A012, carries a single value tagged "all".

# License

BSD-2-Clause License
*/
package gorit
