// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package rit is a client for the RIT tourism object catalog.

The catalog is operated as a set of SOAP services authenticated with a
client certificate issued to a distribution channel. A [Client] builds the
request for each operation, attaches a fresh metric header and hands the
envelope to an [Invoker], by default the HTTPS transport.

# Creating a Client

	client, err := rit.New(&rit.Config{
	    Channel:     "12345",
	    Secret:      os.Getenv("RIT_SECRET"),
	    Certificate: "/etc/rit/client.pem",
	    Environment: rit.EnvironmentTest,
	})

New fails with an error of kind [ErrConfiguration] when the certificate
file does not exist or the environment is unknown. No request is sent
before that check.

# Operations

	Search, GetAllObjects, GetObjectByID   CollectTouristObjects
	AddObject, AddObjects, GetReport       GiveTouristObjects
	GetMetadata                            MetadataOfRIT
	GetEvents                              CollectEvents

Bulk uploads return a transaction identifier; poll [Client.GetReport]
until the transaction completes. The client never retries on its own.

# Metadata

Attribute, category and dictionary lookups are projections over the
catalog metadata. Each call fetches fresh metadata unless the client was
created with [WithMetadataCache] or [WithMetadataSource]. Missing codes are
reported with a false second return value, never as errors.

Objects are built with [Client.CreateTouristObject], which uses the
metadata to decide which attributes keep their language variants.

Unimplemented operations return errors satisfying errors.Is(err,
errors.NotSupported) from github.com/juju/errors.
*/
package rit
