// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transport implements the HTTPS transport for the RIT integration
services.

Every request is a SOAP 1.1 envelope posted to the environment base URL
followed by an endpoint group (CollectTouristObjects, GiveTouristObjects,
MetadataOfRIT, CollectEvents). The caller authenticates with a client
certificate.

# Client Usage

	client := transport.NewHTTPSClient(&transport.HTTPSConfig{
	    BaseURL:      "https://intrittest.poland.travel/rit/integration/",
	    Certificates: []tls.Certificate{clientCert},
	    Compression:  true,
	})

	resp, err := client.Invoke(ctx, "getReport", "GiveTouristObjects", env)

Invoke returns the first element of the SOAP body. SOAP faults are returned
as *envelope.Fault; other non-200 responses as *StatusError.

# Headers

	Content-Type:    text/xml; charset="utf-8"
	SOAPAction:      "<operation>"
	Cache-Control:   no-cache
	Pragma:          no-cache
	Accept-Encoding: gzip, deflate   (when Compression is set)

# Capture

With Capture set, Response.Exchange holds the raw request and response
bytes, the endpoint and the round trip duration. It is only populated for
successful calls.

# References

  - SOAP 1.1: https://www.w3.org/TR/2000/NOTE-SOAP-20000508/
  - TLS 1.3 RFC 8446: https://datatracker.ietf.org/doc/html/rfc8446
*/
package transport
