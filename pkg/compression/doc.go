// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package compression implements the HTTP content codings negotiated with the
RIT catalog.

The catalog compresses SOAP responses when the request advertises support
for it. The transport sends [AcceptEncoding] and decodes the response body
according to its Content-Encoding header:

	body, err := compression.NewCompressor().Decode(resp.Header.Get("Content-Encoding"), raw)

Supported codings:
  - gzip (and the legacy x-gzip alias)
  - deflate, both zlib wrapped (RFC 1950) and raw (RFC 1951)
  - identity

# References

  - HTTP content codings: https://datatracker.ietf.org/doc/html/rfc9110#section-8.4.1
  - GZIP RFC 1952: https://datatracker.ietf.org/doc/html/rfc1952
*/
package compression
