// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package envelope builds and parses the SOAP 1.1 envelopes exchanged with the
RIT catalog.

Every request carries a [Metric] header identifying the distribution channel
and the request, followed by one operation specific payload element:

	metric := envelope.NewMetric("channel-1", clock.WallClock)
	env := envelope.Wrap("getMetadataOfRIT", "language", "pl-PL", metric)
	data, err := env.Marshal(envelope.DefaultNamespace)

produces

	<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:rit="...">
	  <soapenv:Body>
	    <rit:getMetadataOfRIT>
	      <metric>
	        <distributionChannel>channel-1</distributionChannel>
	        <username>channel-1</username>
	        <requestUniqueIdentifier>1714557600</requestUniqueIdentifier>
	        <requestDate>2024-05-01+02:00</requestDate>
	      </metric>
	      <language>pl-PL</language>
	    </rit:getMetadataOfRIT>
	  </soapenv:Body>
	</soapenv:Envelope>

Payloads are encoded with encoding/xml struct tags. A slice payload produces
one element per item, all named after the payload key.

# Responses

[ParseResponse] returns the first element of the response body. A SOAP fault
is returned as a [*Fault] error.
*/
package envelope
