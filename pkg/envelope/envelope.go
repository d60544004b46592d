package envelope

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/beevik/etree"
)

// Namespace constants
const (
	NsSOAP11 = "http://schemas.xmlsoap.org/soap/envelope/"

	// DefaultNamespace is the target namespace of the RIT integration services.
	DefaultNamespace = "http://rit.poland.travel/integration/"

	PrefixSOAP = "soapenv"
	PrefixRIT  = "rit"
)

// Envelope is a request ready to be serialized: the operation name, the
// metric header and one payload stored under Key.
type Envelope struct {
	Operation string
	Metric    Metric
	Key       string
	Payload   any
}

// Wrap attaches metric to payload. The key names the payload element and is
// chosen by the calling operation.
func Wrap(operation, key string, payload any, metric Metric) *Envelope {
	return &Envelope{
		Operation: operation,
		Metric:    metric,
		Key:       key,
		Payload:   payload,
	}
}

// Document builds the SOAP document for the envelope. The operation element
// is qualified with namespace; its children are unqualified.
func (e *Envelope) Document(namespace string) (*etree.Document, error) {
	if e.Operation == "" {
		return nil, fmt.Errorf("operation is required")
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(PrefixSOAP + ":Envelope")
	root.CreateAttr("xmlns:"+PrefixSOAP, NsSOAP11)
	root.CreateAttr("xmlns:"+PrefixRIT, namespace)
	root.CreateElement(PrefixSOAP + ":Header")
	body := root.CreateElement(PrefixSOAP + ":Body")

	op := body.CreateElement(PrefixRIT + ":" + e.Operation)
	if err := appendEncoded(op, "metric", e.Metric); err != nil {
		return nil, err
	}
	if e.Payload != nil {
		if e.Key == "" {
			return nil, fmt.Errorf("payload key is required")
		}
		if err := appendEncoded(op, e.Key, e.Payload); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// Marshal serializes the envelope.
func (e *Envelope) Marshal(namespace string) ([]byte, error) {
	doc, err := e.Document(namespace)
	if err != nil {
		return nil, err
	}
	return doc.WriteToBytes()
}

// appendEncoded marshals v under name and moves the resulting elements into
// parent.
func appendEncoded(parent *etree.Element, name string, v any) error {
	var buf bytes.Buffer
	buf.WriteString("<fragment>")
	enc := xml.NewEncoder(&buf)
	if err := enc.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: name}}); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	buf.WriteString("</fragment>")

	fragment := etree.NewDocument()
	if err := fragment.ReadFromBytes(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to read encoded %s: %w", name, err)
	}
	for _, child := range fragment.Root().ChildElements() {
		parent.AddChild(child)
	}
	return nil
}
