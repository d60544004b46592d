package envelope

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Fault is a SOAP 1.1 fault returned by the catalog.
type Fault struct {
	Code   string
	String string
	Actor  string
	Detail string
}

func (f *Fault) Error() string {
	if f.Detail != "" {
		return fmt.Sprintf("soap fault %s: %s (%s)", f.Code, f.String, f.Detail)
	}
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
}

// ParseResponse parses a SOAP response and returns the first element in its
// body, normally the <operation>Response element.
func ParseResponse(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "Envelope" {
		return nil, fmt.Errorf("invalid response: missing soap envelope")
	}

	body := root.SelectElement("Body")
	if body == nil {
		return nil, fmt.Errorf("invalid response: missing soap body")
	}

	children := body.ChildElements()
	if len(children) == 0 {
		return nil, fmt.Errorf("invalid response: empty soap body")
	}

	first := children[0]
	if first.Tag == "Fault" {
		return nil, parseFault(first)
	}
	return first, nil
}

func parseFault(el *etree.Element) *Fault {
	f := &Fault{
		Code:   text(el, "faultcode"),
		String: text(el, "faultstring"),
		Actor:  text(el, "faultactor"),
	}
	if detail := el.SelectElement("detail"); detail != nil {
		var parts []string
		for _, child := range detail.ChildElements() {
			if s := strings.TrimSpace(child.Text()); s != "" {
				parts = append(parts, child.Tag+": "+s)
			} else if msg := text(child, "message"); msg != "" {
				parts = append(parts, child.Tag+": "+msg)
			}
		}
		if len(parts) == 0 {
			parts = append(parts, strings.TrimSpace(detail.Text()))
		}
		f.Detail = strings.Join(parts, "; ")
	}
	return f
}

func text(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
