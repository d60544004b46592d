package object

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"

	"github.com/juju/errors"
)

// SourceKind selects where the catalog fetches a binary document from.
type SourceKind int

const (
	// SourceURL is a publicly reachable URL. It is the default.
	SourceURL SourceKind = iota
	// SourceFTP is a path relative to the channel's FTP directory.
	SourceFTP
	// SourceBase64 is the document content, base64 encoded.
	SourceBase64
)

func (k SourceKind) String() string {
	switch k {
	case SourceURL:
		return "url"
	case SourceFTP:
		return "ftp"
	case SourceBase64:
		return "base64"
	default:
		return "unknown"
	}
}

// ParseSourceKind parses "url", "ftp" or "base64". The empty string is url.
func ParseSourceKind(s string) (SourceKind, error) {
	switch s {
	case "", "url":
		return SourceURL, nil
	case "ftp":
		return SourceFTP, nil
	case "base64":
		return SourceBase64, nil
	}
	return SourceURL, errors.NotValidf("attachment source kind %q", s)
}

// License is the certificate record attached to a licensed document.
type License struct {
	ValidTo                  string `xml:"validTo"`
	DistributionChannelOwner string `xml:"distributionChannelOwner"`
}

// Attachment references a binary document. Exactly one of URL,
// RelativePathToDirectory and Encoded is set, according to Kind.
type Attachment struct {
	Kind                    SourceKind `xml:"-"`
	FileName                string     `xml:"fileName"`
	FileType                string     `xml:"fileType"`
	URL                     string     `xml:"URL,omitempty"`
	RelativePathToDirectory string     `xml:"relativePathToDirectory,omitempty"`
	Encoded                 string     `xml:"encoded,omitempty"`
	Certificate             *License   `xml:"certificate,omitempty"`
}

// BinaryDocuments groups attachments by source kind.
type BinaryDocuments struct {
	DocumentURL    []Attachment `xml:"documentURL,omitempty"`
	DocumentFile   []Attachment `xml:"documentFile,omitempty"`
	DocumentBase64 []Attachment `xml:"documentBase64,omitempty"`
}

// NewLicense builds a license record. The date format is not checked.
func NewLicense(validTo, owner string) *License {
	return &License{
		ValidTo:                  validTo,
		DistributionChannelOwner: owner,
	}
}

// NewAttachment builds a document reference. source is a URL, a relative
// path or base64 content depending on kind. license may be nil.
func NewAttachment(name, fileType, source string, kind SourceKind, license *License) Attachment {
	a := Attachment{
		Kind:        kind,
		FileName:    name,
		FileType:    fileType,
		Certificate: license,
	}
	switch kind {
	case SourceFTP:
		a.RelativePathToDirectory = source
	case SourceBase64:
		a.Encoded = source
	default:
		a.Kind = SourceURL
		a.URL = source
	}
	return a
}

// EncodeFile reads a local file and returns it as an inline base64 attachment.
// The file type is derived from the extension.
func EncodeFile(path string, license *License) (Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attachment{}, errors.Annotatef(err, "reading attachment %q", path)
	}

	fileType := mime.TypeByExtension(filepath.Ext(path))
	if fileType == "" {
		fileType = "application/octet-stream"
	}

	return NewAttachment(
		filepath.Base(path),
		fileType,
		base64.StdEncoding.EncodeToString(data),
		SourceBase64,
		license,
	), nil
}

func groupAttachments(attachments []Attachment) *BinaryDocuments {
	if len(attachments) == 0 {
		return nil
	}

	docs := &BinaryDocuments{}
	for _, a := range attachments {
		switch a.Kind {
		case SourceFTP:
			docs.DocumentFile = append(docs.DocumentFile, a)
		case SourceBase64:
			docs.DocumentBase64 = append(docs.DocumentBase64, a)
		default:
			docs.DocumentURL = append(docs.DocumentURL, a)
		}
	}
	return docs
}
