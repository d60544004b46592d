// Package credentials loads the client certificate used to authenticate
// against the RIT integration services.
package credentials

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/pkcs12"
)

// Info summarizes a loaded client certificate
type Info struct {
	Subject   string
	Issuer    string
	Algorithm string
	KeySize   int
	NotBefore time.Time
	NotAfter  time.Time
}

// Load reads a client certificate and its private key from path.
//
// PEM files must contain the certificate chain and the private key. An
// encrypted key is decrypted with passphrase. Files ending in .p12 or .pfx
// are read as PKCS#12 archives.
func Load(path, passphrase string) (tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("reading certificate file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".p12", ".pfx":
		return loadPKCS12(data, passphrase)
	default:
		return loadPEM(data, passphrase)
	}
}

func loadPEM(data []byte, passphrase string) (tls.Certificate, error) {
	var cert tls.Certificate
	var key crypto.Signer

	for rest := data; ; {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}

		switch {
		case block.Type == "CERTIFICATE":
			cert.Certificate = append(cert.Certificate, block.Bytes)
		case strings.HasSuffix(block.Type, "PRIVATE KEY"):
			if key != nil {
				return tls.Certificate{}, fmt.Errorf("more than one private key found")
			}
			der := block.Bytes
			//nolint:staticcheck // legacy encrypted PEM keys are still issued
			if x509.IsEncryptedPEMBlock(block) {
				if passphrase == "" {
					return tls.Certificate{}, fmt.Errorf("private key is encrypted and no passphrase was given")
				}
				//nolint:staticcheck
				decrypted, err := x509.DecryptPEMBlock(block, []byte(passphrase))
				if err != nil {
					return tls.Certificate{}, fmt.Errorf("decrypting private key: %w", err)
				}
				der = decrypted
			}
			parsed, err := parsePrivateKey(block.Type, der)
			if err != nil {
				return tls.Certificate{}, fmt.Errorf("parsing private key: %w", err)
			}
			key = parsed
		}
	}

	if len(cert.Certificate) == 0 {
		return tls.Certificate{}, fmt.Errorf("no certificate found")
	}
	if key == nil {
		return tls.Certificate{}, fmt.Errorf("no private key found")
	}

	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("parsing certificate: %w", err)
	}
	if !samePublicKey(leaf.PublicKey, key.Public()) {
		return tls.Certificate{}, fmt.Errorf("private key does not match certificate")
	}

	cert.PrivateKey = key
	cert.Leaf = leaf
	return cert, nil
}

func loadPKCS12(data []byte, passphrase string) (tls.Certificate, error) {
	key, leaf, err := pkcs12.Decode(data, passphrase)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("decoding pkcs12: %w", err)
	}
	return tls.Certificate{
		Certificate: [][]byte{leaf.Raw},
		PrivateKey:  key,
		Leaf:        leaf,
	}, nil
}

// LoadCertPool reads PEM encoded CA certificates from path
func LoadCertPool(path string) (*x509.CertPool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading CA file: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(data) {
		return nil, fmt.Errorf("no CA certificates found in %s", path)
	}
	return pool, nil
}

// Describe returns a summary of cert
func Describe(cert tls.Certificate) (Info, error) {
	leaf := cert.Leaf
	if leaf == nil {
		if len(cert.Certificate) == 0 {
			return Info{}, fmt.Errorf("no certificate")
		}
		parsed, err := x509.ParseCertificate(cert.Certificate[0])
		if err != nil {
			return Info{}, fmt.Errorf("parsing certificate: %w", err)
		}
		leaf = parsed
	}

	return Info{
		Subject:   leaf.Subject.String(),
		Issuer:    leaf.Issuer.String(),
		Algorithm: keyAlgorithmName(leaf.PublicKey),
		KeySize:   keySize(leaf.PublicKey),
		NotBefore: leaf.NotBefore,
		NotAfter:  leaf.NotAfter,
	}, nil
}

func parsePrivateKey(blockType string, der []byte) (crypto.Signer, error) {
	switch blockType {
	case "RSA PRIVATE KEY":
		return x509.ParsePKCS1PrivateKey(der)
	case "EC PRIVATE KEY":
		return x509.ParseECPrivateKey(der)
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(der)
		if err != nil {
			return nil, err
		}
		signer, ok := key.(crypto.Signer)
		if !ok {
			return nil, fmt.Errorf("key is not a signer")
		}
		return signer, nil
	default:
		return nil, fmt.Errorf("unsupported key type: %s", blockType)
	}
}

func samePublicKey(a, b crypto.PublicKey) bool {
	type equaler interface {
		Equal(crypto.PublicKey) bool
	}
	eq, ok := a.(equaler)
	return ok && eq.Equal(b)
}

func keyAlgorithmName(pub crypto.PublicKey) string {
	switch pub.(type) {
	case *ecdsa.PublicKey:
		return "EC"
	case *rsa.PublicKey:
		return "RSA"
	case ed25519.PublicKey:
		return "Ed25519"
	default:
		return "Unknown"
	}
}

func keySize(pub crypto.PublicKey) int {
	switch k := pub.(type) {
	case *ecdsa.PublicKey:
		return k.Curve.Params().BitSize
	case *rsa.PublicKey:
		return k.N.BitLen()
	case ed25519.PublicKey:
		return 256
	default:
		return 0
	}
}
