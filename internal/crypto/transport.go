package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
)

// TransportDecryptor unwraps request payload values the client encrypted
// against the service's public key (RSAES-PKCS1-v1_5).
type TransportDecryptor struct {
	key *rsa.PrivateKey
}

func NewTransportDecryptor(privateKeyPEM string) (*TransportDecryptor, error) {
	block, _ := pem.Decode([]byte(privateKeyPEM))
	if block == nil {
		return nil, errors.New("transport: no PEM block in private key")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return &TransportDecryptor{key: key}, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("transport: parse private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("transport: private key is not RSA")
	}
	return &TransportDecryptor{key: key}, nil
}

// Decrypt base64-decodes the value and decrypts it with PKCS#1 v1.5 padding.
func (d *TransportDecryptor) Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("transport: base64 decode: %w", err)
	}
	plain, err := rsa.DecryptPKCS1v15(nil, d.key, raw)
	if err != nil {
		return "", fmt.Errorf("transport: rsa decrypt: %w", err)
	}
	return string(plain), nil
}

// PublicKey exposes the matching public key so tests and clients can encrypt.
func (d *TransportDecryptor) PublicKey() *rsa.PublicKey {
	return &d.key.PublicKey
}
