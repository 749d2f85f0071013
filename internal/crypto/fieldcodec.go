package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/scrypt"
)

const (
	fieldKeyLen = 32 // AES-256
	fieldIVLen  = aes.BlockSize
)

// FieldCodec protects individual stored string attributes with AES-256-CBC.
// The stored form is "hex(iv):hex(ciphertext)"; callers always see plaintext.
type FieldCodec struct {
	key []byte
	log *logrus.Logger
}

// NewFieldCodec derives the AES key once from the configured secret. Derivation
// is deterministic, so two processes sharing a secret can read each other's rows.
func NewFieldCodec(secret string, log *logrus.Logger) (*FieldCodec, error) {
	if secret == "" {
		return nil, errors.New("fieldcodec: empty secret")
	}
	if log == nil {
		log = logrus.New()
	}
	key, err := scrypt.Key([]byte(secret), []byte("salt"), 16384, 8, 1, fieldKeyLen)
	if err != nil {
		return nil, err
	}
	return &FieldCodec{key: key, log: log}, nil
}

// Encrypt returns "iv:ciphertext" in hex. Empty input passes through unmodified.
func (c *FieldCodec) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return plaintext, nil
	}

	iv := make([]byte, fieldIVLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ct), nil
}

// Decrypt reverses Encrypt. A value without the ":" separator is treated as
// legacy plaintext and returned verbatim. Any cryptographic failure is logged
// and the stored value is returned unchanged; callers must tolerate receiving
// ciphertext-looking garbage on corruption instead of an error.
func (c *FieldCodec) Decrypt(stored string) string {
	if stored == "" || !strings.Contains(stored, ":") {
		return stored
	}

	ivHex, ctHex, _ := strings.Cut(stored, ":")

	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != fieldIVLen {
		c.log.WithError(err).Warn("fieldcodec: malformed iv, returning stored value")
		return stored
	}
	ct, err := hex.DecodeString(ctHex)
	if err != nil || len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		c.log.WithError(err).Warn("fieldcodec: malformed ciphertext, returning stored value")
		return stored
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		c.log.WithError(err).Warn("fieldcodec: cipher init failed")
		return stored
	}

	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ct)

	unpadded, err := pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		c.log.WithError(err).Warn("fieldcodec: bad padding, returning stored value")
		return stored
	}
	return string(unpadded)
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, errors.New("invalid padding byte")
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, errors.New("inconsistent padding")
		}
	}
	return b[:len(b)-n], nil
}
