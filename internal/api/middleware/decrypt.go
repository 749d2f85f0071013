package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/atelier-works/portfolio-api/internal/crypto"
)

// TransportDecrypt unwraps request bodies of the shape
// {"data": {field: base64-RSA-ciphertext, ...}} before the handler runs.
//
// The nested "data" object is the single source of truth: exactly its keys
// are decrypted and exactly its keys form the replacement body. Per-key
// decryption failure keeps that key's original (still-encrypted) value and
// never fails the whole request. An empty body, or one without a "data"
// object, passes through untouched.
func TransportDecrypt(dec *crypto.TransportDecryptor, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || dec == nil {
			c.Next()
			return
		}

		raw, err := io.ReadAll(c.Request.Body)
		if err != nil || len(raw) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		var body struct {
			Data map[string]json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &body); err != nil || len(body.Data) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		decrypted := make(map[string]any, len(body.Data))
		for key, rawVal := range body.Data {
			var s string
			if err := json.Unmarshal(rawVal, &s); err != nil {
				// non-string values pass through as-is
				decrypted[key] = rawVal
				continue
			}

			plain, err := dec.Decrypt(s)
			if err != nil {
				log.WithError(err).WithField("field", key).Debug("transport decrypt failed, keeping original value")
				decrypted[key] = s
				continue
			}

			// decrypted text may itself be structured data
			var parsed any
			if err := json.Unmarshal([]byte(plain), &parsed); err == nil {
				decrypted[key] = parsed
			} else {
				decrypted[key] = plain
			}
		}

		replaced, err := json.Marshal(decrypted)
		if err != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(replaced))
		c.Request.ContentLength = int64(len(replaced))
		c.Next()
	}
}
