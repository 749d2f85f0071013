package middleware

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-works/portfolio-api/internal/crypto"
)

func newTestDecryptor(t *testing.T) *crypto.TransportDecryptor {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pemStr := string(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}))
	dec, err := crypto.NewTransportDecryptor(pemStr)
	require.NoError(t, err)
	return dec
}

func encryptField(t *testing.T, dec *crypto.TransportDecryptor, plaintext string) string {
	t.Helper()
	ct, err := rsa.EncryptPKCS1v15(rand.Reader, dec.PublicKey(), []byte(plaintext))
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(ct)
}

func decryptTestRouter(dec *crypto.TransportDecryptor) (*gin.Engine, *map[string]any) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	seen := map[string]any{}
	r := gin.New()
	r.POST("/submit", TransportDecrypt(dec, log), func(c *gin.Context) {
		body := map[string]any{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		seen = body
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, &seen
}

func postJSON(r *gin.Engine, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/submit", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTransportDecryptUnwrapsDataObject(t *testing.T) {
	dec := newTestDecryptor(t)
	r, seen := decryptTestRouter(dec)

	w := postJSON(r, map[string]any{
		"data": map[string]any{
			"firstName": encryptField(t, dec, "Jane"),
			"emailId":   encryptField(t, dec, "jane@example.com"),
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jane", (*seen)["firstName"])
	assert.Equal(t, "jane@example.com", (*seen)["emailId"])
}

func TestTransportDecryptParsesStructuredPlaintext(t *testing.T) {
	dec := newTestDecryptor(t)
	r, seen := decryptTestRouter(dec)

	// decrypted payloads that are themselves JSON are expanded
	w := postJSON(r, map[string]any{
		"data": map[string]any{
			"count": encryptField(t, dec, "42"),
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(42), (*seen)["count"])
}

func TestTransportDecryptKeepsUndecryptableValues(t *testing.T) {
	dec := newTestDecryptor(t)
	r, seen := decryptTestRouter(dec)

	w := postJSON(r, map[string]any{
		"data": map[string]any{
			"firstName": encryptField(t, dec, "Jane"),
			"broken":    "bm90IGEgY2lwaGVydGV4dA==",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jane", (*seen)["firstName"])
	assert.Equal(t, "bm90IGEgY2lwaGVydGV4dA==", (*seen)["broken"])
}

func TestTransportDecryptPassthroughWithoutData(t *testing.T) {
	dec := newTestDecryptor(t)
	r, seen := decryptTestRouter(dec)

	w := postJSON(r, map[string]any{"firstName": "Jane", "emailId": "jane@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jane", (*seen)["firstName"])
}

func TestTransportDecryptNilDecryptorPassthrough(t *testing.T) {
	r, seen := decryptTestRouter(nil)

	w := postJSON(r, map[string]any{"data": map[string]any{"firstName": "plain"}})
	require.Equal(t, http.StatusOK, w.Code)

	// with no key configured the wrapper is passed through untouched
	inner, ok := (*seen)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "plain", inner["firstName"])
}
