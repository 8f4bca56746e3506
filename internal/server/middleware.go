package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var untrackedPrefixes = []string{"/static/", "/assets/", "/favicon", "/healthz"}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// hashIP returns a salted, truncated digest so logs never hold raw addresses.
// The salt lives only as long as the process.
func hashIP(ip, salt string) string {
	h := sha256.New()
	h.Write([]byte(ip + salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// requestLogger logs page traffic. Static files are skipped and visitors
// sending DNT are logged without an address hash.
func requestLogger(log zerolog.Logger, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		ev := log.Info()
		if c.Writer.Status() >= 500 {
			ev = log.Error()
		}
		route := c.FullPath()
		if route == "" {
			route = path
		}
		ev = ev.Str("method", c.Request.Method).
			Str("route", route).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start))
		if c.GetHeader("DNT") != "1" {
			ev = ev.Str("client", hashIP(c.ClientIP(), salt))
		}
		ev.Msg("request")
	}
}
