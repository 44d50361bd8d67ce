package logging

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, log.DebugLevel, ParseLevel(" debug "))
	assert.Equal(t, log.InfoLevel, ParseLevel(""))
	assert.Equal(t, log.InfoLevel, ParseLevel("loud"))
}

func TestInitLogger(t *testing.T) {
	defer log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	defer log.SetLevel(log.InfoLevel)

	var buf bytes.Buffer
	InitLogger(false, "warn", &buf)
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	log.WithField("caller", "test").Warnln("hello")
	log.Infoln("dropped")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "caller=test")
	assert.NotContains(t, buf.String(), "dropped")

	InitLogger(true, "error", nil)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestNewClientLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewClientLogger(&buf)

	logger.Infoln("GET /1.1/help/tos.json")
	assert.Contains(t, buf.String(), "GET /1.1/help/tos.json")
}
