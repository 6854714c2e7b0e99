package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBufferLogger() (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return New(l), buf
}

func TestWithFields_DevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	logger, buf := newBufferLogger()

	logger.WithFields(Fields{
		"store_id":   7,
		"user_agent": "curl",
	}).Info("previsão calculada")

	assert.Contains(t, buf.String(), "store_id=7")
	assert.NotContains(t, buf.String(), "user_agent")
}

func TestWithFields_ProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	logger, buf := newBufferLogger()

	logger.WithField("user_agent", "curl").Info("requisição")

	assert.Contains(t, buf.String(), "user_agent=curl")
}

func TestCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	logger, buf := newBufferLogger()
	logger.WithContext(ctx).Info("ok")
	assert.Contains(t, buf.String(), id)
}
