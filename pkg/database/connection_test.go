package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func bufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, &buf
}

func query() (string, int64) {
	return "SELECT * FROM teams", 20
}

func TestGormLogger_Trace(t *testing.T) {
	t.Run("quiet success", func(t *testing.T) {
		log, buf := bufferedLogger()
		NewGormLogger(log, false).Trace(context.Background(), time.Now(), query, nil)
		assert.Empty(t, buf.String())
	})

	t.Run("verbose success", func(t *testing.T) {
		log, buf := bufferedLogger()
		NewGormLogger(log, true).Trace(context.Background(), time.Now(), query, nil)
		assert.Contains(t, buf.String(), "Database query executed")
		assert.Contains(t, buf.String(), "SELECT * FROM teams")
	})

	t.Run("failure always logged", func(t *testing.T) {
		log, buf := bufferedLogger()
		NewGormLogger(log, false).Trace(context.Background(), time.Now(), query, errors.New("boom"))
		assert.Contains(t, buf.String(), "Database query failed")
		assert.Contains(t, buf.String(), `"level":"error"`)
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		log, buf := bufferedLogger()
		NewGormLogger(log, false).Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
		assert.NotContains(t, buf.String(), `"level":"error"`)
	})
}

func TestGormLogger_LogMode(t *testing.T) {
	log, _ := bufferedLogger()
	l := NewGormLogger(log, false)

	assert.True(t, l.LogMode(logger.Info).(*GormLogger).verbose)
	assert.False(t, l.LogMode(logger.Silent).(*GormLogger).verbose)
}

func TestNewConnection_BadURL(t *testing.T) {
	log, _ := bufferedLogger()
	_, err := NewConnection("postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", false, log)
	assert.Error(t, err)
}
