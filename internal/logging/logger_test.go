package logging_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trueiron/coach-app/internal/logging"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logging.GetLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, logging.GetLevel("warn"))
	assert.Equal(t, logrus.TraceLevel, logging.GetLevel("trace"))
	assert.Equal(t, logrus.InfoLevel, logging.GetLevel("nonsense"))
}

func TestCombinedWriter(t *testing.T) {
	var a, b bytes.Buffer
	w := logging.NewCombinedWriter(&a, &b)

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "hello", b.String())
}

func TestCombinedWriterKeepsWritingAfterFailure(t *testing.T) {
	var b bytes.Buffer
	w := logging.NewCombinedWriter(failingWriter{}, &b, failingWriter{})

	_, err := w.Write([]byte("x"))
	require.Error(t, err)
	assert.Equal(t, "x", b.String())
	assert.Contains(t, err.Error(), "disk full")
}
