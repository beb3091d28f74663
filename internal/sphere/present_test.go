package sphere

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPresenterSetup(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(&out, ForegroundANSI)
	require.NoError(t, p.Setup())
	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\x1b[2J"), "%q", s)
	assert.Contains(t, s, "\x1b[?25l")
	assert.True(t, strings.HasSuffix(s, "\x1b[32m"), "%q", s)
}

func TestPresenterFrameLayout(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(&out, ForegroundANSI)
	b := NewBuffers(3, 2)
	copy(b.Frame, "abcdef")
	require.NoError(t, p.Present(b))
	assert.Equal(t, "\nbc\nef", out.String())
}

func TestPresenterHomeThenFrame(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(&out, ForegroundANSI)
	b := NewBuffers(4, 3)
	p.Home()
	require.NoError(t, p.Present(b))
	s := out.String()
	require.True(t, strings.HasPrefix(s, "\x1b[1;1H"), "%q", s)
	body := strings.TrimPrefix(s, "\x1b[1;1H")
	assert.Len(t, body, 12)
	assert.Equal(t, 3, strings.Count(body, "\n"))
}

func TestPresenterClose(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(&out, ForegroundANSI)
	require.NoError(t, p.Close())
	assert.Contains(t, out.String(), "\x1b[0m")
	assert.Contains(t, out.String(), "\x1b[?25h")
}

func TestPresenterBrightColor(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewPresenter(&out, 9).Setup())
	assert.True(t, strings.HasSuffix(out.String(), "\x1b[91m"), "%q", out.String())
}

func TestPresenterWriteError(t *testing.T) {
	p := NewPresenter(failWriter{}, ForegroundANSI)
	assert.Error(t, p.Setup())
	assert.Error(t, p.Present(NewBuffers(2, 2)))
}
