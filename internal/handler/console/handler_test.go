package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/passcheck/internal/model"
	strengthService "github.com/jwalitptl/passcheck/internal/service/strength"
	apperrors "github.com/jwalitptl/passcheck/pkg/errors"
)

type recordingChecker struct {
	strengthService.StrengthServicer
	seen []string
}

func (r *recordingChecker) Check(candidate string) []string {
	r.seen = append(r.seen, candidate)
	return r.StrengthServicer.Check(candidate)
}

func newTestHandler(out io.Writer) (*Handler, *recordingChecker) {
	checker := &recordingChecker{StrengthServicer: strengthService.NewService(model.ModeLegacy, nil, nil)}
	return NewHandler(checker, out, nil), checker
}

func header() string {
	return Banner + "\n" + Instruction + "\n"
}

func TestRunEvaluatesUntilSentinel(t *testing.T) {
	var out bytes.Buffer
	h, checker := newTestHandler(&out)

	err := h.Run(context.Background(), strings.NewReader("abc\nPassword1!\nExit\nignored\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"abc", "Password1!"}, checker.seen)

	want := header() +
		Prompt +
		strengthService.MsgTooShort + "\n" +
		strengthService.MsgNoDigit + "\n" +
		strengthService.MsgNoUpper + "\n" +
		strengthService.MsgNoSpecial + "\n" +
		Prompt +
		strengthService.MsgStrong + "\n" +
		Prompt +
		Farewell + "\n"
	assert.Equal(t, want, out.String())
}

func TestRunSentinelIsCaseInsensitive(t *testing.T) {
	for _, input := range []string{"exit", "EXIT", "eXiT", "Exit\r"} {
		t.Run(input, func(t *testing.T) {
			var out bytes.Buffer
			h, checker := newTestHandler(&out)

			require.NoError(t, h.Run(context.Background(), strings.NewReader(input+"\n")))
			assert.Empty(t, checker.seen)
			assert.True(t, strings.HasSuffix(out.String(), Farewell+"\n"))
		})
	}
}

func TestRunSentinelMustMatchExactly(t *testing.T) {
	var out bytes.Buffer
	h, checker := newTestHandler(&out)

	require.NoError(t, h.Run(context.Background(), strings.NewReader(" exit\nexit!\n")))
	assert.Equal(t, []string{" exit", "exit!"}, checker.seen)
	assert.NotContains(t, out.String(), Farewell)
}

func TestRunEndOfInput(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		var out bytes.Buffer
		h, checker := newTestHandler(&out)

		require.NoError(t, h.Run(context.Background(), strings.NewReader("")))
		assert.Empty(t, checker.seen)
		assert.Equal(t, header()+Prompt, out.String())
	})

	t.Run("unterminated last line is evaluated", func(t *testing.T) {
		var out bytes.Buffer
		h, checker := newTestHandler(&out)

		require.NoError(t, h.Run(context.Background(), strings.NewReader("Password1\nPASSWORD!")))
		assert.Equal(t, []string{"Password1", "PASSWORD!"}, checker.seen)
		assert.NotContains(t, out.String(), Farewell)
		assert.True(t, strings.HasSuffix(out.String(), strengthService.MsgStrong+"\n"))
	})
}

func TestRunEmptyLineIsACandidate(t *testing.T) {
	var out bytes.Buffer
	h, checker := newTestHandler(&out)

	require.NoError(t, h.Run(context.Background(), strings.NewReader("\r\n\nexit\n")))
	assert.Equal(t, []string{"", ""}, checker.seen)
}

func TestRunLongLine(t *testing.T) {
	var out bytes.Buffer
	h, checker := newTestHandler(&out)
	long := strings.Repeat("aB3!", 50000)

	require.NoError(t, h.Run(context.Background(), strings.NewReader(long+"\n")))
	require.Len(t, checker.seen, 1)
	assert.Len(t, checker.seen[0], len(long))
}

func TestRunStopsWhenContextCancelled(t *testing.T) {
	var out bytes.Buffer
	h, checker := newTestHandler(&out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, h.Run(ctx, strings.NewReader("abc\n")))
	assert.Empty(t, checker.seen)
	assert.Equal(t, header(), out.String())
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestRunReadError(t *testing.T) {
	var out bytes.Buffer
	h, _ := newTestHandler(&out)
	readErr := errors.New("device unplugged")

	err := h.Run(context.Background(), failingReader{err: readErr})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrInput))
	assert.ErrorIs(t, err, readErr)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRunWriteError(t *testing.T) {
	h, checker := newTestHandler(failingWriter{})

	err := h.Run(context.Background(), strings.NewReader("abc\n"))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrOutput))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Empty(t, checker.seen)
}

func TestNewHandlerAssignsSessionID(t *testing.T) {
	a, _ := newTestHandler(io.Discard)
	b, _ := newTestHandler(io.Discard)

	_, err := uuid.Parse(a.SessionID())
	require.NoError(t, err)
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}
