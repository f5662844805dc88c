package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	strengthService "github.com/jwalitptl/passcheck/internal/service/strength"
	apperrors "github.com/jwalitptl/passcheck/pkg/errors"
	"github.com/jwalitptl/passcheck/pkg/logger"
)

const (
	Banner      = "----Password Checker----"
	Instruction = "Enter the password to check or type 'exit' to end the check"
	Prompt      = "Enter the password: "
	Farewell    = "Thank you for using the tool"

	// Sentinel ends the session; it is matched case-insensitively.
	Sentinel = "exit"
)

type Handler struct {
	service   strengthService.StrengthServicer
	out       io.Writer
	logger    *logger.Logger
	sessionID string
}

func NewHandler(service strengthService.StrengthServicer, out io.Writer, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	sessionID := uuid.NewString()
	return &Handler{
		service:   service,
		out:       out,
		logger:    log.WithFields(map[string]interface{}{"session_id": sessionID}),
		sessionID: sessionID,
	}
}

func (h *Handler) SessionID() string {
	return h.sessionID
}

// Run prompts for candidates read from in until the sentinel is entered,
// in is exhausted, or ctx is cancelled. End of input is not an error.
func (h *Handler) Run(ctx context.Context, in io.Reader) error {
	h.logger.Debug("Session started")

	if err := h.println(Banner, Instruction); err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	for {
		if ctx.Err() != nil {
			h.logger.Debug("Session cancelled")
			return nil
		}

		if _, err := io.WriteString(h.out, Prompt); err != nil {
			return apperrors.NewOutput(err)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return apperrors.NewInput(err)
		}
		eof := err != nil
		if eof && line == "" {
			h.logger.Debug("Input exhausted")
			return nil
		}

		candidate := trimLineEnding(line)
		if strings.EqualFold(candidate, Sentinel) {
			h.logger.Debug("Sentinel received")
			return h.println(Farewell)
		}

		if err := h.println(h.service.Check(candidate)...); err != nil {
			return err
		}

		if eof {
			h.logger.Debug("Input exhausted")
			return nil
		}
	}
}

func (h *Handler) println(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(h.out, line); err != nil {
			return apperrors.NewOutput(err)
		}
	}
	return nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
