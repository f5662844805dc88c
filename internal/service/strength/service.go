package strength

import (
	"time"

	"github.com/jwalitptl/passcheck/internal/model"
	"github.com/jwalitptl/passcheck/pkg/logger"
	"github.com/jwalitptl/passcheck/pkg/metrics"
	"github.com/jwalitptl/passcheck/pkg/security"
)

// Messages printed for unmet rules and for the strong verdict.
const (
	MsgTooShort  = "-> Password must be at least 8 characters long"
	MsgNoDigit   = "-> Password must have at least one digit"
	MsgNoUpper   = "-> Password must have at least one uppercase letter"
	MsgNoLower   = "-> Password must contain at least one lowercase letter"
	MsgNoSpecial = "-> Password must contain at least one special character"
	MsgStrong    = "Strong: Your password is secure and strong"
)

var failureMessages = map[model.Rule]string{
	model.RuleLength:  MsgTooShort,
	model.RuleDigit:   MsgNoDigit,
	model.RuleUpper:   MsgNoUpper,
	model.RuleLower:   MsgNoLower,
	model.RuleSpecial: MsgNoSpecial,
}

type StrengthServicer interface {
	Evaluate(candidate string) model.Outcome
	Report(outcome model.Outcome) []string
	Check(candidate string) []string
}

type Service struct {
	mode    model.Mode
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewService builds a checker for mode. An unknown mode falls back to
// legacy reporting. m and log may be nil.
func NewService(mode model.Mode, m *metrics.Metrics, log *logger.Logger) *Service {
	if !mode.Valid() {
		mode = model.ModeLegacy
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		mode:    mode,
		metrics: m,
		logger:  log,
	}
}

func (s *Service) Mode() model.Mode {
	return s.mode
}

// Evaluate runs every rule against candidate. It never fails.
func (s *Service) Evaluate(candidate string) model.Outcome {
	return model.Outcome{
		Length:  security.Length(candidate) >= security.MinPasswordLen,
		Digit:   security.ContainsAny(candidate, security.IsDigit),
		Upper:   security.ContainsAny(candidate, security.IsUpper),
		Lower:   security.ContainsAny(candidate, security.IsLower),
		Special: security.ContainsAny(candidate, security.IsSpecial),
	}
}

// Report turns an outcome into the lines to print, in rule order.
func (s *Service) Report(outcome model.Outcome) []string {
	var lines []string
	for _, r := range outcome.Failed() {
		lines = append(lines, failureMessages[r])
	}
	if s.strong(outcome) {
		lines = append(lines, MsgStrong)
	}
	return lines
}

// Check evaluates candidate, records it and returns the report.
func (s *Service) Check(candidate string) []string {
	start := time.Now()
	outcome := s.Evaluate(candidate)
	lines := s.Report(outcome)
	s.record(outcome, time.Since(start))
	return lines
}

func (s *Service) strong(outcome model.Outcome) bool {
	if s.mode == model.ModeAggregate {
		return outcome.AllPassed()
	}
	return outcome.Special
}

func (s *Service) record(outcome model.Outcome, elapsed time.Duration) {
	failed := outcome.Failed()
	names := make([]string, 0, len(failed))
	for _, r := range failed {
		names = append(names, r.String())
	}

	s.logger.ZL.Debug().
		Strs("failed_rules", names).
		Bool("strong", s.strong(outcome)).
		Msg("Candidate evaluated")

	if s.metrics == nil {
		return
	}
	s.metrics.Evaluations.Inc()
	s.metrics.EvaluationDuration.Observe(elapsed.Seconds())
	for _, name := range names {
		s.metrics.RuleFailures.WithLabelValues(name).Inc()
	}
	if s.strong(outcome) {
		s.metrics.StrongVerdicts.Inc()
	}
}
