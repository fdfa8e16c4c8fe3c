package trainpolicy

import "fmt"

// State of a training session
type State int

const (
	NotStarted State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session tracks one training run through start, stop and resume. Every
// transition into Running passes CheckStart.
//
// A Session is not safe for concurrent use; callers serialize start and
// resume attempts per session.
type Session struct {
	// OnTransition, if set, is called after every state change
	OnTransition func(from, to State)

	state     State
	admission Admission
}

// NewSession returns a session in NotStarted
func NewSession() *Session {
	return &Session{state: NotStarted}
}

func (s *Session) State() State { return s.state }

// Admission returns the decision that last moved the session to Running
func (s *Session) Admission() Admission { return s.admission }

// Start moves NotStarted to Running when CheckStart accepts
func (s *Session) Start(cfg RateConfig, model ModelProperties, cyclic bool) (Admission, error) {
	if s.state != NotStarted {
		return Admission{}, s.badTransition("start")
	}
	adm, err := CheckStart(cfg, model, cyclic, nil)
	if err != nil {
		return Admission{}, err
	}
	s.admission = adm
	s.transition(Running)
	return adm, nil
}

// Stop pauses a running session
func (s *Session) Stop() error {
	if s.state != Running {
		return s.badTransition("stop")
	}
	s.transition(Paused)
	return nil
}

// Resume moves Paused to Running at rp. On rejection the session stays
// Paused and the reason is returned.
func (s *Session) Resume(rp ResumePoint, cfg RateConfig, model ModelProperties, cyclic bool) (Admission, error) {
	if s.state != Paused {
		return Admission{}, s.badTransition("resume")
	}
	adm, err := CheckStart(cfg, model, cyclic, &rp)
	if err != nil {
		return Admission{}, err
	}
	s.admission = adm
	s.transition(Running)
	return adm, nil
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	debugf("session %s -> %s", from, to)
	if s.OnTransition != nil {
		s.OnTransition(from, to)
	}
}

func (s *Session) badTransition(op string) error {
	return &PolicyError{
		Component: "Session",
		Kind:      InvalidState,
		Value:     s.state.String(),
		Cause:     fmt.Sprintf("cannot %s a %s session", op, s.state),
	}
}
