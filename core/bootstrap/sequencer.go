package bootstrap

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// State is a stage of the startup sequence.
type State string

const (
	StateIdle          State = "idle"
	StateConnecting    State = "connecting"
	StateSeeding       State = "seeding"
	StateRoutesMounted State = "routes_mounted"
	StateListening     State = "listening"
	StateFailed        State = "failed"
)

// Config controls optional stages.
type Config struct {
	// EnableSeeding runs the seed stage between connecting and mounting routes.
	EnableSeeding bool
	// Addr is passed to the listen stage.
	Addr string
}

// Stages are the actions run by the sequencer, in order.
type Stages struct {
	// Connect opens storage. A failure is fatal.
	Connect func(ctx context.Context) error
	// Seed inserts sample data. A failure is logged and ignored.
	Seed func(ctx context.Context) error
	// Mount registers the routes followed by the error handler.
	Mount func() error
	// Listen blocks while serving on addr and returns when the server stops.
	Listen func(addr string) error
}

// Sequencer runs the startup stages strictly one after another:
// connect, seed (optional), mount routes, listen. Nothing is retried.
type Sequencer struct {
	cfg    Config
	stages Stages
	logger *zap.Logger

	mu      sync.Mutex
	state   State
	history []State
}

// New creates a sequencer in the idle state.
func New(cfg Config, stages Stages, logger *zap.Logger) *Sequencer {
	return &Sequencer{
		cfg:     cfg,
		stages:  stages,
		logger:  logger,
		state:   StateIdle,
		history: []State{StateIdle},
	}
}

// State returns the current state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// History returns every state entered so far, starting with idle.
func (s *Sequencer) History() []State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]State, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Sequencer) transition(to State) {
	s.mu.Lock()
	from := s.state
	s.state = to
	s.history = append(s.history, to)
	s.mu.Unlock()
	s.logger.Debug("Bootstrap transition", zap.String("from", string(from)), zap.String("to", string(to)))
}

func (s *Sequencer) fail(stage string, err error) error {
	s.transition(StateFailed)
	s.logger.Error("Bootstrap failed", zap.String("stage", stage), zap.Error(err))
	return fmt.Errorf("%s: %w", stage, err)
}

// Run executes the sequence. It returns nil once the listener stops cleanly, and
// an error if connecting, mounting or listening fails.
func (s *Sequencer) Run(ctx context.Context) error {
	if s.State() != StateIdle {
		return fmt.Errorf("sequencer already ran (state %s)", s.State())
	}

	s.transition(StateConnecting)
	if err := s.stages.Connect(ctx); err != nil {
		return s.fail("connect", err)
	}

	if s.cfg.EnableSeeding && s.stages.Seed != nil {
		s.transition(StateSeeding)
		if err := s.stages.Seed(ctx); err != nil {
			s.logger.Error("Seeding sample users failed", zap.Error(err))
		}
	}

	if err := s.stages.Mount(); err != nil {
		return s.fail("mount routes", err)
	}
	s.transition(StateRoutesMounted)

	s.transition(StateListening)
	s.logger.Info("Server is running", zap.String("addr", s.cfg.Addr))
	if err := s.stages.Listen(s.cfg.Addr); err != nil {
		return s.fail("listen", err)
	}
	return nil
}
