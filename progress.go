package mandel

import "sync"

// Status is the severity hint attached to progress actions and messages.
// Sinks typically map it to a color.
type Status uint8

const (
	// StatusProcessing marks work in progress.
	StatusProcessing Status = iota

	// StatusSuccess marks a completed step.
	StatusSuccess

	// StatusFailure marks a failed step.
	StatusFailure
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusProcessing:
		return "processing"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Progress receives render progress. It is purely observational: nothing a
// Progress does can change the rendered pixels.
//
// A Renderer calls Increment once per completed column. RenderFile also
// drives Init, SetAction, Info and Finish.
type Progress interface {
	// Init resets the progress to zero out of total units.
	Init(total int)

	// SetAction sets the label describing the current step.
	SetAction(action string, status Status)

	// Increment records one completed unit.
	Increment()

	// Info reports a one-off message.
	Info(label, message string, status Status)

	// Finish closes the progress display.
	Finish()
}

// NopProgress discards all progress.
type NopProgress struct{}

func (NopProgress) Init(int)                    {}
func (NopProgress) SetAction(string, Status)    {}
func (NopProgress) Increment()                  {}
func (NopProgress) Info(string, string, Status) {}
func (NopProgress) Finish()                     {}

// syncProgress serializes calls to a Progress shared by render workers.
type syncProgress struct {
	mu sync.Mutex
	p  Progress
}

func (s *syncProgress) Init(total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Init(total)
}

func (s *syncProgress) SetAction(action string, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.SetAction(action, status)
}

func (s *syncProgress) Increment() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Increment()
}

func (s *syncProgress) Info(label, message string, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Info(label, message, status)
}

func (s *syncProgress) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Finish()
}

var (
	_ Progress = NopProgress{}
	_ Progress = (*syncProgress)(nil)
)
