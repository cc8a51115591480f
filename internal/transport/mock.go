package transport

// Mock is a test double for Transport. It records commands and lets tests
// inject events.
type Mock struct {
	loads     []string
	tokens    []Token
	plays     int
	pauses    int
	positions []float64
	volumes   []float64
	events    chan Event
	closed    bool
}

// NewMock creates a new mock transport.
func NewMock() *Mock {
	return &Mock{events: make(chan Event, 64)}
}

func (m *Mock) Load(ref string, token Token) {
	m.loads = append(m.loads, ref)
	m.tokens = append(m.tokens, token)
}

func (m *Mock) Play() { m.plays++ }

func (m *Mock) Pause() { m.pauses++ }

func (m *Mock) SetPosition(seconds float64) {
	m.positions = append(m.positions, seconds)
}

func (m *Mock) SetVolume(level float64) {
	m.volumes = append(m.volumes, level)
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	if !m.closed {
		m.closed = true
		close(m.events)
	}
	return nil
}

// Test helpers

func (m *Mock) Loads() []string { return m.loads }

func (m *Mock) PlayCalls() int { return m.plays }

func (m *Mock) PauseCalls() int { return m.pauses }

func (m *Mock) Positions() []float64 { return m.positions }

func (m *Mock) Volumes() []float64 { return m.volumes }

// LastToken returns the token of the most recent Load, or 0.
func (m *Mock) LastToken() Token {
	if len(m.tokens) == 0 {
		return 0
	}
	return m.tokens[len(m.tokens)-1]
}

// Emit queues an event as if the transport produced it.
func (m *Mock) Emit(e Event) {
	select {
	case m.events <- e:
	default:
	}
}

// Verify Mock implements Transport at compile time.
var _ Transport = (*Mock)(nil)
