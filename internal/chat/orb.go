package chat

import (
	"strings"
	"sync"
)

// OrbState is the assistant widget's single activity state. At most one of
// listening/speaking is ever active; processing covers the span between a
// submit and its resolution.
type OrbState int

const (
	OrbIdle OrbState = iota
	OrbListening
	OrbSpeaking
	OrbProcessing
)

func (s OrbState) String() string {
	switch s {
	case OrbListening:
		return "listening"
	case OrbSpeaking:
		return "speaking"
	case OrbProcessing:
		return "processing"
	default:
		return "idle"
	}
}

// Recognizer is the speech-to-text capability. A nil Recognizer means the
// capability is unavailable and the widget degrades to text-only input;
// final transcripts arrive through OrbMachine.FinalTranscript.
type Recognizer interface {
	Start() error
	Stop()
}

// Synthesizer is the text-to-speech capability. A nil Synthesizer means
// replies are shown without audio; playback completion arrives through
// OrbMachine.SpeechEnded.
type Synthesizer interface {
	Speak(text string) error
	Stop()
}

// OrbMachine coordinates the orb UI state. Transitions happen only on
// explicit events (taps, transcripts, transport completion), never by
// polling. All methods are safe for concurrent use; the event callbacks run
// without the internal lock held.
type OrbMachine struct {
	mu         sync.Mutex
	state      OrbState
	panelOpen  bool
	tornDown   bool
	recognizer Recognizer
	synth      Synthesizer

	// onSubmit receives the message to send; the owner wires it to
	// Service.Send and reports back via ReplyReceived/ReplyFailed.
	onSubmit func(message string)
}

func NewOrbMachine(rec Recognizer, syn Synthesizer, onSubmit func(message string)) *OrbMachine {
	return &OrbMachine{
		state:      OrbIdle,
		recognizer: rec,
		synth:      syn,
		onSubmit:   onSubmit,
	}
}

func (m *OrbMachine) State() OrbState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *OrbMachine) PanelOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.panelOpen
}

// Tap handles a tap on the orb. Closed panel: open it, no state change.
// Idle with open panel: start listening when the capability exists.
// Listening: stop capture (a captured transcript arrives as its own event).
// Speaking: cut playback and return to idle. Processing: ignored.
func (m *OrbMachine) Tap() {
	m.mu.Lock()
	if m.tornDown {
		m.mu.Unlock()
		return
	}

	if !m.panelOpen {
		m.panelOpen = true
		m.mu.Unlock()
		return
	}

	switch m.state {
	case OrbIdle:
		if m.recognizer == nil {
			m.mu.Unlock()
			return
		}
		m.state = OrbListening
		rec := m.recognizer
		m.mu.Unlock()
		if err := rec.Start(); err != nil {
			m.mu.Lock()
			m.state = OrbIdle
			m.mu.Unlock()
		}
	case OrbListening:
		m.state = OrbIdle
		rec := m.recognizer
		m.mu.Unlock()
		rec.Stop()
	case OrbSpeaking:
		m.state = OrbIdle
		syn := m.synth
		m.mu.Unlock()
		if syn != nil {
			syn.Stop()
		}
	default:
		m.mu.Unlock()
	}
}

// FinalTranscript delivers a final speech-recognition result. A non-empty
// transcript is submitted immediately, with no extra confirmation step.
func (m *OrbMachine) FinalTranscript(text string) {
	m.mu.Lock()
	if m.tornDown {
		m.mu.Unlock()
		return
	}
	if m.state == OrbListening {
		m.state = OrbIdle
	}
	m.mu.Unlock()

	m.Submit(text)
}

// Submit sends a message, whether voice-captured or typed. Empty input and
// an in-flight request are both no-ops; any active speech output is stopped
// before the new request goes out so audio never overlaps a response in
// flight.
func (m *OrbMachine) Submit(message string) {
	if strings.TrimSpace(message) == "" {
		return
	}

	m.mu.Lock()
	if m.tornDown || m.state == OrbProcessing {
		m.mu.Unlock()
		return
	}
	if m.state == OrbListening && m.recognizer != nil {
		m.recognizer.Stop()
	}
	stopSpeech := m.state == OrbSpeaking
	m.state = OrbProcessing
	syn := m.synth
	submit := m.onSubmit
	m.mu.Unlock()

	if stopSpeech && syn != nil {
		syn.Stop()
	}
	if submit != nil {
		submit(message)
	}
}

// ReplyReceived resolves the in-flight request with the assistant's reply.
// When speech synthesis is available the reply is spoken; otherwise the orb
// returns to idle.
func (m *OrbMachine) ReplyReceived(reply string) {
	m.mu.Lock()
	if m.tornDown {
		m.mu.Unlock()
		return
	}
	syn := m.synth
	if syn == nil {
		m.state = OrbIdle
		m.mu.Unlock()
		return
	}
	m.state = OrbSpeaking
	m.mu.Unlock()

	if err := syn.Speak(reply); err != nil {
		m.mu.Lock()
		if m.state == OrbSpeaking {
			m.state = OrbIdle
		}
		m.mu.Unlock()
	}
}

// ReplyFailed resolves the in-flight request on the error path. The fallback
// message is displayed by the service, never spoken.
func (m *OrbMachine) ReplyFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tornDown {
		return
	}
	m.state = OrbIdle
}

// SpeechEnded marks natural completion of playback.
func (m *OrbMachine) SpeechEnded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == OrbSpeaking {
		m.state = OrbIdle
	}
}

// ClosePanel hides the panel. It deliberately does not cancel an in-flight
// request; the resolution events still land and are simply not visible
// until the panel reopens.
func (m *OrbMachine) ClosePanel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panelOpen = false
}

// Teardown makes every subsequent event a no-op, guarding against state
// updates after the widget is unmounted.
func (m *OrbMachine) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tornDown = true
	if m.recognizer != nil && m.state == OrbListening {
		m.recognizer.Stop()
	}
	if m.synth != nil && m.state == OrbSpeaking {
		m.synth.Stop()
	}
	m.state = OrbIdle
}
