// Package monitor pumps event frames from a transport through a decoder to
// any number of subscribers.
package monitor

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/muxable/hcicodec/pkg/hci"
	"go.uber.org/zap"
)

// Source produces one event frame per call.
type Source interface {
	ReadEvent() ([]byte, error)
}

// Handler receives each decoded event, or the decode error for a frame that
// failed to decode.
type Handler func(hci.Event, error)

type Monitor struct {
	src Source
	dec *hci.Decoder

	mu   sync.Mutex
	subs map[string]Handler
}

func New(src Source, dec *hci.Decoder) *Monitor {
	return &Monitor{
		src:  src,
		dec:  dec,
		subs: make(map[string]Handler),
	}
}

// Subscribe registers h and returns the id to pass to Unsubscribe.
func (m *Monitor) Subscribe(h Handler) string {
	id := uuid.NewString()
	m.mu.Lock()
	m.subs[id] = h
	m.mu.Unlock()
	return id
}

func (m *Monitor) Unsubscribe(id string) {
	m.mu.Lock()
	delete(m.subs, id)
	m.mu.Unlock()
}

// Run reads until the source fails. Handlers are called synchronously, so
// each sees frames in the order they were read. A source returning io.EOF
// ends Run with a nil error.
func (m *Monitor) Run() error {
	for {
		frame, err := m.src.ReadEvent()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		ev, err := m.dec.Decode(frame)
		if err != nil {
			zap.L().Debug("decode failed", zap.String("frame", fmt.Sprintf("%x", frame)), zap.Error(err))
		}
		m.dispatch(ev, err)
	}
}

func (m *Monitor) dispatch(ev hci.Event, err error) {
	m.mu.Lock()
	subs := make([]Handler, 0, len(m.subs))
	for _, h := range m.subs {
		subs = append(subs, h)
	}
	m.mu.Unlock()
	for _, h := range subs {
		h(ev, err)
	}
}
