package ws

import (
	"log"
	"sync"
	"time"

	"microgrid-twin/internal/model"
	"microgrid-twin/internal/profile"
)

// Sink receives encoded playback messages. *Hub satisfies it.
type Sink interface {
	Broadcast(msg []byte)
}

const defaultHoursPerSecond = 2.0

// Player streams a finished simulation result hour-by-hour so the frontend
// can animate the day instead of rendering 24 bars at once. The result is
// computed up-front; playback only paces delivery.
type Player struct {
	mu     sync.Mutex
	sink   Sink
	speed  float64 // simulated hours per wall-clock second
	stopCh chan struct{}
}

func NewPlayer(sink Sink) *Player {
	return &Player{
		sink:  sink,
		speed: defaultHoursPerSecond,
	}
}

// SetSpeed sets the playback speed in hours per second.
func (p *Player) SetSpeed(hoursPerSecond float64) {
	if hoursPerSecond < 0.1 {
		hoursPerSecond = 0.1
	}
	if hoursPerSecond > 100 {
		hoursPerSecond = 100
	}
	p.mu.Lock()
	p.speed = hoursPerSecond
	p.mu.Unlock()
}

// Play starts streaming the result, cancelling any playback in progress.
func (p *Player) Play(result *model.Result) {
	p.mu.Lock()
	if p.stopCh != nil {
		close(p.stopCh)
	}
	stopCh := make(chan struct{})
	p.stopCh = stopCh
	p.mu.Unlock()

	go p.stream(result, stopCh)
}

// Stop cancels any playback in progress.
func (p *Player) Stop() {
	p.mu.Lock()
	if p.stopCh != nil {
		close(p.stopCh)
		p.stopCh = nil
	}
	p.mu.Unlock()
}

func (p *Player) stream(result *model.Result, stopCh chan struct{}) {
	for h := 0; h < profile.HoursPerDay; h++ {
		p.emit(TypeSimHour, HourPayload{
			Hour:     h,
			Baseline: result.BaselineData[h],
			Smart:    result.SmartData[h],
		})

		p.mu.Lock()
		interval := time.Duration(float64(time.Second) / p.speed)
		p.mu.Unlock()

		select {
		case <-stopCh:
			return
		case <-time.After(interval):
		}
	}

	p.emit(TypeSimSummary, SummaryPayload{Summary: result.Summary})
	p.emit(TypeSimDone, nil)

	p.mu.Lock()
	if p.stopCh == stopCh {
		p.stopCh = nil
	}
	p.mu.Unlock()
}

func (p *Player) emit(msgType string, payload any) {
	msg, err := NewEnvelope(msgType, payload)
	if err != nil {
		log.Printf("ws: encoding %s: %v", msgType, err)
		return
	}
	p.sink.Broadcast(msg)
}
