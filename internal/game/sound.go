package game

import (
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/circle-through-point/internal/config"
	"github.com/iburimskiy/circle-through-point/internal/feedback"
)

// output is the audio device feedback sounds are sent to.
type output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	// Clear stops whatever is playing.
	Clear()
	Play(s beep.Streamer)
}

// speakerOutput plays through beep's global speaker.
type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

// Clear takes the speaker lock itself; callers must not hold it.
func (speakerOutput) Clear() { speaker.Clear() }

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

// sound plays feedback tones. The output is opened on first use.
type sound struct {
	enabled  bool
	initDone bool
	out      output
	log      *slog.Logger
}

func newSound(enabled bool, log *slog.Logger) sound {
	return sound{enabled: enabled, out: speakerOutput{}, log: log}
}

func (s *sound) play(st beep.Streamer) {
	if !s.enabled || s.out == nil {
		return
	}
	if !s.initDone {
		sr := feedback.SampleRate
		if err := s.out.Init(sr, sr.N(time.Second/20)); err != nil {
			s.log.Warn("audio unavailable, disabling sound", "err", err)
			s.enabled = false
			return
		}
		s.initDone = true
	}
	s.out.Clear()
	s.out.Play(st)
}

func (s *sound) confirm(angle float64) {
	s.play(feedback.Tone(feedback.SampleRate, feedback.PitchForAngle(angle), config.ToneMillis*time.Millisecond))
}

func (s *sound) reject() {
	s.play(feedback.Buzz(feedback.SampleRate, config.BuzzMillis*time.Millisecond))
}
