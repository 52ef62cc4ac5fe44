package feedback

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	// SampleRate used for every feedback sound.
	SampleRate beep.SampleRate = 44100

	lowPitch  = 220.0
	highPitch = 880.0
	buzzPitch = 110.0

	// fade is the attack and release length as a fraction of the sound.
	fade   = 0.1
	volume = 0.3
)

// PitchForAngle maps an angle in degrees onto a frequency between 220 Hz at 0°
// and 880 Hz at 360°.
func PitchForAngle(deg float64) float64 {
	return lowPitch + (highPitch-lowPitch)*clamp01(deg/360)
}

// envelope returns the gain at sample i of n with linear fade in and out.
func envelope(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	pos := float64(i) / float64(n)
	return clamp01(math.Min(pos, 1-pos) / fade)
}

// Tone returns a sine tone of freq Hz lasting d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return wave(sr, d, func(phase float64) float64 {
		return math.Sin(2 * math.Pi * phase)
	}, freq)
}

// Buzz returns a low square wave lasting d, used to signal rejected input.
func Buzz(sr beep.SampleRate, d time.Duration) beep.Streamer {
	return wave(sr, d, func(phase float64) float64 {
		if phase < 0.5 {
			return 1
		}
		return -1
	}, buzzPitch)
}

// wave renders shape (one period over phase [0,1)) at freq Hz for d.
func wave(sr beep.SampleRate, d time.Duration, shape func(float64) float64, freq float64) beep.Streamer {
	total := sr.N(d)
	step := freq / float64(sr)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			_, phase := math.Modf(float64(pos) * step)
			v := shape(phase) * envelope(pos, total) * volume
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
