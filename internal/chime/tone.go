// Package chime produces the completion sound.
package chime

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
)

// Tone describes a sine tone whose gain decays exponentially
type Tone struct {
	Frequency  float64 // Hz
	Length     time.Duration
	StartGain  float64
	EndGain    float64
	SampleRate int
}

// DefaultTone is a short 800 Hz ping
var DefaultTone = Tone{
	Frequency:  800,
	Length:     500 * time.Millisecond,
	StartGain:  0.3,
	EndGain:    0.01,
	SampleRate: 44100,
}

// Samples returns the tone as signed 16-bit mono PCM
func (t Tone) Samples() []int16 {
	n := int(t.Length.Seconds() * float64(t.SampleRate))
	if n <= 0 {
		return nil
	}

	samples := make([]int16, n)
	ratio := t.EndGain / t.StartGain
	for i := range samples {
		pos := float64(i) / float64(n)
		gain := t.StartGain * math.Pow(ratio, pos)
		phase := 2 * math.Pi * t.Frequency * float64(i) / float64(t.SampleRate)
		samples[i] = int16(gain * math.Sin(phase) * math.MaxInt16)
	}
	return samples
}

// WAV encodes the tone as a RIFF/WAVE file
func (t Tone) WAV() []byte {
	samples := t.Samples()
	dataSize := uint32(len(samples) * 2)

	var buf bytes.Buffer
	buf.Grow(44 + int(dataSize))

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))             // chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))              // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1))              // mono
	binary.Write(&buf, binary.LittleEndian, uint32(t.SampleRate))   // sample rate
	binary.Write(&buf, binary.LittleEndian, uint32(t.SampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))              // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))             // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
