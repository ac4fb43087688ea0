package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
)

// Tone returns a mono 16-bit WAV file holding a sine wave at freq Hz with a
// short linear fade at both ends.
func Tone(freq float64, d time.Duration, sampleRate int) []byte {
	n := int(d.Seconds() * float64(sampleRate))
	fade := min(n/2, sampleRate/100)

	samples := make([]int16, n)
	for i := range samples {
		amp := 0.5
		if i < fade {
			amp *= float64(i) / float64(fade)
		} else if i >= n-fade {
			amp *= float64(n-1-i) / float64(fade)
		}
		v := amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		samples[i] = int16(v * math.MaxInt16)
	}

	dataLen := uint32(2 * n)
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVEfmt ")
	_ = binary.Write(&buf, binary.LittleEndian, struct {
		Size       uint32
		Format     uint16
		Channels   uint16
		SampleRate uint32
		ByteRate   uint32
		BlockAlign uint16
		Bits       uint16
	}{16, 1, 1, uint32(sampleRate), uint32(sampleRate * 2), 2, 16})
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataLen)
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}
