// SPDX-License-Identifier: EPL-2.0

package fcdec

// Configuration keys read from the host.
const (
	ConfigKeySampleRate  = "fcdec.samplerate"
	ConfigKeyPanning     = "fcdec.panning"
	ConfigKeyMinDuration = "fcdec.minduration"
)

// Defaults used when a key is not configured.
const (
	DefaultSampleRateIndex = 1
	DefaultPanning         = 75
	DefaultMinDuration     = 10
)

// SampleRates lists the output rates selectable through ConfigKeySampleRate.
var SampleRates = [3]int{48000, 44100, 22050}

const configDialog = `property "Sample rate [Hz]" select[3] fcdec.samplerate 1 48000 44100 22050;
property "Panning" spinbtn[0,100,1] fcdec.panning 75;
property "Min.duration [sec]" entry fcdec.minduration 10;
`

// settings is a snapshot of the user configuration.
type settings struct {
	SampleRate  int
	Panning     int
	MinDuration int
}

func (p *Plugin) settings() settings {
	idx := p.api.GetInt(ConfigKeySampleRate, DefaultSampleRateIndex)
	if idx < 0 || idx >= len(SampleRates) {
		p.logger.Warnw("Sample rate index out of range, using default",
			"invalidValue", idx, "defaultValue", DefaultSampleRateIndex)
		idx = DefaultSampleRateIndex
	}

	panning := min(max(p.api.GetInt(ConfigKeyPanning, DefaultPanning), 0), 100)

	return settings{
		SampleRate:  SampleRates[idx],
		Panning:     panning,
		MinDuration: p.minDuration(),
	}
}

func (p *Plugin) minDuration() int {
	return p.api.GetInt(ConfigKeyMinDuration, DefaultMinDuration)
}
