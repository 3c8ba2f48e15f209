package barrverb

import (
	"fmt"

	"github.com/cwbudde/algo-barrverb/dsp/filter/svf"
)

// Input filter stages, modelled on the analog anti-alias filter in front
// of the converter.
const (
	stage1CutoffHz = 5916.0
	stage1Q        = 0.6572
	stage2CutoffHz = 9458.0
	stage2Q        = 2.536
)

// InputFilter is the two-stage low-pass cascade applied to the mono input.
type InputFilter struct {
	stages [2]svf.Filter
}

// NewInputFilter returns the cascade configured for sampleRate.
func NewInputFilter(sampleRate float64) (*InputFilter, error) {
	f := &InputFilter{}
	if err := f.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}

	return f, nil
}

// SetSampleRate recomputes both stages and clears their state.
func (f *InputFilter) SetSampleRate(sampleRate float64) error {
	if err := f.stages[0].SetFreq(stage1CutoffHz, stage1Q, sampleRate); err != nil {
		return fmt.Errorf("barrverb: input filter: %w", err)
	}

	if err := f.stages[1].SetFreq(stage2CutoffHz, stage2Q, sampleRate); err != nil {
		return fmt.Errorf("barrverb: input filter: %w", err)
	}

	return nil
}

// ProcessSample runs x through stage 1 then stage 2.
func (f *InputFilter) ProcessSample(x float64) float64 {
	return f.stages[1].ProcessSample(f.stages[0].ProcessSample(x))
}

// Reset clears the delay registers of both stages.
func (f *InputFilter) Reset() {
	f.stages[0].Reset()
	f.stages[1].Reset()
}

// Stage returns stage i (0 or 1) for inspection.
func (f *InputFilter) Stage(i int) *svf.Filter {
	return &f.stages[i]
}
