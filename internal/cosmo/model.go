package cosmo

import "math"

// Published model constants. These are fixed by the paper, not
// runtime configuration.
const (
	// W0 is the asymptotic equation-of-state value (the LCDM limit).
	W0 = -1.0

	// OscOmega is the log-oscillation frequency of w(z).
	OscOmega = 2.5

	// OscPhase is the oscillation phase offset.
	OscPhase = 0.0

	// OscZTau is the e-folding redshift of the memory damping envelope.
	OscZTau = 2.0

	// CutoffZC is the nominal center of the geometric noise cutoff.
	CutoffZC = 4.0

	// CutoffWidth is the cutoff transition width Delta-z. The sigmoid
	// steepness k is its reciprocal.
	CutoffWidth = 0.5

	// BandLo and BandHi bound the resilience window R = tau*H0*omega
	// inside which the attractor variance is claimed to be minimal.
	BandLo = 0.5
	BandHi = 3.5
)

// Amplitudes are the oscillation amplitudes shown in the w(z) figure.
// A = 0 is the LCDM reference.
var Amplitudes = []float64{0.0, 0.01, 0.02, 0.03}

// EquationOfState is the damped log-oscillatory dark-energy model
//
//	w(z) = w0 + A*exp(-z/ztau)*cos(omega*ln(1+z) + phase)
//
// with oscillations periodic in ln(1+z) and a finite-memory damping
// envelope.
type EquationOfState struct {
	W0    float64
	A     float64
	Omega float64
	Phase float64
	ZTau  float64
}

// DampedOscillator returns the paper's equation of state for the given
// amplitude, with every other parameter at its published value.
func DampedOscillator(amplitude float64) EquationOfState {
	return EquationOfState{
		W0:    W0,
		A:     amplitude,
		Omega: OscOmega,
		Phase: OscPhase,
		ZTau:  OscZTau,
	}
}

// Eval returns w(z).
func (e EquationOfState) Eval(z float64) float64 {
	return e.W0 + e.A*math.Exp(-z/e.ZTau)*math.Cos(e.Omega*math.Log(1+z)+e.Phase)
}

// Cutoff is the geometric noise-suppression sigmoid
//
//	S(z) = 1 / (1 + exp((z - zc)/width))
//
// which is strictly decreasing, bounded in (0, 1), and crosses 1/2
// exactly at zc.
type Cutoff struct {
	ZC    float64
	Width float64
}

// NominalCutoff returns the cutoff at its published parameters.
func NominalCutoff() Cutoff {
	return Cutoff{ZC: CutoffZC, Width: CutoffWidth}
}

// Eval returns S(z).
func (c Cutoff) Eval(z float64) float64 {
	return 1 / (1 + math.Exp((z-c.ZC)/c.Width))
}

// Resilience is the stability metric R = tau*H0 * omega. It is an
// exact product, not an approximation.
func Resilience(tauH0, omega float64) float64 {
	return tauH0 * omega
}
