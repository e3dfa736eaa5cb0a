// Package analysis characterizes headless runs.
//
//   - [PowerSpectrum] and [DominantFrequency]: periodicity of per-frame
//     collision or bounce counts
//   - [Divergence] and [LyapunovExponent]: growth of a small position
//     perturbation, the usual sign of chaotic billiards
//   - [Sweep]: collision and bounce rates across a range of one knob
//
// A positive exponent means nearby worlds separate exponentially:
//
//	lambda := analysis.LyapunovExponent(w, sim.Options{}, 1.0/60, 5, 1e-6)
//	if lambda > 0 {
//	    // trajectories diverge
//	}
package analysis
