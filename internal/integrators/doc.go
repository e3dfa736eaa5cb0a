// Package integrators advances particle positions over bounded sub-steps.
//
// A frame's elapsed time is split into sub-steps no longer than
// [SafeStep], which keeps every particle's per-step displacement below its
// own radius so fast particles cannot tunnel through each other:
//
//	safe := integrators.SafeStep(w.Particles, w.Timescale)
//	for st := integrators.NewStepper(frameDt, safe); st.Next(); {
//	    for i := range w.Particles {
//	        integrators.Advance(&w.Particles[i], st.Dt(), w.Timescale)
//	        // walls
//	    }
//	    // collisions
//	}
package integrators
