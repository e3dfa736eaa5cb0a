// Package control provides pointer sources for the simulation.
//
// Controllers implement [sim.Controller] and decide each frame whether the
// attraction point is active and where it is:
//
//   - [None]: never attracts
//   - [Manual]: pointer set by an interactive frontend (mouse)
//   - [Fixed]: constant target, always active
//   - [Orbit]: target circling the area center, for headless runs
//
// # Usage
//
//	ctrl, _ := control.New("orbit")
//	result, _ := s.Run(ctx, w, ctrl, cfg)
package control
