// Package sde implements the stochastic dynamics models.
//
// A dynamics model is a pure state-transition function: given the current
// state and a random innovation it produces the next state, and by repeated
// application a full path. Models validate their parameter shapes at
// construction and never after; stepping is allocation-predictable and free
// of hidden randomness.
//
// Numeric degeneracy (negative dt, NaN parameters) is not special-cased:
// invalid inputs propagate as NaN results and callers are responsible for
// economically meaningful ranges.
package sde
