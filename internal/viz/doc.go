// Package viz renders a live terminal view of Monte Carlo convergence:
// a running price estimate with its standard error and an ascii graph of
// the estimate history.
package viz
