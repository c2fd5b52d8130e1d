// Package cosmo holds the closed-form expressions behind the paper's
// figures: the log-oscillatory equation of state w(z), the geometric
// noise cutoff S(z), and the attractor-variance valley over the
// (tau*H0, omega) parameter plane.
//
// Everything here is a pointwise evaluation over a sampling grid.
// There is no integration, fitting or solving; the package exists so
// the figure definitions can share one authoritative copy of the
// formulas and their published constants.
package cosmo
