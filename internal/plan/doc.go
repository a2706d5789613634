// Package plan turns album descriptions into resolved model values.
//
// Two sources are supported: the built-in Chrono Ark track table via
// ChronoArk, and user-supplied JSON plan files via Load. Both run every
// asset reference and fade through an fx.Chain, so the returned album
// carries absolute fade positions and root-resolved paths.
package plan
