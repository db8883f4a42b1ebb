// Package linkeng implements satellite link engineering equations:
// free-space path loss, EIRP, antenna gain and aperture, noise figure
// and noise temperature conversions, carrier-to-noise-density budgets,
// telemetry Eb/No and bit error rate, and the NTIA statgain antenna
// pattern model.
//
// Conventions: function names ending in DB, DBW, DBHz or DBi take and
// return decibel quantities; everything else is linear SI (metres,
// hertz, watts, kelvin). Angles are degrees unless a name says radians.
// Like package math, the equation helpers do not validate their domain:
// out-of-domain input (zero frequency, zero diameter, elevation at or
// below the horizon) propagates NaN or Inf. Callers that accept
// external input are expected to validate first; StatgainDB returns an
// error because its pattern model is a piecewise table with hard
// bounds.
//
// The equation set follows the usual references for this area:
// Nelson, "Link Performance Analysis for a Proposed Future Architecture
// of the Air Force Satellite Control Network"; the DSN Telecommunications
// Link Design Handbook 810-005; Orfanidis, "Electromagnetic Waves and
// Antennas"; and NTIA TM-12-489 for the statgain pattern model.
package linkeng
