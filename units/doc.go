// Package units provides small value types for the physical quantities
// used in link engineering: Frequency, Power, Distance, Angle and
// Velocity. Each type stores a single base unit and exposes accessors
// for the common alternates, so call sites say which unit they mean.
package units
