// Package diagnostic provides structured errors, warnings and notes produced
// while checking legacy struct tags.
//
// Each diagnostic carries a stable code, the type and member it concerns and
// the source position of the offending tag, so reports can be rendered as
// compiler-style text or as JSON.
package diagnostic
