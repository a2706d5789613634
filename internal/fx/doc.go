// Package fx builds effect chains for album plans.
//
// Chain wraps a duration prober and an assets root and exposes the effect
// vocabulary of a plan: Source, FadeIn, FadeOut, FadeOutToEnd and Volume.
// Each call wraps an existing model.Source with one more effect and returns
// a new descriptor; nothing is mutated.
//
// Fade offsets given as "seconds before end of file" are resolved to
// absolute offsets when the chain is built, not at render time. The prober
// memoizes per path, so a loop referenced by many tracks is measured once,
// and a missing asset fails the run before any rendering starts.
//
// Errors are sticky: the first failure parks the chain and later calls pass
// their input through unchanged, so a 50-entry declarative track table needs
// exactly one Err check at the end.
package fx
