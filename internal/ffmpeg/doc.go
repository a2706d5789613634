// Package ffmpeg assembles and runs the external renderer invocation for a
// single track.
//
// Command is the filter-graph and argument builder: one numbered input per
// part (the same file may appear twice under different descriptors), one
// filter stage per effect expression threaded through fresh [fN] labels, an
// optional trailing [silence] stream for the track gap, and an N-way audio
// concat feeding [out]. A Command lives for exactly one invocation.
//
// Renderer executes the assembled arguments with ffmpeg and blocks until it
// exits. Failures come back as *InvocationError carrying the tool's stderr;
// they abort the whole run.
package ffmpeg
