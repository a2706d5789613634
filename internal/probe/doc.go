// Package probe measures audio file durations by invoking an external
// probing tool (ffprobe).
//
// The Prober interface is the seam the rest of the program depends on:
//
//	type Prober interface {
//	    Duration(ctx context.Context, path string) (float64, error)
//	}
//
// FFProbe is the real implementation. It memoizes results per path for the
// lifetime of the run, which matters because fade-out resolution may ask for
// the same file's length many times across different tracks:
//
//	prober := probe.NewFFProbe("ffprobe")
//	seconds, err := prober.Duration(ctx, "/assets/loop.wav")
//	var perr *probe.Error
//	if errors.As(err, &perr) {
//	    // tool missing, file missing, or unparseable output
//	}
//
// Probe failures are fatal to a run; there is no retry.
package probe
