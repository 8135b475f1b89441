// Package engine connects widget trees to the platform layer.
//
// A [Window] owns one root widget and exposes the two entry points the
// platform calls: Draw on a redraw request and Dispatch on input. An [App]
// is an ordered set of windows. A [Registry] holds live windows and their
// surfaces behind a mutex for platforms that deliver events from several
// windows, and a [Driver] is a headless run loop over a Registry that
// processes one platform input at a time.
package engine
