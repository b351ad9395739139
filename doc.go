// Package vislog renders leveled log lines to a terminal and, when the
// terminal is interactive, keeps a block of named live items (progress or
// spinner rows) redrawn in place below them.
//
// Log lines scroll normally. Items are redrawn as one block on a throttled
// schedule, so bursts of updates collapse into a single repaint. When the
// output is not interactive, item updates degrade to a trickle of dots.
//
//	log := vislog.MustNew()
//	log.AddItem(vislog.ItemOptions{Name: "fetch", Spinner: vislog.DefaultSpinner})
//	log.UpdateItem("fetch", "3 of 10 packages")
//	log.Warnf("slow mirror: %s", host)
//	log.Shutdown(true)
package vislog
