// Package batch executes a composition plan end to end: every card in the
// plan is loaded, cropped and post-processed on its own worker, results land
// in a gallery store, and the finished cards are composed onto the output
// sheet.
//
// Scans are independent of one another, so workers share nothing but the
// result slots. The default worker count starts from the CPU count and is
// capped by available memory, since each in-flight card can hold several
// full-page rasters at once.
package batch
