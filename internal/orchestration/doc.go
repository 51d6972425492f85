// Package orchestration runs the polyroots pipeline: decode the roots, select
// the first k, build the polynomial, then validate it with one or more
// evaluators concurrently and cross-check their reports. It is decoupled from
// presentation via the ProgressReporter and ResultPresenter interfaces.
package orchestration
