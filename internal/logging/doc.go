// Package logging provides the structured logging interface used by the
// polyroots command. The core packages (radix, polynomial, rootset,
// validation) never log; only the application layer does, to stderr.
package logging
