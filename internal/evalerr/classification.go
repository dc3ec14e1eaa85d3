package evalerr

import "errors"

// Classification carries the retry and abort semantics a node function
// declares for a failure it raises. The evaluator never infers these flags
// from the error's shape; the failing call site states them explicitly.
type Classification struct {
	// Transient marks a failure whose retry might succeed, such as
	// environmental flakiness. A permanent failure makes retrying any
	// aggregate that includes it futile.
	Transient bool
	// Catastrophic marks a failure that must abort the entire run
	// immediately, overriding any keep-going policy.
	Catastrophic bool
}

// Classifier is implemented by errors that declare their own classification.
type Classifier interface {
	FailureClassification() Classification
}

// classified attaches a Classification to an underlying error.
type classified struct {
	err   error
	class Classification
}

// Mark wraps err so that ClassificationOf recovers the given classification
// anywhere in the wrap chain. Marking a nil error returns nil.
func Mark(err error, class Classification) error {
	if err == nil {
		return nil
	}
	return &classified{err: err, class: class}
}

// Transient marks err as retryable.
func Transient(err error) error {
	return Mark(err, Classification{Transient: true})
}

// Catastrophic marks err as requiring the whole run to abort.
func Catastrophic(err error) error {
	return Mark(err, Classification{Catastrophic: true})
}

func (c *classified) Error() string {
	return c.err.Error()
}

func (c *classified) Unwrap() error {
	return c.err
}

func (c *classified) FailureClassification() Classification {
	return c.class
}

// ClassificationOf extracts the classification declared on err or anything
// it wraps. An unclassified error is permanent and non-catastrophic.
func ClassificationOf(err error) Classification {
	var c Classifier
	if errors.As(err, &c) {
		return c.FailureClassification()
	}
	return Classification{}
}
