package disclosure

import "fmt"

// ParseError means the content is not usable markup, even after recovery.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ClassificationError means the root element is not the expected document
// kind. Want is Unknown when any recognised kind would have been accepted.
type ClassificationError struct {
	Tag  string
	Want Kind
}

func (e *ClassificationError) Error() string {
	if e.Want == Unknown {
		return fmt.Sprintf("document is not a recognised disclosure, root element is %s", e.Tag)
	}
	return fmt.Sprintf("document is not a %s, root element is %s", e.Want, e.Tag)
}
