package content

import (
	"errors"
	"fmt"
)

// ErrMalformed marks a content file whose frontmatter or fields could not be
// decoded. Match it with errors.Is.
var ErrMalformed = errors.New("malformed content")

// ErrInvalidSlug is returned for slugs that could escape the content root.
var ErrInvalidSlug = errors.New("invalid slug")

// MalformedError reports which file failed to load and why.
type MalformedError struct {
	Kind string
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }
