package generate

import "errors"

// ErrNoDocumentAvailable indicates a cover-letter request with no
// document to anchor on: none named and the user has none yet.
var ErrNoDocumentAvailable = errors.New("no document available for cover letter")

// ErrInvalidRequest indicates a malformed generation request.
var ErrInvalidRequest = errors.New("invalid generation request")
