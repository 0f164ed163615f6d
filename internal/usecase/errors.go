package usecase

import "errors"

var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrOfferNotFound    = errors.New("offer not found")
	ErrSkillNotFound    = errors.New("skill not found")
	ErrRelationNotFound = errors.New("learned relation not found")

	// ErrInvalidQuery covers malformed caller input: unparseable ids, unknown
	// level tags, empty filter sets.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrEngineBusy maps the regeneration lock timeout. The caller retries.
	ErrEngineBusy = errors.New("engine busy")

	// ErrUpstreamUnavailable is returned only when an operation cannot degrade
	// past a missing upstream, such as a merge with an unreadable relation
	// store.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
