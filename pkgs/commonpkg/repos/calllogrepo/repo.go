package calllogrepo

const DEFAULT_LIST_LIMIT = 50

type repo struct{}

func New() *repo {
	return &repo{}
}

////////////////////////////////////////////////////////////////////////////////

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DEFAULT_LIST_LIMIT
	}
	return limit
}
