package service

// ListOptions carries a listing's filter state: a search term, a status
// value ("all" matches everything) and a sort key. The page itself is
// loaded from the store; search, status and sort are applied in memory
// over the loaded page, so the visible subset is a pure function of it.
type ListOptions struct {
	Search string
	Status string
	Sort   string
	Limit  int
	Offset int
}

const defaultPageSize = 50

func (o *ListOptions) normalize() {
	if o.Limit <= 0 || o.Limit > 200 {
		o.Limit = defaultPageSize
	}
	if o.Status == "" {
		o.Status = "all"
	}
}
