package domain

// SearchKind selects which record type a search returns.
type SearchKind int

const (
	SearchPosts SearchKind = iota
	SearchComments
	SearchCommunities
	SearchUsers
)

var searchKinds = [...]string{"Posts", "Comments", "Communities", "Users"}

func (k SearchKind) String() string {
	if int(k) < 0 || int(k) >= len(searchKinds) {
		return searchKinds[0]
	}
	return searchKinds[k]
}

// Next cycles to the following kind, wrapping at the end.
func (k SearchKind) Next() SearchKind {
	return SearchKind((int(k) + 1) % len(searchKinds))
}

// SortOrder is the server-side result ordering.
type SortOrder int

const (
	SortActive SortOrder = iota
	SortHot
	SortNew
	SortOld
	SortTopDay
	SortTopWeek
)

var sortOrders = [...]string{"Active", "Hot", "New", "Old", "TopDay", "TopWeek"}

func (s SortOrder) String() string {
	if int(s) < 0 || int(s) >= len(sortOrders) {
		return sortOrders[0]
	}
	return sortOrders[s]
}

func (s SortOrder) Next() SortOrder {
	return SortOrder((int(s) + 1) % len(sortOrders))
}

// ListingScope restricts which communities a search covers.
type ListingScope int

// All is first so a zero-value QuerySpec searches every community, which
// is the only scope an anonymous session can meaningfully serve.
const (
	ListingAll ListingScope = iota
	ListingLocal
	ListingSubscribed
)

var listingScopes = [...]string{"All", "Local", "Subscribed"}

func (l ListingScope) String() string {
	if int(l) < 0 || int(l) >= len(listingScopes) {
		return listingScopes[0]
	}
	return listingScopes[l]
}

func (l ListingScope) Next() ListingScope {
	return ListingScope((int(l) + 1) % len(listingScopes))
}

// KindByName returns the named kind, defaulting to Posts.
func KindByName(name string) SearchKind {
	for i, n := range searchKinds {
		if n == name {
			return SearchKind(i)
		}
	}
	return SearchPosts
}

// SortByName returns the named sort order, defaulting to Active.
func SortByName(name string) SortOrder {
	for i, n := range sortOrders {
		if n == name {
			return SortOrder(i)
		}
	}
	return SortActive
}

// ScopeByName returns the named listing scope, defaulting to All.
func ScopeByName(name string) ListingScope {
	for i, n := range listingScopes {
		if n == name {
			return ListingScope(i)
		}
	}
	return ListingAll
}

// QuerySpec is an immutable snapshot of the user-chosen search parameters.
// A copy is handed to the feed pipeline per search invocation.
type QuerySpec struct {
	Text  string
	Kind  SearchKind
	Sort  SortOrder
	Scope ListingScope
}

// Key is a stable identity for staleness checks: results arriving for a
// different key than the one currently displayed are discarded.
func (q QuerySpec) Key() string {
	return q.Kind.String() + "|" + q.Sort.String() + "|" + q.Scope.String() + "|" + q.Text
}
