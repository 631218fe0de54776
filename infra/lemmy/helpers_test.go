package lemmy

import "github.com/lemterm/lemterm/domain"

func querySpecForTest(text string) domain.QuerySpec {
	return domain.QuerySpec{
		Text:  text,
		Kind:  domain.SearchPosts,
		Sort:  domain.SortActive,
		Scope: domain.ListingAll,
	}
}
