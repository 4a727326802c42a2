package types

type CacheKey string

const (
	CacheKeyRepositories CacheKey = "github_repos_cache"
	CacheKeyUser         CacheKey = "github_user_cache"
	CacheKeySettings     CacheKey = "github_settings"
)

func (x CacheKey) String() string { return string(x) }
