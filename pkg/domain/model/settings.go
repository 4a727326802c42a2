package model

const (
	DefaultRepositoryCount = 10
	MaxRepositoryCount     = 100
)

type Settings struct {
	RepositoryCount int `json:"reposToLoad"`
}

func DefaultSettings() Settings {
	return Settings{RepositoryCount: DefaultRepositoryCount}
}

// Normalize replaces out of range values. Non-positive count falls back to default and count over the API page limit is capped.
func (x Settings) Normalize() Settings {
	switch {
	case x.RepositoryCount <= 0:
		x.RepositoryCount = DefaultRepositoryCount
	case x.RepositoryCount > MaxRepositoryCount:
		x.RepositoryCount = MaxRepositoryCount
	}
	return x
}
