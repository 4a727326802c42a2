package model

type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	HTMLURL   string `json:"html_url,omitempty"`
}

// DisplayName returns Name if set, otherwise Login
func (x *User) DisplayName() string {
	if x.Name != "" {
		return x.Name
	}
	return x.Login
}
