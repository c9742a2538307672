package http

import "net/http"

// SiteInfo is the public site configuration the front end renders in its
// header, hero and author sidebar. Mail and storage settings never appear here.
type SiteInfo struct {
	Name           string       `json:"name"`
	Slogan         string       `json:"slogan,omitempty"`
	Description    string       `json:"description,omitempty"`
	URL            string       `json:"url,omitempty"`
	Locale         string       `json:"locale,omitempty"`
	Copyright      string       `json:"copyright,omitempty"`
	Theme          string       `json:"theme,omitempty"`
	LayoutMode     string       `json:"layoutMode,omitempty"`
	ContactEnabled bool         `json:"contactEnabled"`
	Hero           HeroInfo     `json:"hero"`
	Author         AuthorInfo   `json:"author"`
	Featured       FeaturedInfo `json:"featured"`
}

type HeroInfo struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	CTAPrimary   string `json:"ctaPrimary,omitempty"`
	CTASecondary string `json:"ctaSecondary,omitempty"`
}

type AuthorInfo struct {
	Name   string `json:"name,omitempty"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type FeaturedInfo struct {
	Section   string   `json:"section,omitempty"`
	BookCodes []string `json:"bookCodes"`
}

// WithSiteInfo enables GET {base}/site.
func WithSiteInfo(info SiteInfo) SiteOption {
	return func(api *SiteAPI) {
		info.Featured.BookCodes = nonNil(append([]string(nil), info.Featured.BookCodes...))
		api.site = &info
	}
}

func (api *SiteAPI) handleSite(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.site)
}
