package config

import (
	"strings"
)

// SiteConfig is the site metadata shown in headers, feeds and the sitemap.
// It is built once at startup and passed by value.
type SiteConfig struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	URL         string           `json:"url"`
	Language    string           `json:"language"`
	Author      Author           `json:"author"`
	Social      Social           `json:"social"`
	Navigation  []NavigationItem `json:"navigation"`
}

type Author struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type Social struct {
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Email    string `json:"email,omitempty"`
}

type NavigationItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type rawSiteConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Language    string `yaml:"language"`
	Author      struct {
		Name   string `yaml:"name"`
		Email  string `yaml:"email"`
		Bio    string `yaml:"bio"`
		Avatar string `yaml:"avatar"`
	} `yaml:"author"`
	Social struct {
		GitHub   string `yaml:"github"`
		Twitter  string `yaml:"twitter"`
		LinkedIn string `yaml:"linkedin"`
		Email    string `yaml:"email"`
	} `yaml:"social"`
	Navigation []struct {
		Name string `yaml:"name"`
		Href string `yaml:"href"`
	} `yaml:"navigation"`
}

// DefaultSiteConfig returns the built-in site metadata and navigation.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Name:        "folio",
		Description: "A personal blog about web development, technology, and life as a developer.",
		URL:         "http://localhost:2333",
		Language:    "en",
		Author:      Author{Name: "folio"},
		Navigation: []NavigationItem{
			{Name: "Blog", Href: "/blog"},
			{Name: "Tools", Href: "/tools"},
			{Name: "Daily", Href: "/daily"},
			{Name: "Case Studies", Href: "/case-studies"},
			{Name: "Profile", Href: "/profile"},
		},
	}
}

// AbsoluteURL joins the site URL with a site-relative path.
func (s SiteConfig) AbsoluteURL(path string) string {
	base := strings.TrimRight(s.URL, "/")
	if path == "" || path == "/" {
		return base + "/"
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

func applyRawSiteConfig(cfg SiteConfig, raw rawSiteConfig) SiteConfig {
	if v := strings.TrimSpace(raw.Name); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(raw.Description); v != "" {
		cfg.Description = v
	}
	if v := strings.TrimSpace(raw.URL); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(raw.Language); v != "" {
		cfg.Language = v
	}
	if v := strings.TrimSpace(raw.Author.Name); v != "" {
		cfg.Author.Name = v
	}
	if v := strings.TrimSpace(raw.Author.Email); v != "" {
		cfg.Author.Email = v
	}
	if v := strings.TrimSpace(raw.Author.Bio); v != "" {
		cfg.Author.Bio = v
	}
	if v := strings.TrimSpace(raw.Author.Avatar); v != "" {
		cfg.Author.Avatar = v
	}
	if v := strings.TrimSpace(raw.Social.GitHub); v != "" {
		cfg.Social.GitHub = v
	}
	if v := strings.TrimSpace(raw.Social.Twitter); v != "" {
		cfg.Social.Twitter = v
	}
	if v := strings.TrimSpace(raw.Social.LinkedIn); v != "" {
		cfg.Social.LinkedIn = v
	}
	if v := strings.TrimSpace(raw.Social.Email); v != "" {
		cfg.Social.Email = v
	}
	if len(raw.Navigation) > 0 {
		nav := make([]NavigationItem, 0, len(raw.Navigation))
		for _, item := range raw.Navigation {
			if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Href) == "" {
				continue
			}
			nav = append(nav, NavigationItem{Name: strings.TrimSpace(item.Name), Href: strings.TrimSpace(item.Href)})
		}
		cfg.Navigation = nav
	}
	return cfg
}
