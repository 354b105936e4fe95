package config

import "strings"

// CommentsConfig configures the giscus discussion widget. folio only
// serves it to the frontend; the widget itself runs in the browser.
type CommentsConfig struct {
	Repo             string `json:"repo"`
	RepoID           string `json:"repo_id"`
	Category         string `json:"category"`
	CategoryID       string `json:"category_id"`
	Mapping          string `json:"mapping"`
	Strict           bool   `json:"strict"`
	ReactionsEnabled bool   `json:"reactions_enabled"`
	EmitMetadata     bool   `json:"emit_metadata"`
	InputPosition    string `json:"input_position"`
	Lang             string `json:"lang"`
	Loading          string `json:"loading"`
}

type rawCommentsConfig struct {
	Repo             string `yaml:"repo"`
	RepoID           string `yaml:"repo_id"`
	Category         string `yaml:"category"`
	CategoryID       string `yaml:"category_id"`
	Mapping          string `yaml:"mapping"`
	Strict           *bool  `yaml:"strict"`
	ReactionsEnabled *bool  `yaml:"reactions_enabled"`
	EmitMetadata     *bool  `yaml:"emit_metadata"`
	InputPosition    string `yaml:"input_position"`
	Lang             string `yaml:"lang"`
	Loading          string `yaml:"loading"`
}

const placeholderPrefix = "YOUR_"

// Missing lists the required fields that are empty or still placeholders.
func (c CommentsConfig) Missing() []string {
	required := []struct {
		name  string
		value string
	}{
		{"repo", c.Repo},
		{"repo_id", c.RepoID},
		{"category", c.Category},
		{"category_id", c.CategoryID},
	}
	var missing []string
	for _, f := range required {
		v := strings.TrimSpace(f.value)
		if v == "" || strings.HasPrefix(v, placeholderPrefix) {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Enabled reports whether every required field is set.
func (c CommentsConfig) Enabled() bool {
	return len(c.Missing()) == 0
}

// Theme maps the site theme to the widget theme name.
func (c CommentsConfig) Theme(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func applyRawCommentsConfig(cfg CommentsConfig, raw rawCommentsConfig) CommentsConfig {
	cfg.Repo = strings.TrimSpace(raw.Repo)
	cfg.RepoID = strings.TrimSpace(raw.RepoID)
	cfg.Category = strings.TrimSpace(raw.Category)
	cfg.CategoryID = strings.TrimSpace(raw.CategoryID)
	if v := strings.TrimSpace(raw.Mapping); v != "" {
		cfg.Mapping = v
	}
	if raw.Strict != nil {
		cfg.Strict = *raw.Strict
	}
	if raw.ReactionsEnabled != nil {
		cfg.ReactionsEnabled = *raw.ReactionsEnabled
	}
	if raw.EmitMetadata != nil {
		cfg.EmitMetadata = *raw.EmitMetadata
	}
	if v := strings.TrimSpace(raw.InputPosition); v != "" {
		cfg.InputPosition = v
	}
	if v := strings.TrimSpace(raw.Lang); v != "" {
		cfg.Lang = v
	}
	if v := strings.TrimSpace(raw.Loading); v != "" {
		cfg.Loading = v
	}
	return cfg
}
