package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port        int
	Env         string
	ContentRoot string
	Strict      bool
	// CreateRoots creates missing content directories on first read.
	CreateRoots    bool
	Paths          RuntimePathsConfig
	AllowedOrigins []string
	// CacheMaxAge is the Cache-Control max-age in seconds for public GETs.
	CacheMaxAge int
	Site        SiteConfig
	Comments    CommentsConfig
	Publish     PublishConfig

	baseDir string
}

type RuntimePathsConfig struct {
	Logs   string
	Export string
}

// PublishConfig configures where `folio publish` sends the export.
type PublishConfig struct {
	S3  S3Options
	Git GitOptions
}

type S3Options struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
	Prefix          string
	PathStyleAccess bool
}

type GitOptions struct {
	// Dir is a local clone whose worktree receives the export.
	Dir         string
	Remote      string
	Branch      string
	SSHKeyPath  string
	AuthorName  string
	AuthorEmail string
}

type rawAppConfig struct {
	Port           int               `yaml:"port"`
	Env            string            `yaml:"env"`
	ContentRoot    string            `yaml:"content_root"`
	Strict         bool              `yaml:"strict"`
	CreateRoots    bool              `yaml:"create_roots"`
	Paths          rawPathsConfig    `yaml:"paths"`
	AllowedOrigins []string          `yaml:"allowed_origins"`
	CacheMaxAge    *int              `yaml:"cache_max_age"`
	Site           rawSiteConfig     `yaml:"site"`
	Comments       rawCommentsConfig `yaml:"comments"`
	Publish        rawPublishConfig  `yaml:"publish"`
}

type rawPathsConfig struct {
	Logs   string `yaml:"logs"`
	Export string `yaml:"export"`
}

type rawPublishConfig struct {
	S3 struct {
		Endpoint        string `yaml:"endpoint"`
		AccessKeyID     string `yaml:"access_key_id"`
		SecretAccessKey string `yaml:"secret_access_key"`
		Bucket          string `yaml:"bucket"`
		Region          string `yaml:"region"`
		Prefix          string `yaml:"prefix"`
		PathStyleAccess bool   `yaml:"path_style_access"`
	} `yaml:"s3"`
	Git struct {
		Dir         string `yaml:"dir"`
		Remote      string `yaml:"remote"`
		Branch      string `yaml:"branch"`
		SSHKeyPath  string `yaml:"ssh_key_path"`
		AuthorName  string `yaml:"author_name"`
		AuthorEmail string `yaml:"author_email"`
	} `yaml:"git"`
}

// Load reads configPath, applies environment overrides and validates the
// result. A missing file at the default path yields the defaults.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}
	loadDotEnv(filepath.Join(filepath.Dir(path), DefaultEnvFile))

	cfg := defaultAppConfig()
	cfg.baseDir = filepath.Dir(path)
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		raw := rawAppConfig{}
		if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
		applyRawAppConfig(&cfg, raw)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnv(&cfg)
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:        defaultPort,
		Env:         defaultEnv,
		ContentRoot: defaultContentRoot,
		CacheMaxAge: defaultCacheMaxAge,
		Site:        DefaultSiteConfig(),
		Comments:    CommentsConfig{},
		Publish: PublishConfig{
			S3: S3Options{Region: defaultS3Region},
			Git: GitOptions{
				Remote: defaultGitRemote,
				Branch: DefaultGitBranch,
			},
		},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.ContentRoot); v != "" {
		cfg.ContentRoot = v
	}
	cfg.Strict = raw.Strict
	cfg.CreateRoots = raw.CreateRoots
	if v := strings.TrimSpace(raw.Paths.Logs); v != "" {
		cfg.Paths.Logs = v
	}
	if v := strings.TrimSpace(raw.Paths.Export); v != "" {
		cfg.Paths.Export = v
	}
	if len(raw.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = raw.AllowedOrigins
	}
	if raw.CacheMaxAge != nil {
		cfg.CacheMaxAge = *raw.CacheMaxAge
	}
	cfg.Site = applyRawSiteConfig(cfg.Site, raw.Site)
	cfg.Comments = applyRawCommentsConfig(cfg.Comments, raw.Comments)

	s3 := raw.Publish.S3
	if v := strings.TrimSpace(s3.Endpoint); v != "" {
		cfg.Publish.S3.Endpoint = v
	}
	if v := strings.TrimSpace(s3.AccessKeyID); v != "" {
		cfg.Publish.S3.AccessKeyID = v
	}
	if v := strings.TrimSpace(s3.SecretAccessKey); v != "" {
		cfg.Publish.S3.SecretAccessKey = v
	}
	if v := strings.TrimSpace(s3.Bucket); v != "" {
		cfg.Publish.S3.Bucket = v
	}
	if v := strings.TrimSpace(s3.Region); v != "" {
		cfg.Publish.S3.Region = v
	}
	if v := strings.TrimSpace(s3.Prefix); v != "" {
		cfg.Publish.S3.Prefix = v
	}
	cfg.Publish.S3.PathStyleAccess = s3.PathStyleAccess

	git := raw.Publish.Git
	if v := strings.TrimSpace(git.Dir); v != "" {
		cfg.Publish.Git.Dir = v
	}
	if v := strings.TrimSpace(git.Remote); v != "" {
		cfg.Publish.Git.Remote = v
	}
	if v := strings.TrimSpace(git.Branch); v != "" {
		cfg.Publish.Git.Branch = v
	}
	if v := strings.TrimSpace(git.SSHKeyPath); v != "" {
		cfg.Publish.Git.SSHKeyPath = v
	}
	if v := strings.TrimSpace(git.AuthorName); v != "" {
		cfg.Publish.Git.AuthorName = v
	}
	if v := strings.TrimSpace(git.AuthorEmail); v != "" {
		cfg.Publish.Git.AuthorEmail = v
	}
}

func (c *AppConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d, expected 1-65535", c.Port)
	}
	if c.ContentRoot == "" {
		return errors.New("content_root must not be empty")
	}
	if c.CacheMaxAge < 0 {
		return fmt.Errorf("invalid cache_max_age %d, expected >= 0", c.CacheMaxAge)
	}
	if c.Site.URL == "" {
		return errors.New("site.url must not be empty")
	}
	return nil
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
