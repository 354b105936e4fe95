package aggregate

import (
	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/models"
)

type aggregateData struct {
	Site        config.SiteConfig       `json:"site"`
	Navigation  []config.NavigationItem `json:"navigation"`
	Posts       []models.PostMeta       `json:"posts"`
	Tools       []models.ToolMeta       `json:"tools"`
	CaseStudies []models.CaseStudyMeta  `json:"case_studies"`
	Daily       []models.DailyMeta      `json:"daily"`
	Count       contentCount            `json:"count"`
}

type contentCount struct {
	Posts       int `json:"posts"`
	Daily       int `json:"daily"`
	Tools       int `json:"tools"`
	CaseStudies int `json:"case_studies"`
}

type siteConfigData struct {
	Site     config.SiteConfig `json:"site"`
	Comments *commentsData     `json:"comments,omitempty"`
}

type commentsData struct {
	config.CommentsConfig
	Theme string `json:"theme"`
}
