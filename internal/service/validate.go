package service

import (
	"fmt"
	"regexp"
	"strings"

	"Hive_Community/internal/config"
	"Hive_Community/internal/pkg"
)

// 名字只允许字母、数字、下划线；颜色为 3/6 位十六进制，# 可省略
var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	colorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)
)

// CreateCommunityInput 建社区入参，handler 绑定后原样传入
type CreateCommunityInput struct {
	Name           string
	Type           string
	Title          string
	Color          string
	Categories     []string
	Description    string
	Rules          string
	UserAdjective  string
	UsersAdjective string
	Avatar         string
	Cover          string
}

// validateName 返回空串表示合法
func validateName(name string, maxLen int) string {
	if len(name) > maxLen {
		return fmt.Sprintf("name must be no longer than %d characters", maxLen)
	}
	if !namePattern.MatchString(name) {
		return "name may only contain alphanumeric characters and underscores"
	}
	return ""
}

// normalizeColor 统一存储为 #xxxxxx 小写形式
func normalizeColor(color string) string {
	c := strings.ToLower(color)
	if !strings.HasPrefix(c, "#") {
		c = "#" + c
	}
	return c
}

// validateCreate 逐字段累积校验错误，不短路，客户端一次拿到全部问题
func validateCreate(in *CreateCommunityInput, cfg *config.Config) pkg.FieldErrors {
	errs := pkg.FieldErrors{}

	if in.Name == "" {
		errs.Add("name", "name is required")
	} else if msg := validateName(in.Name, cfg.NameMax); msg != "" {
		errs.Add("name", msg)
	}

	if in.Type == "" {
		errs.Add("type", "type is required")
	} else if in.Type != "P" && in.Type != "T" {
		errs.Add("type", "type must be P (public) or T (private)")
	}

	if in.Title == "" {
		errs.Add("title", "title is required")
	}

	if in.Color == "" {
		errs.Add("color", "color is required")
	} else if !colorPattern.MatchString(in.Color) {
		errs.Add("color", "color must be a hex color")
	}

	if len(in.Categories) == 0 {
		errs.Add("categories", "categories are required")
	} else if len(in.Categories) < cfg.CategoriesMin {
		errs.Add("categories", fmt.Sprintf("at least %d categories are required", cfg.CategoriesMin))
	} else if len(in.Categories) > cfg.CategoriesMax {
		errs.Add("categories", fmt.Sprintf("no more than %d categories are allowed", cfg.CategoriesMax))
	}

	if len(in.Description) > cfg.DescriptionMax {
		errs.Add("description", fmt.Sprintf("description must be no longer than %d characters", cfg.DescriptionMax))
	}

	if len(in.Rules) > cfg.RulesMax {
		errs.Add("rules", fmt.Sprintf("rules must be no longer than %d characters", cfg.RulesMax))
	}

	return errs
}
