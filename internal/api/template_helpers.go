package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (handler *Handler) newTemplateFuncMap() template.FuncMap {
	location := handler.location
	return template.FuncMap{
		"formatDate": func(value time.Time) string {
			return value.In(location).Format("Jan 2, 2006 15:04")
		},
		"formatProbability": formatTemplateProbability,
		"titleCase":         templateTitleCase,
		"joinStrings":       strings.Join,
		"isActiveRoute":     isActiveTemplateRoute,
	}
}

func formatTemplateProbability(probability float64) string {
	return strconv.FormatFloat(probability, 'f', 1, 64)
}

func templateTitleCase(value string) string {
	// A fresh caser per call: cases.Caser is not safe for concurrent use.
	return cases.Title(language.English).String(value)
}

func isActiveTemplateRoute(currentPath string, route string) bool {
	if route == "/" {
		return currentPath == "/"
	}
	return currentPath == route || strings.HasPrefix(currentPath, route+"/")
}

func parsePageTemplates(templateDir string, funcMap template.FuncMap, pages []string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}
