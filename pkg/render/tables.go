package render

import "strings"

// FocusAreas lists the areas with built-in keyword tables.
var FocusAreas = []string{"frontend", "backend", "fullstack", "devops", "testing", "database"}

var frontendKeywords = []string{
	"react", "angular", "vue", "svelte", "next", "nuxt", "@angular", "@material-ui", "@mui",
	"tailwind", "bootstrap", "sass", "less", "styled-components", "emotion",
	"webpack", "vite", "parcel", "babel", "typescript", "javascript",
}

var backendKeywords = []string{
	"express", "nest", "fastify", "koa", "hapi", "django", "flask", "fastapi", "spring",
	"node", "python", "java", "go", "rust",
	"postgresql", "mysql", "mongodb", "redis", "prisma", "typeorm", "sequelize",
}

var areaKeywords = map[string][]string{
	"frontend":  frontendKeywords,
	"backend":   backendKeywords,
	"fullstack": append(append([]string(nil), frontendKeywords...), backendKeywords...),
	"devops": {
		"docker", "kubernetes", "terraform", "aws-sdk", "azure-sdk", "google-cloud",
		"jenkins", "gitlab", "github-actions", "circleci", "prometheus", "grafana",
	},
	"testing": {
		"jest", "mocha", "chai", "cypress", "selenium", "playwright", "puppeteer",
		"@testing-library", "enzyme", "karma", "jasmine", "pytest", "unittest",
	},
	"database": {
		"postgresql", "mysql", "mongodb", "redis", "prisma", "typeorm", "sequelize",
		"mongoose", "sqlalchemy", "knex", "sqlite",
	},
}

var relatedKeywords = map[string][]string{
	"angular": {
		"@angular", "angular", "rxjs", "zone.js", "typescript", "@ngrx", "jasmine", "karma",
		"@angular-devkit", "@angular-cli", "angular-cli",
	},
	"react": {
		"react", "@types/react", "redux", "@reduxjs/toolkit", "react-router", "react-query",
		"recoil", "next.js", "gatsby", "styled-components", "emotion", "material-ui", "@mui",
		"react-testing-library", "jest",
	},
	"vue": {
		"vue", "vuex", "vue-router", "nuxt", "vuetify", "@vue", "vuepress", "vue-cli",
		"@vue/cli", "vue-test-utils",
	},
	"node": {
		"express", "nest", "fastify", "koa", "prisma", "typeorm", "sequelize", "mongoose",
		"mongodb", "postgresql", "mysql", "redis", "@nestjs", "@types/express", "@types/node",
		"nodemon", "pm2", "jest", "supertest",
	},
	"python": {
		"django", "flask", "fastapi", "sqlalchemy", "alembic", "pytest", "celery", "pandas",
		"numpy", "scipy", "scikit-learn", "tensorflow", "pytorch",
	},
}

// AreaKeywords returns the keyword table of a focus area.
func AreaKeywords(area string) ([]string, bool) {
	kw, ok := areaKeywords[strings.ToLower(area)]
	return kw, ok
}

// RelatedKeywords returns the keywords related to a technology.
func RelatedKeywords(tech string) ([]string, bool) {
	kw, ok := relatedKeywords[strings.ToLower(tech)]
	return kw, ok
}

// matchAny keeps the names containing any keyword, case-insensitively.
func matchAny(names, keywords []string) []string {
	var out []string
	for _, n := range names {
		lower := strings.ToLower(n)
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				out = append(out, n)
				break
			}
		}
	}
	return out
}
