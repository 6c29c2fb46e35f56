package usecase

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

var (
	hashtagRe = regexp.MustCompile(`#([A-Za-z0-9_]+)`)
	emailRe   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nameRe    = regexp.MustCompile(`^[\p{L} ]+$`)
	digitRe   = regexp.MustCompile(`\d`)
)

// ExtractHashtags devuelve los tokens #[A-Za-z0-9_]+ en orden, sin el '#'.
// Se conserva el case original; la comparación se hace en minúsculas.
func ExtractHashtags(text string) []string {
	matches := hashtagRe.FindAllStringSubmatch(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// ResolveCourse busca el primer hashtag de curso y lo cruza contra el
// catálogo: gana el primer curso cuyo nombre contenga todas las keywords.
func ResolveCourse(ctx context.Context, catalog CatalogGateway, hashtags []string) (string, error) {
	for _, tag := range hashtags {
		lower := strings.ToLower(tag)
		if !strings.Contains(lower, "curso") {
			continue
		}
		keywords := courseKeywords(lower)
		if len(keywords) == 0 {
			continue
		}
		courses, err := catalog.ListCourses(ctx)
		if err != nil {
			return "", err
		}
		for _, course := range courses {
			if nameContainsAll(course.Name, keywords) {
				return course.ID, nil
			}
		}
	}
	return "", nil
}

func courseKeywords(tag string) []string {
	trimmed := strings.TrimPrefix(tag, "curso_")
	trimmed = strings.TrimPrefix(trimmed, "curso")
	trimmed = strings.Trim(trimmed, "_")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "_")
}

func nameContainsAll(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// ResolveCampaign parsea un tag ADS<Plataforma2><_><Campaña>.
// Sin tag de campaña el origen es "organic".
func ResolveCampaign(hashtags []string) string {
	for _, tag := range hashtags {
		upper := strings.ToUpper(tag)
		if !strings.HasPrefix(upper, "ADS") {
			continue
		}
		rest := upper[len("ADS"):]
		platform := "other"
		campaign := ""
		if len(rest) >= 2 {
			if p, ok := adPlatforms[rest[:2]]; ok {
				platform = p
			}
			campaign = strings.Trim(rest[2:], "_")
		}
		if campaign == "" {
			return platform
		}
		return platform + "_" + strings.ToLower(campaign)
	}
	return "organic"
}

// ClassifyIntent clasifica por keywords con orden de prioridad fijo.
func ClassifyIntent(text string) Intent {
	lower := strings.ToLower(text)
	for _, intent := range intentPriority {
		for _, kw := range intentKeywords[intent] {
			if strings.Contains(lower, kw) {
				return intent
			}
		}
	}
	return IntentGeneric
}

func ValidateEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

func ValidatePhone(s string) bool {
	trimmed := strings.TrimSpace(s)
	return len(trimmed) >= 8 && digitRe.MatchString(trimmed)
}

// ValidateName: letras y espacios, largo > 1.
func ValidateName(s string) bool {
	trimmed := strings.TrimSpace(s)
	return len([]rune(trimmed)) > 1 && nameRe.MatchString(trimmed)
}

// TitleCaseName normaliza "maría josé" → "María José".
func TitleCaseName(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func DetectNegativeFeedback(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range negativeLexicon {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// IsCampaignEntry: un primer mensaje con hashtag de curso o de ads se trata
// como entrada de campaña y supera a la clasificación de intent.
func IsCampaignEntry(hashtags []string) bool {
	for _, tag := range hashtags {
		lower := strings.ToLower(tag)
		if strings.Contains(lower, "curso") || strings.HasPrefix(strings.ToUpper(tag), "ADS") {
			return true
		}
	}
	return false
}
