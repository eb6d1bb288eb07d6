package dsfr

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/dsfrkit/internal/config"
)

// ClassSet is a set of CSS class names.
type ClassSet map[string]bool

// Has reports whether class is in the set.
func (s ClassSet) Has(class string) bool {
	return s[class]
}

// Sorted returns the classes in lexical order.
func (s ClassSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// componentClasses lists the component classes the generators emit, with
// their modifiers.
var componentClasses = []string{
	"fr-accordion", "fr-accordion__btn", "fr-accordion__title", "fr-accordions-group",
	"fr-alert", "fr-alert--info", "fr-alert--success", "fr-alert--warning", "fr-alert--error",
	"fr-alert--sm", "fr-alert__title",
	"fr-badge", "fr-badge--success", "fr-badge--error", "fr-badge--info", "fr-badge--warning",
	"fr-badge--new", "fr-badge--sm", "fr-badge--no-icon", "fr-badges-group",
	"fr-breadcrumb", "fr-breadcrumb__button", "fr-breadcrumb__link", "fr-breadcrumb__list",
	"fr-btn", "fr-btn--secondary", "fr-btn--tertiary", "fr-btn--tertiary-no-outline",
	"fr-btn--sm", "fr-btn--lg", "fr-btn--icon-left", "fr-btn--icon-right",
	"fr-btn--close", "fr-btn--menu", "fr-btn--search",
	"fr-btns-group", "fr-btns-group--inline", "fr-btns-group--inline-sm", "fr-btns-group--inline-md",
	"fr-btns-group--inline-lg", "fr-btns-group--right", "fr-btns-group--center", "fr-btns-group--sm",
	"fr-callout", "fr-callout__text", "fr-callout__title",
	"fr-card", "fr-card--horizontal", "fr-card--no-border", "fr-card--grey", "fr-card__body",
	"fr-card__content", "fr-card__desc", "fr-card__detail", "fr-card__end", "fr-card__header",
	"fr-card__img", "fr-card__title", "fr-card__start",
	"fr-checkbox-group", "fr-radio-group", "fr-select", "fr-select-group",
	"fr-collapse", "fr-enlarge-link", "fr-responsive-img",
	"fr-error-text", "fr-valid-text", "fr-info-text", "fr-hint-text", "fr-label", "fr-messages-group",
	"fr-fieldset", "fr-fieldset__element", "fr-fieldset__legend", "fr-fieldset--error", "fr-fieldset--valid",
	"fr-footer", "fr-footer__body", "fr-footer__bottom", "fr-footer__bottom-copy",
	"fr-footer__bottom-item", "fr-footer__bottom-link", "fr-footer__bottom-list", "fr-footer__brand",
	"fr-footer__content", "fr-footer__content-desc", "fr-footer__content-item",
	"fr-footer__content-link", "fr-footer__content-list",
	"fr-header", "fr-header__body", "fr-header__body-row", "fr-header__brand", "fr-header__brand-top",
	"fr-header__logo", "fr-header__menu", "fr-header__menu-links", "fr-header__navbar",
	"fr-header__operator", "fr-header__service", "fr-header__service-tagline",
	"fr-header__service-title", "fr-header__tools", "fr-header__tools-links",
	"fr-input", "fr-input--error", "fr-input--valid", "fr-input-group", "fr-input-group--error",
	"fr-input-group--valid", "fr-input-group--disabled",
	"fr-link", "fr-link--sm", "fr-link--lg", "fr-links-group", "fr-logo",
	"fr-modal", "fr-modal__body", "fr-modal__content", "fr-modal__footer", "fr-modal__header",
	"fr-modal__title",
	"fr-nav", "fr-nav__item", "fr-nav__link", "fr-nav__list", "fr-nav__btn",
	"fr-notice", "fr-notice--info", "fr-notice__body", "fr-notice__title",
	"fr-skiplinks", "fr-skiplinks__list",
	"fr-table", "fr-table--bordered", "fr-table--no-scroll", "fr-table--layout-fixed",
	"fr-tabs", "fr-tabs__list", "fr-tabs__tab", "fr-tabs__panel", "fr-tabs__panel--selected",
	"fr-tag", "fr-tag--sm", "fr-tag--icon-left", "fr-tags-group",
	"fr-tile", "fr-tile--horizontal", "fr-tile__body", "fr-tile__content", "fr-tile__desc",
	"fr-tile__title", "fr-tile__header", "fr-tile__pictogram",
}

// utilityClasses lists typography and layout helpers.
var utilityClasses = []string{
	"fr-container", "fr-container--fluid", "fr-container-sm", "fr-container-md", "fr-container-lg",
	"fr-container-xl",
	"fr-grid-row", "fr-grid-row--gutters", "fr-grid-row--no-gutters", "fr-grid-row--center",
	"fr-grid-row--middle", "fr-grid-row--top", "fr-grid-row--bottom", "fr-grid-row--left",
	"fr-grid-row--right",
	"fr-text--lead", "fr-text--xs", "fr-text--sm", "fr-text--md", "fr-text--lg", "fr-text--xl",
	"fr-text--bold", "fr-text--regular", "fr-text--light", "fr-text--heavy",
	"fr-h1", "fr-h2", "fr-h3", "fr-h4", "fr-h5", "fr-h6",
	"fr-display--xs", "fr-display--sm", "fr-display--md", "fr-display--lg", "fr-display--xl",
	"fr-sr-only", "fr-hidden", "fr-unhidden", "fr-hidden-sm", "fr-hidden-md", "fr-hidden-lg",
	"fr-unhidden-sm", "fr-unhidden-md", "fr-unhidden-lg",
}

var breakpoints = []string{"", "sm-", "md-", "lg-", "xl-"}

// KnownClasses returns the component classes the generators emit plus the
// DSFR grid, typography and spacing utilities.
func KnownClasses() ClassSet {
	set := make(ClassSet, 2048)
	for _, c := range componentClasses {
		set[c] = true
	}
	for _, c := range utilityClasses {
		set[c] = true
	}

	for _, bp := range breakpoints {
		set["fr-col"+strings.TrimSuffix("-"+bp, "-")] = true
		for n := 1; n <= 12; n++ {
			set[fmt.Sprintf("fr-col-%s%d", bp, n)] = true
			set[fmt.Sprintf("fr-col-offset-%s%d", bp, n)] = true
		}
	}

	// fr-m-2w, fr-pt-md-4v, fr-mx-auto...
	for _, prop := range []string{"m", "p"} {
		for _, side := range []string{"", "t", "r", "b", "l", "x", "y"} {
			for _, bp := range breakpoints {
				prefix := "fr-" + prop + side + "-" + bp
				set[prefix+"0"] = true
				for n := 1; n <= 12; n++ {
					set[fmt.Sprintf("%s%dv", prefix, n)] = true
					set[fmt.Sprintf("%s%dw", prefix, n)] = true
				}
				if prop == "m" {
					set[prefix+"auto"] = true
				}
			}
		}
	}
	return set
}

// LoadClassesFromCSS collects every class selector of a stylesheet, such as
// dsfr.min.css.
func LoadClassesFromCSS(r io.Reader) (ClassSet, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stylesheet: %w", err)
	}

	set := make(ClassSet)
	lexer := css.NewLexer(parse.NewInputBytes(content))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		// A class selector is a '.' delimiter followed by an identifier
		if tt == css.DelimToken && len(text) > 0 && text[0] == '.' {
			tt2, name := lexer.Next()
			if tt2 == css.IdentToken {
				set[strings.ReplaceAll(string(name), `\`, "")] = true
			}
		}
	}

	if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, &config.ParseError{Path: "stylesheet", Err: err}
	}
	return set, nil
}
