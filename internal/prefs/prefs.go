// Package prefs holds the welcome-screen preferences: language and display
// currency. Loads always produce a usable value; when nothing has been
// persisted yet the documented defaults are substituted, so no caller ever
// sees an empty language or currency.
package prefs

import (
	"context"

	"mybudget/internal/core"
	"mybudget/internal/log"
	"mybudget/internal/store"
)

type Prefs struct {
	store  store.Store
	logger *log.Logger
}

func New(s store.Store, logger *log.Logger) *Prefs {
	if logger == nil {
		logger = log.Default(log.ComponentPrefs)
	}
	return &Prefs{store: s, logger: logger}
}

func (p *Prefs) SaveLanguage(ctx context.Context, lang core.Language) bool {
	ok := p.store.Save(ctx, store.KeyLanguage, lang)
	p.logger.InfoContext(ctx, "saved language",
		log.FieldLanguage, string(lang), log.FieldSuccess, ok)
	return ok
}

// LoadLanguage returns the persisted language, defaulting to English when
// nothing valid is stored.
func (p *Prefs) LoadLanguage(ctx context.Context) core.Language {
	var lang core.Language
	if !p.store.Load(ctx, store.KeyLanguage, &lang) || !lang.Valid() {
		return core.LanguageEnglish
	}
	return lang
}

func (p *Prefs) SaveCurrency(ctx context.Context, c core.Currency) bool {
	ok := p.store.Save(ctx, store.KeyCurrency, c)
	p.logger.InfoContext(ctx, "saved currency",
		log.FieldCurrency, c.Code, log.FieldSuccess, ok)
	return ok
}

// LoadCurrency returns the persisted currency, defaulting to TND/DT.
func (p *Prefs) LoadCurrency(ctx context.Context) core.Currency {
	var c core.Currency
	if !p.store.Load(ctx, store.KeyCurrency, &c) || c.IsZero() {
		return core.DefaultCurrency
	}
	return c
}
