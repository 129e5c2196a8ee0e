package core

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
	LanguageArabic  Language = "ar"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategorySalary    Category = "salary"
	CategoryShopping  Category = "shopping"
	CategoryBills     Category = "bills"
	CategoryOther     Category = "other"
)

type (
	// Language is a two-letter preference code selected on the welcome screen.
	Language string

	// Currency is the user's display currency.
	Currency struct {
		Code   string `json:"code"`
		Symbol string `json:"symbol"`
	}

	TransactionType string

	Category string

	// Transaction is a single income or expense event. Records are immutable
	// once created; there is no edit or delete flow.
	Transaction struct {
		ID          string          `json:"id"`
		Amount      Amount          `json:"amount"`
		Category    Category        `json:"category"`
		Type        TransactionType `json:"type"`
		Date        Date            `json:"date"`
		Description string          `json:"description,omitempty"`
	}

	// Goal is a named savings target rendered as a progress bar.
	Goal struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Target  Amount `json:"target"`
		Current Amount `json:"current"`
	}

	// User is the locally cached representation of the signed-in account.
	// The password or token is stored verbatim; see the session package.
	User struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password,omitempty"`
		Token    string `json:"token,omitempty"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidTarget   = errors.New("invalid target amount")
	ErrNegativeCurrent = errors.New("negative current amount")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrMissingField    = errors.New("missing required field")
)

// DefaultCurrency is substituted whenever no currency has been chosen yet.
var DefaultCurrency = Currency{Code: "TND", Symbol: "DT"}

// KnownCurrencies lists the currencies offered on the welcome screen.
var KnownCurrencies = []Currency{
	{Code: "TND", Symbol: "DT"},
	{Code: "USD", Symbol: "$"},
	{Code: "EUR", Symbol: "€"},
}

func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageFrench, LanguageArabic:
		return true
	}
	return false
}

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategorySalary, CategoryShopping, CategoryBills, CategoryOther:
		return true
	}
	return false
}

func (c Currency) IsZero() bool {
	return c.Code == "" && c.Symbol == ""
}

func (t Transaction) Validate() error {
	if !t.Amount.Positive() {
		return ErrInvalidAmount
	}
	if !t.Category.Valid() {
		return ErrInvalidCategory
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if !g.Target.Positive() {
		return ErrInvalidTarget
	}
	if g.Current.Negative() {
		return ErrNegativeCurrent
	}
	return nil
}

// Progress is the saved fraction of the target, clamped to [0,1] for display.
func (g Goal) Progress() float64 {
	target := g.Target.Float64()
	if target <= 0 {
		return 0
	}
	p := g.Current.Float64() / target
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Complete reports whether the goal has reached its target. The progress bar
// switches from the in-progress color to the complete color at this point.
func (g Goal) Complete() bool {
	return !g.Current.LessThan(g.Target)
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidateEmail applies the same loose shape check the login form uses.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}
	return nil
}

// Date wraps time.Time with lenient JSON decoding: transaction timestamps
// arrive as RFC 3339 strings from the API, but a malformed value decodes to
// the zero time instead of failing a whole list.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return d.Time.MarshalJSON()
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var t time.Time
	if err := t.UnmarshalJSON(b); err != nil {
		d.Time = time.Time{}
		return nil
	}
	d.Time = t
	return nil
}

// SameLocalDay reports whether d falls on the same calendar day as now,
// both taken in local time. This mirrors comparing ISO date prefixes.
func (d Date) SameLocalDay(now time.Time) bool {
	y1, m1, day1 := d.Time.Local().Date()
	y2, m2, day2 := now.Local().Date()
	return y1 == y2 && m1 == m2 && day1 == day2
}
