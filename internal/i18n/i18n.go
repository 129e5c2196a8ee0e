// Package i18n holds the UI string tables for the supported languages.
//
// Each table is a fixed-shape struct, so a missing translation is a compile
// error rather than a silent fall-through at lookup time. Falling back to
// English still exists, but only as the explicit default branch in For.
package i18n

import "mybudget/internal/core"

// Table is the complete set of user-facing strings for one language.
type Table struct {
	Greeting       string
	CurrentBalance string
	Income         string
	Expenses       string

	DailyBudget    string
	SpentToday     string
	MonthlySavings string

	RecentTransactions string
	AllTransactions    string
	NoTransactions     string
	NoDescription      string
	Loading            string
	SeeAll             string

	FinancialGoals string
	AddGoal        string
	TargetAmount   string
	CurrentAmount  string
	SaveGoal       string

	Error            string
	LoadError        string
	FillAllFields    string
	FailedToSaveGoal string
	InvalidEmail     string
	InvalidAmount    string

	Food      string
	Transport string
	Salary    string
	Shopping  string
	Bills     string
	Other     string
}

var english = Table{
	Greeting:       "Good morning",
	CurrentBalance: "Current Balance",
	Income:         "Income",
	Expenses:       "Expenses",

	DailyBudget:    "Daily Budget",
	SpentToday:     "spent",
	MonthlySavings: "Monthly Savings",

	RecentTransactions: "Recent Transactions",
	AllTransactions:    "All Transactions",
	NoTransactions:     "No transactions found",
	NoDescription:      "No description",
	Loading:            "Loading...",
	SeeAll:             "See All",

	FinancialGoals: "Financial Goals",
	AddGoal:        "Add New Goal",
	TargetAmount:   "Target Amount",
	CurrentAmount:  "Current Amount",
	SaveGoal:       "Save Goal",

	Error:            "Error",
	LoadError:        "Failed to load data",
	FillAllFields:    "Please fill all required fields",
	FailedToSaveGoal: "Failed to save objective",
	InvalidEmail:     "Please enter a valid email address",
	InvalidAmount:    "Please enter a valid amount",

	Food:      "Food",
	Transport: "Transport",
	Salary:    "Salary",
	Shopping:  "Shopping",
	Bills:     "Bills",
	Other:     "Other",
}

var french = Table{
	Greeting:       "Bonjour",
	CurrentBalance: "Solde Actuel",
	Income:         "Revenu",
	Expenses:       "Dépenses",

	DailyBudget:    "Budget Quotidien",
	SpentToday:     "dépensé",
	MonthlySavings: "Épargne Mensuelle",

	RecentTransactions: "Transactions Récentes",
	AllTransactions:    "Toutes les transactions",
	NoTransactions:     "Aucune transaction trouvée",
	NoDescription:      "Pas de description",
	Loading:            "Chargement...",
	SeeAll:             "Voir Tout",

	FinancialGoals: "Objectifs Financiers",
	AddGoal:        "Ajouter un objectif",
	TargetAmount:   "Montant Cible",
	CurrentAmount:  "Montant Actuel",
	SaveGoal:       "Enregistrer l'objectif",

	Error:            "Erreur",
	LoadError:        "Échec du chargement des données",
	FillAllFields:    "Veuillez remplir tous les champs requis",
	FailedToSaveGoal: "Échec de l'enregistrement de l'objectif",
	InvalidEmail:     "Veuillez saisir une adresse e-mail valide",
	InvalidAmount:    "Veuillez saisir un montant valide",

	Food:      "Nourriture",
	Transport: "Transport",
	Salary:    "Salaire",
	Shopping:  "Shopping",
	Bills:     "Factures",
	Other:     "Autre",
}

var arabic = Table{
	Greeting:       "صباح الخير",
	CurrentBalance: "الرصيد الحالي",
	Income:         "الدخل",
	Expenses:       "المصاريف",

	DailyBudget:    "الميزانية اليومية",
	SpentToday:     "تم صرفها",
	MonthlySavings: "الادخار الشهري",

	RecentTransactions: "المعاملات الأخيرة",
	AllTransactions:    "كل المعاملات",
	NoTransactions:     "لا توجد معاملات",
	NoDescription:      "بدون وصف",
	Loading:            "جاري التحميل...",
	SeeAll:             "عرض الكل",

	FinancialGoals: "الأهداف المالية",
	AddGoal:        "إضافة هدف جديد",
	TargetAmount:   "المبلغ المستهدف",
	CurrentAmount:  "المبلغ الحالي",
	SaveGoal:       "حفظ الهدف",

	Error:            "خطأ",
	LoadError:        "فشل تحميل البيانات",
	FillAllFields:    "يرجى ملء جميع الحقول المطلوبة",
	FailedToSaveGoal: "فشل في حفظ الهدف",
	InvalidEmail:     "يرجى إدخال بريد إلكتروني صالح",
	InvalidAmount:    "يرجى إدخال مبلغ صالح",

	Food:      "طعام",
	Transport: "مواصلات",
	Salary:    "راتب",
	Shopping:  "تسوق",
	Bills:     "فواتير",
	Other:     "أخرى",
}

// For returns the string table for a language. Unknown or empty languages
// get the English table; that is the one deliberate fallback in the app.
func For(lang core.Language) Table {
	switch lang {
	case core.LanguageFrench:
		return french
	case core.LanguageArabic:
		return arabic
	default:
		return english
	}
}

// Category returns the display label for a transaction category.
func (t Table) Category(c core.Category) string {
	switch c {
	case core.CategoryFood:
		return t.Food
	case core.CategoryTransport:
		return t.Transport
	case core.CategorySalary:
		return t.Salary
	case core.CategoryShopping:
		return t.Shopping
	case core.CategoryBills:
		return t.Bills
	default:
		return t.Other
	}
}
