// Package category holds the fixed bilingual category tables: a display
// label with an emoji on one side, a short machine code on the other.
package category

import "fintrack/internal/model"

// Category pairs a display label with its machine code. Registries keep
// insertion order, which a Go map wouldn't.
type Category struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

var expenses = []Category{
	{"🍔 Еда", "food"},
	{"🚗 Транспорт", "transport"},
	{"🏠 Жилье", "housing"},
	{"👕 Одежда", "clothing"},
	{"💊 Здоровье", "health"},
	{"🎮 Развлечения", "entertainment"},
	{"📚 Образование", "education"},
	{"💳 Кредиты", "loans"},
	{"📱 Технологии", "technology"},
	{"🏦 Налоги", "taxes"},
	{"🎁 Подарки", "gifts"},
	{"✈️ Путешествия", "travel"},
	{"💼 Бизнес", "business"},
	{"🔧 Услуги", "services"},
	{"📦 Покупки", "shopping"},
	{"💰 Другое", "other"},
}

var income = []Category{
	{"💼 Зарплата", "salary"},
	{"🏢 Бизнес", "business"},
	{"📈 Инвестиции", "investments"},
	{"🎁 Подарки", "gifts"},
	{"🏠 Аренда", "rental"},
	{"💻 Фриланс", "freelance"},
	{"🎯 Премии", "bonuses"},
	{"💰 Другое", "other"},
}

// ForKind returns the ordered categories of one transaction kind. Unknown
// kinds yield nil.
func ForKind(kind string) []Category {
	switch kind {
	case model.KindExpense:
		return expenses
	case model.KindIncome:
		return income
	}
	return nil
}

// Known reports whether code exists within kind.
func Known(kind, code string) bool {
	for _, c := range ForKind(kind) {
		if c.Code == code {
			return true
		}
	}
	return false
}

// NameForCode resolves a code back to its display label. A miss returns the
// raw code; callers show whatever the ledger recorded.
func NameForCode(kind, code string) string {
	for _, c := range ForKind(kind) {
		if c.Code == code {
			return c.Label
		}
	}
	return code
}

// All returns both registries keyed by kind, the shape the categories
// endpoint exposes.
func All() map[string][]Category {
	return map[string][]Category{
		model.KindExpense: expenses,
		model.KindIncome:  income,
	}
}
