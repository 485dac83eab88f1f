package category

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fintrack/internal/model"
)

func TestForKind(t *testing.T) {
	exp := ForKind(model.KindExpense)
	require.NotEmpty(t, exp)
	require.Equal(t, "food", exp[0].Code)

	inc := ForKind(model.KindIncome)
	require.NotEmpty(t, inc)
	require.Equal(t, "salary", inc[0].Code)

	require.Nil(t, ForKind("transfer"))
}

func TestCodesUniqueWithinKind(t *testing.T) {
	for _, kind := range []string{model.KindExpense, model.KindIncome} {
		seen := make(map[string]bool)
		for _, c := range ForKind(kind) {
			require.Falsef(t, seen[c.Code], "duplicate code %q in %s", c.Code, kind)
			seen[c.Code] = true
		}
	}
}

func TestNameForCode(t *testing.T) {
	require.Equal(t, "🍔 Еда", NameForCode(model.KindExpense, "food"))
	require.Equal(t, "💼 Зарплата", NameForCode(model.KindIncome, "salary"))
	// unknown codes come back untranslated
	require.Equal(t, "crypto", NameForCode(model.KindExpense, "crypto"))
}

func TestKnown(t *testing.T) {
	require.True(t, Known(model.KindExpense, "food"))
	require.False(t, Known(model.KindIncome, "food"))
	require.True(t, Known(model.KindIncome, "business"))
}
