package expr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrammar(t *testing.T) {
	require.NoError(t, VerifyGrammar())
	productions := []string{}
	for _, line := range strings.Split(Grammar(), "\n") {
		productions = append(productions, strings.Fields(line)[0])
	}
	require.Equal(t, []string{"Expression", "Term", "Factor", "Exponent", "number", "digit"}, productions)
}
