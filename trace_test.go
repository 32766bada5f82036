package exprtree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	w := &bytes.Buffer{}
	mustParse(t, "1 + 2", Trace(w))
	require.Equal(t, `"1" expr
  "1" term
    "1" power
      "1" primary
  "2" term
    "2" power
      "2" primary
`, w.String())
}

func TestTraceParens(t *testing.T) {
	w := &bytes.Buffer{}
	mustParse(t, "(7)", Trace(w))
	require.Equal(t, `"(" expr
  "(" term
    "(" power
      "(" primary
        "7" expr
          "7" term
            "7" power
              "7" primary
`, w.String())
}
