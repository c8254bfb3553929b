package generate

import (
	"fmt"

	"github.com/Maldris/mathparse"
	"github.com/shopspring/decimal"
)

// transform is a parsed expression in x applied to every generated value.
// Expressions without x resolve to a constant at parse time.
type transform struct {
	expr     string
	tokens   []mathparse.Token
	constant bool
	value    float64
}

func newTransform(expr string) (*transform, error) {
	p := mathparse.NewParser(expr)
	p.Resolve()

	if p.FoundResult() {
		return &transform{expr: expr, constant: true, value: p.GetValueResult()}, nil
	}

	tf := &transform{expr: expr, tokens: p.GetTokens()}

	// surface unsupported expressions at parse time rather than per value
	if _, err := tf.apply(1); err != nil {
		return nil, err
	}

	return tf, nil
}

func (t *transform) apply(x float64) (float64, error) {
	if t.constant {
		return t.value, nil
	}

	value, err := calcFromTokens(t.tokens, decimal.NewFromFloat(x))
	if err != nil {
		return 0, fmt.Errorf("%w: transform '%s': %s", ErrSampleGeneration, t.expr, err.Error())
	}

	result, _ := value.Float64()

	return result, nil
}

func calcFromTokens(tokens []mathparse.Token, x decimal.Decimal) (decimal.Decimal, error) {
	value := decimal.NewFromInt(0)
	action := "+"

	for _, token := range tokens {
		switch token.Type {
		case 2, 3:
			var tVal decimal.Decimal

			if token.Value == "x" {
				tVal = x
			} else {
				tVal = decimal.NewFromFloat(token.ParseValue)
			}

			if action == "/" && tVal.IsZero() {
				return decimal.Zero, fmt.Errorf("division by zero")
			}

			value = operate(value, tVal, action)
		case 4:
			action = token.Value
		default:
			return decimal.Zero, fmt.Errorf("unsupported token '%s'", token.Value)
		}
	}

	return value, nil
}

func operate(a, b decimal.Decimal, op string) decimal.Decimal {
	switch op {
	case "+":
		return a.Add(b)
	case "-":
		return a.Sub(b)
	case "*":
		return a.Mul(b)
	case "/":
		return a.Div(b)
	default:
	}

	return decimal.Zero
}
