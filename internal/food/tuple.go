package food

// Tuple is one food row in the legacy 13-column insert format: separate
// serving_size and serving_unit columns. Numeric fields keep their original
// text so rewriting never reformats a value.
type Tuple struct {
	Name        string
	Brand       string
	ServingSize string
	ServingUnit string
	Calories    string
	Protein     string
	Carbs       string
	Fat         string
	Fiber       string
	Sugar       string
	Category    string
	Source      string
	Status      string
}

// fieldKind describes what a tuple position must contain.
type fieldKind int

const (
	fieldString      fieldKind = iota // non-empty quoted string
	fieldStringEmpty                  // quoted string, may be empty
	fieldNumber                       // unsigned integer or decimal
)

// tupleShape is the legacy column layout: name, brand, serving size, serving
// unit, six nutrient numbers, category, source, status.
var tupleShape = []fieldKind{
	fieldString,      // name
	fieldStringEmpty, // brand
	fieldNumber,      // serving_size
	fieldString,      // serving_unit
	fieldNumber,      // calories
	fieldNumber,      // protein
	fieldNumber,      // carbs
	fieldNumber,      // fat
	fieldNumber,      // fiber
	fieldNumber,      // sugar
	fieldString,      // category
	fieldString,      // source
	fieldString,      // status
}

// ParseTuple lexes a candidate line and validates it against the legacy
// 13-field shape. It reports ok=false for anything else, including already
// converted 12-field rows, so conversion is idempotent.
func ParseTuple(line string) (Tuple, bool) {
	lexer := NewLexer(line)

	if tok := lexer.NextToken(); tok.Type != TokenLeftParen {
		return Tuple{}, false
	}

	var values []Token
	for {
		tok := lexer.NextToken()
		if tok.Type != TokenString && tok.Type != TokenNumber {
			return Tuple{}, false
		}
		values = append(values, tok)
		if len(values) > len(tupleShape) {
			return Tuple{}, false
		}

		sep := lexer.NextToken()
		if sep.Type == TokenRightParen {
			break
		}
		if sep.Type != TokenComma {
			return Tuple{}, false
		}
	}

	if len(values) != len(tupleShape) {
		return Tuple{}, false
	}
	for i, kind := range tupleShape {
		switch kind {
		case fieldString:
			if values[i].Type != TokenString || values[i].Value == "" {
				return Tuple{}, false
			}
		case fieldStringEmpty:
			if values[i].Type != TokenString {
				return Tuple{}, false
			}
		case fieldNumber:
			if values[i].Type != TokenNumber {
				return Tuple{}, false
			}
		}
	}

	return Tuple{
		Name:        values[0].Value,
		Brand:       values[1].Value,
		ServingSize: values[2].Value,
		ServingUnit: values[3].Value,
		Calories:    values[4].Value,
		Protein:     values[5].Value,
		Carbs:       values[6].Value,
		Fat:         values[7].Value,
		Fiber:       values[8].Value,
		Sugar:       values[9].Value,
		Category:    values[10].Value,
		Source:      values[11].Value,
		Status:      values[12].Value,
	}, true
}
