package toyjson

// parser pulls tokens from its lexer and builds values by recursive descent.
// It lives for a single Parse call.
type parser struct {
	lex      *lexer
	depth    int
	maxDepth int // negative: unlimited
}

// parse reads exactly one value followed by the end of the input.
func (p *parser) parse() (Value, error) {
	t, err := p.lex.next()
	if err != nil {
		return Value{}, err
	}
	v, err := p.parseValue(t)
	if err != nil {
		return Value{}, err
	}
	t, err = p.lex.next()
	if err != nil {
		return Value{}, err
	}
	if t.Type != eofToken {
		return Value{}, newSyntaxError("unparsed trailing tokens", t)
	}
	return v, nil
}

// parseValue turns the already consumed token t into a value, reading the
// rest of an array or object from the lexer.
func (p *parser) parseValue(t token) (Value, error) {
	switch t.Type {
	case nullToken:
		return NullValue(), nil
	case trueToken:
		return BoolValue(true), nil
	case falseToken:
		return BoolValue(false), nil
	case numberToken:
		return NumberValue(t.Num), nil
	case stringToken:
		return StringValue(t.Str), nil
	case arrayOToken:
		return p.parseArray(t)
	case objectOToken:
		return p.parseObject(t)
	default:
		return Value{}, newSyntaxError("unexpected token", t)
	}
}

func (p *parser) enter(open token) error {
	p.depth++
	if p.maxDepth >= 0 && p.depth > p.maxDepth {
		err := newSyntaxError("nesting too deep", open)
		err.cause = ErrMaxDepth
		return err
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

type arrayState uint8

const (
	arrayStart arrayState = iota
	arrayValue
	arrayComma
)

type arrayAction uint8

const (
	arrayReject arrayAction = iota
	arrayAppend
	arraySkip
	arrayClose
)

// arrayStep is the transition function of the array state machine.
// A value is required after a comma, so "[1,]" is rejected by parseValue.
func arrayStep(s arrayState, t tokenType) (arrayState, arrayAction) {
	switch s {
	case arrayStart:
		if t == arrayCToken {
			return s, arrayClose
		}
		return arrayValue, arrayAppend
	case arrayValue:
		switch t {
		case arrayCToken:
			return s, arrayClose
		case commaToken:
			return arrayComma, arraySkip
		}
	case arrayComma:
		return arrayValue, arrayAppend
	}
	return s, arrayReject
}

func (p *parser) parseArray(open token) (Value, error) {
	if err := p.enter(open); err != nil {
		return Value{}, err
	}
	defer p.leave()

	var elems []Value
	state := arrayStart
	for {
		t, err := p.lex.next()
		if err != nil {
			return Value{}, err
		}
		if t.Type == eofToken {
			return Value{}, newSyntaxError("no end of array", t)
		}
		var action arrayAction
		state, action = arrayStep(state, t.Type)
		switch action {
		case arrayClose:
			return ArrayValue(elems...), nil
		case arrayAppend:
			v, err := p.parseValue(t)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		case arrayReject:
			return Value{}, newSyntaxError("expected ',' or ']' in array", t)
		}
	}
}

type objectState uint8

const (
	objectStart objectState = iota
	objectKey
	objectColon
	objectValue
	objectComma
)

type objectAction uint8

const (
	objectReject objectAction = iota
	objectSetKey
	objectSkip
	objectBind
	objectClose
)

// objectStep is the transition function of the object state machine.
func objectStep(s objectState, t tokenType) (objectState, objectAction) {
	switch s {
	case objectStart:
		switch t {
		case objectCToken:
			return s, objectClose
		case stringToken:
			return objectKey, objectSetKey
		}
	case objectKey:
		if t == colonToken {
			return objectColon, objectSkip
		}
	case objectColon:
		return objectValue, objectBind
	case objectValue:
		switch t {
		case objectCToken:
			return s, objectClose
		case commaToken:
			return objectComma, objectSkip
		}
	case objectComma:
		if t == stringToken {
			return objectKey, objectSetKey
		}
	}
	return s, objectReject
}

var objectExpect = [...]string{
	objectStart: "expected key or '}' in object",
	objectKey:   "expected ':' after object key",
	objectValue: "expected ',' or '}' in object",
	objectComma: "expected key after ',' in object",
}

func (p *parser) parseObject(open token) (Value, error) {
	if err := p.enter(open); err != nil {
		return Value{}, err
	}
	defer p.leave()

	var (
		b     objectBuilder
		key   string
		state = objectStart
	)
	for {
		t, err := p.lex.next()
		if err != nil {
			return Value{}, err
		}
		if t.Type == eofToken {
			return Value{}, newSyntaxError("no end of object", t)
		}
		prev := state
		var action objectAction
		state, action = objectStep(state, t.Type)
		switch action {
		case objectClose:
			return b.value(), nil
		case objectSetKey:
			key = t.Str
		case objectBind:
			v, err := p.parseValue(t)
			if err != nil {
				return Value{}, err
			}
			b.set(key, v)
		case objectReject:
			return Value{}, newSyntaxError(objectExpect[prev], t)
		}
	}
}
