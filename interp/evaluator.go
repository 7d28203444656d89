// Package interp は MethodSpec の本体を Java の値の意味論で実行する参照評価器を提供する。
//
// JVM を使わずに生成された equals / hashCode / toString の振る舞い
// （反射律、null との比較、ハッシュと等価性の整合など）を検証するために使う。
// ネストしたオブジェクトの equals / hashCode / toString は Object の既定の実装
// （同一性に基づく）として扱う。
package interp

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Yamashou/methodgen/model"
)

// Evaluator は MethodSpec を評価する。同一性ハッシュを保持するため、
// 同じ Evaluator を使う限りオブジェクトと配列のハッシュ値は安定する。
type Evaluator struct {
	mu         sync.Mutex
	identities map[any]int32
	next       int32
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		identities: make(map[any]int32),
		next:       0x1b6d3586,
	}
}

type frame struct {
	this   *Object
	params map[string]Value
	locals map[string]Value
}

// Call は this をレシーバとして spec の本体を実行し、戻り値を返す。
func (e *Evaluator) Call(spec *model.MethodSpec, this *Object, args ...Value) (Value, error) {
	if this == nil {
		return nil, fmt.Errorf("%s: %w", spec.Name, ErrNullPointer)
	}
	if len(args) != len(spec.Params) {
		return nil, fmt.Errorf("%s: want %d arguments, got %d", spec.Name, len(spec.Params), len(args))
	}

	fr := &frame{
		this:   this,
		params: make(map[string]Value, len(args)),
		locals: make(map[string]Value),
	}
	for i, p := range spec.Params {
		fr.params[p.Name] = normalizeNull(args[i])
	}

	v, returned, err := e.execBlock(fr, spec.Body)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", this.Class.QualifiedName(), spec.Name, err)
	}
	if !returned {
		return nil, fmt.Errorf("%s.%s: %w", this.Class.QualifiedName(), spec.Name, ErrNoReturn)
	}

	return v, nil
}

// normalizeNull は型付きの nil ポインタを null に揃える。
func normalizeNull(v Value) Value {
	switch x := v.(type) {
	case *Object:
		if x == nil {
			return nil
		}
	case *Array:
		if x == nil {
			return nil
		}
	}
	return v
}

func (e *Evaluator) execBlock(fr *frame, body []model.Statement) (Value, bool, error) {
	for _, stmt := range body {
		v, returned, err := e.exec(fr, stmt)
		if err != nil || returned {
			return v, returned, err
		}
	}
	return nil, false, nil
}

func (e *Evaluator) exec(fr *frame, stmt model.Statement) (Value, bool, error) {
	switch s := stmt.(type) {
	case *model.IfStatement:
		cond, err := e.evalBool(fr, s.Condition)
		if err != nil {
			return nil, false, err
		}
		if !cond {
			return nil, false, nil
		}
		return e.execBlock(fr, s.Body)
	case *model.ReturnStatement:
		if s.Value == nil {
			return nil, true, nil
		}
		v, err := e.eval(fr, s.Value)
		return v, err == nil, err
	case *model.LocalDecl:
		v, err := e.eval(fr, s.Init)
		if err != nil {
			return nil, false, err
		}
		fr.locals[s.Name] = v
		return nil, false, nil
	}
	return nil, false, fmt.Errorf("%w: statement %T", ErrUnsupportedValue, stmt)
}

func (e *Evaluator) evalBool(fr *frame, expr model.Expr) (bool, error) {
	v, err := e.eval(fr, expr)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s is %T, want boolean", ErrUnsupportedValue, expr, v)
	}
	return b, nil
}

func (e *Evaluator) eval(fr *frame, expr model.Expr) (Value, error) {
	switch x := expr.(type) {
	case nil:
		return nil, nil
	case model.This:
		return fr.this, nil
	case model.Null:
		return nil, nil
	case model.BoolLiteral:
		return x.Value, nil
	case model.StringLiteral:
		return x.Value, nil
	case model.ParamRef:
		v, ok := fr.params[x.Name]
		if !ok {
			return nil, fmt.Errorf("%w: parameter %s", ErrUnknownField, x.Name)
		}
		return v, nil
	case model.LocalRef:
		v, ok := fr.locals[x.Name]
		if !ok {
			return nil, fmt.Errorf("%w: local %s", ErrUnknownField, x.Name)
		}
		return v, nil
	case model.FieldRef:
		return e.evalField(fr, x)
	case model.RuntimeClass:
		return e.runtimeClass(fr, x.Of)
	case model.SimpleClassName:
		c, err := e.runtimeClass(fr, x.Of)
		if err != nil {
			return nil, err
		}
		return simpleName(c), nil
	case model.Concat:
		return e.evalConcat(fr, x)
	case model.HashCombine:
		args, err := e.evalAll(fr, x.Args)
		if err != nil {
			return nil, err
		}
		if x.Deep {
			return e.deepHashCode(args)
		}
		return e.hashArray(args)
	case model.DeepEquals:
		l, r, err := e.evalPair(fr, x.Left, x.Right)
		if err != nil {
			return nil, err
		}
		return deepEquals(l, r), nil
	case model.ValueEquals:
		l, r, err := e.evalPair(fr, x.Left, x.Right)
		if err != nil {
			return nil, err
		}
		return l == r, nil
	case model.FloatEquals:
		l, r, err := e.evalPair(fr, x.Left, x.Right)
		if err != nil {
			return nil, err
		}
		return compareFloats(x.Type, l, r)
	case model.Identity:
		l, r, err := e.evalPair(fr, x.Left, x.Right)
		if err != nil {
			return nil, err
		}
		return (l == r) != x.Negate, nil
	case model.And:
		for _, term := range x.Terms {
			b, err := e.evalBool(fr, term)
			if err != nil {
				return nil, err
			}
			if !b {
				return false, nil
			}
		}
		return true, nil
	case model.Cast:
		return e.evalCast(fr, x)
	}
	return nil, fmt.Errorf("%w: expression %T", ErrUnsupportedValue, expr)
}

func (e *Evaluator) evalAll(fr *frame, exprs []model.Expr) ([]Value, error) {
	values := make([]Value, 0, len(exprs))
	for _, x := range exprs {
		v, err := e.eval(fr, x)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (e *Evaluator) evalPair(fr *frame, left, right model.Expr) (Value, Value, error) {
	l, err := e.eval(fr, left)
	if err != nil {
		return nil, nil, err
	}
	r, err := e.eval(fr, right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func (e *Evaluator) evalField(fr *frame, x model.FieldRef) (Value, error) {
	var target Value = fr.this
	if x.Target != nil {
		v, err := e.eval(fr, x.Target)
		if err != nil {
			return nil, err
		}
		target = v
	}

	if target == nil {
		return nil, fmt.Errorf("%w: field %s", ErrNullPointer, x.Field)
	}
	obj, ok := target.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: field %s of %T", ErrUnsupportedValue, x.Field, target)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: field %s", ErrNullPointer, x.Field)
	}
	return obj.field(x.Field)
}

// runtimeClass は getClass() の結果を返す。モデル上のインスタンスは *model.ClassModel、
// それ以外の値は boxed 型の名前になる。
func (e *Evaluator) runtimeClass(fr *frame, of model.Expr) (Value, error) {
	var v Value = fr.this
	if of != nil {
		var err error
		if v, err = e.eval(fr, of); err != nil {
			return nil, err
		}
	}

	switch obj := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: getClass()", ErrNullPointer)
	case *Object:
		if obj == nil {
			return nil, fmt.Errorf("%w: getClass()", ErrNullPointer)
		}
		return obj.Class, nil
	}

	name, ok := boxedClass(v)
	if !ok {
		return nil, fmt.Errorf("%w: getClass() of %T", ErrUnsupportedValue, v)
	}
	return name, nil
}

func simpleName(class Value) string {
	switch c := class.(type) {
	case *model.ClassModel:
		return c.Name
	case builtinClass:
		name := string(c)
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			return name[i+1:]
		}
		return name
	}
	return ""
}

func (e *Evaluator) evalCast(fr *frame, x model.Cast) (Value, error) {
	v, err := e.eval(fr, x.Value)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	obj, ok := v.(*Object)
	if !ok || !obj.instanceOf(x.Type) {
		return nil, fmt.Errorf("%w: %T cannot be cast to %s", ErrClassCast, v, x.Type)
	}
	return obj, nil
}

func (e *Evaluator) evalConcat(fr *frame, x model.Concat) (Value, error) {
	var buf []byte
	for _, part := range x.Parts {
		v, err := e.eval(fr, part)
		if err != nil {
			return nil, err
		}
		s, err := e.ToString(v)
		if err != nil {
			return nil, err
		}
		buf = append(buf, s...)
	}
	return string(buf), nil
}

func compareFloats(typ string, l, r Value) (bool, error) {
	if typ == "float" {
		lf, lok := l.(float32)
		rf, rok := r.(float32)
		if !lok || !rok {
			return false, fmt.Errorf("%w: Float.compare(%T, %T)", ErrUnsupportedValue, l, r)
		}
		return floatToIntBits(lf) == floatToIntBits(rf), nil
	}

	lf, lok := l.(float64)
	rf, rok := r.(float64)
	if !lok || !rok {
		return false, fmt.Errorf("%w: Double.compare(%T, %T)", ErrUnsupportedValue, l, r)
	}
	return doubleToLongBits(lf) == doubleToLongBits(rf), nil
}

// HashCode は v.hashCode() を返す。null は 0。
func (e *Evaluator) HashCode(v Value) (int32, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if x {
			return 1231, nil
		}
		return 1237, nil
	case int8:
		return int32(x), nil
	case int16:
		return int32(x), nil
	case uint16:
		return int32(x), nil
	case int32:
		return x, nil
	case int64:
		return int32(x ^ int64(uint64(x)>>32)), nil
	case float32:
		return int32(floatToIntBits(x)), nil
	case float64:
		bits := doubleToLongBits(x)
		return int32(bits ^ (bits >> 32)), nil
	case string:
		return stringHash(x), nil
	case *Object, *Array:
		return e.identityHash(x), nil
	}
	return 0, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

// hashArray は Arrays.hashCode(Object[]) と同じ計算を行う。
func (e *Evaluator) hashArray(values []Value) (int32, error) {
	result := int32(1)
	for _, v := range values {
		h, err := e.HashCode(v)
		if err != nil {
			return 0, err
		}
		result = 31*result + h
	}
	return result, nil
}

// deepHashCode は Arrays.deepHashCode と同じ計算を行う。配列の要素は内容でハッシュ化される。
func (e *Evaluator) deepHashCode(values []Value) (int32, error) {
	result := int32(1)
	for _, v := range values {
		var h int32
		var err error
		if arr, ok := v.(*Array); ok && arr != nil {
			h, err = e.deepHashCode(arr.Elems)
		} else {
			h, err = e.HashCode(v)
		}
		if err != nil {
			return 0, err
		}
		result = 31*result + h
	}
	return result, nil
}

// ToString は String.valueOf(v) を返す。
// 配列は要素型に関わらず Object[] として "[Ljava.lang.Object;@..." と表示される。
func (e *Evaluator) ToString(v Value) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(x), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case uint16:
		return string(rune(x)), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float32:
		return formatFloat(float64(x), 32), nil
	case float64:
		return formatFloat(x, 64), nil
	case string:
		return x, nil
	case *Object:
		return x.Class.QualifiedName() + "@" + strconv.FormatUint(uint64(uint32(e.identityHash(x))), 16), nil
	case *Array:
		return "[Ljava.lang.Object;@" + strconv.FormatUint(uint64(uint32(e.identityHash(x))), 16), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func (e *Evaluator) identityHash(ref any) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if h, ok := e.identities[ref]; ok {
		return h
	}
	e.next = e.next*1103515245 + 12345
	e.identities[ref] = e.next
	return e.next
}
