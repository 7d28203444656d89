package interp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/Yamashou/methodgen/model"
)

var (
	ErrNullPointer      = errors.New("null pointer")
	ErrClassCast        = errors.New("class cast")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrUnknownField     = errors.New("unknown field")
	ErrNoReturn         = errors.New("method completed without return")
)

// Value は評価器が扱う Java の値。
//
// 対応する Go の型:
//   - nil: null
//   - bool, int8 (byte), int16 (short), uint16 (char), int32 (int), int64 (long)
//   - float32 (float), float64 (double)
//   - string: java.lang.String
//   - *Array: 配列
//   - *Object: モデル上のクラスのインスタンス
type Value = any

// Object はモデル上のクラスのインスタンス。Fields に無いフィールドは型の既定値になる。
type Object struct {
	Class  *model.ClassModel
	Fields map[string]Value
}

// NewObject creates an instance of class with the given field values.
func NewObject(class *model.ClassModel, fields map[string]Value) *Object {
	if fields == nil {
		fields = make(map[string]Value)
	}
	return &Object{Class: class, Fields: fields}
}

// Array は Java の配列。要素型は持たず、int[] や byte[] も含めすべて Object[] としてモデル化する。
// equals / hashCode / toString は同一性に基づく。
type Array struct {
	Elems []Value
}

// NewArray creates an array holding elems.
func NewArray(elems ...Value) *Array {
	return &Array{Elems: elems}
}

// field はフィールド値を返す。未設定のフィールドは宣言された型の既定値になる。
func (o *Object) field(name string) (Value, error) {
	if v, ok := o.Fields[name]; ok {
		return v, nil
	}
	for c := o.Class; c != nil; c = c.Superclass() {
		for _, f := range c.Fields {
			if f.Name == name && !f.Static {
				return zeroValue(f.Type), nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, o.Class.QualifiedName(), name)
}

func (o *Object) instanceOf(typeName string) bool {
	for c := o.Class; c != nil; c = c.Superclass() {
		if c.Name == typeName || c.QualifiedName() == typeName {
			return true
		}
	}
	return false
}

// builtinClass is the runtime class of a value that is not a model instance.
type builtinClass string

func boxedClass(v Value) (builtinClass, bool) {
	switch v.(type) {
	case bool:
		return "java.lang.Boolean", true
	case int8:
		return "java.lang.Byte", true
	case int16:
		return "java.lang.Short", true
	case uint16:
		return "java.lang.Character", true
	case int32:
		return "java.lang.Integer", true
	case int64:
		return "java.lang.Long", true
	case float32:
		return "java.lang.Float", true
	case float64:
		return "java.lang.Double", true
	case string:
		return "java.lang.String", true
	case *Array:
		return "java.lang.Object[]", true
	}
	return "", false
}

func zeroValue(typ string) Value {
	switch strings.TrimSpace(typ) {
	case "boolean":
		return false
	case "byte":
		return int8(0)
	case "short":
		return int16(0)
	case "char":
		return uint16(0)
	case "int":
		return int32(0)
	case "long":
		return int64(0)
	case "float":
		return float32(0)
	case "double":
		return float64(0)
	default:
		return nil
	}
}

// doubleToLongBits は NaN を正規化した上で float64 のビット表現を返す。
func doubleToLongBits(f float64) uint64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	return math.Float64bits(f)
}

// floatToIntBits は NaN を正規化した上で float32 のビット表現を返す。
func floatToIntBits(f float32) uint32 {
	if math.IsNaN(float64(f)) {
		return 0x7fc00000
	}
	return math.Float32bits(f)
}

func stringHash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(c)
	}
	return h
}

// javaEquals は Object.equals の意味で a と b を比較する。a は non-null。
func javaEquals(a, b Value) bool {
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && doubleToLongBits(av) == doubleToLongBits(bv)
	case float32:
		bv, ok := b.(float32)
		return ok && floatToIntBits(av) == floatToIntBits(bv)
	case bool, int8, int16, uint16, int32, int64, string, *Object, *Array:
		return a == b
	}
	return false
}

// deepEquals は java.util.Objects.deepEquals と同じ規則で比較する。
// 浮動小数点数は == ではなくビット表現で比較する（0.0 と -0.0 は等しくない）。
func deepEquals(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch a.(type) {
	case float32, float64:
		return javaEquals(a, b)
	}
	if a == b {
		return true
	}

	aa, aok := a.(*Array)
	ba, bok := b.(*Array)
	if aok && bok {
		return arrayDeepEquals(aa, ba)
	}

	return javaEquals(a, b)
}

func arrayDeepEquals(a, b *Array) bool {
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i := range a.Elems {
		if !deepEquals(a.Elems[i], b.Elems[i]) {
			return false
		}
	}
	return true
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(f); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'E', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(e)
}
