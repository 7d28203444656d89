package model

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

// Statement は生成されるメソッド本体のステートメントを表す。
//
// String メソッドは指定されたインデントレベルで Java の文字列表現を返す。
type Statement interface {
	String(indent int) string
}

// Expr は生成されるメソッド本体の式を表す。
type Expr interface {
	String() string
	isExpr()
}

// IfStatement は if 文を表す。
//
// 例:
//
//	if (this == other) {
//	    return true;
//	}
type IfStatement struct {
	Condition Expr        // 条件式
	Body      []Statement // if ブロック内のステートメント
}

// String は if 文の文字列表現を返す。
func (i *IfStatement) String(indent int) string {
	var buf strings.Builder
	tabs := strings.Repeat(indentUnit, indent)

	buf.WriteString(fmt.Sprintf("if (%s) {\n", i.Condition))
	for _, stmt := range i.Body {
		buf.WriteString(tabs + indentUnit)
		buf.WriteString(stmt.String(indent + 1))
		buf.WriteString("\n")
	}
	buf.WriteString(tabs + "}")

	return buf.String()
}

// ReturnStatement は return 文を表す。
//
// 例: return java.util.Objects.hash(id, name);
type ReturnStatement struct {
	Value Expr // 返す値（nil の場合は単なる return）
}

// String は return 文の文字列表現を返す。
func (r *ReturnStatement) String(_ int) string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value)
}

// LocalDecl はローカル変数宣言を表す。
//
// 例: final Child o = (Child) other;
type LocalDecl struct {
	Final bool
	Type  string
	Name  string
	Init  Expr
}

// String は変数宣言の文字列表現を返す。
func (d *LocalDecl) String(_ int) string {
	var buf strings.Builder
	if d.Final {
		buf.WriteString("final ")
	}
	buf.WriteString(fmt.Sprintf("%s %s", d.Type, d.Name))
	if d.Init != nil {
		buf.WriteString(fmt.Sprintf(" = %s", d.Init))
	}
	buf.WriteString(";")
	return buf.String()
}

// This is the receiver reference.
type This struct{}

func (This) String() string { return "this" }

// Null is the null literal.
type Null struct{}

func (Null) String() string { return "null" }

// BoolLiteral is true or false.
type BoolLiteral struct {
	Value bool
}

func (b BoolLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// StringLiteral is a string constant.
type StringLiteral struct {
	Value string
}

func (s StringLiteral) String() string { return quoteJava(s.Value) }

// ParamRef はメソッドパラメータの参照を表す。
type ParamRef struct {
	Name string
}

func (p ParamRef) String() string { return p.Name }

// LocalRef はローカル変数の参照を表す。
type LocalRef struct {
	Name string
}

func (l LocalRef) String() string { return l.Name }

// FieldRef はフィールド参照を表す。Target が nil の場合は暗黙の this を意味する。
//
// 例: id, this.id, o.id
type FieldRef struct {
	Target Expr
	Field  string
}

func (f FieldRef) String() string {
	if f.Target == nil {
		return f.Field
	}
	return f.Target.String() + "." + f.Field
}

// RuntimeClass は getClass() 呼び出しを表す。Of が nil の場合は暗黙の this を意味する。
type RuntimeClass struct {
	Of Expr
}

func (r RuntimeClass) String() string {
	if r.Of == nil {
		return "getClass()"
	}
	return r.Of.String() + ".getClass()"
}

// SimpleClassName は実行時クラスの単純名（getClass().getSimpleName()）を表す。
type SimpleClassName struct {
	Of Expr
}

func (s SimpleClassName) String() string {
	return RuntimeClass(s).String() + ".getSimpleName()"
}

// Concat は + による文字列連結を表す。各要素は通常の文字列変換で連結される。
type Concat struct {
	Parts []Expr
}

func (c Concat) String() string {
	return joinExprs(c.Parts, " + ")
}

// HashCombine は順序に依存した複数引数のハッシュ合成を表す。
//
// Deep が true の場合は配列の中身まで辿る Arrays.deepHashCode を使う。
type HashCombine struct {
	Args []Expr
	Deep bool
}

func (h HashCombine) String() string {
	if h.Deep {
		return fmt.Sprintf("java.util.Arrays.deepHashCode(new Object[] {%s})", joinExprs(h.Args, ", "))
	}
	return fmt.Sprintf("java.util.Objects.hash(%s)", joinExprs(h.Args, ", "))
}

// DeepEquals は配列やコレクションを内容で比較する深い等価比較を表す。
type DeepEquals struct {
	Left, Right Expr
}

func (d DeepEquals) String() string {
	return fmt.Sprintf("java.util.Objects.deepEquals(%s, %s)", d.Left, d.Right)
}

// ValueEquals はプリミティブ値の == 比較を表す。
type ValueEquals struct {
	Left, Right Expr
}

func (v ValueEquals) String() string {
	return fmt.Sprintf("%s == %s", v.Left, v.Right)
}

// FloatEquals は float/double を compare で比較する。NaN 同士は等しく、0.0 と -0.0 は等しくない。
type FloatEquals struct {
	Type        string // "float" または "double"
	Left, Right Expr
}

func (f FloatEquals) String() string {
	box := "Double"
	if f.Type == "float" {
		box = "Float"
	}
	return fmt.Sprintf("%s.compare(%s, %s) == 0", box, f.Left, f.Right)
}

// Identity は参照の同一性比較（== または !=）を表す。
type Identity struct {
	Negate      bool
	Left, Right Expr
}

func (i Identity) String() string {
	op := "=="
	if i.Negate {
		op = "!="
	}
	return fmt.Sprintf("%s %s %s", i.Left, op, i.Right)
}

// And は条件の論理積を表す。Terms が空の場合は true になる。
type And struct {
	Terms []Expr
}

func (a And) String() string {
	if len(a.Terms) == 0 {
		return "true"
	}
	return joinExprs(a.Terms, " && ")
}

// Cast は型キャストを表す。
type Cast struct {
	Type  string
	Value Expr
}

func (c Cast) String() string {
	return fmt.Sprintf("(%s) %s", c.Type, c.Value)
}

func (This) isExpr()            {}
func (Null) isExpr()            {}
func (BoolLiteral) isExpr()     {}
func (StringLiteral) isExpr()   {}
func (ParamRef) isExpr()        {}
func (LocalRef) isExpr()        {}
func (FieldRef) isExpr()        {}
func (RuntimeClass) isExpr()    {}
func (SimpleClassName) isExpr() {}
func (Concat) isExpr()          {}
func (HashCombine) isExpr()     {}
func (DeepEquals) isExpr()      {}
func (ValueEquals) isExpr()     {}
func (FloatEquals) isExpr()     {}
func (Identity) isExpr()        {}
func (And) isExpr()             {}
func (Cast) isExpr()            {}

func joinExprs(exprs []Expr, sep string) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, sep)
}

// quoteJava は Java の文字列リテラルとして有効な表記を返す。
// strconv.Quote は \x エスケープを使うため Java では使えない。
func quoteJava(s string) string {
	var buf strings.Builder
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if r < 0x20 {
				buf.WriteString(fmt.Sprintf(`\u%04x`, r))
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
