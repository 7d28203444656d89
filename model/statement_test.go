package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpr_String(t *testing.T) {
	t.Parallel()

	other := ParamRef{Name: "other"}
	o := LocalRef{Name: "o"}

	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "暗黙の this のフィールド", expr: FieldRef{Field: "id"}, want: "id"},
		{name: "修飾されたフィールド", expr: FieldRef{Target: o, Field: "id"}, want: "o.id"},
		{name: "引数の実行時クラス", expr: RuntimeClass{Of: other}, want: "other.getClass()"},
		{name: "単純クラス名", expr: SimpleClassName{}, want: "getClass().getSimpleName()"},
		{name: "空の論理積は true", expr: And{}, want: "true"},
		{name: "否定の同一性比較", expr: Identity{Negate: true, Left: This{}, Right: Null{}}, want: "this != null"},
		{name: "キャスト", expr: Cast{Type: "Child", Value: other}, want: "(Child) other"},
		{name: "float の比較", expr: FloatEquals{Type: "float", Left: FieldRef{Field: "x"}, Right: FieldRef{Target: o, Field: "x"}}, want: "Float.compare(x, o.x) == 0"},
		{name: "空の hash", expr: HashCombine{}, want: "java.util.Objects.hash()"},
		{name: "文字列連結", expr: Concat{Parts: []Expr{StringLiteral{Value: "a"}, FieldRef{Field: "b"}}}, want: `"a" + b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, tt.expr.String()); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestStatement_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stmt   Statement
		indent int
		want   string
	}{
		{
			name: "値の無い return",
			stmt: &ReturnStatement{},
			want: "return;",
		},
		{
			name: "final でない初期化なしの宣言",
			stmt: &LocalDecl{Type: "int", Name: "x"},
			want: "int x;",
		},
		{
			name:   "インデントされた if",
			stmt:   &IfStatement{Condition: BoolLiteral{Value: true}, Body: []Statement{&ReturnStatement{Value: Null{}}}},
			indent: 1,
			want:   "if (true) {\n        return null;\n    }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, tt.stmt.String(tt.indent)); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestQuoteJava(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "通常の文字列", in: "{id=", want: `"{id="`},
		{name: "引用符とバックスラッシュ", in: `a"b\c`, want: `"a\"b\\c"`},
		{name: "改行とタブ", in: "a\nb\tc", want: `"a\nb\tc"`},
		{name: "制御文字は unicode エスケープ", in: "\x01", want: `"\u0001"`},
		{name: "非 ASCII はそのまま", in: "名前", want: `"名前"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, quoteJava(tt.in)); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}
