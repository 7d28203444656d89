package objectmethods

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Yamashou/methodgen/model"
)

func TestFieldClassifier_Classify(t *testing.T) {
	t.Parallel()

	classifier := NewFieldClassifier()

	tests := []struct {
		name string
		typ  string
		want TypeKind
	}{
		{name: "int はプリミティブ", typ: "int", want: KindPrimitive},
		{name: "boolean はプリミティブ", typ: "boolean", want: KindPrimitive},
		{name: "char はプリミティブ", typ: "char", want: KindPrimitive},
		{name: "long はプリミティブ", typ: "long", want: KindPrimitive},
		{name: "float は浮動小数点", typ: "float", want: KindFloating},
		{name: "double は浮動小数点", typ: "double", want: KindFloating},
		{name: "前後の空白は無視する", typ: " double ", want: KindFloating},
		{name: "プリミティブの配列は配列", typ: "byte[]", want: KindArray},
		{name: "多次元配列は配列", typ: "String[][]", want: KindArray},
		{name: "ボックス型は参照型", typ: "Integer", want: KindReference},
		{name: "総称型は参照型", typ: "java.util.List<String>", want: KindReference},
		{name: "型が空の場合は参照型", typ: "", want: KindReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifier.Classify(&model.FieldModel{Name: "f", Type: tt.typ})
			if diff := cmp.Diff(tt.want.String(), got.String()); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestFieldClassifier_HasArray(t *testing.T) {
	t.Parallel()

	classifier := NewFieldClassifier()

	tests := []struct {
		name   string
		fields []*model.FieldModel
		want   bool
	}{
		{name: "フィールドが無い", fields: nil, want: false},
		{name: "配列が無い", fields: []*model.FieldModel{field("id", "int"), field("name", "String")}, want: false},
		{name: "配列を含む", fields: []*model.FieldModel{field("id", "int"), field("data", "int[]")}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, classifier.HasArray(tt.fields)); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}
