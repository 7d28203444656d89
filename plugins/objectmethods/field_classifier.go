package objectmethods

import (
	"strings"

	"github.com/Yamashou/methodgen/model"
)

// TypeKind はフィールドの型タグを比較方法ごとに分類したもの。
type TypeKind int

const (
	// KindReference はオブジェクト参照型。深い等価比較の対象になる。
	KindReference TypeKind = iota
	// KindPrimitive は整数・boolean・char のプリミティブ型。
	KindPrimitive
	// KindFloating は float と double。
	KindFloating
	// KindArray は配列型。内容で比較・ハッシュ化される。
	KindArray
)

func (k TypeKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindFloating:
		return "floating"
	case KindArray:
		return "array"
	default:
		return "reference"
	}
}

// FieldClassifier はフィールドの型タグから比較方法を判定する。
type FieldClassifier struct{}

// NewFieldClassifier は新しい FieldClassifier を作成する。
func NewFieldClassifier() *FieldClassifier {
	return &FieldClassifier{}
}

// Classify はフィールドの型を分類する。
//
//   - "int" -> KindPrimitive
//   - "double" -> KindFloating
//   - "byte[]", "String[][]" -> KindArray
//   - "String", "java.util.List<String>" -> KindReference
func (c *FieldClassifier) Classify(field *model.FieldModel) TypeKind {
	t := strings.TrimSpace(field.Type)

	if strings.HasSuffix(t, "[]") {
		return KindArray
	}

	switch t {
	case "boolean", "byte", "char", "short", "int", "long":
		return KindPrimitive
	case "float", "double":
		return KindFloating
	default:
		return KindReference
	}
}

// HasArray reports whether any of the fields is array-typed.
func (c *FieldClassifier) HasArray(fields []*model.FieldModel) bool {
	for _, f := range fields {
		if c.Classify(f) == KindArray {
			return true
		}
	}
	return false
}
