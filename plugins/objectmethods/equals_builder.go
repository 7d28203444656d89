package objectmethods

import (
	"strings"

	"github.com/Yamashou/methodgen/model"
)

const (
	otherParam = "other"
	otherLocal = "o"
)

// EqualsBuilder builds equals method specs.
type EqualsBuilder struct {
	classifier *FieldClassifier
}

// NewEqualsBuilder creates a new EqualsBuilder.
func NewEqualsBuilder() *EqualsBuilder {
	return &EqualsBuilder{
		classifier: NewFieldClassifier(),
	}
}

// BuildEqualsMethod は equals(Object) メソッドを構築する。
//
//	@Override
//	public boolean equals(Object other) {
//	    if (this == other) {
//	        return true;
//	    }
//	    if (other == null) {
//	        return false;
//	    }
//	    if (getClass() != other.getClass()) {
//	        return false;
//	    }
//	    final Child o = (Child) other;
//	    return this.id == o.id && java.util.Objects.deepEquals(this.name, o.name);
//	}
//
// クラスの比較は instanceof ではなく実行時クラスの完全一致で行うため、
// サブクラスのインスタンスとは常に等しくならない。
func (b *EqualsBuilder) BuildEqualsMethod(class *model.ClassModel, fields []*model.FieldModel) *model.MethodSpec {
	other := model.ParamRef{Name: otherParam}
	o := model.LocalRef{Name: otherLocal}

	var statements []model.Statement

	// 1. 同一参照なら即座に true
	statements = append(statements, &model.IfStatement{
		Condition: model.Identity{Left: model.This{}, Right: other},
		Body:      []model.Statement{&model.ReturnStatement{Value: model.BoolLiteral{Value: true}}},
	})

	// 2. null なら false
	statements = append(statements, &model.IfStatement{
		Condition: model.Identity{Left: other, Right: model.Null{}},
		Body:      []model.Statement{&model.ReturnStatement{Value: model.BoolLiteral{Value: false}}},
	})

	// 3. 実行時クラスが異なれば false
	statements = append(statements, &model.IfStatement{
		Condition: model.Identity{Negate: true, Left: model.RuntimeClass{}, Right: model.RuntimeClass{Of: other}},
		Body:      []model.Statement{&model.ReturnStatement{Value: model.BoolLiteral{Value: false}}},
	})

	// 4. 同じ型にキャストして全フィールドを比較する
	statements = append(statements, &model.LocalDecl{
		Final: true,
		Type:  class.Name,
		Name:  otherLocal,
		Init:  model.Cast{Type: class.Name, Value: other},
	})

	terms := make([]model.Expr, 0, len(fields))
	for _, field := range fields {
		terms = append(terms, b.compareField(field, o))
	}
	statements = append(statements, &model.ReturnStatement{Value: model.And{Terms: terms}})

	return &model.MethodSpec{
		Name:        methodEquals,
		Modifiers:   []string{"public"},
		Annotations: []string{"Override"},
		ReturnType:  "boolean",
		Params:      []model.Param{{Type: "Object", Name: otherParam}},
		Body:        statements,
	}
}

// compareField はフィールドの型に応じた比較式を返す。
func (b *EqualsBuilder) compareField(field *model.FieldModel, o model.Expr) model.Expr {
	left := model.FieldRef{Target: model.This{}, Field: field.Name}
	right := model.FieldRef{Target: o, Field: field.Name}

	switch b.classifier.Classify(field) {
	case KindPrimitive:
		return model.ValueEquals{Left: left, Right: right}
	case KindFloating:
		return model.FloatEquals{Type: strings.TrimSpace(field.Type), Left: left, Right: right}
	default:
		return model.DeepEquals{Left: left, Right: right}
	}
}
