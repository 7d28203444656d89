package objectmethods

import "github.com/Yamashou/methodgen/model"

// ToStringBuilder builds toString method specs.
type ToStringBuilder struct{}

// NewToStringBuilder creates a new ToStringBuilder.
func NewToStringBuilder() *ToStringBuilder {
	return &ToStringBuilder{}
}

// BuildToStringMethod は以下のような toString メソッドを構築する:
//
//	@Override
//	public String toString() {
//	    return getClass().getSimpleName() + "{id=" + id + ", name=" + name + "}";
//	}
//
// フィールドが無い場合は "ClassName{}" を返す本体になる。
func (b *ToStringBuilder) BuildToStringMethod(fields []*model.FieldModel) *model.MethodSpec {
	return &model.MethodSpec{
		Name:        methodToString,
		Modifiers:   []string{"public"},
		Annotations: []string{"Override"},
		ReturnType:  "String",
		Body: []model.Statement{
			&model.ReturnStatement{Value: b.buildConcat(fields)},
		},
	}
}

// buildConcat は連続する文字列リテラルを 1 つにまとめながら連結式を組み立てる。
func (b *ToStringBuilder) buildConcat(fields []*model.FieldModel) model.Concat {
	parts := []model.Expr{model.SimpleClassName{}}
	pending := "{"

	sep := ""
	for _, field := range fields {
		pending += sep + field.Name + "="
		parts = append(parts, model.StringLiteral{Value: pending}, model.FieldRef{Field: field.Name})
		pending = ""
		sep = ", " // 2 つ目以降のフィールドの前に区切りを置く
	}

	parts = append(parts, model.StringLiteral{Value: pending + "}"})

	return model.Concat{Parts: parts}
}
