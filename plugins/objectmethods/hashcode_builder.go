package objectmethods

import "github.com/Yamashou/methodgen/model"

// HashCodeBuilder builds hashCode method specs.
type HashCodeBuilder struct {
	classifier *FieldClassifier
}

// NewHashCodeBuilder creates a new HashCodeBuilder.
func NewHashCodeBuilder() *HashCodeBuilder {
	return &HashCodeBuilder{
		classifier: NewFieldClassifier(),
	}
}

// BuildHashCodeMethod は全フィールドを宣言順に合成する hashCode メソッドを構築する。
//
//	@Override
//	public int hashCode() {
//	    return java.util.Objects.hash(id, name);
//	}
//
// 配列型のフィールドがある場合は Objects.hash だと配列が同一性でハッシュ化され
// deepEquals と矛盾するため、Arrays.deepHashCode を使う。
func (b *HashCodeBuilder) BuildHashCodeMethod(fields []*model.FieldModel) *model.MethodSpec {
	args := make([]model.Expr, 0, len(fields))
	for _, field := range fields {
		args = append(args, model.FieldRef{Field: field.Name})
	}

	return &model.MethodSpec{
		Name:        methodHashCode,
		Modifiers:   []string{"public"},
		Annotations: []string{"Override"},
		ReturnType:  "int",
		Body: []model.Statement{
			&model.ReturnStatement{Value: model.HashCombine{
				Args: args,
				Deep: b.classifier.HasArray(fields),
			}},
		},
	}
}
