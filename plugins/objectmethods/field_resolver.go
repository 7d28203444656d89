package objectmethods

import "github.com/Yamashou/methodgen/model"

// FieldResolver はクラスの継承チェーンを辿り、インスタンスフィールドを
// 最も遠い祖先から順に並べたリストを構築する。
//
// 前提条件: スーパークラスの関係は有限かつ非循環で、モデル外の型で終端する。
// 循環した継承は呼び出し側の契約違反であり、ここでは検出しない。
type FieldResolver struct{}

// NewFieldResolver creates a new FieldResolver.
func NewFieldResolver() *FieldResolver {
	return &FieldResolver{}
}

// ResolveFields はマージ済みのフィールドリストを返す。
//
// 祖先のフィールドは常に子孫のフィールドより前に並び、同じクラス内では宣言順が保たれる。
// static フィールドはどの階層でも除外される。フィールドが 1 つもない場合は空のスライスを返す。
func (r *FieldResolver) ResolveFields(class *model.ClassModel) []*model.FieldModel {
	superFields := r.superclassFields(class)
	ownFields := instanceFields(class.Fields)

	fields := make([]*model.FieldModel, 0, len(superFields)+len(ownFields))
	fields = append(fields, superFields...)
	fields = append(fields, ownFields...)

	return fields
}

// superclassFields は祖先を下から上へ辿り、各祖先の宣言フィールドを先頭に追加していく。
func (r *FieldResolver) superclassFields(class *model.ClassModel) []*model.FieldModel {
	var fields []*model.FieldModel

	for super := class.Superclass(); super != nil; super = super.Superclass() {
		fields = append(append([]*model.FieldModel{}, super.Fields...), fields...)
	}

	return instanceFields(fields)
}

func instanceFields(fields []*model.FieldModel) []*model.FieldModel {
	result := make([]*model.FieldModel, 0, len(fields))
	for _, f := range fields {
		if !f.Static {
			result = append(result, f)
		}
	}
	return result
}
