package formatter

import (
	"errors"
	"fmt"

	"github.com/Yamashou/methodgen/model"
)

var (
	ErrInsertionUnsupported = errors.New("class does not support method insertion")
	ErrMethodExists         = errors.New("method already exists")
)

// ClassSource はクラスと、そのクラスに追加される生成メソッドの組。
type ClassSource struct {
	Class   *model.ClassModel
	Methods []*model.MethodSpec
}

// Attach は生成されたメソッドをクラスに追加した ClassSource を返す。
// ClassModel 自体は変更しない。
//
// インターフェースへの追加は ErrInsertionUnsupported、既存メソッドや
// 同じシグネチャの重複は ErrMethodExists になる。
func Attach(class *model.ClassModel, specs ...*model.MethodSpec) (*ClassSource, error) {
	if len(specs) > 0 && class.Interface {
		return nil, fmt.Errorf("%s: %w", class.QualifiedName(), ErrInsertionUnsupported)
	}

	attached := make([]model.MethodSignature, 0, len(specs))
	for _, spec := range specs {
		sig := spec.Signature()
		if class.HasMethod(sig.Name, sig.Params...) || containsSignature(attached, sig) {
			return nil, fmt.Errorf("%s.%s: %w", class.QualifiedName(), sig.Name, ErrMethodExists)
		}
		attached = append(attached, sig)
	}

	return &ClassSource{
		Class:   class,
		Methods: specs,
	}, nil
}

func containsSignature(sigs []model.MethodSignature, sig model.MethodSignature) bool {
	for _, s := range sigs {
		if s.Matches(sig.Name, sig.Params...) {
			return true
		}
	}
	return false
}
